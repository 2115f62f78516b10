// Command lisched schedules a straight-line assembly program onto a small
// machine model and prints the priorities and the dispatch schedule.
//
// Usage:
//
//	lisched [-table] <program file> <time|resource>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/lisched/api"
	"github.com/sarchlab/lisched/insts"
	"github.com/sarchlab/lisched/latency"
	"github.com/sarchlab/lisched/sched"
)

func main() {
	tableFlag := flag.Bool("table", false,
		"additionally render the schedule as a table")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr,
			"usage: %s [-table] <program file> <time|resource>\n", os.Args[0])
		atexit.Exit(2)
	}

	strategy, err := sched.ParseStrategy(flag.Arg(1))
	if err != nil {
		fatal(err)
	}

	program, err := insts.ParseFile(flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	table := latency.NewTable()
	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithTable(table).
		WithStrategy(strategy).
		Build("Driver")

	driver.MapProgram(program)
	if err := sched.WritePriorities(os.Stdout, driver.Graph()); err != nil {
		fatal(err)
	}

	driver.Run()
	if err := sched.WriteSchedule(os.Stdout, driver.Graph(), driver.Schedule()); err != nil {
		fatal(err)
	}

	if *tableFlag {
		fmt.Println(sched.RenderScheduleTable(
			driver.Graph(), table, driver.Schedule()))
	}

	atexit.Exit(0)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	atexit.Exit(1)
}
