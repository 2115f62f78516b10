package main

import (
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/lisched/api"
	"github.com/sarchlab/lisched/insts"
	"github.com/sarchlab/lisched/sched"
)

// Schedules the two bundled sample programs under both priority strategies.
func main() {
	for _, file := range []string{"sample.txt", "sample2.txt"} {
		for _, strategy := range []sched.Strategy{
			sched.StrategyTime, sched.StrategyResource,
		} {
			run(file, strategy)
		}
	}
	atexit.Exit(0)
}

func run(file string, strategy sched.Strategy) {
	program, err := insts.ParseFile(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithStrategy(strategy).
		Build("Driver")

	fmt.Printf("==== %s, %s priority ====\n", file, strategy)
	driver.MapProgram(program)
	if err := sched.WritePriorities(os.Stdout, driver.Graph()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
	driver.Run()
	if err := sched.WriteSchedule(os.Stdout, driver.Graph(), driver.Schedule()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
	fmt.Println()
}
