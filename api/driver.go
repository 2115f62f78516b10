// Package api defines the driver API for the list scheduler.
package api

import (
	"github.com/sarchlab/lisched/insts"
	"github.com/sarchlab/lisched/sched"
)

// Driver provides the interface to schedule one program.
type Driver interface {
	// MapProgram loads the instruction sequence to schedule. The
	// dependency graph and priorities are computed here.
	MapProgram(program []insts.Instruction)

	// Run simulates the machine until every instruction has been
	// dispatched.
	Run()

	// Priorities returns the assigned priorities in program order.
	Priorities() []int

	// Schedule returns the dispatch timeline grouped by start cycle.
	Schedule() []sched.TimeSlot

	// Graph exposes the annotated dependency graph.
	Graph() *sched.Graph
}

type driverImpl struct {
	scheduler *sched.Scheduler
}

func (d *driverImpl) MapProgram(program []insts.Instruction) {
	d.scheduler.MapProgram(program)
}

// Run kicks the scheduler and drives the engine to completion.
func (d *driverImpl) Run() {
	d.scheduler.TickNow()
	d.scheduler.Engine.Run()
}

func (d *driverImpl) Priorities() []int {
	return d.scheduler.Priorities()
}

func (d *driverImpl) Schedule() []sched.TimeSlot {
	return d.scheduler.Timeline()
}

func (d *driverImpl) Graph() *sched.Graph {
	return d.scheduler.Graph()
}
