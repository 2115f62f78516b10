package sched

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/lisched/insts"
	"github.com/sarchlab/lisched/latency"
)

// A TimeSlot records the instructions dispatched in one cycle, in dispatch
// order.
type TimeSlot struct {
	Time int
	IDs  []int
}

// Scheduler is the dispatch engine. It runs as a ticking component; every
// engine tick advances the simulated machine by one cycle.
type Scheduler struct {
	*sim.TickingComponent

	table    *latency.Table
	strategy Strategy

	pools map[latency.Class]*opUnits

	graph      *Graph
	waitList   []int
	ready      readyQueue
	dispatched []int

	cycle    int
	timeline []TimeSlot
}

// SchedulerBuilder can build schedulers.
type SchedulerBuilder struct {
	engine   sim.Engine
	freq     sim.Freq
	table    *latency.Table
	strategy Strategy
}

// WithEngine sets the engine that drives the simulation.
func (b SchedulerBuilder) WithEngine(engine sim.Engine) SchedulerBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the tick frequency.
func (b SchedulerBuilder) WithFreq(freq sim.Freq) SchedulerBuilder {
	b.freq = freq
	return b
}

// WithTable sets the timing model.
func (b SchedulerBuilder) WithTable(table *latency.Table) SchedulerBuilder {
	b.table = table
	return b
}

// WithStrategy sets the priority strategy.
func (b SchedulerBuilder) WithStrategy(strategy Strategy) SchedulerBuilder {
	b.strategy = strategy
	return b
}

// Build creates a scheduler.
func (b SchedulerBuilder) Build(name string) *Scheduler {
	s := &Scheduler{
		table:    b.table,
		strategy: b.strategy,
		pools:    make(map[latency.Class]*opUnits),
	}
	if s.table == nil {
		s.table = latency.NewTable()
	}

	for _, class := range latency.Classes {
		s.pools[class] = newOpUnits(
			s.table.UnitsForClass(class), s.table.CyclesForClass(class))
	}

	s.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, s)

	return s
}

// MapProgram loads the program, builds its dependency graph, and assigns
// priorities. It must be called once before the engine runs.
func (s *Scheduler) MapProgram(program []insts.Instruction) {
	s.graph = BuildGraph(program)
	AssignPriorities(s.graph, s.table, s.strategy)

	s.waitList = make([]int, len(program))
	for i := range s.graph.Nodes {
		s.waitList[i] = i
	}
	s.ready = nil
	s.dispatched = nil
	s.cycle = 0
	s.timeline = nil
}

// Graph exposes the annotated dependency graph.
func (s *Scheduler) Graph() *Graph {
	return s.graph
}

// Timeline returns the dispatch schedule grouped by start cycle.
func (s *Scheduler) Timeline() []TimeSlot {
	return s.timeline
}

// Priorities returns the assigned priorities in program order.
func (s *Scheduler) Priorities() []int {
	priorities := make([]int, len(s.graph.Nodes))
	for i, node := range s.graph.Nodes {
		priorities[i] = node.Priority
	}
	return priorities
}

// Tick advances the machine by one cycle: retire finished instructions, move
// newly unblocked instructions into the ready set, then dispatch in priority
// order until slots run out. The component stops ticking once every
// instruction has been dispatched.
func (s *Scheduler) Tick() (madeProgress bool) {
	if len(s.waitList) == 0 && s.ready.Len() == 0 {
		return false
	}

	t := s.cycle
	s.retire(t)
	s.refreshReadySet(t)
	s.dispatch(t)
	s.cycle++

	return true
}

// retire flips instructions whose latency has elapsed to done and frees
// their slots.
func (s *Scheduler) retire(t int) {
	for _, i := range s.dispatched {
		node := s.graph.Nodes[i]
		if node.Status == StatusDispatched &&
			node.StartTime+s.table.Cycles(node.Inst.Op) == t {
			node.Status = StatusDone
			Trace("Retire", "Cycle", t, "Inst", node.Inst.String())
		}
	}

	for _, pool := range s.pools {
		pool.Update(t)
	}
}

// refreshReadySet scans the wait list in program order and moves every
// instruction whose dependees are all done into the ready set.
func (s *Scheduler) refreshReadySet(t int) {
	remaining := s.waitList[:0]
	for _, i := range s.waitList {
		node := s.graph.Nodes[i]
		if s.graph.depsDone(node) {
			node.Status = StatusReady
			node.readyCycle = t
			s.ready.push(node)
			Trace("Ready", "Cycle", t, "Inst", node.Inst.String())
		} else {
			remaining = append(remaining, i)
		}
	}
	s.waitList = remaining
}

// dispatch pops ready instructions in priority order and starts each one
// whose unit pool has a free slot. Instructions that find their pool full
// stay ready and compete again next cycle, not later in the same cycle.
func (s *Scheduler) dispatch(t int) {
	var blocked []*Node
	var slot TimeSlot

	for s.ready.Len() > 0 {
		node := s.ready.pop()

		pool := s.pools[latency.ClassOf(node.Inst.Op)]
		if pool.IsFull() {
			blocked = append(blocked, node)
			continue
		}

		if !s.graph.depsDone(node) {
			panic(fmt.Sprintf(
				"dispatching %q with unfinished dependees", node.Inst.Raw))
		}

		node.Status = StatusDispatched
		node.StartTime = t
		pool.Allocate(t)
		s.dispatched = append(s.dispatched, node.Inst.ID-1)
		slot.IDs = append(slot.IDs, node.Inst.ID)
		Trace("Dispatch",
			"Cycle", t,
			"Inst", node.Inst.String(),
			"Priority", node.Priority,
			"Unit", latency.ClassOf(node.Inst.Op).String(),
		)
	}

	for _, node := range blocked {
		s.ready.push(node)
	}

	if len(slot.IDs) > 0 {
		slot.Time = t
		s.timeline = append(s.timeline, slot)
	}
}
