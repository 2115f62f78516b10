package api

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/lisched/latency"
	"github.com/sarchlab/lisched/sched"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine   sim.Engine
	freq     sim.Freq
	table    *latency.Table
	strategy sched.Strategy
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the driver.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithTable sets the timing model. The default machine model is used when
// unset.
func (b DriverBuilder) WithTable(table *latency.Table) DriverBuilder {
	b.table = table
	return b
}

// WithStrategy sets the priority strategy.
func (b DriverBuilder) WithStrategy(strategy sched.Strategy) DriverBuilder {
	b.strategy = strategy
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	d := &driverImpl{}

	d.scheduler = sched.SchedulerBuilder{}.
		WithEngine(b.engine).
		WithFreq(b.freq).
		WithTable(b.table).
		WithStrategy(b.strategy).
		Build(name + ".Scheduler")

	return d
}
