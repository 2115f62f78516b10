// Package latency provides the functional-unit classification and timing
// model used for both priority computation and execution simulation.
package latency

import "github.com/sarchlab/lisched/insts"

// Class identifies one kind of functional unit.
type Class int

const (
	ALU Class = iota
	FPU
	Memory
)

func (c Class) String() string {
	switch c {
	case ALU:
		return "ALU"
	case FPU:
		return "FPU"
	case Memory:
		return "Memory"
	}
	panic("invalid unit class")
}

// Classes lists all unit classes in a fixed order.
var Classes = []Class{ALU, FPU, Memory}

// ClassOf returns the functional unit class that executes the given opcode.
func ClassOf(op insts.Opcode) Class {
	switch op {
	case insts.OpADD, insts.OpMUL:
		return ALU
	case insts.OpFADD, insts.OpFMUL:
		return FPU
	case insts.OpLW, insts.OpSW:
		return Memory
	}
	panic("opcode has no unit class")
}

// TimingConfig holds the per-class execution latencies and unit counts.
type TimingConfig struct {
	ALUCycles    int
	FPUCycles    int
	MemoryCycles int

	ALUUnits    int
	FPUUnits    int
	MemoryUnits int
}

// DefaultTimingConfig returns the baseline machine model: two single-cycle
// ALUs, one five-cycle FPU, and one two-cycle memory port.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		ALUCycles:    1,
		FPUCycles:    5,
		MemoryCycles: 2,

		ALUUnits:    2,
		FPUUnits:    1,
		MemoryUnits: 1,
	}
}

// Table provides latency and unit-count lookups.
type Table struct {
	config *TimingConfig
}

// NewTable creates a table with the default timing values.
func NewTable() *Table {
	return &Table{config: DefaultTimingConfig()}
}

// NewTableWithConfig creates a table with a custom timing configuration.
func NewTableWithConfig(config *TimingConfig) *Table {
	return &Table{config: config}
}

// Cycles returns the execution latency in cycles for the given opcode.
func (t *Table) Cycles(op insts.Opcode) int {
	return t.CyclesForClass(ClassOf(op))
}

// CyclesForClass returns the execution latency of one unit class.
func (t *Table) CyclesForClass(c Class) int {
	switch c {
	case ALU:
		return t.config.ALUCycles
	case FPU:
		return t.config.FPUCycles
	case Memory:
		return t.config.MemoryCycles
	}
	panic("invalid unit class")
}

// UnitsForClass returns how many interchangeable units of one class exist.
func (t *Table) UnitsForClass(c Class) int {
	switch c {
	case ALU:
		return t.config.ALUUnits
	case FPU:
		return t.config.FPUUnits
	case Memory:
		return t.config.MemoryUnits
	}
	panic("invalid unit class")
}
