// Package insts defines the instruction set understood by the scheduler and
// the parser that turns assembly text into structured instructions.
package insts

import "fmt"

// Opcode identifies the operation an instruction performs.
type Opcode int

const (
	OpADD Opcode = iota
	OpMUL
	OpFADD
	OpFMUL
	OpLW
	OpSW
)

var opcodeNames = map[Opcode]string{
	OpADD:  "add",
	OpMUL:  "mul",
	OpFADD: "fadd",
	OpFMUL: "fmul",
	OpLW:   "lw",
	OpSW:   "sw",
}

var opcodeByName = map[string]Opcode{
	"add":  OpADD,
	"mul":  OpMUL,
	"fadd": OpFADD,
	"fmul": OpFMUL,
	"lw":   OpLW,
	"sw":   OpSW,
}

func (o Opcode) String() string {
	name, ok := opcodeNames[o]
	if !ok {
		return fmt.Sprintf("Opcode(%d)", int(o))
	}
	return name
}

// OpcodeByName resolves a mnemonic to its Opcode.
func OpcodeByName(name string) (Opcode, bool) {
	op, ok := opcodeByName[name]
	return op, ok
}

// An Instruction is one parsed line of the input program. Dst holds the
// registers the instruction writes, Src the registers it reads. A store
// writes no register, so its Dst is empty.
type Instruction struct {
	// ID is the 1-based position of the instruction in the program.
	ID int

	// Raw is the original text of the line, used for reporting.
	Raw string

	Op  Opcode
	Dst []string
	Src []string
}

func (i Instruction) String() string {
	return fmt.Sprintf("%d: %s", i.ID, i.Raw)
}
