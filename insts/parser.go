package insts

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads one instruction per line from r. Blank lines and lines starting
// with "#" or "//" are skipped. Parsing stops at the first malformed line,
// identified by its line number in the returned error.
func Parse(r io.Reader) ([]Instruction, error) {
	var program []Instruction

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := strings.TrimRight(scanner.Text(), " \t\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" ||
			strings.HasPrefix(trimmed, "#") ||
			strings.HasPrefix(trimmed, "//") {
			continue
		}

		inst, err := parseLine(trimmed)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		inst.ID = len(program) + 1
		inst.Raw = line
		program = append(program, inst)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return program, nil
}

// ParseFile loads a program from the file at path.
func ParseFile(path string) ([]Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	program, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return program, nil
}

func parseLine(line string) (Instruction, error) {
	tokens := strings.Fields(line)

	op, ok := OpcodeByName(tokens[0])
	if !ok {
		return Instruction{}, fmt.Errorf("unknown opcode %q", tokens[0])
	}

	if len(tokens) != 4 {
		return Instruction{},
			fmt.Errorf("%s expects 3 operands, got %d", op, len(tokens)-1)
	}

	switch op {
	case OpADD, OpMUL, OpFADD, OpFMUL:
		return Instruction{
			Op:  op,
			Dst: []string{tokens[1]},
			Src: []string{tokens[2], tokens[3]},
		}, nil
	case OpLW:
		if err := checkImmediate(tokens[3]); err != nil {
			return Instruction{}, err
		}
		return Instruction{
			Op:  op,
			Dst: []string{tokens[1]},
			Src: []string{tokens[2]},
		}, nil
	case OpSW:
		// A store reads both the value being stored and the base register.
		// It writes nothing.
		if err := checkImmediate(tokens[3]); err != nil {
			return Instruction{}, err
		}
		return Instruction{
			Op:  op,
			Src: []string{tokens[1], tokens[2]},
		}, nil
	}

	panic("unreachable")
}

func checkImmediate(token string) error {
	if _, err := strconv.Atoi(token); err != nil {
		return fmt.Errorf("invalid immediate %q", token)
	}
	return nil
}
