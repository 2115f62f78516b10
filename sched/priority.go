package sched

import (
	"fmt"

	"github.com/sarchlab/lisched/latency"
)

// Strategy selects how instruction priorities are computed.
type Strategy int

const (
	// StrategyTime prioritizes by the longest latency-weighted path from
	// an instruction to the end of the program.
	StrategyTime Strategy = iota

	// StrategyResource prioritizes by the longest dependency chain behind
	// an instruction, counted in edges.
	StrategyResource
)

func (s Strategy) String() string {
	switch s {
	case StrategyTime:
		return "time"
	case StrategyResource:
		return "resource"
	}
	panic("invalid strategy")
}

// ParseStrategy resolves a strategy token from the command line.
func ParseStrategy(token string) (Strategy, error) {
	switch token {
	case "time":
		return StrategyTime, nil
	case "resource":
		return StrategyResource, nil
	}
	return 0, fmt.Errorf(
		"invalid priority strategy %q, must be \"time\" or \"resource\"", token)
}

// AssignPriorities computes one priority per node. Both strategies are
// Bellman-Ford style relaxations; the graph is a DAG, so the loop settles
// after at most len(nodes)-1 rounds.
func AssignPriorities(g *Graph, table *latency.Table, strategy Strategy) {
	switch strategy {
	case StrategyTime:
		findCriticalPath(g, table)
	case StrategyResource:
		countDependencyDepth(g)
	default:
		panic("invalid strategy")
	}
}

// findCriticalPath seeds every node with the negation of its own latency and
// relaxes along forward edges with the source's latency as edge weight. The
// result is the negated longest true-latency chain from the node to any
// terminal instruction, own latency included.
func findCriticalPath(g *Graph, table *latency.Table) {
	for _, node := range g.Nodes {
		node.Priority = -table.Cycles(node.Inst.Op)
	}

	for updated := true; updated; {
		updated = false
		for _, node := range g.Nodes {
			cycles := table.Cycles(node.Inst.Op)
			for _, next := range node.Dependents {
				if relaxed := g.Nodes[next].Priority - cycles; relaxed < node.Priority {
					node.Priority = relaxed
					updated = true
				}
			}
		}
	}
}

// countDependencyDepth seeds every node with zero and relaxes along backward
// edges with a constant weight of one hop. A root instruction keeps priority
// zero; every other node ends up with the negated length of its longest
// dependee chain.
func countDependencyDepth(g *Graph) {
	for _, node := range g.Nodes {
		node.Priority = 0
	}

	for updated := true; updated; {
		updated = false
		for _, node := range g.Nodes {
			for _, dep := range node.Deps {
				if relaxed := g.Nodes[dep].Priority - 1; relaxed < node.Priority {
					node.Priority = relaxed
					updated = true
				}
			}
		}
	}
}
