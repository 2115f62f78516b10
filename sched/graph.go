// Package sched implements hazard-driven list scheduling: dependency graph
// construction, path-relaxation priorities, and a resource-constrained
// discrete-time dispatch loop driven by an Akita engine.
package sched

import (
	"slices"

	"github.com/sarchlab/lisched/insts"
)

// Status tracks an instruction through the scheduling state machine. The
// transitions are linear: waiting -> ready -> dispatched -> done.
type Status int

const (
	StatusWaiting Status = iota
	StatusReady
	StatusDispatched
	StatusDone
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "WAITING"
	case StatusReady:
		return "READY"
	case StatusDispatched:
		return "DISPATCHED"
	case StatusDone:
		return "DONE"
	}
	panic("invalid status")
}

// A Node is one instruction together with its scheduling state. Adjacency is
// stored as node indices into the owning graph rather than pointers.
type Node struct {
	Inst insts.Instruction

	// Deps lists the nodes this one must wait on. Dependents lists the
	// nodes waiting on this one. A pair connected by several hazards
	// appears once per hazard.
	Deps       []int
	Dependents []int

	// Priority is fixed once by AssignPriorities. Smaller wins.
	Priority int

	Status    Status
	StartTime int

	// readyCycle records when the node entered the ready set. Equal
	// priorities are broken in its favor when it is larger.
	readyCycle int
}

// Graph is the dependency graph over a program, indexed by node position
// (instruction ID minus one).
type Graph struct {
	Nodes []*Node
}

// BuildGraph runs hazard detection over all instruction pairs. For a pair
// (i, j) with j earlier in program order, an edge i -> j is added when i
// reads a register j writes (RAW), writes a register j writes (WAW), or
// writes a register j reads (WAR). Edges always point backward in program
// order, so the graph is acyclic by construction.
func BuildGraph(program []insts.Instruction) *Graph {
	g := &Graph{Nodes: make([]*Node, len(program))}
	for i, inst := range program {
		g.Nodes[i] = &Node{Inst: inst, StartTime: -1}
	}

	for i, node := range g.Nodes {
		for j := 0; j < i; j++ {
			prev := g.Nodes[j]

			for _, operand := range node.Inst.Src {
				if slices.Contains(prev.Inst.Dst, operand) {
					g.addEdge(i, j) // RAW
				}
			}
			for _, operand := range node.Inst.Dst {
				if slices.Contains(prev.Inst.Dst, operand) {
					g.addEdge(i, j) // WAW
				}
				if slices.Contains(prev.Inst.Src, operand) {
					g.addEdge(i, j) // WAR
				}
			}
		}
	}

	return g
}

// addEdge records that node i depends on the earlier node j.
func (g *Graph) addEdge(i, j int) {
	g.Nodes[i].Deps = append(g.Nodes[i].Deps, j)
	g.Nodes[j].Dependents = append(g.Nodes[j].Dependents, i)
}

// depsDone reports whether every dependee of the node has retired.
func (g *Graph) depsDone(n *Node) bool {
	for _, dep := range n.Deps {
		if g.Nodes[dep].Status != StatusDone {
			return false
		}
	}
	return true
}
