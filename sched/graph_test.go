package sched

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lisched/insts"
)

func mustParse(src string) []insts.Instruction {
	program, err := insts.Parse(strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	return program
}

var _ = Describe("Status", func() {
	It("should name every scheduling state", func() {
		Expect([]string{
			StatusWaiting.String(),
			StatusReady.String(),
			StatusDispatched.String(),
			StatusDone.String(),
		}).To(Equal([]string{"WAITING", "READY", "DISPATCHED", "DONE"}))
	})

	It("should start every node waiting", func() {
		g := BuildGraph(mustParse("add a1 a2 a3"))
		Expect(g.Nodes[0].Status).To(Equal(StatusWaiting))
	})
})

var _ = Describe("BuildGraph", func() {
	It("should add a RAW edge", func() {
		g := BuildGraph(mustParse("lw a1 sp 0\nadd a2 a1 a1"))

		Expect(g.Nodes[1].Deps).To(ContainElement(0))
		Expect(g.Nodes[0].Dependents).To(ContainElement(1))
	})

	It("should add a WAW edge", func() {
		g := BuildGraph(mustParse("lw a1 sp 0\nlw a1 sp 4"))

		Expect(g.Nodes[1].Deps).To(Equal([]int{0}))
	})

	It("should add a WAR edge", func() {
		g := BuildGraph(mustParse("sw a1 sp 0\nlw a1 sp 4"))

		Expect(g.Nodes[1].Deps).To(Equal([]int{0}))
	})

	It("should not link instructions that only share reads", func() {
		g := BuildGraph(mustParse("sw a1 sp 0\nsw a1 sp 4"))

		Expect(g.Nodes[1].Deps).To(BeEmpty())
		Expect(g.Nodes[0].Dependents).To(BeEmpty())
	})

	It("should not link independent instructions", func() {
		g := BuildGraph(mustParse("add a1 a2 a3\nmul a4 a5 a6"))

		Expect(g.Nodes[0].Deps).To(BeEmpty())
		Expect(g.Nodes[1].Deps).To(BeEmpty())
	})

	It("should record one edge per hazard between the same pair", func() {
		// a2 = a1 op a1 then a1 = a1 op a2: RAW on a2, WAW-free,
		// WAR on a1 against the first read, RAW on a1.
		g := BuildGraph(mustParse("add a2 a1 a1\nadd a1 a1 a2"))

		Expect(len(g.Nodes[1].Deps)).To(BeNumerically(">", 1))
	})

	It("should only point edges backward in program order", func() {
		g := BuildGraph(mustParse(
			"lw a1 sp -4\nsw a1 sp -8\nlw a2 sp -12\nsw a2 a1 -16\n" +
				"fmul a1 a1 a2\nlw a4 sp -20\nsw a4 sp -24\nfadd a4 a1 a4"))

		for i, node := range g.Nodes {
			for _, dep := range node.Deps {
				Expect(dep).To(BeNumerically("<", i))
			}
			for _, next := range node.Dependents {
				Expect(next).To(BeNumerically(">", i))
			}
		}
	})

	It("should not make a store depend on an earlier read of the same register", func() {
		// The fadd reads a1, and so does the sw before it. Reads do not
		// conflict, so only the lw writers create edges.
		g := BuildGraph(mustParse(
			"lw a1 sp -32\nsw a1 sp -28\nfadd a3 a2 a1\nlw a1 sp -24"))

		Expect(g.Nodes[2].Deps).To(Equal([]int{0}))
		Expect(g.Nodes[1].Dependents).To(Equal([]int{3}))
	})
})
