package sched

import "container/heap"

// readyQueue is a min-heap of ready nodes. Smaller priority wins. Equal
// priorities go to the node that entered the ready set in the later cycle;
// nodes entering in the same cycle keep program order. The tie break is
// stable across runs, so scheduling is deterministic.
type readyQueue []*Node

func (q readyQueue) Len() int { return len(q) }

func (q readyQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.readyCycle != b.readyCycle {
		return a.readyCycle > b.readyCycle
	}
	return a.Inst.ID < b.Inst.ID
}

func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x any) { *q = append(*q, x.(*Node)) }

func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return node
}

func (q *readyQueue) push(n *Node) { heap.Push(q, n) }

func (q *readyQueue) pop() *Node { return heap.Pop(q).(*Node) }
