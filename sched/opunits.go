package sched

import "fmt"

type unitSlot struct {
	start int
	busy  bool
}

// opUnits models one class of functional unit: a fixed number of
// interchangeable slots that each hold an instruction for a fixed number of
// cycles.
type opUnits struct {
	slots  []unitSlot
	cycles int
	nBusy  int

	// next is a best-effort hint for the slot to probe first on the next
	// allocation. Correctness relies only on the busy flags.
	next int
}

func newOpUnits(n, cycles int) *opUnits {
	if n <= 0 {
		panic(fmt.Sprintf("unit count must be positive, got %d", n))
	}
	return &opUnits{
		slots:  make([]unitSlot, n),
		cycles: cycles,
	}
}

// IsFull reports whether every slot is occupied.
func (u *opUnits) IsFull() bool {
	return u.nBusy == len(u.slots)
}

// Allocate marks a free slot busy from the given cycle and returns its index.
// The caller must check IsFull first.
func (u *opUnits) Allocate(t int) int {
	if u.IsFull() {
		panic("allocating from a full unit pool")
	}

	allocated := u.next
	if u.slots[allocated].busy {
		// The hint was stale. Fall back to a scan.
		allocated = u.scanFree(allocated)
	}
	u.slots[allocated] = unitSlot{start: t, busy: true}
	u.nBusy++

	if !u.IsFull() {
		u.next = u.scanFree(allocated)
	}

	return allocated
}

// scanFree finds the next free slot after from, wrapping around.
func (u *opUnits) scanFree(from int) int {
	n := len(u.slots)
	for i := 1; i <= n; i++ {
		probe := (from + i) % n
		if !u.slots[probe].busy {
			return probe
		}
	}
	panic("no free slot")
}

// Update releases every slot whose occupant completes at cycle t. It must run
// once per cycle before dispatch so freed capacity is usable in the same
// cycle.
func (u *opUnits) Update(t int) {
	for i := range u.slots {
		slot := &u.slots[i]
		if slot.busy && slot.start+u.cycles == t {
			slot.busy = false
			u.nBusy--
		}
	}
}
