package sched

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("opUnits", func() {
	It("should start empty", func() {
		u := newOpUnits(2, 1)

		Expect(u.IsFull()).To(BeFalse())
		Expect(u.nBusy).To(Equal(0))
	})

	It("should fill up slot by slot", func() {
		u := newOpUnits(2, 1)

		u.Allocate(0)
		Expect(u.IsFull()).To(BeFalse())

		u.Allocate(0)
		Expect(u.IsFull()).To(BeTrue())
	})

	It("should hand out distinct slots", func() {
		u := newOpUnits(3, 5)

		a := u.Allocate(0)
		b := u.Allocate(0)
		c := u.Allocate(1)

		Expect([]int{a, b, c}).To(ConsistOf(0, 1, 2))
	})

	It("should release slots whose occupant completed", func() {
		u := newOpUnits(1, 2)

		u.Allocate(0)
		u.Update(1)
		Expect(u.IsFull()).To(BeTrue())

		u.Update(2)
		Expect(u.IsFull()).To(BeFalse())
	})

	It("should reuse released slots", func() {
		u := newOpUnits(1, 2)

		u.Allocate(0)
		u.Update(2)
		slot := u.Allocate(2)

		Expect(slot).To(Equal(0))
		Expect(u.IsFull()).To(BeTrue())
	})

	It("should survive a stale probe hint", func() {
		u := newOpUnits(2, 4)

		a := u.Allocate(0)
		b := u.Allocate(0)
		Expect(a).ToNot(Equal(b))

		u.Update(4)
		c := u.Allocate(4)
		d := u.Allocate(5)
		Expect(c).ToNot(Equal(d))
	})

	It("should panic when allocating from a full pool", func() {
		u := newOpUnits(1, 1)
		u.Allocate(0)

		Expect(func() { u.Allocate(0) }).To(Panic())
	})

	It("should panic on a non-positive unit count", func() {
		Expect(func() { newOpUnits(0, 1) }).To(Panic())
	})
})
