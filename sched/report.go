package sched

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/lisched/latency"
)

// WritePriorities prints one line per instruction in program order:
//
//	<index>: <original text>: <priority>
func WritePriorities(w io.Writer, g *Graph) error {
	for _, node := range g.Nodes {
		_, err := fmt.Fprintf(w, "%s: %d\n", node.Inst.String(), node.Priority)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSchedule prints the dispatch schedule: a "time: <t>" header per cycle
// that dispatched at least one instruction, followed by one indented line per
// instruction in dispatch order.
func WriteSchedule(w io.Writer, g *Graph, timeline []TimeSlot) error {
	for _, slot := range timeline {
		if _, err := fmt.Fprintf(w, "time: %d\n", slot.Time); err != nil {
			return err
		}
		for _, id := range slot.IDs {
			node := g.Nodes[id-1]
			if _, err := fmt.Fprintf(w, "\t%s\n", node.Inst.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderScheduleTable renders the schedule as a table with one row per
// dispatched instruction, for human inspection.
func RenderScheduleTable(g *Graph, tbl *latency.Table, timeline []TimeSlot) string {
	t := table.NewWriter()
	t.SetTitle("Schedule")
	t.AppendHeader(table.Row{"Cycle", "Inst", "Unit", "Priority", "Finish"})

	for _, slot := range timeline {
		for _, id := range slot.IDs {
			node := g.Nodes[id-1]
			t.AppendRow(table.Row{
				slot.Time,
				node.Inst.String(),
				latency.ClassOf(node.Inst.Op).String(),
				node.Priority,
				slot.Time + tbl.Cycles(node.Inst.Op),
			})
		}
	}

	return t.Render()
}
