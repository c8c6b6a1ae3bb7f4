package memory

import (
	"fmt"

	"ledger/internal/core"
)

// Table holds the session's expenses in insertion order.
// Positions are 1-based and always contiguous.
type Table struct {
	items []core.Expense
}

func New() *Table {
	return &Table{}
}

// Append stores the expense at the end and returns its position.
func (t *Table) Append(e core.Expense) int {
	t.items = append(t.items, e)
	return len(t.items)
}

// AppendAll stores the expenses at the end, keeping their order.
func (t *Table) AppendAll(es []core.Expense) {
	t.items = append(t.items, es...)
}

// Contains reports whether an expense equal in all four fields is stored.
func (t *Table) Contains(e core.Expense) bool {
	for _, it := range t.items {
		if it.Equal(e) {
			return true
		}
	}
	return false
}

// RemoveAt deletes the expense at a 1-based position and returns it.
// Later expenses move down by one.
func (t *Table) RemoveAt(pos int) (core.Expense, error) {
	if pos < 1 || pos > len(t.items) {
		return core.Expense{}, fmt.Errorf("position %d out of range [1, %d]", pos, len(t.items))
	}
	removed := t.items[pos-1]
	t.items = append(t.items[:pos-1], t.items[pos:]...)
	return removed, nil
}

// All returns a copy of the stored expenses.
func (t *Table) All() []core.Expense {
	return append([]core.Expense(nil), t.items...)
}

func (t *Table) Len() int {
	return len(t.items)
}
