package sqldb

import "fmt"

// ArgBuffer collects positional statement arguments for drivers whose native
// API takes one flat argument slice per execution. Impls embed it to share
// the 1-based index bookkeeping and batch queueing.
type ArgBuffer struct {
	row     []any
	pending [][]any
}

// Set stores v at the 1-based index, growing the current row as needed.
func (b *ArgBuffer) Set(index int, v any) error {
	if index <= 0 {
		return fmt.Errorf("invalid parameter index: %d", index)
	}
	for len(b.row) < index {
		b.row = append(b.row, nil)
	}
	b.row[index-1] = v
	return nil
}

// Row returns the currently bound argument row.
func (b *ArgBuffer) Row() []any {
	return b.row
}

// Push copies the current row into the pending batch. The row itself stays
// bound, so callers overwriting every index per row need no reset.
func (b *ArgBuffer) Push() {
	row := make([]any, len(b.row))
	copy(row, b.row)
	b.pending = append(b.pending, row)
}

// Pending returns the queued rows.
func (b *ArgBuffer) Pending() [][]any {
	return b.pending
}

// Clear drops all queued rows but keeps the current row bindings.
func (b *ArgBuffer) Clear() {
	b.pending = b.pending[:0]
}
