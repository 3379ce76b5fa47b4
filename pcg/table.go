package pcg

import "errors"

// ErrFull is returned by Insert once the table holds MaxPatterns entries.
var ErrFull = errors.New("pcg: pattern table is full")

// Table is an append-only, deduplicating pattern store. The position of a
// pattern within the table is its pattern index, the handle FRM entries use
// to reference graphics data.
type Table struct {
	patterns []Pattern
	index    map[Pattern]int
}

// NewTable returns an empty pattern table.
func NewTable() *Table {
	return &Table{
		index: make(map[Pattern]int),
	}
}

// Len returns the number of stored patterns.
func (t *Table) Len() int {
	return len(t.patterns)
}

// Find returns the index of a previously inserted pattern with identical
// contents. Only exact matches count; mirrored variants are distinct.
func (t *Table) Find(p Pattern) (int, bool) {
	i, ok := t.index[p]
	return i, ok
}

// Insert appends p and returns its index. The pattern is stored even if an
// identical one already exists; callers wanting deduplication use Find
// first.
func (t *Table) Insert(p Pattern) (int, error) {
	if len(t.patterns) >= MaxPatterns {
		return 0, ErrFull
	}
	i := len(t.patterns)
	t.patterns = append(t.patterns, p)
	if _, ok := t.index[p]; !ok {
		t.index[p] = i
	}
	return i, nil
}

// Bytes returns the table as a contiguous pattern stream in insertion
// order.
func (t *Table) Bytes() []byte {
	b := make([]byte, 0, len(t.patterns)*PatternBytes)
	for i := range t.patterns {
		b = append(b, t.patterns[i][:]...)
	}
	return b
}
