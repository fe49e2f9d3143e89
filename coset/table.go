package coset

import (
	"fmt"

	"github.com/katalvlaran/fpgroup/freegroup"
)

// Table is a coset table of the trivial subgroup.
//
// Rows[c][col] is the coset reached from coset c by the letter whose column
// is col (freegroup.Letter.Column); -1 marks an undefined entry. Coset 0 is
// the identity coset. Tables returned by Enumerate have no undefined entries.
type Table struct {
	Alphabet *freegroup.Alphabet
	Relators []freegroup.Word
	Rows     [][]int
	Stats    Stats
}

// Len returns the number of cosets, which for a complete table is the group order.
func (t *Table) Len() int { return len(t.Rows) }

// Act returns c·l, reporting false if the entry is undefined or out of range.
func (t *Table) Act(c int, l freegroup.Letter) (int, bool) {
	if c < 0 || c >= len(t.Rows) {
		return 0, false
	}
	row := t.Rows[c]
	col := l.Column()
	if col < 0 || col >= len(row) {
		return 0, false
	}
	d := row[col]
	if d < 0 || d >= len(t.Rows) {
		return 0, false
	}

	return d, true
}

// Trace follows w letter by letter from coset c.
// Returns *IncompleteTableError at the first undefined step.
func (t *Table) Trace(c int, w freegroup.Word) (int, error) {
	for _, l := range w {
		d, ok := t.Act(c, l)
		if !ok {
			return 0, &IncompleteTableError{Coset: c, Column: l.Column(), Reason: "undefined transition"}
		}
		c = d
	}

	return c, nil
}

// Complete verifies that every entry is defined, in range, and that each
// column acts as a permutation inverse to its partner column.
func (t *Table) Complete() error {
	if len(t.Rows) == 0 {
		return &IncompleteTableError{Coset: 0, Column: -1, Reason: "table has no identity coset"}
	}
	cols := 0
	if t.Alphabet != nil {
		cols = t.Alphabet.Columns()
	} else {
		cols = len(t.Rows[0])
	}
	for c, row := range t.Rows {
		if len(row) != cols {
			return &IncompleteTableError{Coset: c, Column: -1,
				Reason: fmt.Sprintf("row has %d columns, want %d", len(row), cols)}
		}
	}
	for c, row := range t.Rows {
		for col, d := range row {
			if d == undefined {
				return &IncompleteTableError{Coset: c, Column: col, Reason: "undefined transition"}
			}
			if d < 0 || d >= len(t.Rows) {
				return &IncompleteTableError{Coset: c, Column: col, Reason: fmt.Sprintf("target %d out of range", d)}
			}
			if back := t.Rows[d][freegroup.InverseColumn(col)]; back != c {
				return &IncompleteTableError{Coset: c, Column: col,
					Reason: fmt.Sprintf("inverse entry of coset %d points to %d", d, back)}
			}
		}
	}

	return nil
}

// Closed verifies that every relator traced from every coset returns to it.
// Call Complete first; undefined entries surface as *IncompleteTableError.
func (t *Table) Closed() error {
	for c := range t.Rows {
		for i, r := range t.Relators {
			end, err := t.Trace(c, r)
			if err != nil {
				return err
			}
			if end != c {
				return &IncompleteTableError{Coset: c, Column: -1,
					Reason: fmt.Sprintf("relator %d ends at coset %d", i, end)}
			}
		}
	}

	return nil
}
