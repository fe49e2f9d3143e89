package group

import (
	"github.com/katalvlaran/fpgroup/coset"
	"github.com/katalvlaran/fpgroup/freegroup"
)

// Extract converts a complete coset table into a Group.
//
// Canonical words come from a breadth-first walk of the table from coset 0
// with columns taken in letter order, which reaches every coset first along
// its shortlex-least word. The walk records, for every element, the element
// one letter shorter and that final letter; words, products and inverses are
// all read off that tree, so the Group holds O(order·letters) state and
// never a dense order² table.
//
// Returns ErrNilTable or *coset.IncompleteTableError.
func Extract(t *coset.Table) (*Group, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if t.Alphabet == nil {
		return nil, &coset.IncompleteTableError{Coset: 0, Column: -1, Reason: "table carries no alphabet"}
	}
	if err := t.Complete(); err != nil {
		return nil, err
	}
	n := t.Len()
	cols := len(t.Rows[0])

	elemOf := make([]int, n) // coset -> element
	for i := range elemOf {
		elemOf[i] = -1
	}
	cosetOf := make([]int, 0, n) // element -> coset
	parent := make([]int, 0, n)  // element -> element one letter shorter
	lastCol := make([]int, 0, n) // element -> column of its final letter

	elemOf[0] = 0
	cosetOf = append(cosetOf, 0)
	parent = append(parent, -1)
	lastCol = append(lastCol, -1)

	for q := 0; q < len(cosetOf); q++ {
		c := cosetOf[q]
		for col := 0; col < cols; col++ {
			d := t.Rows[c][col]
			if elemOf[d] != -1 {
				continue
			}
			elemOf[d] = len(cosetOf)
			cosetOf = append(cosetOf, d)
			parent = append(parent, q)
			lastCol = append(lastCol, col)
		}
	}
	if len(cosetOf) != n {
		for c, e := range elemOf {
			if e == -1 {
				return nil, &coset.IncompleteTableError{Coset: c, Column: -1, Reason: "unreachable from the identity coset"}
			}
		}
	}

	// act is the coset table relabelled by element index.
	act := make([][]int, n)
	for e, c := range cosetOf {
		row := make([]int, cols)
		for col, d := range t.Rows[c] {
			row[col] = elemOf[d]
		}
		act[e] = row
	}

	g := &Group{
		alphabet: t.Alphabet,
		elements: make([]string, n),
		index:    make(map[string]int, n),
		act:      act,
		parent:   parent,
		lastCol:  lastCol,
		stats:    t.Stats,
	}
	var w freegroup.Word
	for i := range g.elements {
		w = g.appendWord(w[:0], i)
		g.elements[i] = t.Alphabet.Format(w)
		g.index[g.elements[i]] = i
	}

	return g, nil
}
