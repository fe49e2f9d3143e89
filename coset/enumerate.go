package coset

import (
	"fmt"

	"github.com/katalvlaran/fpgroup/freegroup"
)

// enumerator encapsulates the mutable state of one enumeration run.
type enumerator struct {
	opts   Options
	cols   int
	rels   [][]int // relators as column sequences, empty words dropped
	table  [][]int // table[c][col], undefined = -1; rows of dead cosets are stale
	parent []int   // union-find parent; parent[c] == c iff c is live
	live   int
	queue  []int // cosets merged away, pending row transfer
	stats  Stats
}

// Enumerate runs Todd–Coxeter coset enumeration of the trivial subgroup in
// ⟨alpha | relators⟩ and returns the compacted, verified coset table.
// Returns ErrNilAlphabet, ErrOptionViolation, *TooManyCosetsError,
// ErrBudgetExceeded, ctx.Err(), or *IncompleteTableError.
func Enumerate(alpha *freegroup.Alphabet, relators []freegroup.Word, opts ...Option) (*Table, error) {
	if alpha == nil {
		return nil, ErrNilAlphabet
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rels := make([]freegroup.Word, len(relators))
	e := &enumerator{opts: o, cols: alpha.Columns()}
	for i, r := range relators {
		rels[i] = freegroup.Reduce(r)
		if len(rels[i]) > 0 {
			e.rels = append(e.rels, rels[i].Columns())
		}
	}
	e.newCoset() // coset 0
	e.stats.MaxLive = 1

	if err := e.run(); err != nil {
		return nil, err
	}

	t := e.compact(alpha, rels)
	if err := t.Complete(); err != nil {
		return nil, err
	}
	if err := t.Closed(); err != nil {
		return nil, err
	}

	return t, nil
}

// run processes live cosets in index order until none remain (HLT).
func (e *enumerator) run() error {
	for a := 0; a < len(e.table); a++ {
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}

		for _, r := range e.rels {
			if !e.isLive(a) {
				break
			}
			if err := e.scanAndFill(a, r); err != nil {
				return err
			}
		}
		// close the row: trivial subgroup, so every remaining gap is a definition
		for col := 0; col < e.cols && e.isLive(a); col++ {
			if e.table[a][col] == undefined {
				if err := e.define(a, col); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// scanAndFill traces r from coset a in both directions, filling the gap by
// definitions until the scan completes, deduces, or finds a coincidence.
func (e *enumerator) scanAndFill(a int, r []int) error {
	f, b := a, a
	i, j := 0, len(r)-1
	for {
		// forward from f
		for i <= j && e.table[f][r[i]] != undefined {
			f = e.table[f][r[i]]
			i++
		}
		if i > j {
			if f != b {
				e.coincidence(f, b)
			}
			return nil
		}
		// backward from b
		for j >= i && e.table[b][freegroup.InverseColumn(r[j])] != undefined {
			b = e.table[b][freegroup.InverseColumn(r[j])]
			j--
		}
		if j < i {
			e.coincidence(f, b)
			return nil
		}
		if i == j {
			// deduction: f·r[i] = b
			e.table[f][r[i]] = b
			e.table[b][freegroup.InverseColumn(r[i])] = f
			e.stats.Deductions++
			return nil
		}
		if err := e.define(f, r[i]); err != nil {
			return err
		}
	}
}

// define allocates a new coset as c·col and checks the safety valves.
func (e *enumerator) define(c, col int) error {
	if e.opts.MaxDefinitions > 0 && e.stats.Defined >= e.opts.MaxDefinitions {
		return fmt.Errorf("%w: %d definitions", ErrBudgetExceeded, e.stats.Defined)
	}
	d := e.newCoset()
	e.table[c][col] = d
	e.table[d][freegroup.InverseColumn(col)] = c
	e.stats.Defined++
	if e.live > e.stats.MaxLive {
		e.stats.MaxLive = e.live
	}
	e.opts.OnDefine(c, col, d)

	if e.live > e.opts.MaxCosets {
		return &TooManyCosetsError{Limit: e.opts.MaxCosets, Live: e.live}
	}
	if e.stats.Defined%ctxCheckEvery == 0 {
		if err := e.opts.Ctx.Err(); err != nil {
			return err
		}
	}

	return nil
}

// newCoset appends an empty live row and returns its index.
func (e *enumerator) newCoset() int {
	row := make([]int, e.cols)
	for i := range row {
		row[i] = undefined
	}
	n := len(e.table)
	e.table = append(e.table, row)
	e.parent = append(e.parent, n)
	e.live++

	return n
}

func (e *enumerator) isLive(c int) bool { return e.parent[c] == c }

// rep returns the live representative of c, compressing the path to it.
func (e *enumerator) rep(c int) int {
	root := c
	for e.parent[root] != root {
		root = e.parent[root]
	}
	for e.parent[c] != root {
		next := e.parent[c]
		e.parent[c] = root
		c = next
	}

	return root
}

// merge identifies the classes of k and l, keeping the smaller representative.
func (e *enumerator) merge(k, l int) {
	phi, psi := e.rep(k), e.rep(l)
	if phi == psi {
		return
	}
	keep, drop := min(phi, psi), max(phi, psi)
	e.parent[drop] = keep
	e.queue = append(e.queue, drop)
	e.live--
	e.stats.Coincidences++
	e.opts.OnCoincidence(keep, drop)
}

// coincidence processes the identification of a and b, and every merge it
// forces, to a fixed point.
func (e *enumerator) coincidence(a, b int) {
	e.queue = e.queue[:0]
	e.merge(a, b)
	for q := 0; q < len(e.queue); q++ {
		g := e.queue[q]
		for col := 0; col < e.cols; col++ {
			d := e.table[g][col]
			if d == undefined {
				continue
			}
			inv := freegroup.InverseColumn(col)
			// drop the back pointer into the dead coset before re-homing the edge
			e.table[d][inv] = undefined
			mu, nu := e.rep(g), e.rep(d)
			switch {
			case e.table[mu][col] != undefined:
				e.merge(nu, e.table[mu][col])
			case e.table[nu][inv] != undefined:
				e.merge(mu, e.table[nu][inv])
			default:
				e.table[mu][col] = nu
				e.table[nu][inv] = mu
			}
		}
	}
}

// compact renumbers live cosets 0..n-1 in index order and resolves every
// entry to its live representative.
func (e *enumerator) compact(alpha *freegroup.Alphabet, rels []freegroup.Word) *Table {
	index := make([]int, len(e.table))
	n := 0
	for c := range e.table {
		index[c] = undefined
		if e.isLive(c) {
			index[c] = n
			n++
		}
	}
	rows := make([][]int, 0, n)
	for c, row := range e.table {
		if !e.isLive(c) {
			continue
		}
		out := make([]int, e.cols)
		for col, d := range row {
			out[col] = undefined
			if d != undefined {
				out[col] = index[e.rep(d)]
			}
		}
		rows = append(rows, out)
	}

	return &Table{Alphabet: alpha, Relators: rels, Rows: rows, Stats: e.stats}
}
