package group

import (
	"fmt"

	"github.com/katalvlaran/fpgroup/coset"
	"github.com/katalvlaran/fpgroup/freegroup"
)

// Pair keys the multiplication table: Left·Right.
type Pair struct {
	Left  string
	Right string
}

// Group is a finite group given by its canonical elements and the right
// action of the generators on them. It is immutable and safe for concurrent
// reads.
type Group struct {
	alphabet *freegroup.Alphabet
	elements []string
	index    map[string]int
	act      [][]int // act[i][col] = element i times the letter of col
	parent   []int   // element one letter shorter, -1 for the identity
	lastCol  []int   // column of the final letter of each canonical word
	stats    coset.Stats
}

// Order returns the number of elements.
func (g *Group) Order() int { return len(g.elements) }

// Identity returns the name of the identity element, "e".
func (g *Group) Identity() string { return g.elements[0] }

// Elements returns the canonical element names in shortlex order.
func (g *Group) Elements() []string {
	out := make([]string, len(g.elements))
	copy(out, g.elements)

	return out
}

// Element returns the name of element i.
func (g *Group) Element(i int) string { return g.elements[i] }

// Word returns the canonical word of element i.
func (g *Group) Word(i int) freegroup.Word { return g.appendWord(freegroup.Word{}, i) }

// appendWord appends the canonical word of element i to dst.
func (g *Group) appendWord(dst freegroup.Word, i int) freegroup.Word {
	start := len(dst)
	for e := i; e != 0; e = g.parent[e] {
		dst = append(dst, freegroup.LetterOf(g.lastCol[e]))
	}
	tail := dst[start:]
	for l, r := 0, len(tail)-1; l < r; l, r = l+1, r-1 {
		tail[l], tail[r] = tail[r], tail[l]
	}

	return dst
}

// Index returns the position of the named element.
func (g *Group) Index(name string) (int, bool) {
	i, ok := g.index[name]

	return i, ok
}

// Alphabet returns the generator alphabet the words are written in.
func (g *Group) Alphabet() *freegroup.Alphabet { return g.alphabet }

// Stats returns the statistics of the enumeration that produced g.
func (g *Group) Stats() coset.Stats { return g.stats }

// MulIndex returns the index of element i times element j, tracing j's
// canonical word from i.
func (g *Group) MulIndex(i, j int) int {
	var buf [32]int
	cols := buf[:0]
	for e := j; e != 0; e = g.parent[e] {
		cols = append(cols, g.lastCol[e])
	}
	for k := len(cols) - 1; k >= 0; k-- {
		i = g.act[i][cols[k]]
	}

	return i
}

// row fills dst with element i times every element, in element order.
// Each entry extends the entry of the word one letter shorter.
func (g *Group) row(i int, dst []int) []int {
	dst = dst[:len(g.elements)]
	dst[0] = i
	for j := 1; j < len(dst); j++ {
		dst[j] = g.act[dst[g.parent[j]]][g.lastCol[j]]
	}

	return dst
}

// Multiply returns x·y by name.
func (g *Group) Multiply(x, y string) (string, error) {
	i, err := g.lookup(x)
	if err != nil {
		return "", err
	}
	j, err := g.lookup(y)
	if err != nil {
		return "", err
	}

	return g.elements[g.MulIndex(i, j)], nil
}

// Table returns the full multiplication table keyed by (x, y).
func (g *Group) Table() map[Pair]string {
	n := len(g.elements)
	out := make(map[Pair]string, n*n)
	buf := make([]int, n)
	for i, x := range g.elements {
		for j, k := range g.row(i, buf) {
			out[Pair{Left: x, Right: g.elements[j]}] = g.elements[k]
		}
	}

	return out
}

// Cayley returns the multiplication table as nested maps, table[x][y] = x·y.
func (g *Group) Cayley() map[string]map[string]string {
	n := len(g.elements)
	out := make(map[string]map[string]string, n)
	buf := make([]int, n)
	for i, x := range g.elements {
		row := make(map[string]string, n)
		for j, k := range g.row(i, buf) {
			row[g.elements[j]] = g.elements[k]
		}
		out[x] = row
	}

	return out
}

// Rows returns the multiplication table as a square grid of names in
// element order.
func (g *Group) Rows() [][]string {
	n := len(g.elements)
	out := make([][]string, n)
	buf := make([]int, n)
	for i := range g.elements {
		row := make([]string, n)
		for j, k := range g.row(i, buf) {
			row[j] = g.elements[k]
		}
		out[i] = row
	}

	return out
}

// InverseIndex returns the index of the inverse of element i. The inverse
// of l1…lk is lk⁻¹…l1⁻¹, which is the parent chain read from i upwards.
func (g *Group) InverseIndex(i int) int {
	c := 0
	for e := i; e != 0; e = g.parent[e] {
		c = g.act[c][freegroup.InverseColumn(g.lastCol[e])]
	}

	return c
}

// Inverse returns the inverse of x by name.
func (g *Group) Inverse(x string) (string, error) {
	i, err := g.lookup(x)
	if err != nil {
		return "", err
	}

	return g.elements[g.InverseIndex(i)], nil
}

// OrderIndex returns the order of element i: the least k > 0 with x^k = e.
func (g *Group) OrderIndex(i int) int {
	return g.orderIndex(i, make([]int, len(g.elements)))
}

func (g *Group) orderIndex(i int, buf []int) int {
	row := g.row(i, buf)
	k, p := 1, i
	for p != 0 {
		p = row[p]
		k++
	}

	return k
}

// ElementOrder returns the order of x by name.
func (g *Group) ElementOrder(x string) (int, error) {
	i, err := g.lookup(x)
	if err != nil {
		return 0, err
	}

	return g.OrderIndex(i), nil
}

// IsAbelian reports whether every pair of generators commutes, which is
// equivalent to the whole group being abelian.
func (g *Group) IsAbelian() bool {
	cols := g.alphabet.Columns()
	for a := 0; a < cols; a += 2 {
		for b := a + 2; b < cols; b += 2 {
			if g.act[g.act[0][a]][b] != g.act[g.act[0][b]][a] {
				return false
			}
		}
	}

	return true
}

func (g *Group) lookup(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownElement, name)
	}

	return i, nil
}

// Summary is a serialisable view of a group.
type Summary struct {
	Order         int                          `json:"order" yaml:"order" msgpack:"order"`
	Generators    []string                     `json:"generators" yaml:"generators" msgpack:"generators"`
	Elements      []string                     `json:"elements" yaml:"elements" msgpack:"elements"`
	Table         map[string]map[string]string `json:"table,omitempty" yaml:"table,omitempty" msgpack:"table,omitempty"`
	TableOmitted  bool                         `json:"table_omitted,omitempty" yaml:"table_omitted,omitempty" msgpack:"table_omitted,omitempty"`
	Inverses      map[string]string            `json:"inverses" yaml:"inverses" msgpack:"inverses"`
	ElementOrders map[string]int               `json:"element_orders" yaml:"element_orders" msgpack:"element_orders"`
	Abelian       bool                         `json:"abelian" yaml:"abelian" msgpack:"abelian"`
	Stats         coset.Stats                  `json:"stats" yaml:"stats" msgpack:"stats"`
}

// Summary collects elements, table, inverses and element orders.
func (g *Group) Summary() Summary {
	s := g.Brief()
	s.Table = g.Cayley()
	s.TableOmitted = false

	return s
}

// Brief is Summary without the multiplication table: memory stays linear in
// the order, so it is the view to use for large groups.
func (g *Group) Brief() Summary {
	n := g.Order()
	s := Summary{
		Order:         n,
		Generators:    g.alphabet.Names(),
		Elements:      g.Elements(),
		TableOmitted:  true,
		Inverses:      make(map[string]string, n),
		ElementOrders: make(map[string]int, n),
		Abelian:       g.IsAbelian(),
		Stats:         g.stats,
	}
	buf := make([]int, n)
	for i, x := range g.elements {
		s.Inverses[x] = g.elements[g.InverseIndex(i)]
		s.ElementOrders[x] = g.orderIndex(i, buf)
	}

	return s
}
