package group_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpgroup/coset"
	"github.com/katalvlaran/fpgroup/freegroup"
	"github.com/katalvlaran/fpgroup/group"
	"github.com/katalvlaran/fpgroup/relator"
)

// assertGroupAxioms checks totality, identity, inverses and associativity of g's table.
func assertGroupAxioms(t *testing.T, g *group.Group) {
	t.Helper()
	n := g.Order()
	elems := g.Elements()
	tbl := g.Table()
	require.Len(t, tbl, n*n, "table must be total")

	id := g.Identity()
	require.Equal(t, "e", id)
	require.Equal(t, "e", elems[0])

	for _, x := range elems {
		assert.Equal(t, x, tbl[group.Pair{Left: id, Right: x}], "e*%s", x)
		assert.Equal(t, x, tbl[group.Pair{Left: x, Right: id}], "%s*e", x)

		found := false
		for _, y := range elems {
			if tbl[group.Pair{Left: x, Right: y}] == id {
				found = true
				break
			}
		}
		assert.True(t, found, "%s has no inverse", x)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ij := g.MulIndex(i, j)
			for k := 0; k < n; k++ {
				if g.MulIndex(ij, k) != g.MulIndex(i, g.MulIndex(j, k)) {
					t.Fatalf("associativity fails for (%s, %s, %s)", elems[i], elems[j], elems[k])
				}
			}
		}
	}
}

func TestEnumerate_Cyclic3(t *testing.T) {
	g, err := group.Enumerate(context.Background(), []string{"a"}, []string{"a^3"})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, []string{"e", "a", "A"}, g.Elements())
	assertGroupAxioms(t, g)

	// isomorphic to Z/3: a ↦ 1, A ↦ 2
	val := map[string]int{"e": 0, "a": 1, "A": 2}
	for x, vx := range val {
		for y, vy := range val {
			xy, err := g.Multiply(x, y)
			require.NoError(t, err)
			assert.Equal(t, (vx+vy)%3, val[xy], "%s*%s", x, y)
		}
		n, err := g.ElementOrder(x)
		require.NoError(t, err)
		assert.Zero(t, 3%n, "element order divides 3")
	}
	assert.True(t, g.IsAbelian())
}

func TestEnumerate_KleinFour(t *testing.T) {
	g, err := group.Enumerate(context.Background(), []string{"a", "b"}, []string{"a^2", "b^2", "(a*b)^2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "a", "b", "a*b"}, g.Elements())
	assertGroupAxioms(t, g)

	for _, x := range g.Elements() {
		inv, err := g.Inverse(x)
		require.NoError(t, err)
		assert.Equal(t, x, inv, "%s is self-inverse", x)
		for _, y := range g.Elements() {
			xy, _ := g.Multiply(x, y)
			yx, _ := g.Multiply(y, x)
			assert.Equal(t, xy, yx)
		}
	}
	assert.True(t, g.IsAbelian())
}

func TestEnumerate_FreeGroupRejected(t *testing.T) {
	g, err := group.Enumerate(context.Background(), []string{"a"}, nil, coset.WithMaxCosets(200))
	assert.Nil(t, g)
	var tm *coset.TooManyCosetsError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, 200, tm.Limit)
}

func TestEnumerate_UndeclaredGenerator(t *testing.T) {
	_, err := group.Enumerate(context.Background(), []string{"a", "b"}, []string{"c^2"})
	require.ErrorIs(t, err, relator.ErrParse)
	var pe *relator.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "c^2", pe.Relator)
	assert.Contains(t, err.Error(), "c^2")
}

func TestEnumerate_InvalidGenerators(t *testing.T) {
	_, err := group.Enumerate(context.Background(), nil, []string{"a"})
	assert.ErrorIs(t, err, freegroup.ErrNoGenerators)

	_, err = group.Enumerate(context.Background(), []string{"a", "a"}, nil)
	assert.ErrorIs(t, err, freegroup.ErrDuplicateGenerator)
}

func TestEnumerate_Axioms(t *testing.T) {
	tests := []struct {
		name    string
		gens    []string
		rels    []string
		order   int
		abelian bool
	}{
		{"symmetric 3", []string{"a", "b"}, []string{"a^3", "b^2", "(a b)^2"}, 6, false},
		{"dihedral 8", []string{"r", "s"}, []string{"r^4", "s^2", "s r s = R"}, 8, false},
		{"quaternion", []string{"i", "j"}, []string{"i^4", "i^2 = j^2", "j i J = I"}, 8, false},
		{"alternating 4", []string{"a", "b"}, []string{"a^2", "b^3", "(a b)^3"}, 12, false},
		{"cyclic 2 x cyclic 4", []string{"x", "y"}, []string{"x^2", "y^4", "x y = y x"}, 8, true},
		{"trivial", []string{"a", "b"}, []string{"a b A = b^2", "b a B = a^2"}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := group.Enumerate(context.Background(), tt.gens, tt.rels)
			require.NoError(t, err)
			assert.Equal(t, tt.order, g.Order())
			assert.Equal(t, tt.abelian, g.IsAbelian())
			assertGroupAxioms(t, g)
		})
	}
}

func TestEnumerate_CanonicalWords(t *testing.T) {
	g, err := group.Enumerate(context.Background(), []string{"a", "b"}, []string{"a^2", "b^3", "(a b)^4"})
	require.NoError(t, err)
	require.Equal(t, 24, g.Order())

	p, err := group.NewPresentation([]string{"a", "b"}, []string{"a^2", "b^3", "(a b)^4"})
	require.NoError(t, err)
	tbl, err := coset.Enumerate(p.Alphabet(), p.Relators())
	require.NoError(t, err)

	seen := map[int]bool{}
	for i := 0; i < g.Order(); i++ {
		w := g.Word(i)
		if i > 0 {
			assert.True(t, freegroup.ShortLexLess(g.Word(i-1), w), "elements are in shortlex order")
		}
		assert.True(t, freegroup.Reduce(w).Equal(w))

		// names parse back to their own words
		back, err := relator.ParseRelator(g.Alphabet(), g.Element(i))
		require.NoError(t, err)
		assert.True(t, back.Equal(w))

		// distinct elements land on distinct cosets
		c, err := tbl.Trace(0, w)
		require.NoError(t, err)
		assert.False(t, seen[c])
		seen[c] = true

		idx, ok := g.Index(g.Element(i))
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

// TestEnumerate_CanonicalWordsAreLeast walks every word up to the longest
// canonical word in shortlex order and checks that the first word reaching
// each coset is the one the group names that element by.
func TestEnumerate_CanonicalWordsAreLeast(t *testing.T) {
	tests := []struct {
		name string
		gens []string
		rels []string
	}{
		{"symmetric 3", []string{"a", "b"}, []string{"a^3", "b^2", "(a b)^2"}},
		{"dihedral 8", []string{"r", "s"}, []string{"r^4", "s^2", "s r s = R"}},
		{"cyclic 7", []string{"a"}, []string{"a^7"}},
		{"symmetric 4", []string{"a", "b"}, []string{"a^2", "b^3", "(a b)^4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := group.NewPresentation(tt.gens, tt.rels)
			require.NoError(t, err)
			g, err := p.Enumerate(context.Background())
			require.NoError(t, err)
			tbl, err := coset.Enumerate(p.Alphabet(), p.Relators())
			require.NoError(t, err)

			elemOf := map[int]int{}
			maxLen := 0
			for i := 0; i < g.Order(); i++ {
				c, err := tbl.Trace(0, g.Word(i))
				require.NoError(t, err)
				elemOf[c] = i
				maxLen = max(maxLen, g.Word(i).Len())
			}

			cols := p.Alphabet().Columns()
			least := map[int]freegroup.Word{}
			for n := 0; n <= maxLen; n++ {
				idx := make([]int, n)
				for {
					w := make(freegroup.Word, n)
					for k, col := range idx {
						w[k] = freegroup.LetterOf(col)
					}
					c, err := tbl.Trace(0, w)
					require.NoError(t, err)
					if _, seen := least[elemOf[c]]; !seen {
						least[elemOf[c]] = w
					}

					k := n - 1
					for ; k >= 0; k-- {
						if idx[k]++; idx[k] < cols {
							break
						}
						idx[k] = 0
					}
					if k < 0 {
						break
					}
				}
			}

			require.Len(t, least, g.Order())
			for i := 0; i < g.Order(); i++ {
				assert.True(t, least[i].Equal(g.Word(i)),
					"element %d: canonical %s, least %s", i, g.Element(i), p.Alphabet().Format(least[i]))
			}
		})
	}
}

func TestGroup_LinearQueries(t *testing.T) {
	g, err := group.Enumerate(context.Background(), []string{"a"}, []string{"a^1000"})
	require.NoError(t, err)
	require.Equal(t, 1000, g.Order())

	i, ok := g.Index("a^500")
	require.True(t, ok)
	assert.Equal(t, i, g.InverseIndex(i))
	assert.Equal(t, 2, g.OrderIndex(i))

	j, ok := g.Index("A^3")
	require.True(t, ok)
	k, ok := g.Index("a^497")
	require.True(t, ok)
	assert.Equal(t, k, g.MulIndex(i, j))
	assert.True(t, g.IsAbelian())

	b := g.Brief()
	assert.True(t, b.TableOmitted)
	assert.Nil(t, b.Table)
	assert.Equal(t, 1000, b.ElementOrders["a"])
	assert.Equal(t, "A^499", b.Inverses["a^499"])
}

func TestEnumerate_Deterministic(t *testing.T) {
	gens := []string{"r", "s", "t"}
	rels := []string{"r^2", "s^2", "t^2", "(r s)^3", "(s t)^3", "(r t)^2"}
	first, err := group.Enumerate(context.Background(), gens, rels)
	require.NoError(t, err)
	require.Equal(t, 24, first.Order())

	for i := 0; i < 3; i++ {
		again, err := group.Enumerate(context.Background(), gens, rels)
		require.NoError(t, err)
		assert.Equal(t, first.Elements(), again.Elements())
		assert.Equal(t, first.Table(), again.Table())
		assert.Equal(t, first.Rows(), again.Rows())
	}
}

func TestEnumerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := group.Enumerate(ctx, []string{"a", "b"}, []string{"a^2", "b^3", "(a b)^5"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtract_Errors(t *testing.T) {
	_, err := group.Extract(nil)
	assert.ErrorIs(t, err, group.ErrNilTable)

	alpha := freegroup.MustAlphabet("a")
	tests := []struct {
		name string
		tbl  *coset.Table
	}{
		{"undefined entry", &coset.Table{Alphabet: alpha, Rows: [][]int{{1, -1}, {0, 0}}}},
		{"unreachable coset", &coset.Table{Alphabet: alpha, Rows: [][]int{{0, 0}, {1, 1}}}},
		{"no alphabet", &coset.Table{Rows: [][]int{{0, 0}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := group.Extract(tt.tbl)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, coset.ErrIncompleteTable)
			var ie *coset.IncompleteTableError
			assert.True(t, errors.As(err, &ie))
		})
	}
}

func TestGroup_Lookups(t *testing.T) {
	g, err := group.Enumerate(context.Background(), []string{"a", "b"}, []string{"a^3", "b^2", "(a b)^2"})
	require.NoError(t, err)

	_, err = g.Multiply("a", "zz")
	assert.ErrorIs(t, err, group.ErrUnknownElement)
	_, err = g.Inverse("a*a*a")
	assert.ErrorIs(t, err, group.ErrUnknownElement)
	_, err = g.ElementOrder("")
	assert.ErrorIs(t, err, group.ErrUnknownElement)

	inv, err := g.Inverse("a")
	require.NoError(t, err)
	assert.Equal(t, "A", inv)

	n, err := g.ElementOrder("b")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	cayley := g.Cayley()
	for x, row := range cayley {
		for y, z := range row {
			got, err := g.Multiply(x, y)
			require.NoError(t, err)
			assert.Equal(t, z, got)
		}
	}
}

func TestGroup_Summary(t *testing.T) {
	g, err := group.Enumerate(context.Background(), []string{"a", "b"}, []string{"a^3", "b^2", "(a b)^2"})
	require.NoError(t, err)

	s := g.Summary()
	assert.Equal(t, 6, s.Order)
	assert.Equal(t, []string{"a", "b"}, s.Generators)
	assert.Equal(t, g.Elements(), s.Elements)
	assert.False(t, s.Abelian)
	assert.Equal(t, 1, s.ElementOrders["e"])
	assert.Equal(t, 3, s.ElementOrders["a"])
	assert.Equal(t, 2, s.ElementOrders["b"])
	assert.Equal(t, "a", s.Inverses["A"])
	assert.Len(t, s.Table, 6)
	assert.Equal(t, g.Stats(), s.Stats)
}

func TestPresentation(t *testing.T) {
	p, err := group.NewPresentation([]string{"a", "b"}, []string{"a^2", "b**3", "a b = b a"})
	require.NoError(t, err)
	assert.Equal(t, "<a, b | a^2, b^3, a*b*A*B>", p.String())
	assert.Equal(t, []string{"a^2", "b**3", "a b = b a"}, p.Sources())

	// returned slices are copies
	rels := p.Relators()
	rels[0] = nil
	assert.Len(t, p.Relators()[0], 2)

	g, err := p.Enumerate(context.Background(), coset.WithMaxCosets(100))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())
	assert.True(t, g.IsAbelian())

	// Z2 x Z is infinite
	inf, err := group.NewPresentation([]string{"a", "b"}, []string{"a^2", "a b = b a"})
	require.NoError(t, err)
	_, err = inf.Enumerate(context.Background(), coset.WithMaxCosets(100))
	assert.ErrorIs(t, err, coset.ErrTooManyCosets)
}
