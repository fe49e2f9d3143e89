// Package fpgroup enumerates finite groups given by presentations.
//
// A presentation <a, b | a^3, b^2, (a*b)^2> names generators and relators
// (words equal to the identity). fpgroup runs Todd-Coxeter coset enumeration
// over the trivial subgroup and, when the group is finite and small enough,
// returns every element as a canonical word together with the full
// multiplication table.
//
// Everything is organized under these subpackages:
//
//	freegroup/  generators, letters, words, free reduction, shortlex order
//	relator/    relator parser: powers, '**', implicit products, "lhs = rhs"
//	coset/      HLT coset enumeration with coincidence handling and limits
//	group/      presentations, canonical elements, multiplication table
//
// Quick example:
//
//	g, err := group.Enumerate(ctx, []string{"a", "b"}, []string{"a^3", "b^2", "(a b)^2"})
//	// g.Order() == 6, g.Elements() == [e a A b a*b A*b]
//
// Infinite or very large groups are reported as *coset.TooManyCosetsError
// once the live coset count passes the configured limit.
//
// The fpgroup command (cmd/fpgroup) wraps the library as a CLI and an HTTP
// service.
package fpgroup
