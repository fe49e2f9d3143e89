// Package group turns a presentation ⟨generators | relators⟩ into a concrete
// finite group: canonical element words and a full multiplication table.
//
// What
//
//   - Presentation: validated generator names plus parsed relator words.
//   - Extract: converts a complete coset table (package coset) into a Group.
//   - Enumerate: one call from strings to *Group (parse → enumerate → extract).
//
// Canonical words
//
//	Each element is named by the shortlex-least word reaching its coset from
//	coset 0: shortest first, ties broken letter by letter in the order
//	a, A, b, B, … of generator declaration. Elements are listed in that same
//	order, so element 0 is always the identity, written "e". Words are
//	rendered as "*"-joined letters with inverses upper-case and runs
//	written as powers ("a^2*B"), which the relator parser reads back.
//
// Multiplication
//
//	Table entry (x, y) is the element reached by tracing y's word from x's
//	coset. The table is total over the element set; the identity row and
//	column are the identity map.
//
//	A Group keeps only the generator action on its elements and the
//	breadth-first tree of canonical words. Products, inverses and orders
//	are computed from them on demand; Table, Cayley, Rows and Summary
//	materialise order² entries, Brief does not.
//
// Errors
//
//   - *relator.ParseError and freegroup name errors from NewPresentation.
//   - *coset.TooManyCosetsError, coset.ErrBudgetExceeded and context errors
//     from the enumeration, returned unchanged.
//   - *coset.IncompleteTableError from Extract when the table has an
//     undefined entry or a coset unreachable from coset 0.
//   - ErrUnknownElement for lookups of names outside the element set.
package group
