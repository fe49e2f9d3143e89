// Package coset implements Todd–Coxeter coset enumeration of the trivial
// subgroup in a finitely presented group ⟨generators | relators⟩.
//
// What
//
//   - Enumerate builds a coset table: Rows[c][col] is the coset reached from
//     coset c by the letter of column col (see freegroup.Letter.Column).
//     Coset 0 is the identity coset; the number of rows is the group order.
//   - The returned Table is complete (every entry defined, each column a
//     permutation) and closed (every relator traced from every coset returns
//     to that coset). Both properties are checked before Enumerate returns.
//
// Strategy (HLT)
//
//	Cosets are processed in increasing index order. For each live coset every
//	relator is scanned from it: forward through defined entries, then
//	backward from the end. A one-letter gap becomes a deduction, a longer gap
//	gets a new coset defined at the forward end, and two scans meeting at
//	different cosets trigger a coincidence. After the relators, any entry of
//	the coset's row still undefined is defined.
//
// Coincidences
//
//	Merges use a union-find parent array (parent[c] == c marks a live coset)
//	and a FIFO worklist processed to a fixed point before scanning resumes.
//	The lower-numbered coset always survives, so coset 0 is never merged
//	away.
//
// Determinism
//
//	Definitions are made in a fixed order (cosets ascending, relators in
//	input order, columns ascending), so identical inputs produce identical
//	tables.
//
// Safety valves
//
//   - MaxCosets (default DefaultMaxCosets): checked after every definition;
//     exceeding it fails with *TooManyCosetsError. There is no partial result.
//   - MaxDefinitions: optional operation-count budget (ErrBudgetExceeded).
//   - Context: cancellation and deadlines, checked once per processed coset
//     and periodically between definitions.
//
// Errors
//
//   - ErrNilAlphabet         if the alphabet is nil.
//   - ErrOptionViolation     for invalid options (e.g. MaxCosets <= 0).
//   - *TooManyCosetsError    (errors.Is ErrTooManyCosets) when the limit is hit.
//   - ErrBudgetExceeded      when MaxDefinitions is exhausted.
//   - *IncompleteTableError  (errors.Is ErrIncompleteTable) if a finished
//     table fails the completeness or closure check; this indicates a bug.
//   - ctx.Err() when the context is cancelled.
package coset
