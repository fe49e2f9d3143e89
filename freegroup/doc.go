// Package freegroup models the free group on an ordered set of named
// generators: letters, reduced words, multiplication, inversion and powers.
//
// What
//
//   - Alphabet: the ordered generator names of a presentation. Generator i
//     is written with its lower-case name, its formal inverse with the
//     upper-case form of that name ("a" and "A").
//   - Letter: a generator index with exponent +1 or −1.
//   - Word: an ordered slice of letters. The empty word is the identity.
//
// Equality
//
//	At this layer two words are equal only if they are token-identical after
//	free reduction. Whether two words denote the same element of a presented
//	group is decided by the coset table (see package coset), never here.
//
// Letter order
//
//	Letters are totally ordered g0, g0⁻¹, g1, g1⁻¹, … following generator
//	declaration order. The same order numbers the columns of a coset table
//	(Letter.Column) and breaks ties between equally long words (ShortLexLess).
//
// Complexity
//
//   - Multiply, Reduce, Inverse: O(n) in the total input length.
//   - Power(w, k): O(|k|·|w|).
//
// Errors
//
//   - ErrNoGenerators        if NewAlphabet receives no names.
//   - ErrInvalidGenerator    if a name does not match ^[a-z][a-z0-9_]*$ or is "e".
//   - ErrDuplicateGenerator  if a name is declared twice.
package freegroup
