package freegroup

// Reduce returns the freely reduced form of w: adjacent letter/inverse pairs
// are cancelled until none remain. w itself is not modified.
func Reduce(w Word) Word {
	// stack-based reduction reaches the same fixed point as repeated
	// pairwise cancellation in a single pass
	out := make(Word, 0, len(w))
	for _, l := range w {
		if n := len(out); n > 0 && out[n-1] == l.Inverse() {
			out = out[:n-1]
			continue
		}
		out = append(out, l)
	}

	return out
}

// Multiply concatenates the given words and freely reduces the result.
// Multiply() is the identity.
func Multiply(words ...Word) Word {
	n := 0
	for _, w := range words {
		n += len(w)
	}
	out := make(Word, 0, n)
	for _, w := range words {
		for _, l := range w {
			if k := len(out); k > 0 && out[k-1] == l.Inverse() {
				out = out[:k-1]
				continue
			}
			out = append(out, l)
		}
	}

	return out
}

// Inverse returns w⁻¹: the letters of w in reverse order, each inverted.
func Inverse(w Word) Word {
	out := make(Word, len(w))
	for i, l := range w {
		out[len(w)-1-i] = l.Inverse()
	}

	return out
}

// Power returns w^n. n == 0 yields the identity; n < 0 multiplies the
// inverse of w |n| times.
func Power(w Word, n int) Word {
	if n < 0 {
		w, n = Inverse(w), -n
	}
	w = Reduce(w)
	out := make(Word, 0, len(w)*n)
	for i := 0; i < n; i++ {
		out = append(out, w...)
	}

	return Reduce(out)
}

// ShortLexLess reports whether u precedes v in shortlex order: shorter words
// first, equal lengths compared letter by letter in column order.
func ShortLexLess(u, v Word) bool {
	if len(u) != len(v) {
		return len(u) < len(v)
	}
	for i := range u {
		if cu, cv := u[i].Column(), v[i].Column(); cu != cv {
			return cu < cv
		}
	}

	return false
}
