package sha3

type permutation func(*state)
type padRule func([]bool, int) []bool

// sponge runs the sponge construction: pad the input with pad, absorb it
// into a fresh all-zero state in r-bit blocks permuting with f after each,
// then squeeze r bits per permutation call until outputLen bits have been
// produced.
//
// The state is owned by this one call; nothing is shared or retained.
func sponge(f permutation, pad padRule, r int, input []bool, outputLen int) []bool {
	p := pad(input, r)

	var s state
	for off := 0; off < len(p); off += r {
		for i := 0; i < r; i++ {
			s.xorFlat(i, p[off+i])
		}
		f(&s)
	}

	z := make([]bool, 0, (outputLen+r-1)/r*r)
	for {
		for i := 0; i < r; i++ {
			z = append(z, s.getFlat(i))
		}
		if len(z) >= outputLen {
			return z[:outputLen]
		}
		f(&s)
	}
}
