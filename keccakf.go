package sha3

// The Keccak-f[1600] permutation: 24 rounds of the step mappings
// theta, rho, pi, chi and iota over the 5x5x64 bit state.
// For the detailed specification see FIPS 202 and the Keccak web site
// (https://keccak.team/).

import (
	"math/bits"
)

const numRounds = 24

// rotation offsets of the rho step, rhoOffsets[x][y].
var rhoOffsets = [5][5]int{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// roundConstants[i] is the lane xored into (0,0) by the iota step of
// round i.  Derived once from the LFSR; read-only afterwards.
var roundConstants = computeRoundConstants()

// rc is the LFSR over GF(2) with polynomial x^8+x^6+x^5+x^4+1 from which
// the round constants derive: seeded with a single set bit, stepped t
// times, bit 0 read out.
func rc(t int) bool {
	r := uint16(1)
	for i := 0; i < t%255; i++ {
		r <<= 1
		if r&0x100 != 0 {
			r ^= 0x171
		}
	}
	return r&1 == 1
}

func computeRoundConstants() (rcs [numRounds]uint64) {
	for i := 0; i < numRounds; i++ {
		for j := 0; j <= 6; j++ {
			if rc(j + 7*i) {
				rcs[i] |= 1 << uint((1<<uint(j))-1)
			}
		}
	}
	return
}

// theta xors every bit with the parities of two neighbouring columns:
// D[x,z] = C[x-1,z] ^ C[x+1,z-1] where C is the column parity.  The
// z-1 shows up lane-wise as a rotation by one.
func theta(s *state) {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = s[x][0] ^ s[x][1] ^ s[x][2] ^ s[x][3] ^ s[x][4]
	}
	for x := 0; x < 5; x++ {
		d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < 5; y++ {
			s[x][y] ^= d
		}
	}
}

// rho rotates each lane along z by its fixed offset.
func rho(s *state) {
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			s[x][y] = bits.RotateLeft64(s[x][y], rhoOffsets[x][y])
		}
	}
}

// pi moves the lane at (x,y) to (y, 2x+3y); no bit changes value.
func pi(s *state) {
	old := *s
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			s[x][y] = old[(x+3*y)%5][x]
		}
	}
}

// chi is the only non-linear step:
// bit[x,y,z] ^= ^bit[x+1,y,z] & bit[x+2,y,z].
func chi(s *state) {
	old := *s
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			s[x][y] = old[x][y] ^ (^old[(x+1)%5][y] & old[(x+2)%5][y])
		}
	}
}

// iota xors the round constant into lane (0,0).
func iota(s *state, round int) {
	s[0][0] ^= roundConstants[round]
}

// round applies the five step mappings in their fixed order.
func round(s *state, roundIndex int) {
	theta(s)
	rho(s)
	pi(s)
	chi(s)
	iota(s, roundIndex)
}

// permute applies the full Keccak-f[1600] permutation to s in place.
func permute(s *state) {
	for i := 0; i < numRounds; i++ {
		round(s, i)
	}
}
