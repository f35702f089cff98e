package sha3

const (
	stateBits = 1600 // width of the Keccak-f[1600] state
	laneBits  = 64   // bits per lane
)

// The Keccak state: a 5x5x64 array of bits addressed (x,y,z), stored as
// 5x5 lanes of 64 bits each, s[x][y].  The zero value is the all-zero
// state the sponge starts from.
//
// In the flat bit numbering of the state, bit i lives in lane (x,y) with
// 5y+x = i/64 at height z = i mod 64.  This is also the order in which
// message bits enter the state during absorption.
type state [5][5]uint64

// get returns the bit at (x,y,z).  x and y are taken mod 5 and z mod 64,
// so the neighbour arithmetic of the theta and chi steps may index
// without wrapping first.
func (s *state) get(x, y, z int) bool {
	return s[mod5(x)][mod5(y)]>>uint(mod64(z))&1 == 1
}

// set sets the bit at (x,y,z), with the same index wrapping as get.
func (s *state) set(x, y, z int, bit bool) {
	mask := uint64(1) << uint(mod64(z))
	if bit {
		s[mod5(x)][mod5(y)] |= mask
	} else {
		s[mod5(x)][mod5(y)] &^= mask
	}
}

// xor xors the given bit into position (x,y,z).
func (s *state) xor(x, y, z int, bit bool) {
	if bit {
		s[mod5(x)][mod5(y)] ^= 1 << uint(mod64(z))
	}
}

// getFlat returns the bit at flat position i, 0 <= i < 1600.
func (s *state) getFlat(i int) bool {
	lane := i / laneBits
	return s[lane%5][lane/5]>>uint(i%laneBits)&1 == 1
}

// xorFlat xors a bit into flat position i.
func (s *state) xorFlat(i int, bit bool) {
	if bit {
		lane := i / laneBits
		s[lane%5][lane/5] ^= 1 << uint(i%laneBits)
	}
}

func mod5(i int) int {
	return ((i % 5) + 5) % 5
}

func mod64(i int) int {
	return ((i % laneBits) + laneBits) % laneBits
}
