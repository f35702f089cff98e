package sha3

// Bit sequences use the FIPS 202 numbering convention: a byte yields its
// eight bits least-significant first.

// bytesToBits converts a byte sequence into a bit sequence, LSB-first
// per byte.  Total: never fails.
func bytesToBits(data []byte) []bool {
	bits := make([]bool, 0, 8*len(data))
	for _, b := range data {
		for i := 0; i < 8; i++ {
			bits = append(bits, b>>uint(i)&1 == 1)
		}
	}
	return bits
}

// bitsToBytes packs a bit sequence into bytes, inverting bytesToBits.
// Errors out if the number of bits is not a multiple of 8.
func bitsToBytes(bits []bool) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, errorf("bit sequence of length %d is not byte aligned",
			len(bits))
	}
	data := make([]byte, len(bits)/8)
	for i, bit := range bits {
		if bit {
			data[i/8] |= 1 << uint(i%8)
		}
	}
	return data, nil
}

// pad101 appends the multi-rate pad10*1 pattern to bits so that the
// result is the smallest positive multiple of r that leaves room for
// both the leading and the trailing 1; it is at least two bits longer
// than the input.
func pad101(msg []bool, r int) []bool {
	m := len(msg)
	target := (m + 2 + r - 1) / r * r
	padded := make([]bool, target)
	copy(padded, msg)
	padded[m] = true
	padded[target-1] = true
	return padded
}
