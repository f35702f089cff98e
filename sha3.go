// Go implementation of the SHA-3 family of fixed-output hash functions
// (FIPS 202) built from first principles: the Keccak-f[1600] permutation,
// the pad10*1 rule and the sponge construction.
package sha3

// Contains the public fixed-output hash functions.

// Sum224 computes the SHA3-224 digest of data.
func Sum224(data []byte) (digest [28]byte) {
	copy(digest[:], SHA3_224.Sum(data))
	return
}

// Sum256 computes the SHA3-256 digest of data.
func Sum256(data []byte) (digest [32]byte) {
	copy(digest[:], SHA3_256.Sum(data))
	return
}

// Sum384 computes the SHA3-384 digest of data.
func Sum384(data []byte) (digest [48]byte) {
	copy(digest[:], SHA3_384.Sum(data))
	return
}

// Sum512 computes the SHA3-512 digest of data.
func Sum512(data []byte) (digest [64]byte) {
	copy(digest[:], SHA3_512.Sum(data))
	return
}

// Sum computes the digest of data under the parameters p.
//
// The returned slice has p.Size() bytes.  Sum never fails: every byte
// sequence, including the empty one, has a digest.
func (p *Params) Sum(data []byte) []byte {
	bits := bytesToBits(data)
	// Domain-separation suffix "01" distinguishing SHA-3 from other
	// Keccak constructions.  It is message content, not padding.
	bits = append(bits, false, true)
	out := sponge(permute, pad101, int(p.Rate), bits, int(p.OutputLen))
	digest, err := bitsToBytes(out)
	if err != nil {
		// The rate is a multiple of 8 for every registered variant, so
		// a misaligned squeeze output means the implementation itself
		// is broken.  Emitting a digest anyway would be worse.
		panic(wrapErrorf(err, "sha3: internal error packing %s digest",
			p.Name()))
	}
	return digest
}
