package sha3

import (
	"encoding/hex"
	"testing"
)

// Squeezing more than one block: rate 64 forces a permutation per 64
// output bits.
func TestSpongeMultiSqueeze(t *testing.T) {
	bits := bytesToBits([]byte("sponge test"))
	out := sponge(permute, pad101, 64, bits, 256)
	got, err := bitsToBytes(out)
	if err != nil {
		t.Fatalf("bitsToBytes: %v", err)
	}
	expect := "b8f46f7e04e5dd303ba5d7b90ee80829b5aabb63df2bb6f3feea85561dc1f1a6"
	if hex.EncodeToString(got) != expect {
		t.Fatalf("sponge(r=64) is %x instead of %s", got, expect)
	}
}

// Without the SHA-3 domain suffix the sponge at rate 1088 is plain
// Keccak-256; its first squeezed block starts with the known
// Keccak-256 digest of the empty string.
func TestSpongeSqueezeContinuation(t *testing.T) {
	out := sponge(permute, pad101, 1088, nil, 2176)
	got, err := bitsToBytes(out)
	if err != nil {
		t.Fatalf("bitsToBytes: %v", err)
	}
	if len(got) != 272 {
		t.Fatalf("expected 272 bytes, got %d", len(got))
	}
	keccakEmpty := "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"
	if hex.EncodeToString(got[:32]) != keccakEmpty {
		t.Fatalf("first block is %x instead of %s", got[:32], keccakEmpty)
	}
	secondBlock := "62cfbfbcbedce0ae3d5034fcf1f100895701f98c258fb14f7e3feb567b14ddcd"
	if hex.EncodeToString(got[136:168]) != secondBlock {
		t.Fatalf("second block starts with %x instead of %s",
			got[136:168], secondBlock)
	}
}

func TestSpongeOutputLength(t *testing.T) {
	bits := bytesToBits([]byte{0xAB})
	for _, outLen := range []int{1, 7, 63, 64, 65, 224, 512, 1600, 1601} {
		out := sponge(permute, pad101, 576, bits, outLen)
		if len(out) != outLen {
			t.Fatalf("sponge produced %d bits instead of %d",
				len(out), outLen)
		}
	}
}
