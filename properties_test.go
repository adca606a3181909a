package crc

import (
	"math/rand"
	"testing"
)

// propertyModels is a small cross-width sample of the catalog, used by
// the universal-property tests below instead of the full preset list:
// these tests are O(message-size * splits) each, so a representative
// handful of widths/directions stands in for every row in catalog_test.go.
var (
	propertyModels8  = []*Model[uint8]{CRC8SMBUS, CRC8MAXIMDOW, CRC5USB}
	propertyModels16 = []*Model[uint16]{CRC16KERMIT, CRC16ARC, CRC12UMTS}
	propertyModels32 = []*Model[uint32]{CRC32ISOHDLC, CRC32CKSUM}
	propertyModels64 = []*Model[uint64]{CRC64XZ, CRC64ECMA182}
)

// TestEmptyMessage is spec.md §8.3: every evaluator returns m.Init for a
// nil buffer, regardless of the crc argument passed in.
func TestEmptyMessage(t *testing.T) {
	for _, m := range propertyModels32 {
		if got := crcBitwise(m, 123, nil); got != m.Init {
			t.Errorf("%s: crcBitwise(_, nil) = %#x, want Init %#x", m.Name, got, m.Init)
		}
		if got := crcBytewise(m, 123, nil); got != m.Init {
			t.Errorf("%s: crcBytewise(_, nil) = %#x, want Init %#x", m.Name, got, m.Init)
		}
		if got := crcWordwise(m, 123, nil, 8, true); got != m.Init {
			t.Errorf("%s: crcWordwise(_, nil) = %#x, want Init %#x", m.Name, got, m.Init)
		}
	}
}

// TestChunking is spec.md §8.2: splitting a buffer anywhere and feeding
// the pieces through two calls must agree with processing it whole, for
// every evaluation strategy.
func TestChunking(t *testing.T) {
	buf := make([]byte, 200)
	rand.New(rand.NewSource(7)).Read(buf)

	check := func(t *testing.T, name string, f func(crc uint32, b []byte) uint32) {
		whole := f(0, buf)
		for split := 0; split <= len(buf); split += 13 {
			mid := f(0, buf[:split])
			got := f(mid, buf[split:])
			if got != whole {
				t.Errorf("%s: split at %d = %#x, want %#x", name, split, got, whole)
			}
		}
	}

	for _, m := range propertyModels32 {
		m := m
		check(t, m.Name+"/bit", func(crc uint32, b []byte) uint32 { return crcBitwise(m, crc, b) })
		check(t, m.Name+"/byte", func(crc uint32, b []byte) uint32 { return crcBytewise(m, crc, b) })
		check(t, m.Name+"/word", func(crc uint32, b []byte) uint32 { return crcWordwise(m, crc, b, 8, true) })
	}
}

// TestZeroBitsConsistency is spec.md §8.7: crcZeros(m, c, 8k) must equal
// crcBitwise(m, c, zeros-of-length-k) for k up to 1024, exercising both
// crcZeros' direct bit-stepping path (n < zerosTableThreshold) and its
// combine-table path (n >= zerosTableThreshold).
func TestZeroBitsConsistency(t *testing.T) {
	for _, m := range propertyModels16 {
		for _, k := range []int{0, 1, 2, 7, 8, 15, 16, 17, 100, 127, 128, 129, 500, 1024} {
			zeros := make([]byte, k)
			want := crcBitwise(m, 0, zeros)
			got := crcZeros(m, 0, uint64(8*k))
			if got != want {
				t.Errorf("%s: crcZeros(0, %d bits) = %#x, want %#x (crcBitwise over %d zero bytes)", m.Name, 8*k, got, want, k)
			}
		}
	}
}

// TestAlignmentIndependence is spec.md §8.8: crcWordwise's result must
// not depend on how the buffer happens to line up with word boundaries
// - the same content prefixed by 0..wordBytes-1 extra bytes (and then
// sliced back out) must checksum the same via chunking through the
// alignment prologue.
func TestAlignmentIndependence(t *testing.T) {
	payload := make([]byte, 97)
	rand.New(rand.NewSource(11)).Read(payload)

	for _, m := range propertyModels32 {
		for _, wb := range []int{4, 8} {
			for _, little := range []bool{true, false} {
				want := crcWordwise(m, 0, payload, wb, little)
				for offset := 1; offset < wb; offset++ {
					prefix := payload[:offset]
					rest := payload[offset:]
					mid := crcWordwise(m, 0, prefix, wb, little)
					got := crcWordwise(m, mid, rest, wb, little)
					if got != want {
						t.Errorf("%s: wordBytes=%d little=%v offset=%d = %#x, want %#x", m.Name, wb, little, offset, got, want)
					}
				}
			}
		}
	}
}

// TestReverserCorrectness is spec.md §8.9: reverse(reverse(x, n), n) must
// equal x mod 2^n for every n from 1 up to 64 (the single-word path;
// reverseHiLo's n in 65..128 is exercised separately by CRC-82/DARC's
// combine/residue tests in catalog_test.go, which round-trip through it
// on every call).
func TestReverserCorrectness(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	for n := 1; n <= 64; n++ {
		for i := 0; i < 20; i++ {
			x := rnd.Uint64()
			mask := ones(n)
			x &= mask
			got := reverse(reverse(x, n), n)
			if got != x {
				t.Errorf("n=%d x=%#x: reverse(reverse(x,n),n) = %#x, want %#x", n, x, got, x)
			}
		}
	}
}

// TestIdentityOfPathsRandomBuffers strengthens catalog_test.go's
// identity check (run there only over "123456789") with random buffers
// of varied length, per spec.md §8.1.
func TestIdentityOfPathsRandomBuffers(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	for _, n := range []int{0, 1, 3, 7, 8, 9, 31, 32, 33, 63, 64, 65, 255} {
		buf := make([]byte, n)
		rnd.Read(buf)

		for _, m := range propertyModels8 {
			checkIdentity(t, m, buf)
		}
		for _, m := range propertyModels64 {
			checkIdentity(t, m, buf)
		}
	}
}

func checkIdentity[T UInt](t *testing.T, m *Model[T], buf []byte) {
	t.Helper()
	bit := crcBitwise(m, m.Init, buf)
	byt := crcBytewise(m, m.Init, buf)
	if bit != byt {
		t.Errorf("%s: len=%d bitwise=%#x bytewise=%#x disagree", m.Name, len(buf), bit, byt)
	}
	if m.Width <= 32 {
		word4 := crcWordwise(m, m.Init, buf, 4, true)
		if word4 != bit {
			t.Errorf("%s: len=%d bitwise=%#x wordwise(4,le)=%#x disagree", m.Name, len(buf), bit, word4)
		}
	}
	word8 := crcWordwise(m, m.Init, buf, 8, false)
	if word8 != bit {
		t.Errorf("%s: len=%d bitwise=%#x wordwise(8,be)=%#x disagree", m.Name, len(buf), bit, word8)
	}
}
