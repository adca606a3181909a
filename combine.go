package crc

// zerosTableThreshold is the bit count above which crcZeros switches
// from single-bit stepping to the polynomial-squaring table, per
//  ("For n >= 128, delegate to the combine mechanism").
// Below it a plain loop is both simpler and, for the short runs the
// alignment prologues in wordwise.go actually need, cheaper than
// building a combine table at all.
const zerosTableThreshold = 128

// crcZeros applies n zero bits to crc - identical to crcBitwise except
// that no input byte is ever XORed in, and n need not be a multiple of
// 8. It shares crcBitwise's entry/exit processing (xorout fold,
// direction reversal) so it can be used both as a public zero-padding
// primitive and, from NewModel, to derive the residue constant.
func crcZeros[T UInt](m *Model[T], crc T, n uint64) T {
	crc ^= m.XorOut
	if m.rev {
		crc = reverse(crc, m.Width)
	}

	if n < zerosTableThreshold {
		for i := uint64(0); i < n; i++ {
			crc = oneZeroBitShift(m, crc)
		}
	} else {
		ct := m.CombineTable()
		k := 0
		for n != 0 {
			if n&1 != 0 {
				crc = multmodp(m, ct.entryAt(k), crc)
			}
			n >>= 1
			if n == 0 {
				break
			}
			k++
		}
	}

	if m.rev {
		crc = reverse(crc, m.Width)
	}
	return crc ^ m.XorOut
}

// CrcCombine computes the CRC of a message formed by concatenating two
// byte ranges, given crc1 (the CRC of the first range), crc2 (the CRC
// of the second range, computed independently) and len2 (the length in
// bytes of the second range) - without ever rereading the first range.
// This generalizes bursavich.dev/crc's Poly.Combine
// (other_examples/7c410cd5…crc64.go), itself a Go port of the classic
// zlib crc32_combine approach also present as
// other_examples/33af5b55…crc32combine.go.go, from a single fixed
// reflected CRC-64 to every width/direction this package supports, per
// :
//  1. crc1 ^= init, undoing the empty-message offset canonicalize
//     folded into init
//  2. if rev, reverse crc1 and crc2
//  3. compute xp = x^(8*len2) mod p(x)
//  4. return multmodp(xp, crc1) XOR crc2, with a final reversal if rev
func CrcCombine[T UInt](m *Model[T], crc1, crc2 T, len2 uint64) T {
	crc1 ^= m.Init

	if m.rev {
		crc1 = reverse(crc1, m.Width)
		crc2 = reverse(crc2, m.Width)
	}

	xp := x8nmodp(m, len2)
	result := multmodp(m, xp, crc1) ^ crc2

	if m.rev {
		result = reverse(result, m.Width)
	}
	return result
}
