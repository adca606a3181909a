package crc

// wordTable holds, for each of wordBytes byte lanes, a 256-entry table
// such that table[lane][k] equals the CRC register after processing
// byte k followed by `lane` zero bytes, positioned and byte-swapped so
// that XOR-ing it against a word-sized memory load advances the CRC by
// wordBytes bytes.
type wordTable[T UInt] struct {
	bytes  int
	little bool
	lane   [8][256]T // only the first `bytes` entries are populated
}

// Lane returns the 256-entry table for byte lane i (0..Bytes()-1), the
// accessor internal/codegen uses to emit table_word's literal arrays.
func (wt *wordTable[T]) Lane(i int) [256]T { return wt.lane[i] }

// Bytes returns the word size (4 or 8) this table was built for.
func (wt *wordTable[T]) Bytes() int { return wt.bytes }

// Little reports the endianness this table's byte-swap convention targets.
func (wt *wordTable[T]) Little() bool { return wt.little }

// buildByteTable fills table_byte[k] with the CRC register after
// processing the single byte k starting from a zero register -
// generalizing a table-build loop (table[i] = bbbUpd(T(i), 0, 8)) to
// the non-reflected branch such a loop never takes when poly/init are
// pre-reflected once up front (see bitwise.go). The table holds the
// raw register contents with xorout folded only at pipeline boundaries
// (see DESIGN.md), so each entry is produced through a zero-init,
// zero-xorout shadow model and, for non-reflected CRCs of width < 8,
// left-shifted by (8-width) to keep the byte-XOR aligned with the
// table's own shift convention.
func buildByteTable[T UInt](m *Model[T]) *[256]T {
	shadow := *m
	shadow.Init = 0
	shadow.XorOut = 0
	shadow.rev = false

	var table [256]T
	for k := 0; k < 256; k++ {
		reg := crcBitwise(&shadow, 0, []byte{byte(k)})
		if !m.RefIn && m.Width < 8 {
			reg <<= 8 - m.Width
		}
		table[k] = reg
	}
	return &table
}

// buildWordTable constructs table_word starting from
// table_byte[k]: each lane n in 1..wordBytes-1 advances the CRC by one
// more zero byte using the byte table itself, then (for non-reflected
// CRCs) the stored values are left-shifted so the CRC's high bit aligns
// with the word's high bit, and lanes are reordered/byte-swapped so an
// XOR against a same-endian memory load advances the CRC correctly.
func buildWordTable[T UInt](m *Model[T], wordBytes int, little bool) *wordTable[T] {
	byteTable := m.ByteTable()
	wordBits := wordBytes * 8
	top := wordBits - max(m.Width, 8)

	wt := &wordTable[T]{bytes: wordBytes, little: little}
	for k := 0; k < 256; k++ {
		reg := byteTable[k]
		wt.lane[0][k] = reg
		for n := 1; n < wordBytes; n++ {
			reg = advanceOneZeroByte(m, reg)
			wt.lane[n][k] = reg
		}
	}

	if !m.RefIn {
		shift := uint(top)
		for n := 0; n < wordBytes; n++ {
			for k := 0; k < 256; k++ {
				wt.lane[n][k] <<= shift
			}
		}
	}

	// The lane index that advances the CRC correctly when XORed against
	// byte j of a little/big-endian word load: for a little-endian host
	// reading a non-reflected (or wide) CRC, or a big-endian host reading
	// a reflected CRC, the natural byte order already matches, so no
	// swap is needed; the mismatched combination needs its lanes
	// reversed so crcWordwise's single indexing rule (see wordwise.go)
	// reads the right lane for each memory byte.
	if little != m.RefIn {
		for i, j := 0, wordBytes-1; i < j; i, j = i+1, j-1 {
			wt.lane[i], wt.lane[j] = wt.lane[j], wt.lane[i]
		}
	}

	return wt
}

// advanceOneZeroByte runs the CRC recurrence for a single zero
// input byte on top of reg, using the model's own byte table
// (table_word construction folds xorout twice in a row around this
// step, which is a no-op on the arithmetic - the
// shadow model used here already carries XorOut == 0, so that fold
// is elided rather than literally performed).
func advanceOneZeroByte[T UInt](m *Model[T], reg T) T {
	bt := m.ByteTable()
	switch {
	case m.RefIn:
		return bt[byte(reg)] ^ (reg >> 8)
	case m.Width <= 8:
		// table_byte already holds values shifted into the top of the
		// byte (see buildByteTable), so the register is, for this
		// purpose, a full 8-bit one: no extra shift-in of new bits.
		return bt[byte(reg)]
	default:
		idx := byte(reg >> uint(m.Width-8))
		return (bt[idx] ^ (reg << 8)) & widthMask[T](m.Width)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
