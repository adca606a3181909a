package crc

// crcBytewise is the 256-entry-table evaluator. It generalizes a
// tblUpd-style reflected-only table lookup (the common shortcut when
// poly/init are pre-reflected so every CRC runs through the same
// reg = table[byte(reg)^b] ^ (reg>>8) recurrence) by adding the
// non-reflected mirror for width<=8 and width>8, matching the branch
// structure of crcBitwise.
func crcBytewise[T UInt](m *Model[T], crc T, buf []byte) T {
	if buf == nil {
		return m.Init
	}
	crc ^= m.XorOut
	if m.rev {
		crc = reverse(crc, m.Width)
	}

	table := m.ByteTable()
	switch {
	case m.RefIn:
		for _, b := range buf {
			crc = table[byte(crc)^b] ^ (crc >> 8)
		}
		crc &= widthMask[T](m.Width)

	case m.Width <= 8:
		shift := uint(8 - m.Width)
		crc <<= shift
		for _, b := range buf {
			crc = table[byte(crc)^b]
		}
		crc >>= shift
		crc &= widthMask[T](m.Width)

	default:
		mask := widthMask[T](m.Width)
		for _, b := range buf {
			idx := byte(crc>>(m.Width-8)) ^ b
			crc = (table[idx] ^ (crc << 8)) & mask
		}
	}

	if m.rev {
		crc = reverse(crc, m.Width)
	}
	return crc ^ m.XorOut
}
