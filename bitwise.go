package crc

// crcBitwise is the tableless, bit-serial reference evaluator. A
// single-bit-shift loop that only ran the reflected-register direction
// could fold poly and init once up front and never branch on refin in
// the hot loop, but this evaluator can't take that shortcut: it has to
// preserve the caller-visible bit order so that _rem and the
// non-reflected generated source agree with it bit-for-bit, so the
// three branches (reflected, narrow non-reflected, wide non-reflected)
// are written out explicitly.
//
// buf == nil is the "no data" sentinel: the empty-message CRC (m.Init)
// is returned verbatim, crc is ignored.
func crcBitwise[T UInt](m *Model[T], crc T, buf []byte) T {
	if buf == nil {
		return m.Init
	}
	crc ^= m.XorOut
	if m.rev {
		crc = reverse(crc, m.Width)
	}

	switch {
	case m.RefIn:
		mask := widthMask[T](m.Width)
		crc &= mask
		for _, b := range buf {
			crc ^= T(b)
			for i := 0; i < 8; i++ {
				if crc&1 != 0 {
					crc = (crc >> 1) ^ m.Poly
				} else {
					crc >>= 1
				}
			}
		}

	case m.Width <= 8:
		shift := uint(8 - m.Width)
		poly := m.Poly << shift
		crc <<= shift
		byteMask := T(0xFF)
		top := T(1) << 7
		for _, b := range buf {
			crc ^= T(b)
			for i := 0; i < 8; i++ {
				if crc&top != 0 {
					crc = ((crc << 1) ^ poly) & byteMask
				} else {
					crc = (crc << 1) & byteMask
				}
			}
		}
		crc >>= shift
		crc &= widthMask[T](m.Width)

	default:
		shift := uint(m.Width - 8)
		top := T(1) << (m.Width - 1)
		mask := widthMask[T](m.Width)
		for _, b := range buf {
			crc ^= T(b) << shift
			for i := 0; i < 8; i++ {
				if crc&top != 0 {
					crc = (crc << 1) ^ m.Poly
				} else {
					crc <<= 1
				}
			}
			crc &= mask
		}
	}

	if m.rev {
		crc = reverse(crc, m.Width)
	}
	return crc ^ m.XorOut
}
