package crc

import "fmt"

// hiLo is the structured two-limb register used for widths in
// (64, 128]
// primitive shl, shr, xor, mask, and reverse operations so the three
// branches of the single-word evaluator and the double-word evaluator
// share their textual structure, not their types." Bit 0 is the
// low-order bit of lo; bit 127 is the high-order bit of hi.
type hiLo struct {
	hi, lo uint64
}

func (a hiLo) xor(b hiLo) hiLo {
	return hiLo{a.hi ^ b.hi, a.lo ^ b.lo}
}

// shl1 shifts the pair left by one bit, carrying lo's top bit into hi.
func (a hiLo) shl1() hiLo {
	carry := a.lo >> 63
	return hiLo{(a.hi << 1) | carry, a.lo << 1}
}

// shr1 shifts the pair right by one bit, carrying hi's bottom bit into lo.
func (a hiLo) shr1() hiLo {
	carry := a.hi & 1
	return hiLo{a.hi >> 1, (a.lo >> 1) | (carry << 63)}
}

// bit reports whether bit i (0 = lo's LSB) is set.
func (a hiLo) bit(i int) bool {
	if i < 64 {
		return a.lo&(uint64(1)<<uint(i)) != 0
	}
	return a.hi&(uint64(1)<<uint(i-64)) != 0
}

// setBit sets bit i (0 = lo's LSB).
func setBit(i int) hiLo {
	if i < 64 {
		return hiLo{0, uint64(1) << uint(i)}
	}
	return hiLo{uint64(1) << uint(i-64), 0}
}

// maskWidth clears every bit at or above position width.
func (a hiLo) maskWidth(width int) hiLo {
	switch {
	case width >= 128:
		return a
	case width > 64:
		return hiLo{a.hi & ((uint64(1) << uint(width-64)) - 1), a.lo}
	case width == 64:
		return hiLo{0, a.lo}
	default:
		return hiLo{0, a.lo & ((uint64(1) << uint(width)) - 1)}
	}
}

func (a hiLo) isZero() bool {
	return a.hi == 0 && a.lo == 0
}

// reverseHiLo reverses the low n bits of x (n in 1..128), mirroring
// reverse's generic shape but across the two-limb register.
func reverseHiLo(x hiLo, n int) hiLo {
	var out hiLo
	for i := 0; i < n; i++ {
		if x.bit(i) {
			out = out.xor(setBit(n - 1 - i))
		}
	}
	return out
}

// Model128 is the (64, 128]-width counterpart of Model, used for CRCs
// like CRC-82/DARC that don't fit in a single uint64 register. It
// mirrors Model's field layout and canonicalization exactly; only the
// register type changes
// structure, not their types").
type Model128 struct {
	Width  int // 65..128
	Poly   hiLo
	Init   hiLo
	XorOut hiLo
	RefIn  bool
	RefOut bool
	Check  hiLo
	Res    hiLo
	Name   string

	rev bool

	tableByte [256]hiLo
	built     bool
}

// NewModel128FromParts is NewModel128 for callers outside this package,
// which can't name the unexported hiLo type: each width>64 field is
// passed as a (hi, lo) uint64 pair instead, hi holding bits 64..127.
// internal/paramline uses this to build a Model128 straight from a
// parsed parameter line without reaching into this package's internals.
func NewModel128FromParts(width int, polyHi, polyLo, initHi, initLo, xoroutHi, xoroutLo uint64, refin, refout bool, checkHi, checkLo uint64, name string) (*Model128, error) {
	return NewModel128(width, hiLo{polyHi, polyLo}, hiLo{initHi, initLo}, hiLo{xoroutHi, xoroutLo}, refin, refout, hiLo{checkHi, checkLo}, name)
}

// NewModel128 validates and canonicalizes a double-wide CRC parameter
// set. See NewModel for the single-word equivalent; the contract is
// identical, just over hiLo operands.
func NewModel128(width int, poly, init, xorout hiLo, refin, refout bool, check hiLo, name string) (*Model128, error) {
	if width <= 64 || width > 128 {
		return nil, fmt.Errorf("%w: width %d must be in 65..128 for Model128", ErrUnusableModel, width)
	}
	if !poly.bit(0) {
		return nil, fmt.Errorf("%w: poly is even, the x^width term aside a CRC polynomial must be monic", ErrUnusableModel)
	}
	m := &Model128{
		Width:  width,
		Poly:   poly.maskWidth(width),
		Init:   init.maskWidth(width),
		XorOut: xorout.maskWidth(width),
		RefIn:  refin,
		RefOut: refout,
		Check:  check.maskWidth(width),
		Name:   name,
	}
	m.canonicalize()
	m.Res = crcZerosDbl(m, hiLo{}, uint64(width)).xor(m.XorOut)
	return m, nil
}

func (m *Model128) canonicalize() {
	if m.RefIn {
		m.Poly = reverseHiLo(m.Poly, m.Width)
	}
	if m.RefIn {
		m.Init = reverseHiLo(m.Init, m.Width)
	}
	m.Init = m.Init.xor(m.XorOut)
	m.rev = m.RefIn != m.RefOut
}

// ByteTable returns the model's 256-entry byte accelerator table,
// building it on first use. Model128 has no concurrent lazy-init guard
// like Model's sync.Once:, concurrent population of a
// Model's derived tables must be externally synchronized by the
// caller.
func (m *Model128) ByteTable() *[256]hiLo {
	if !m.built {
		shadow := *m
		shadow.Init = hiLo{}
		shadow.XorOut = hiLo{}
		shadow.rev = false
		for k := 0; k < 256; k++ {
			m.tableByte[k] = crcBitwiseDbl(&shadow, hiLo{}, []byte{byte(k)})
		}
		m.built = true
	}
	return &m.tableByte
}

// crcBitwiseDbl is the double-wide counterpart of crcBitwise, structured
// so its three branches read the same as the single-word version's,
// with hiLo's shl1/shr1/xor/bit standing in for the native shift
// operators.
func crcBitwiseDbl(m *Model128, crc hiLo, buf []byte) hiLo {
	if buf == nil {
		return m.Init
	}
	crc = crc.xor(m.XorOut)
	if m.rev {
		crc = reverseHiLo(crc, m.Width)
	}

	switch {
	case m.RefIn:
		crc = crc.maskWidth(m.Width)
		for _, b := range buf {
			crc = crc.xor(hiLo{0, uint64(b)})
			for i := 0; i < 8; i++ {
				if crc.bit(0) {
					crc = crc.shr1().xor(m.Poly)
				} else {
					crc = crc.shr1()
				}
			}
		}

	default:
		top := m.Width - 1
		for _, b := range buf {
			shiftedByte := hiLo{0, uint64(b)}
			for i := 0; i < m.Width-8; i++ {
				shiftedByte = shiftedByte.shl1()
			}
			crc = crc.xor(shiftedByte)
			for i := 0; i < 8; i++ {
				if crc.bit(top) {
					crc = crc.shl1().xor(m.Poly)
				} else {
					crc = crc.shl1()
				}
			}
			crc = crc.maskWidth(m.Width)
		}
	}

	if m.rev {
		crc = reverseHiLo(crc, m.Width)
	}
	return crc.xor(m.XorOut)
}

// CalcParts runs the table-driven double-wide evaluator over buf from
// m's empty-message CRC and returns the result as a (hi, lo) pair, the
// Model128 counterpart of Calc for callers outside this package that
// can't name hiLo directly.
func CalcParts(m *Model128, buf []byte) (hi, lo uint64) {
	r := crcBytewiseDbl(m, hiLo{}, buf)
	return r.hi, r.lo
}

// CheckParts returns m.Check as a (hi, lo) pair.
func (m *Model128) CheckParts() (hi, lo uint64) { return m.Check.hi, m.Check.lo }

// ResParts returns m.Res as a (hi, lo) pair.
func (m *Model128) ResParts() (hi, lo uint64) { return m.Res.hi, m.Res.lo }

// CombinePartsDbl is CrcCombineDbl for callers outside this package:
// crc1/crc2 are given and returned as (hi, lo) pairs.
func CombinePartsDbl(m *Model128, crc1Hi, crc1Lo, crc2Hi, crc2Lo uint64, len2 uint64) (hi, lo uint64) {
	r := CrcCombineDbl(m, hiLo{crc1Hi, crc1Lo}, hiLo{crc2Hi, crc2Lo}, len2)
	return r.hi, r.lo
}

// crcBytewiseDbl is the table-driven double-wide evaluator, mirroring
// crcBytewise's reflected branch; double-wide CRCs in the catalog are
// overwhelmingly reflected (CRC-82/DARC included), so only that branch
// is exercised by table construction today. Non-reflected double-wide
// models still evaluate correctly via crcBitwiseDbl.
func crcBytewiseDbl(m *Model128, crc hiLo, buf []byte) hiLo {
	if buf == nil {
		return m.Init
	}
	if !m.RefIn {
		return crcBitwiseDbl(m, crc, buf)
	}

	crc = crc.xor(m.XorOut)
	if m.rev {
		crc = reverseHiLo(crc, m.Width)
	}

	table := m.ByteTable()
	for _, b := range buf {
		idx := byte(crc.lo) ^ b
		crc = table[idx].xor(hiLo{crc.hi >> 8, (crc.lo >> 8) | (crc.hi << 56)})
	}
	crc = crc.maskWidth(m.Width)

	if m.rev {
		crc = reverseHiLo(crc, m.Width)
	}
	return crc.xor(m.XorOut)
}

// multmodpDbl is multmodp's double-wide counterpart, used to build the
// combine table and to apply x^(8n) mod p for Model128.
func multmodpDbl(m *Model128, a, b hiLo) hiLo {
	var prod hiLo
	if m.RefIn {
		top := m.Width - 1
		for bit := top; bit >= 0; bit-- {
			if a.bit(bit) {
				prod = prod.xor(b)
			}
			carry := b.bit(0)
			b = b.shr1()
			if carry {
				b = b.xor(m.Poly)
			}
			allZeroBelow := true
			for j := 0; j < bit; j++ {
				if a.bit(j) {
					allZeroBelow = false
					break
				}
			}
			if allZeroBelow {
				break
			}
		}
		return prod.maskWidth(m.Width)
	}

	for i := 0; i < m.Width; i++ {
		if a.bit(0) {
			prod = prod.xor(b)
		}
		a = a.shr1()
		if a.isZero() {
			break
		}
		carry := b.bit(m.Width - 1)
		b = b.shl1().maskWidth(m.Width)
		if carry {
			b = b.xor(m.Poly)
		}
	}
	return prod.maskWidth(m.Width)
}

func oneZeroBitShiftDbl(m *Model128, reg hiLo) hiLo {
	if m.RefIn {
		if reg.bit(0) {
			return reg.shr1().xor(m.Poly)
		}
		return reg.shr1()
	}
	if reg.bit(m.Width - 1) {
		return reg.shl1().xor(m.Poly).maskWidth(m.Width)
	}
	return reg.shl1().maskWidth(m.Width)
}

// crcZerosDbl applies n zero bits to crc, the Model128 counterpart of
// crcZeros. It always steps bit-by-bit: double-wide models are only
// used for the handful of very wide catalog entries, where the
// combine-table machinery buys little over a direct loop for the
// residue/zero-padding computations this package actually performs.
func crcZerosDbl(m *Model128, crc hiLo, n uint64) hiLo {
	crc = crc.xor(m.XorOut)
	if m.rev {
		crc = reverseHiLo(crc, m.Width)
	}
	for i := uint64(0); i < n; i++ {
		crc = oneZeroBitShiftDbl(m, crc)
	}
	if m.rev {
		crc = reverseHiLo(crc, m.Width)
	}
	return crc.xor(m.XorOut)
}

// CrcCombineDbl is CrcCombine's Model128 counterpart.
func CrcCombineDbl(m *Model128, crc1, crc2 hiLo, len2 uint64) hiLo {
	crc1 = crc1.xor(m.Init)
	if m.rev {
		crc1 = reverseHiLo(crc1, m.Width)
		crc2 = reverseHiLo(crc2, m.Width)
	}

	xp := identityX0Dbl(m)
	for i := uint64(0); i < len2*8; i++ {
		xp = oneZeroBitShiftDbl(m, xp)
	}

	result := multmodpDbl(m, xp, crc1).xor(crc2)
	if m.rev {
		result = reverseHiLo(result, m.Width)
	}
	return result
}

func identityX0Dbl(m *Model128) hiLo {
	if m.RefIn {
		return setBit(m.Width - 1)
	}
	return hiLo{0, 1}
}
