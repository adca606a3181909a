package crc

import (
	"fmt"
	"sync"
)

// Model is a normalized set of CRC parameters for a width-1..64 CRC,
// plus its lazily built accelerator tables. It generalizes the
// teacher's unexported algo[T] into the Model entity of the spec this
// package implements: poly/init are stored canonicalized (see
// canonicalize below), and the derived tables are built on demand by
// ByteTable/WordTable/CombineTable rather than eagerly in the
// constructor, so a Model that's only ever driven through crcBitwise
// never pays for a table it doesn't use.
type Model[T UInt] struct {
	Width  int    // 1..bitWidth(T)
	Poly   T      // canonicalized: bit-reversed across Width bits when RefIn
	Init   T      // canonicalized: CRC of the empty message (see canonicalize)
	XorOut T
	RefIn  bool
	RefOut bool
	Check  T // expected CRC of "123456789"
	Res    T // residue: crcZeros(model, 0, Width) ^ XorOut
	Name   string

	rev bool // RefIn != RefOut; drives the single extra reversal at the I/O boundary

	tableByteOnce sync.Once
	tableByte     *[256]T

	tableWordMu sync.Mutex
	tableWord   map[wordTableKey]*wordTable[T]

	combOnce sync.Once
	comb     *combineTable[T]
}

type wordTableKey struct {
	bytes  int
	little bool
}

// NewModel validates and canonicalizes a CRC parameter set, returning a
// Model ready to drive crcBitwise/crcBytewise/crcWordwise/CrcCombine.
// Poly, init, xorout and check are given in the Williams/RevEng
// convention: poly and init are unreflected (MSB-first), xorout and
// check are in output bit order. Width must be in 1..64 and poly must
// be odd (its low bit set) per spec invariant 2.
func NewModel[T UInt](width int, poly, init, xorout T, refin, refout bool, check T, name string) (*Model[T], error) {
	if err := checkWidth[T](width); err != nil {
		return nil, err
	}
	if poly&1 == 0 {
		return nil, fmt.Errorf("%w: poly %#x is even, x^width term aside a CRC polynomial must be monic", ErrUnusableModel, poly)
	}
	mask := widthMask[T](width)
	if poly > mask || init > mask || xorout > mask || check > mask {
		return nil, fmt.Errorf("%w: a parameter exceeds %d bits", ErrUnusableModel, width)
	}
	m := &Model[T]{
		Width:  width,
		Poly:   poly,
		Init:   init,
		XorOut: xorout,
		RefIn:  refin,
		RefOut: refout,
		Check:  check,
		Name:   name,
	}
	m.canonicalize()
	m.Res = crcZeros(m, 0, width) ^ m.XorOut
	return m, nil
}

func checkWidth[T UInt](width int) error {
	if width <= 0 || (T(1)<<(width-1)) == 0 {
		return fmt.Errorf("%w: width %d must be in 1..%d", ErrUnusableModel, width, bitWidth[T]())
	}
	return nil
}

func widthMask[T UInt](width int) T {
	if width >= bitWidth[T]() {
		return ^T(0)
	}
	return (T(1) << width) - 1
}

func bitWidth[T UInt]() int {
	var v T
	switch any(v).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		return 64
	}
}

// canonicalize implements process_model: it bit-reverses poly and the
// caller-supplied init into the register's native direction whenever
// RefIn is set (both run through the same reflected shift register, so
// both need the same reflection), folds xorout into init so that Init
// becomes "the CRC an evaluator returns for a zero-length input," and
// derives rev = refin XOR refout, which after this point is the only
// flag that still matters at the I/O boundary - RefIn alone drives the
// register's shift direction from here on.
func (m *Model[T]) canonicalize() {
	if m.RefIn {
		m.Poly = reverse(m.Poly, m.Width)
	}
	if m.RefIn {
		m.Init = reverse(m.Init, m.Width)
	}
	m.Init ^= m.XorOut
	m.rev = m.RefIn != m.RefOut
}

// ByteTable returns the model's 256-entry byte accelerator table,
// building it on first use.
func (m *Model[T]) ByteTable() *[256]T {
	m.tableByteOnce.Do(func() {
		m.tableByte = buildByteTable(m)
	})
	return m.tableByte
}

// WordTable returns the model's W-by-256 word accelerator table for the
// given word size (4 or 8 bytes) and endianness, building it on first
// use. Distinct (bytes, little) combinations get distinct tables; a
// Model never shares tables across endian/word-size choices.
func (m *Model[T]) WordTable(wordBytes int, little bool) *wordTable[T] {
	key := wordTableKey{wordBytes, little}
	m.tableWordMu.Lock()
	defer m.tableWordMu.Unlock()
	if m.tableWord == nil {
		m.tableWord = make(map[wordTableKey]*wordTable[T])
	}
	if wt, ok := m.tableWord[key]; ok {
		return wt
	}
	wt := buildWordTable(m, wordBytes, little)
	m.tableWord[key] = wt
	return wt
}

// CombineTable returns the model's x^(2^k) mod p(x) table, building it
// on first use.
func (m *Model[T]) CombineTable() *combineTable[T] {
	m.combOnce.Do(func() {
		m.comb = buildCombineTable(m)
	})
	return m.comb
}
