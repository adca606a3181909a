package crc

import "hash"

// Hash is a streaming, hash.Hash-compatible wrapper around a Model,
// generalizing npat-efault/crc16's digest/Hash16 pair (there fixed at
// 16 bits and a single Conf) and snksoft/crc's Hash (there built
// around a single *Table rather than a shared Model) to any width this
// package supports. BlockSize is always 1: nothing about the
// byte-table path requires aligned writes, unlike the word-wise path
// used internally for bulk crcWordwise calls.
type Hash[T UInt] struct {
	m   *Model[T]
	crc T
}

// NewHash returns a Hash ready to accumulate Write calls, seeded at
// m's empty-message CRC.
func NewHash[T UInt](m *Model[T]) *Hash[T] {
	h := &Hash[T]{m: m}
	h.Reset()
	return h
}

func (h *Hash[T]) Write(p []byte) (n int, err error) {
	h.crc = crcBytewise(h.m, h.crc, p)
	return len(p), nil
}

func (h *Hash[T]) Reset() {
	h.crc = crcBytewise(h.m, 0, nil)
}

func (h *Hash[T]) Size() int {
	return (bitWidth[T]() + 7) / 8
}

func (h *Hash[T]) BlockSize() int { return 1 }

// SumT returns the current CRC as its native T, the typed counterpart
// of hash.Hash.Sum.
func (h *Hash[T]) SumT() T {
	return h.crc
}

// Residue returns the current register's value without xorout folded
// in - the running counterpart of Model.Res's definition.
func (h *Hash[T]) Residue() T {
	return h.crc ^ h.m.XorOut
}

func (h *Hash[T]) Sum(in []byte) []byte {
	s := h.crc
	size := h.Size()
	out := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		out[i] = byte(s)
		s >>= 8
	}
	return append(in, out...)
}

var _ hash.Hash = (*Hash[uint32])(nil)
