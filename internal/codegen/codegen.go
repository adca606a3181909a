// Package codegen implements a standalone C code emitter: given one
// fixed Model, it produces a standalone ".h"/".c" pair realizing the
// _bit, _rem, _byte, _word, and _comb entry points over a plain C ABI,
// with every constant inlined and every table emitted as a static
// array, independent of any runtime library beyond <stdint.h>/<stddef.h>.
//
// Its structure uses Go's text/template, and follows the ACARS
// crc16ArincTable literal-formatting convention
// (other_examples/de3a76f4…crctest/main.go.go) for the emitted arrays.
package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"crc"
	"crc/internal/genutil"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.New("codegen").Funcs(template.FuncMap{
	"hex":      hexLit,
	"rows256":  rows256,
	"rowsN":    rowsN,
	"subtract": func(a, b int) int { return a - b },
	"add":      func(a, b int) int { return a + b },
	"mul":      func(a, b int) int { return a * b },
	"le":       func(a, b int) bool { return a <= b },
	"gt":       func(a, b int) bool { return a > b },
}).ParseFS(templateFS, "templates/*.tmpl"))

// EmitOptions selects the word-table build parameters exposed as
// crcgen's -b/-l/-4 flags.
type EmitOptions struct {
	WordBytes int  // 4 or 8; the word size used for table_word and _word's load type
	Little    bool // target endianness for table_word
}

// ctype returns the smallest of {8,16,32,64}-bit C unsigned types that
// holds width bits."
func ctype(width int) string {
	switch {
	case width <= 8:
		return "uint8_t"
	case width <= 16:
		return "uint16_t"
	case width <= 32:
		return "uint32_t"
	default:
		return "uint64_t"
	}
}

func ctypeBits(width int) int {
	switch {
	case width <= 8:
		return 8
	case width <= 16:
		return 16
	case width <= 32:
		return 32
	default:
		return 64
	}
}

// XorExpr renders "crc ^ xorout", folding it to a bitwise-not when
// xorout is all-ones across Width bits
// replaced by bitwise-NOT when xorout == ones(width) (saves an
// immediate load)."
func (d modelData) XorExpr(v string) string {
	if d.InvertXorOut {
		return fmt.Sprintf("(%s)(~%s)", d.CType, v)
	}
	return fmt.Sprintf("(%s)(%s ^ %s)", d.CType, v, hexLit(d.XorOut))
}

// MaskExpr renders "crc & mask", eliding the mask entirely when Width
// already fills CType (the type's own truncation already masks).
func (d modelData) MaskExpr(v string) string {
	if !d.NeedsMask {
		return v
	}
	return fmt.Sprintf("(%s)(%s & %s)", d.CType, v, hexLit(d.Mask))
}

func hexLit(v uint64) string { return fmt.Sprintf("0x%XULL", v) }

// rows256 groups a 256-entry table into 8-wide rows for literal emission,
// matching crc16ArincTable's 8-per-line layout.
func rows256(t [256]uint64) [][]uint64 {
	return rowsN(t[:], 8)
}

func rowsN(t []uint64, width int) [][]uint64 {
	var rows [][]uint64
	for i := 0; i < len(t); i += width {
		end := i + width
		if end > len(t) {
			end = len(t)
		}
		rows = append(rows, t[i:end])
	}
	return rows
}

// modelData is the template-facing view of a Model, with every field
// already reduced to plain uint64/string/bool/[]uint64 so the same
// templates serve every T in crc.UInt without any generic machinery in
// text/template itself.
type modelData struct {
	Name     string
	Prefix   string
	CType    string
	CTypeBits int
	NeedsMask bool
	Width    int
	Mask     uint64

	Poly, Init, XorOut, Check, Res uint64
	RefIn, RefOut, Rev             bool
	InvertXorOut                   bool

	ByteTable [256]uint64

	WordBytes     int
	Little        bool
	WordTableLane [][256]uint64 // len == WordBytes
	WordTop       int

	CombEntries []uint64
	CombCycle   int
	CombBack    int

	ReverserType  string
	ReverserLines []string
}

// Emit writes N_crc.h (to hdr) and N_crc.c (to src) for m, using opts to
// pick the word-table build parameters. T is inferred from m.
func Emit[T crc.UInt](hdr, src io.Writer, m *crc.Model[T], opts EmitOptions) error {
	if opts.WordBytes != 4 && opts.WordBytes != 8 {
		opts.WordBytes = 8
	}
	d := buildModelData(m, opts)

	var hbuf, sbuf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&hbuf, "header.tmpl", d); err != nil {
		return fmt.Errorf("crc: generating header for %s: %w", m.Name, err)
	}
	if err := tmpl.ExecuteTemplate(&sbuf, "source.tmpl", d); err != nil {
		return fmt.Errorf("crc: generating source for %s: %w", m.Name, err)
	}
	if _, err := hdr.Write(hbuf.Bytes()); err != nil {
		return fmt.Errorf("%w: writing header for %s: %v", crc.ErrResource, m.Name, err)
	}
	if _, err := src.Write(sbuf.Bytes()); err != nil {
		return fmt.Errorf("%w: writing source for %s: %v", crc.ErrResource, m.Name, err)
	}
	return nil
}

func buildModelData[T crc.UInt](m *crc.Model[T], opts EmitOptions) modelData {
	mask := widthMask(m.Width)
	d := modelData{
		Name:      m.Name,
		Prefix:    SymbolPrefix(m.Name, m.Width),
		CType:     ctype(m.Width),
		CTypeBits: ctypeBits(m.Width),
		Width:     m.Width,
		Mask:      mask,
		Poly:     uint64(m.Poly),
		Init:     uint64(m.Init),
		XorOut:   uint64(m.XorOut),
		Check:    uint64(m.Check),
		Res:      uint64(m.Res),
		RefIn:    m.RefIn,
		RefOut:   m.RefOut,
		Rev:      m.RefIn != m.RefOut,
		WordBytes: opts.WordBytes,
		Little:    opts.Little,
	}
	d.InvertXorOut = d.XorOut == mask
	d.NeedsMask = d.Width < d.CTypeBits

	bt := m.ByteTable()
	for i, v := range bt {
		d.ByteTable[i] = uint64(v)
	}

	wordBits := opts.WordBytes * 8
	top := wordBits - maxInt(m.Width, 8)
	d.WordTop = top
	wt := m.WordTable(opts.WordBytes, opts.Little)
	d.WordTableLane = make([][256]uint64, opts.WordBytes)
	for lane := 0; lane < opts.WordBytes; lane++ {
		l := wt.Lane(lane)
		for i, v := range l {
			d.WordTableLane[lane][i] = uint64(v)
		}
	}

	ct := m.CombineTable()
	for _, v := range ct.Entries() {
		d.CombEntries = append(d.CombEntries, uint64(v))
	}
	d.CombCycle = ct.Cycle()
	d.CombBack = ct.Back()

	if d.Rev {
		r := genutil.NewReverser(m.Width)
		d.ReverserType = r.CType()
		d.ReverserLines = r.Emit("tmp", "tmp")
	}

	return d
}

func widthMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// AggregateEntry is one row of the allcrcs/test_src aggregate outputs
// crcgen emits alongside each model's own .h/.c pair.
type AggregateEntry struct {
	Name   string // catalog name
	Prefix string // generated symbol prefix
	CType  string
	Width  int
	Check  uint64
}

// EntryFor builds the AggregateEntry for a model already passed to
// Emit, so crcgen's caller doesn't have to re-derive CType/Prefix.
func EntryFor[T crc.UInt](m *crc.Model[T]) AggregateEntry {
	return AggregateEntry{
		Name:   m.Name,
		Prefix: SymbolPrefix(m.Name, m.Width),
		CType:  ctype(m.Width),
		Width:  m.Width,
		Check:  uint64(m.Check),
	}
}

// EmitAllCRCsHeader writes allcrcs.h, the discovery table's declaration.
func EmitAllCRCsHeader(w io.Writer) error {
	return tmpl.ExecuteTemplate(w, "allcrcs_h", nil)
}

// EmitAllCRCsSource writes allcrcs.c: one row per successfully
// generated model, with each model's _bit function pointer cast to
// void* since the entries don't share a single C function type.
func EmitAllCRCsSource(w io.Writer, entries []AggregateEntry) error {
	return tmpl.ExecuteTemplate(w, "allcrcs_c", entries)
}

// EmitTestSrcHeader writes test_src.h.
func EmitTestSrcHeader(w io.Writer) error {
	return tmpl.ExecuteTemplate(w, "testsrc_h", nil)
}

// EmitTestSrcSource writes test_src.c: for every generated model, it
// checks the catalog check value, cross-checks the bit/byte/word paths
// against each other over a shared random 31-byte buffer, and
// cross-checks combine against a direct computation over the same
// buffer split at byte 15.
func EmitTestSrcSource(w io.Writer, entries []AggregateEntry, testBuf [31]byte) error {
	data := struct {
		Entries []AggregateEntry
		TestBuf string
	}{entries, formatTestBuf(testBuf)}
	return tmpl.ExecuteTemplate(w, "testsrc_c", data)
}

func formatTestBuf(buf [31]byte) string {
	var sb strings.Builder
	for i, b := range buf {
		if i%8 == 0 {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("\t")
		}
		fmt.Fprintf(&sb, "0x%02X, ", b)
	}
	return sb.String()
}
