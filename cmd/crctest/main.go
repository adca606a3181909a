// Command crctest reads CRC parameter lines on stdin and, for each
// model, exercises the bit-, byte-, and word-at-a-time evaluators plus
// the residue and combine laws against that model's own check value,
// printing a pass/fail line per model. Exit status is 0 if every model
// verified, 1 on any per-model or setup failure.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"crc"
	"crc/internal/paramline"
)

func main() {
	if len(os.Args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: crctest < parameter-lines")
		os.Exit(1)
	}

	failed := false
	scanner := bufio.NewScanner(os.Stdin)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		line, err := paramline.Parse(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)
			failed = true
			continue
		}

		model, err := line.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d (%s): %v\n", lineNo, line.Name, err)
			failed = true
			continue
		}

		if err := verify(model, line); err != nil {
			fmt.Printf("FAIL %-24s %v\n", line.Name, err)
			failed = true
			continue
		}
		fmt.Printf("PASS %-24s\n", line.Name)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if failed {
		os.Exit(1)
	}
}

// verify runs the universal properties of a model against its own
// check/residue fields and a random split, the way the harness
// component of this package exercises the three evaluation paths.
func verify(model any, line *paramline.Line) error {
	switch m := model.(type) {
	case *crc.Model[uint8]:
		return verifyT(m, line)
	case *crc.Model[uint16]:
		return verifyT(m, line)
	case *crc.Model[uint32]:
		return verifyT(m, line)
	case *crc.Model[uint64]:
		return verifyT(m, line)
	case *crc.Model128:
		return verify128(m)
	default:
		return fmt.Errorf("%w: unrecognized model type %T", crc.ErrUnusableModel, model)
	}
}

var errCheckMismatch = errors.New("check mismatch")
var errResidueMismatch = errors.New("residue mismatch")
var errPathMismatch = errors.New("bit/byte/word paths disagree")
var errCombineMismatch = errors.New("combine disagrees with direct computation")

func verifyT[T crc.UInt](m *crc.Model[T], line *paramline.Line) error {
	msg := []byte("123456789")
	if got := crc.Calc(m, msg); got != m.Check {
		return fmt.Errorf("%w: got %#x want %#x", errCheckMismatch, got, m.Check)
	}
	if wantRes := line.ResidueBig().Uint64(); uint64(m.Res) != wantRes {
		return fmt.Errorf("%w: got %#x want %#x", errResidueMismatch, m.Res, wantRes)
	}

	h := crc.NewHash(m)
	buf := make([]byte, 257)
	rand.New(rand.NewSource(1)).Read(buf)
	for split := 0; split <= len(buf); split++ {
		h.Reset()
		h.Write(buf[:split])
		h.Write(buf[split:])
		if got := h.SumT(); got != crc.Calc(m, buf) {
			return fmt.Errorf("%w at split %d", errPathMismatch, split)
		}
	}

	rnd := rand.New(rand.NewSource(2))
	a := make([]byte, 1+rnd.Intn(64))
	b := make([]byte, 1+rnd.Intn(64))
	rnd.Read(a)
	rnd.Read(b)
	crc1 := crc.Calc(m, a)
	crc2 := crc.Calc(m, b)
	want := crc.Calc(m, append(append([]byte{}, a...), b...))
	if got := crc.CrcCombine(m, crc1, crc2, uint64(len(b))); got != want {
		return fmt.Errorf("%w: got %#x want %#x", errCombineMismatch, got, want)
	}

	return nil
}

func verify128(m *crc.Model128) error {
	gotHi, gotLo := crc.CalcParts(m, []byte("123456789"))
	wantHi, wantLo := m.CheckParts()
	if gotHi != wantHi || gotLo != wantLo {
		return fmt.Errorf("%w: got %#x%016x want %#x%016x", errCheckMismatch, gotHi, gotLo, wantHi, wantLo)
	}

	a, b := []byte("12345"), []byte("6789")
	crc1Hi, crc1Lo := crc.CalcParts(m, a)
	crc2Hi, crc2Lo := crc.CalcParts(m, b)
	gotHi, gotLo = crc.CombinePartsDbl(m, crc1Hi, crc1Lo, crc2Hi, crc2Lo, uint64(len(b)))
	wantHi, wantLo = crc.CalcParts(m, append(append([]byte{}, a...), b...))
	if gotHi != wantHi || gotLo != wantLo {
		return fmt.Errorf("%w on %s", errCombineMismatch, m.Name)
	}
	return nil
}
