// Command crcgen (aka crcall) reads CRC parameter lines on stdin and
// emits, for each model with width within the host word, a standalone
// NAME.h/NAME.c pair into src/ (created with mode 0755 if absent),
// plus two aggregate files: test_src.[ch], a runtime harness exercising
// every generated model's check value and cross-path agreement, and
// allcrcs.[ch], a discovery table of {name, normalized_name, width,
// function_pointer}. An existing NAME.h or NAME.c is never overwritten;
// that model is skipped with a diagnostic instead.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"crc"
	"crc/internal/codegen"
	"crc/internal/paramline"
)

const srcDir = "src"

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := os.MkdirAll(srcDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "crcgen: creating %s: %v\n", srcDir, err)
		os.Exit(1)
	}

	var entries []codegen.AggregateEntry
	failed := false
	scanner := bufio.NewScanner(os.Stdin)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		pl, err := paramline.Parse(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)
			failed = true
			continue
		}

		if pl.Width > 64 {
			fmt.Fprintf(os.Stderr, "%s: %v (width %d exceeds the host word; skipping code generation)\n", pl.Name, crc.ErrWidthExceedsWord, pl.Width)
			continue
		}

		model, err := pl.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", pl.Name, err)
			failed = true
			continue
		}

		entry, err := emitModel(model, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", pl.Name, err)
			if errors.Is(err, crc.ErrNameCollision) {
				continue
			}
			failed = true
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := emitAggregates(entries); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if failed {
		os.Exit(1)
	}
}

type flagOpts struct {
	little    bool
	wordBytes int
}

// parseFlags hand-rolls the three single-dash flags instead of using
// the flag package, since -b/-l/-4 aren't flag.Bool-shaped (no "=value"
// form is accepted, and an unrecognized flag must exit non-zero with no
// further output).
func parseFlags(args []string) (flagOpts, error) {
	opts := flagOpts{little: true, wordBytes: 8}
	for _, a := range args {
		switch a {
		case "-b":
			opts.little = false
		case "-l":
			opts.little = true
		case "-4":
			opts.wordBytes = 4
		default:
			return opts, fmt.Errorf("crcgen: unknown flag %q", a)
		}
	}
	return opts, nil
}

func emitModel(model any, opts flagOpts) (codegen.AggregateEntry, error) {
	switch m := model.(type) {
	case *crc.Model[uint8]:
		return emitModelT(m, opts)
	case *crc.Model[uint16]:
		return emitModelT(m, opts)
	case *crc.Model[uint32]:
		return emitModelT(m, opts)
	case *crc.Model[uint64]:
		return emitModelT(m, opts)
	default:
		return codegen.AggregateEntry{}, fmt.Errorf("%w: unrecognized model type %T", crc.ErrUnusableModel, model)
	}
}

func emitModelT[T crc.UInt](m *crc.Model[T], opts flagOpts) (codegen.AggregateEntry, error) {
	prefix := codegen.SymbolPrefix(m.Name, m.Width)
	hPath := filepath.Join(srcDir, prefix+".h")
	cPath := filepath.Join(srcDir, prefix+".c")

	if exists(hPath) || exists(cPath) {
		return codegen.AggregateEntry{}, fmt.Errorf("%w: %s or %s", crc.ErrNameCollision, hPath, cPath)
	}

	hFile, err := os.OpenFile(hPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return codegen.AggregateEntry{}, fmt.Errorf("%w: %s", crc.ErrNameCollision, hPath)
		}
		return codegen.AggregateEntry{}, fmt.Errorf("%w: opening %s: %v", crc.ErrResource, hPath, err)
	}
	cFile, err := os.OpenFile(cPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		hFile.Close()
		os.Remove(hPath)
		if os.IsExist(err) {
			return codegen.AggregateEntry{}, fmt.Errorf("%w: %s", crc.ErrNameCollision, cPath)
		}
		return codegen.AggregateEntry{}, fmt.Errorf("%w: opening %s: %v", crc.ErrResource, cPath, err)
	}

	err = codegen.Emit(hFile, cFile, m, codegen.EmitOptions{WordBytes: opts.wordBytes, Little: opts.little})
	hErr := hFile.Close()
	cErr := cFile.Close()
	if err != nil || hErr != nil || cErr != nil {
		os.Remove(hPath)
		os.Remove(cPath)
		if err == nil {
			err = errors.Join(hErr, cErr)
		}
		return codegen.AggregateEntry{}, fmt.Errorf("%w: %v", crc.ErrResource, err)
	}

	return codegen.EntryFor(m), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// testBuf is generated once per crcgen invocation from a fixed seed, so
// repeated runs over the same input produce byte-identical output.
func testBuf() [31]byte {
	var buf [31]byte
	rand.New(rand.NewSource(1)).Read(buf[:])
	return buf
}

func emitAggregates(entries []codegen.AggregateEntry) error {
	hPath := filepath.Join(srcDir, "allcrcs.h")
	cPath := filepath.Join(srcDir, "allcrcs.c")
	if err := writeFile(hPath, func(w *os.File) error { return codegen.EmitAllCRCsHeader(w) }); err != nil {
		return err
	}
	if err := writeFile(cPath, func(w *os.File) error { return codegen.EmitAllCRCsSource(w, entries) }); err != nil {
		return err
	}

	thPath := filepath.Join(srcDir, "test_src.h")
	tcPath := filepath.Join(srcDir, "test_src.c")
	if err := writeFile(thPath, func(w *os.File) error { return codegen.EmitTestSrcHeader(w) }); err != nil {
		return err
	}
	buf := testBuf()
	if err := writeFile(tcPath, func(w *os.File) error { return codegen.EmitTestSrcSource(w, entries, buf) }); err != nil {
		return err
	}
	return nil
}

// writeFile overwrites path unconditionally: unlike per-model outputs,
// the aggregate files summarize this entire run and are meant to be
// regenerated every time crcgen is invoked.
func writeFile(path string, emit func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", crc.ErrResource, path, err)
	}
	defer f.Close()
	if err := emit(f); err != nil {
		return fmt.Errorf("%w: writing %s: %v", crc.ErrResource, path, err)
	}
	return nil
}
