// Package minify rewrites a parsed parameter line back into its
// shortest equivalent textual form: hex or decimal (including the "0x"
// prefix) whichever is fewer characters, the negative two's-complement
// form when that's shorter still, optional fields omitted when they're
// at their default, and the name quoted only when it contains
// whitespace.
//
// Like internal/paramline, this has no teacher analogue - it's
// authored directly against the textual grammar paramline parses,
// sharing that package's *paramline.Line so a value round-trips
// through Parse -> Format -> Parse unchanged.
package minify

import (
	"fmt"
	"math/big"
	"strings"

	"crc/internal/paramline"
)

// formatInt picks the shortest of four equivalent spellings of v (which
// is already reduced to width bits): plain decimal, hex with a "0x"
// prefix, negative decimal, negative hex. Ties favor the earlier option
// in that list, so a run of equal-length candidates always resolves to
// plain decimal over hex, and positive over negative.
func formatInt(v *big.Int, width int) string {
	best := v.String()
	if hex := "0x" + v.Text(16); len(hex) < len(best) {
		best = hex
	}
	if v.Sign() != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(width))
		neg := new(big.Int).Sub(mod, v)
		if negDec := "-" + neg.String(); len(negDec) < len(best) {
			best = negDec
		}
		if negHex := "-0x" + neg.Text(16); len(negHex) < len(best) {
			best = negHex
		}
	}
	return best
}

// formatBool prefers the single-letter spelling the grammar also
// accepts.
func formatBool(b bool) string {
	if b {
		return "t"
	}
	return "f"
}

// formatName quotes name only when it contains whitespace, doubling
// any embedded quote to escape it per paramline's grammar.
func formatName(name string) string {
	if !strings.ContainsAny(name, " \t") {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Format renders l as the shortest parameter line that paramline.Parse
// would parse back into an equivalent Line: width and poly and check
// always present; init, xorout, and residue dropped when zero; refout
// dropped when it equals refin (so refin alone determines both on
// reparse); name quoted only if needed.
func Format(l *paramline.Line) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "width=%d poly=%s", l.Width, formatInt(l.Poly, l.Width))
	if l.Init.Sign() != 0 {
		fmt.Fprintf(&sb, " init=%s", formatInt(l.Init, l.Width))
	}
	if l.RefIn == l.RefOut {
		fmt.Fprintf(&sb, " refin=%s", formatBool(l.RefIn))
	} else {
		fmt.Fprintf(&sb, " refin=%s refout=%s", formatBool(l.RefIn), formatBool(l.RefOut))
	}
	if l.XorOut.Sign() != 0 {
		fmt.Fprintf(&sb, " xorout=%s", formatInt(l.XorOut, l.Width))
	}
	fmt.Fprintf(&sb, " check=%s", formatInt(l.Check, l.Width))
	if l.Residue.Sign() != 0 {
		fmt.Fprintf(&sb, " residue=%s", formatInt(l.Residue, l.Width))
	}
	fmt.Fprintf(&sb, " name=%s", formatName(l.Name))
	return sb.String()
}
