// Package paramline parses the textual parameter-line format the CRC
// drivers read on stdin: one model per line, whitespace-separated
// name=value pairs, minimum-unambiguous-prefix names, and decimal,
// octal, hex, or two's-complement-negative integer literals.
//
// There's no teacher analogue for a textual catalog format -
// pasztorpisti/go-crc's presets are Go literals - so the tokenizer
// below is hand-rolled byte-at-a-time the way go-gnss/spartn's
// DeserializeFrame reads its own wire format: no lexer generator, just
// an index into the line and small helpers that advance it.
package paramline

import (
	"fmt"
	"math/big"
	"strings"

	"crc"
)

// Line is a parsed-but-not-yet-built parameter line: every integer
// field is already two's-complement-reduced to width bits, but nothing
// about the host's native integer widths has been chosen yet. Build
// picks that.
type Line struct {
	Width            int
	Poly             *big.Int
	Init             *big.Int
	XorOut           *big.Int
	Check            *big.Int
	Residue          *big.Int
	RefIn, RefOut    bool
	Name             string
}

type paramSpec struct {
	full   string
	minLen int
}

// params lists the recognized field names with their minimum
// unambiguous prefix length. The two fields that would otherwise
// collide on a bare "r" - refin and refout - are split apart by
// refout's longer minimum ("refo"); residue's "res" minimum keeps it
// out of refin's way too.
var params = []paramSpec{
	{"width", 1},
	{"poly", 1},
	{"init", 1},
	{"refin", 1},
	{"refout", 4},
	{"xorout", 1},
	{"check", 1},
	{"residue", 3},
	{"name", 1},
}

func resolveName(key string) (string, error) {
	key = strings.ToLower(key)
	match := ""
	for _, p := range params {
		if len(key) >= p.minLen && len(key) <= len(p.full) && strings.HasPrefix(p.full, key) {
			if match != "" {
				return "", fmt.Errorf("%w: parameter %q is ambiguous", crc.ErrParse, key)
			}
			match = p.full
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: unknown parameter %q", crc.ErrParse, key)
	}
	return match, nil
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

// tokenize splits line into name=value fields, honoring a quoted value
// (double quotes, "" as an escaped quote) that may itself contain
// whitespace. Unquoted values run to the next whitespace.
func tokenize(line string) (map[string]string, error) {
	fields := make(map[string]string)
	i, n := 0, len(line)
	for i < n {
		for i < n && isSpace(line[i]) {
			i++
		}
		if i >= n {
			break
		}
		start := i
		for i < n && line[i] != '=' && !isSpace(line[i]) {
			i++
		}
		if i >= n || line[i] != '=' {
			return nil, fmt.Errorf("%w: missing '=' after %q", crc.ErrParse, line[start:i])
		}
		key := line[start:i]
		i++

		var value string
		if i < n && line[i] == '"' {
			i++
			var sb strings.Builder
			closed := false
			for i < n {
				if line[i] == '"' {
					if i+1 < n && line[i+1] == '"' {
						sb.WriteByte('"')
						i += 2
						continue
					}
					i++
					closed = true
					break
				}
				sb.WriteByte(line[i])
				i++
			}
			if !closed {
				return nil, fmt.Errorf("%w: unclosed quote in value for %q", crc.ErrParse, key)
			}
			value = sb.String()
		} else {
			start = i
			for i < n && !isSpace(line[i]) {
				i++
			}
			value = line[start:i]
		}

		name, err := resolveName(key)
		if err != nil {
			return nil, err
		}
		if _, dup := fields[name]; dup {
			return nil, fmt.Errorf("%w: parameter %q repeated", crc.ErrParse, name)
		}
		fields[name] = value
	}
	return fields, nil
}

// parseMagnitude reads an unsigned integer literal (decimal, octal, or
// hex) and reports whether it carried a leading '-'. The magnitude
// itself is always non-negative; sign is applied separately once the
// field's width is known.
func parseMagnitude(s string) (mag *big.Int, neg bool, err error) {
	if s == "" {
		return nil, false, fmt.Errorf("%w: empty integer literal", crc.ErrParse)
	}
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	base := 10
	switch {
	case len(s) > 2 && (s[0:2] == "0x" || s[0:2] == "0X"):
		base = 16
		s = s[2:]
	case len(s) > 1 && s[0] == '0':
		base = 8
		s = s[1:]
	}
	if s == "" {
		return nil, false, fmt.Errorf("%w: empty integer literal", crc.ErrParse)
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, false, fmt.Errorf("%w: malformed integer literal %q", crc.ErrParse, s)
	}
	return v, neg, nil
}

// parseWidthField reads the (always non-negative) width literal.
func parseWidthField(s string) (int, error) {
	v, neg, err := parseMagnitude(s)
	if err != nil {
		return 0, err
	}
	if neg {
		return 0, fmt.Errorf("%w: width may not be negative", crc.ErrParse)
	}
	if !v.IsInt64() || v.Int64() <= 0 || v.Int64() > 128 {
		return 0, fmt.Errorf("%w: width %s out of range 1..128", crc.ErrParse, v.String())
	}
	return int(v.Int64()), nil
}

// parseSignedField reads an integer literal and reduces it to its
// two's-complement representation across width bits: a negative
// literal n becomes 2^width - |n|, and a non-negative literal must
// already fit.
func parseSignedField(s string, width int) (*big.Int, error) {
	v, neg, err := parseMagnitude(s)
	if err != nil {
		return nil, err
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(width))
	if neg {
		if v.Cmp(mod) > 0 {
			return nil, fmt.Errorf("%w: value -%s does not fit in %d bits", crc.ErrParse, v.String(), width)
		}
		v = new(big.Int).Sub(mod, v)
		v.Mod(v, mod)
		return v, nil
	}
	if v.Cmp(mod) >= 0 {
		return nil, fmt.Errorf("%w: value %s does not fit in %d bits", crc.ErrParse, v.String(), width)
	}
	return v, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "t":
		return true, nil
	case "false", "f":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean (true/false/t/f)", crc.ErrParse, s)
	}
}

// Parse parses one parameter line into a Line. Required fields are
// width, poly, check, and name; init, xorout, and residue default to
// 0; at least one of refin/refout must be given, and the other then
// copies it.
func Parse(line string) (*Line, error) {
	fields, err := tokenize(line)
	if err != nil {
		return nil, err
	}

	widthStr, ok := fields["width"]
	if !ok {
		return nil, fmt.Errorf("%w: missing required parameter \"width\"", crc.ErrParse)
	}
	width, err := parseWidthField(widthStr)
	if err != nil {
		return nil, err
	}

	polyStr, ok := fields["poly"]
	if !ok {
		return nil, fmt.Errorf("%w: missing required parameter \"poly\"", crc.ErrParse)
	}
	poly, err := parseSignedField(polyStr, width)
	if err != nil {
		return nil, err
	}

	checkStr, ok := fields["check"]
	if !ok {
		return nil, fmt.Errorf("%w: missing required parameter \"check\"", crc.ErrParse)
	}
	check, err := parseSignedField(checkStr, width)
	if err != nil {
		return nil, err
	}

	name, ok := fields["name"]
	if !ok {
		return nil, fmt.Errorf("%w: missing required parameter \"name\"", crc.ErrParse)
	}

	init := big.NewInt(0)
	if s, ok := fields["init"]; ok {
		if init, err = parseSignedField(s, width); err != nil {
			return nil, err
		}
	}
	xorout := big.NewInt(0)
	if s, ok := fields["xorout"]; ok {
		if xorout, err = parseSignedField(s, width); err != nil {
			return nil, err
		}
	}
	residue := big.NewInt(0)
	if s, ok := fields["residue"]; ok {
		if residue, err = parseSignedField(s, width); err != nil {
			return nil, err
		}
	}

	refinStr, hasRefin := fields["refin"]
	refoutStr, hasRefout := fields["refout"]
	if !hasRefin && !hasRefout {
		return nil, fmt.Errorf("%w: one of \"refin\"/\"refout\" is required", crc.ErrParse)
	}
	var refin, refout bool
	if hasRefin {
		if refin, err = parseBool(refinStr); err != nil {
			return nil, err
		}
	}
	if hasRefout {
		if refout, err = parseBool(refoutStr); err != nil {
			return nil, err
		}
	}
	if !hasRefin {
		refin = refout
	}
	if !hasRefout {
		refout = refin
	}

	return &Line{
		Width:   width,
		Poly:    poly,
		Init:    init,
		XorOut:  xorout,
		Check:   check,
		Residue: residue,
		RefIn:   refin,
		RefOut:  refout,
		Name:    name,
	}, nil
}

// splitHiLo decomposes a non-negative value below 2^128 into its upper
// and lower 64-bit halves, hi holding bits 64..127.
func splitHiLo(v *big.Int) (hi, lo uint64) {
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo = new(big.Int).And(v, mask64).Uint64()
	hi = new(big.Int).Rsh(v, 64).Uint64()
	return hi, lo
}

// Build constructs the narrowest Model the line's width calls for:
// *crc.Model[uint8/16/32/64] for width ≤ 64, *crc.Model128 for width in
// 65..128. Callers type-switch on the result, the same pattern the
// generated-source ABI uses to pick T at compile time.
func (l *Line) Build() (any, error) {
	switch {
	case l.Width <= 8:
		return crc.NewModel[uint8](l.Width, uint8(l.Poly.Uint64()), uint8(l.Init.Uint64()), uint8(l.XorOut.Uint64()), l.RefIn, l.RefOut, uint8(l.Check.Uint64()), l.Name)
	case l.Width <= 16:
		return crc.NewModel[uint16](l.Width, uint16(l.Poly.Uint64()), uint16(l.Init.Uint64()), uint16(l.XorOut.Uint64()), l.RefIn, l.RefOut, uint16(l.Check.Uint64()), l.Name)
	case l.Width <= 32:
		return crc.NewModel[uint32](l.Width, uint32(l.Poly.Uint64()), uint32(l.Init.Uint64()), uint32(l.XorOut.Uint64()), l.RefIn, l.RefOut, uint32(l.Check.Uint64()), l.Name)
	case l.Width <= 64:
		return crc.NewModel[uint64](l.Width, l.Poly.Uint64(), l.Init.Uint64(), l.XorOut.Uint64(), l.RefIn, l.RefOut, l.Check.Uint64(), l.Name)
	default:
		polyHi, polyLo := splitHiLo(l.Poly)
		initHi, initLo := splitHiLo(l.Init)
		xorHi, xorLo := splitHiLo(l.XorOut)
		checkHi, checkLo := splitHiLo(l.Check)
		return crc.NewModel128FromParts(l.Width, polyHi, polyLo, initHi, initLo, xorHi, xorLo, l.RefIn, l.RefOut, checkHi, checkLo, l.Name)
	}
}

// ResidueBig returns the parsed residue field, for callers verifying it
// against the built Model's own Res.
func (l *Line) ResidueBig() *big.Int { return l.Residue }
