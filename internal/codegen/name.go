package codegen

import (
	"fmt"
	"regexp"
	"strings"
)

// leadingCRCPrefix matches "crc[-0-9]*[/]" prefix, e.g.
// "CRC-16/" or "crc32/" - stripped from the model name before deriving
// the generated symbol suffix.
var leadingCRCPrefix = regexp.MustCompile(`(?i)^crc[-0-9]*/`)

// nonAlnum matches any run of characters that isn't a letter or digit,
// collapsed to a single underscore in the generated suffix.
var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// SymbolPrefix derives the generated function-name prefix "crc<width><suffix>"
// from a catalog name, strip a
// leading "crc[-0-9]*/" prefix, replace non-alphanumerics with "_", and
// prepend "_" if the remaining suffix would start with a digit.
func SymbolPrefix(name string, width int) string {
	suffix := strings.ToLower(name)
	suffix = leadingCRCPrefix.ReplaceAllString(suffix, "")
	suffix = nonAlnum.ReplaceAllString(suffix, "_")
	suffix = strings.Trim(suffix, "_")
	if suffix == "" {
		suffix = "model"
	}
	if suffix[0] >= '0' && suffix[0] <= '9' {
		suffix = "_" + suffix
	}
	return fmt.Sprintf("crc%d%s", width, suffix)
}
