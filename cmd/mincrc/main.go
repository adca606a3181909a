// Command mincrc reads CRC parameter lines on stdin and writes, for
// each one, the shortest equivalent parameter line to stdout: see
// internal/minify for the encoding rules.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"crc/internal/minify"
	"crc/internal/paramline"
)

func main() {
	if len(os.Args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: mincrc < parameter-lines")
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

		fmt.Println(minify.Format(line))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}
