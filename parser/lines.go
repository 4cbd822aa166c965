package parser

import (
	"bufio"
	"bytes"
)

// readLines decodes src into a zero-origin ordered sequence of physical
// text lines. Line numbers are reported 1-origin by callers (index+1);
// lines are trimmed only by callers that need trimmed content for matching.
func readLines(src []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(src))
	// source files may contain very long generated lines; grow the buffer
	// well past bufio's default 64KiB rather than failing the scan.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

// ReadLines exposes the same decoded line sequence ParseFile parses from,
// for callers that need it outside the parsing pipeline (e.g. the
// per-file content hash attached to an analysis result).
func ReadLines(src []byte) []string {
	return readLines(src)
}
