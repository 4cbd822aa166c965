package parser

import "strings"

// extractClass scans the decoded lines once for the first line matching the
// class-declaration pattern and returns that name and its zero-origin line
// index. found is false when the file has no class declaration, letting the
// caller decide whether to carry a previously-seen ambient class forward.
// The matched line is the class's opener, symmetric with the bare "}"
// class closer the top-level scheduler silently skips — the caller skips
// it the same way rather than emitting it as a Generic statement.
func extractClass(lines []string) (name string, idx int, found bool) {
	for i, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if m := classPattern.FindStringSubmatch(trimmed); m != nil {
			return m[1], i, true
		}
	}
	return "", -1, false
}
