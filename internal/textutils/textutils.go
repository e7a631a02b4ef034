// Package textutils provides line splitting and field tokenization utilities
// for raw export files.
package textutils

import "strings"

// Tokenize splits one text line into an ordered sequence of trimmed fields.
// The delimiter is honored only outside quoted spans; a quote character
// toggles quoting on each occurrence, so stray quotes degrade gracefully
// into an unexpected field count rather than an error. Callers must
// tolerate short rows.
func Tokenize(line string, delim rune) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))

	return fields
}

// SplitLines breaks raw file content into trimmed, non-empty lines. A UTF-8
// BOM on the first line is stripped so header keyword matching is not
// thrown off by invisible prefixes.
func SplitLines(content string) []string {
	content = strings.TrimPrefix(content, "\ufeff")

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// ContainsAny reports whether s contains any of the given substrings.
// Empty substrings never match.
func ContainsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
