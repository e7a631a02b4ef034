package importer

import (
	"strings"

	"fjacquet/bill-import/internal/sources"
)

// locateHeader scans lines top-to-bottom and returns the index of the first
// line satisfying the source's header predicate: every keyword group has at
// least one keyword contained in the line. Matching is case-sensitive for
// sources that declare it, case-insensitive otherwise.
//
// When no line matches, index 0 is returned with found=false; the caller
// keeps the historical fallback of treating the first line as the header.
func locateHeader(lines []string, desc sources.Descriptor, scanLimit int) (int, bool) {
	limit := len(lines)
	if scanLimit > 0 && scanLimit < limit {
		limit = scanLimit
	}

	for i := 0; i < limit; i++ {
		if matchesHeader(lines[i], desc) {
			return i, true
		}
	}
	return 0, false
}

func matchesHeader(line string, desc sources.Descriptor) bool {
	if !desc.CaseSensitive {
		line = strings.ToLower(line)
	}

	for _, group := range desc.HeaderGroups {
		matched := false
		for _, keyword := range group {
			if !desc.CaseSensitive {
				keyword = strings.ToLower(keyword)
			}
			if strings.Contains(line, keyword) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
