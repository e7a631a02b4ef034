package importer

import (
	"strings"

	"fjacquet/bill-import/internal/sources"
)

// ColumnMap associates each semantic field with a column index for one
// file. An index of -1 means the column is absent. Built once from the
// header row and reused for every data row.
type ColumnMap map[sources.Field]int

// resolveColumns maps every semantic field to a column index. Keywords are
// matched by substring containment against header tokens, in keyword order;
// a miss falls back to the descriptor's fixed default index. Resolution is
// total: every field ends up with some index, even if wrong, which is the
// deliberate tradeoff for older export layouts that omit expected headers.
func resolveColumns(header []string, desc sources.Descriptor) ColumnMap {
	cols := make(ColumnMap, len(sources.Fields))

	for _, field := range sources.Fields {
		cols[field] = resolveColumn(header, desc, field)
	}
	return cols
}

func resolveColumn(header []string, desc sources.Descriptor, field sources.Field) int {
	for _, keyword := range desc.FieldKeywords[field] {
		for idx, token := range header {
			if !desc.CaseSensitive {
				token = strings.ToLower(token)
				keyword = strings.ToLower(keyword)
			}
			if strings.Contains(token, keyword) {
				return idx
			}
		}
	}
	return desc.DefaultIndex(field)
}

// fieldAt returns the trimmed value at a column index, tolerating short
// rows and absent columns by returning "".
func fieldAt(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}
