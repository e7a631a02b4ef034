// Package sources defines the import source registry: one data-only
// descriptor per supported third-party export format. All per-source
// behavior differences (header keywords, column defaults, category tables,
// status filtering, direction policy) live here as data; one generic
// pipeline in the importer package dispatches over them.
package sources

import "fjacquet/bill-import/internal/categorizer"

// Source identifies a known export format.
type Source string

const (
	Alipay      Source = "alipay"
	WeChatPay   Source = "wechatpay"
	Qianji      Source = "qianji"
	Suishouji   Source = "suishouji"
	Spreadsheet Source = "spreadsheet"
	Generic     Source = "generic"
)

// Field names the semantic columns the engine resolves per file.
type Field string

const (
	FieldDate         Field = "date"
	FieldAmount       Field = "amount"
	FieldDirection    Field = "direction"
	FieldCategory     Field = "category"
	FieldNote         Field = "note"
	FieldCounterparty Field = "counterparty"
	FieldStatus       Field = "status"
)

// Fields lists every semantic field in resolution order.
var Fields = []Field{
	FieldDate, FieldAmount, FieldDirection, FieldCategory,
	FieldNote, FieldCounterparty, FieldStatus,
}

// Descriptor carries the static per-source metadata. Descriptors are
// immutable and defined at compile time.
type Descriptor struct {
	ID    Source
	Name  string
	Icon  string
	Color string

	// Locale of the export's column titles, informational only.
	Locale string

	// CaseSensitive controls header and column keyword matching. The zh
	// sources match case-sensitively; generic and spreadsheet match
	// case-insensitively.
	CaseSensitive bool

	// HeaderGroups locate the header row: a line is the header when every
	// group has at least one keyword contained in it.
	HeaderGroups [][]string

	// FieldKeywords resolve each semantic field to a column index by
	// substring match against header tokens, in keyword order.
	FieldKeywords map[Field][]string

	// FieldDefaults are the fallback column indexes used when keyword
	// resolution fails. A missing entry means the column is absent (-1).
	FieldDefaults map[Field]int

	// CategoryTable maps native labels to the canonical set. Empty for
	// passthrough sources.
	CategoryTable []categorizer.Rule

	// CategoryPassthrough keeps the native label instead of mapping it.
	CategoryPassthrough bool

	// StatusExcludes silently drop a row when its status field contains
	// any of these keywords (cancelled/refunded rows).
	StatusExcludes []string

	// TransferKeywords silently drop a row when its direction/type field
	// contains any of these (transfers are neither expense nor income).
	TransferKeywords []string

	// IncomeKeywords force income when the direction/type field contains
	// one; otherwise an explicit flag means expense.
	IncomeKeywords []string

	// SignBased derives direction from the amount sign when no direction
	// column resolves or its value is empty.
	SignBased bool

	// DateLayouts pins the ordered date layouts for this source; empty
	// uses dateutils.CommonLayouts.
	DateLayouts []string
}

// DefaultIndex returns the fallback column index for a field, or -1 when
// the descriptor declares no such column.
func (d Descriptor) DefaultIndex(f Field) int {
	if idx, ok := d.FieldDefaults[f]; ok {
		return idx
	}
	return -1
}

// Get returns the descriptor for a source. Unknown sources are not an
// error: the generic fallback descriptor is returned instead.
func Get(s Source) (Descriptor, bool) {
	for _, d := range registry {
		if d.ID == s {
			return d, true
		}
	}
	return GenericDescriptor(), false
}

// GenericDescriptor returns the cross-language fallback descriptor.
func GenericDescriptor() Descriptor {
	d, _ := Get(Generic)
	return d
}

// All returns every registered descriptor in declaration order.
func All() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}
