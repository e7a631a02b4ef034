package importer

import (
	"strings"

	"fjacquet/bill-import/internal/categorizer"
	"fjacquet/bill-import/internal/currencyutils"
	"fjacquet/bill-import/internal/dateutils"
	"fjacquet/bill-import/internal/models"
	"fjacquet/bill-import/internal/parsererror"
	"fjacquet/bill-import/internal/sources"
	"fjacquet/bill-import/internal/textutils"

	"github.com/sirupsen/logrus"
)

// processRow runs the per-row pipeline: tokenize, status filter, transfer
// filter, date and amount normalization, direction resolution, category
// mapping, note assembly, record construction.
//
// Status-filtered and transfer rows are silently dropped: they count
// neither as success nor as failure. Rows rejected for an unparseable date
// or amount increment FailedCount. The asymmetry is intentional and kept
// from the original behavior.
func (e *Engine) processRow(row int, line string, header []string, cols ColumnMap, desc sources.Descriptor, result *models.ImportResult) {
	fields := textutils.Tokenize(line, e.opts.Delimiter)

	status := fieldAt(fields, cols[sources.FieldStatus])
	if status != "" && containsAnyFold(status, desc.StatusExcludes, desc.CaseSensitive) {
		log.WithFields(logrus.Fields{"row": row, "status": status}).
			Debug("Row excluded by status filter")
		return
	}

	dirVal := fieldAt(fields, cols[sources.FieldDirection])
	if dirVal != "" && containsAnyFold(dirVal, desc.TransferKeywords, desc.CaseSensitive) {
		log.WithFields(logrus.Fields{"row": row, "type": dirVal}).
			Debug("Transfer row excluded")
		return
	}

	dateVal := fieldAt(fields, cols[sources.FieldDate])
	date, err := dateutils.ParseDateIn(dateVal, desc.DateLayouts)
	if err != nil {
		result.AddError((&parsererror.RowError{Row: row, Field: "date", Value: dateVal, Err: err}).Error())
		return
	}

	amountVal := fieldAt(fields, cols[sources.FieldAmount])
	magnitude, negative, err := currencyutils.NormalizeAmount(amountVal)
	if err != nil {
		result.AddError((&parsererror.RowError{Row: row, Field: "amount", Value: amountVal, Err: err}).Error())
		return
	}

	direction := resolveDirection(desc, dirVal, negative)
	category := categorizer.Map(fieldAt(fields, cols[sources.FieldCategory]),
		desc.CategoryTable, desc.CategoryPassthrough)
	note := buildNote(fieldAt(fields, cols[sources.FieldCounterparty]),
		fieldAt(fields, cols[sources.FieldNote]))

	result.AddRecord(models.NewImportedRecord(date, magnitude, direction, category, note,
		zipRawFields(header, fields)))
}

// resolveDirection applies the per-source policy in priority order: an
// explicit flag/type value containing an income keyword forces income,
// any other explicit value means expense; with no explicit value,
// sign-based sources read the recorded amount sign.
func resolveDirection(desc sources.Descriptor, dirVal string, negative bool) models.Direction {
	if dirVal != "" {
		if containsAnyFold(dirVal, desc.IncomeKeywords, desc.CaseSensitive) {
			return models.Income
		}
		return models.Expense
	}
	if desc.SignBased {
		if negative {
			return models.Expense
		}
		return models.Income
	}
	return models.Expense
}

// buildNote joins the counterparty/merchant and free-text note fields,
// skipping empty parts.
func buildNote(counterparty, note string) string {
	parts := make([]string, 0, 2)
	if counterparty != "" {
		parts = append(parts, counterparty)
	}
	if note != "" {
		parts = append(parts, note)
	}
	return strings.Join(parts, " ")
}

// zipRawFields pairs header tokens with row values in column order for the
// record's audit trail. Short rows yield empty values.
func zipRawFields(header, fields []string) []models.RawField {
	raw := make([]models.RawField, len(header))
	for i, h := range header {
		raw[i] = models.RawField{Header: h, Value: fieldAt(fields, i)}
	}
	return raw
}

func containsAnyFold(s string, subs []string, caseSensitive bool) bool {
	if caseSensitive {
		return textutils.ContainsAny(s, subs)
	}
	s = strings.ToLower(s)
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
