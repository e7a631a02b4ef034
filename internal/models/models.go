// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction classifies a transaction as money going out or coming in.
// It is recorded explicitly on every record and never re-derived from the
// amount sign after construction.
type Direction string

const (
	Expense Direction = "expense"
	Income  Direction = "income"
)

// RawField is one header/value pair from the original export row, kept in
// column order for audit and debugging.
type RawField struct {
	Header string
	Value  string
}

// ImportedRecord is one normalized candidate transaction produced by the
// import engine. It is not yet persisted; the user toggles Selected before
// the committer turns it into a Transaction.
type ImportedRecord struct {
	ID            string          `csv:"ID"`
	Date          time.Time       `csv:"Date"`
	Amount        decimal.Decimal `csv:"Amount"` // always strictly positive
	Direction     Direction       `csv:"Direction"`
	CategoryLabel string          `csv:"Category"`
	Note          string          `csv:"Note"`
	RawFields     []RawField      `csv:"-"`
	Selected      bool            `csv:"-"`
}

// NewImportedRecord creates a record with a fresh opaque id and Selected
// defaulting to true.
func NewImportedRecord(date time.Time, amount decimal.Decimal, direction Direction, category, note string, raw []RawField) ImportedRecord {
	return ImportedRecord{
		ID:            uuid.NewString(),
		Date:          date,
		Amount:        amount,
		Direction:     direction,
		CategoryLabel: category,
		Note:          note,
		RawFields:     raw,
		Selected:      true,
	}
}

// ImportResult accumulates the outcome of parsing one export file.
//
// Invariant: SuccessCount+FailedCount equals the number of data rows that
// reached rejection logic. Status-filtered and transfer rows are excluded
// from both counters. DuplicateCount is reserved; no component computes it
// until a deduplication policy is specified.
type ImportResult struct {
	SuccessCount   int
	FailedCount    int
	DuplicateCount int
	Records        []ImportedRecord
	Errors         []string
	Warnings       []string
}

// AddRecord appends a successfully parsed record and bumps SuccessCount.
func (r *ImportResult) AddRecord(rec ImportedRecord) {
	r.Records = append(r.Records, rec)
	r.SuccessCount++
}

// AddError records a row-level failure and bumps FailedCount.
func (r *ImportResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.FailedCount++
}

// AddWarning records a non-fatal degrade notice, e.g. the header-row
// fallback. Warnings do not affect the counters.
func (r *ImportResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// RowsExamined returns the number of data rows that reached rejection logic.
func (r *ImportResult) RowsExamined() int {
	return r.SuccessCount + r.FailedCount
}

// Category is one entry of the live category list kept by the host
// application. Lookup during commit matches on Name and Direction.
type Category struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Direction Direction `yaml:"direction"`
}
