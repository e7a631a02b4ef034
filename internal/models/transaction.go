package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the canonical persisted entity built by the committer from
// a selected ImportedRecord. Struct tags drive gocsv marshaling for the CSV
// ledger sink.
type Transaction struct {
	ID         string          `csv:"ID"`
	AccountID  string          `csv:"AccountID"`
	CategoryID string          `csv:"CategoryID"` // empty when no category matched
	Direction  Direction       `csv:"Direction"`
	Amount     decimal.Decimal `csv:"Amount"`
	Date       time.Time       `csv:"Date"`
	Note       string          `csv:"Note"`
}

// IsExpense returns true for outgoing money.
func (t *Transaction) IsExpense() bool {
	return t.Direction == Expense
}

// IsIncome returns true for incoming money.
func (t *Transaction) IsIncome() bool {
	return t.Direction == Income
}
