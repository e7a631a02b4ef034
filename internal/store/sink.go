package store

import (
	"fjacquet/bill-import/internal/common"
	"fjacquet/bill-import/internal/models"
)

// CSVSink is a TransactionSink that accumulates committed transactions and
// writes them to a CSV ledger file on Flush.
type CSVSink struct {
	path         string
	transactions []models.Transaction
}

// NewCSVSink creates a sink writing to the given path.
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

// Insert accepts one transaction. Writing is deferred to Flush so a partial
// commit never leaves a half-written ledger file.
func (s *CSVSink) Insert(tx models.Transaction) error {
	s.transactions = append(s.transactions, tx)
	return nil
}

// Flush writes all accepted transactions to the ledger file.
func (s *CSVSink) Flush() error {
	return common.WriteTransactionsToCSV(s.transactions, s.path)
}

// Count returns how many transactions the sink has accepted.
func (s *CSVSink) Count() int {
	return len(s.transactions)
}
