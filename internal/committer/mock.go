package committer

import "fjacquet/bill-import/internal/models"

// MockSink is an in-memory TransactionSink for testing.
type MockSink struct {
	Inserted []models.Transaction

	// InsertError, when set, is returned for every Insert call.
	InsertError error

	// FailNotes fails inserts whose note matches, for per-record error
	// testing.
	FailNotes map[string]error
}

// Insert records the transaction, or fails per the configured errors.
func (m *MockSink) Insert(tx models.Transaction) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	if err, ok := m.FailNotes[tx.Note]; ok {
		return err
	}
	m.Inserted = append(m.Inserted, tx)
	return nil
}
