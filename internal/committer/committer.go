// Package committer turns user-selected ImportedRecords into canonical
// transactions and delegates persistence to an external sink.
package committer

import (
	"fmt"

	"fjacquet/bill-import/internal/categorizer"
	"fjacquet/bill-import/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// TransactionSink is the external persistence collaborator. Its transaction
// and locking discipline is its own concern; the committer performs one
// logical insert per selected record and surfaces each outcome.
type TransactionSink interface {
	Insert(tx models.Transaction) error
}

// CommitResult reports the outcome of committing one record. Err is nil on
// success.
type CommitResult struct {
	RecordID      string
	TransactionID string
	Err           error
}

// Committer builds transactions from selected records.
type Committer struct {
	sink TransactionSink
}

// New creates a committer writing to the given sink.
func New(sink TransactionSink) *Committer {
	return &Committer{sink: sink}
}

// Commit processes every record marked selected: it resolves a category by
// exact name+direction match against the live category list, falling back
// to the direction's "Other" category, builds a canonical transaction with
// the default account id, and delegates insertion to the sink. Unselected
// records are discarded. Persistence failures are returned per record, not
// swallowed.
//
// The committer does not mutate account balances; that remains the
// persistence layer's responsibility.
func (c *Committer) Commit(records []models.ImportedRecord, categories []models.Category, accountID string) []CommitResult {
	var results []CommitResult

	for _, rec := range records {
		if !rec.Selected {
			continue
		}

		tx := models.Transaction{
			ID:         uuid.NewString(),
			AccountID:  accountID,
			CategoryID: resolveCategoryID(categories, rec.CategoryLabel, rec.Direction),
			Direction:  rec.Direction,
			Amount:     rec.Amount,
			Date:       rec.Date,
			Note:       rec.Note,
		}

		res := CommitResult{RecordID: rec.ID, TransactionID: tx.ID}
		if err := c.sink.Insert(tx); err != nil {
			res.Err = fmt.Errorf("insert transaction for record %s: %w", rec.ID, err)
			log.WithError(err).WithField("record", rec.ID).Error("Failed to persist transaction")
		}
		results = append(results, res)
	}

	log.WithFields(logrus.Fields{
		"committed": len(results),
		"total":     len(records),
	}).Info("Commit completed")

	return results
}

// resolveCategoryID looks up a category by exact name and direction, then
// falls back to the direction's "Other" category. An empty id means no
// category could be resolved at all; the transaction's category stays
// optional.
func resolveCategoryID(categories []models.Category, name string, direction models.Direction) string {
	for _, cat := range categories {
		if cat.Name == name && cat.Direction == direction {
			return cat.ID
		}
	}
	for _, cat := range categories {
		if cat.Name == categorizer.Fallback && cat.Direction == direction {
			return cat.ID
		}
	}
	return ""
}
