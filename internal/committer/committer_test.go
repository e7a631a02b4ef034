package committer

import (
	"errors"
	"testing"
	"time"

	"fjacquet/bill-import/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var liveCategories = []models.Category{
	{ID: "cat-dining", Name: "餐饮", Direction: models.Expense},
	{ID: "cat-salary", Name: "工资", Direction: models.Income},
	{ID: "cat-other-exp", Name: "Other", Direction: models.Expense},
	{ID: "cat-other-inc", Name: "Other", Direction: models.Income},
}

func record(category string, direction models.Direction, selected bool) models.ImportedRecord {
	rec := models.NewImportedRecord(
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		decimal.NewFromFloat(88.50), direction, category, "note", nil)
	rec.Selected = selected
	return rec
}

func TestCommitSelectedRecords(t *testing.T) {
	sink := &MockSink{}
	c := New(sink)

	records := []models.ImportedRecord{
		record("餐饮", models.Expense, true),
		record("工资", models.Income, false), // deselected, must be discarded
	}

	results := c.Commit(records, liveCategories, "acc-1")

	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, records[0].ID, results[0].RecordID)
	assert.NotEmpty(t, results[0].TransactionID)

	require.Len(t, sink.Inserted, 1)
	tx := sink.Inserted[0]
	assert.Equal(t, "acc-1", tx.AccountID)
	assert.Equal(t, "cat-dining", tx.CategoryID)
	assert.Equal(t, models.Expense, tx.Direction)
	assert.True(t, decimal.NewFromFloat(88.50).Equal(tx.Amount))
}

func TestCommitFallsBackToOtherCategory(t *testing.T) {
	sink := &MockSink{}
	c := New(sink)

	results := c.Commit([]models.ImportedRecord{
		record("没见过的分类", models.Expense, true),
	}, liveCategories, "acc-1")

	require.Len(t, results, 1)
	assert.Equal(t, "cat-other-exp", sink.Inserted[0].CategoryID)
}

func TestCommitDirectionDisambiguatesCategories(t *testing.T) {
	sink := &MockSink{}
	c := New(sink)

	c.Commit([]models.ImportedRecord{
		record("Other", models.Income, true),
	}, liveCategories, "acc-1")

	require.Len(t, sink.Inserted, 1)
	assert.Equal(t, "cat-other-inc", sink.Inserted[0].CategoryID)
}

func TestCommitWithoutAnyMatchLeavesCategoryEmpty(t *testing.T) {
	sink := &MockSink{}
	c := New(sink)

	c.Commit([]models.ImportedRecord{
		record("whatever", models.Expense, true),
	}, nil, "acc-1")

	require.Len(t, sink.Inserted, 1)
	assert.Empty(t, sink.Inserted[0].CategoryID, "category id stays optional")
}

func TestCommitSurfacesSinkFailuresPerRecord(t *testing.T) {
	sink := &MockSink{FailNotes: map[string]error{"note": errors.New("disk full")}}
	c := New(sink)

	good := record("餐饮", models.Expense, true)
	good.Note = "fine"
	bad := record("餐饮", models.Expense, true)

	results := c.Commit([]models.ImportedRecord{good, bad}, liveCategories, "acc-1")

	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	assert.Contains(t, results[1].Err.Error(), "disk full")
	assert.Len(t, sink.Inserted, 1, "failed insert is not recorded")
}
