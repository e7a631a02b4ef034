// Package common provides shared CSV output helpers used by the CLI and the
// CSV transaction sink.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/bill-import/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Delimiter is the global CSV output delimiter.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteRecordsToCSV writes parsed import records to a CSV file for preview
// or external processing. RawFields and Selected are excluded by tag.
func WriteRecordsToCSV(records []models.ImportedRecord, csvFile string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}
	return writeCSV(&records, csvFile, len(records))
}

// WriteTransactionsToCSV writes committed transactions to a CSV ledger
// file. All sinks should use this function for consistent output.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}
	return writeCSV(&transactions, csvFile, len(transactions))
}

func writeCSV(out interface{}, csvFile string, count int) error {
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": count,
	}).Info("Writing CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter

	if err := gocsv.MarshalCSV(out, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
