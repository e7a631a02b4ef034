// Package parse handles the parse command: convert one export file into
// canonical import records for preview.
package parse

import (
	"fmt"
	"os"

	"fjacquet/bill-import/cmd/root"
	"fjacquet/bill-import/internal/common"
	"fjacquet/bill-import/internal/importer"
	"fjacquet/bill-import/internal/models"
	"fjacquet/bill-import/internal/sources"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Cmd represents the parse command.
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a finance app export file",
	Long: `Parse an export file from a third-party finance app into canonical
import records, reporting per-row failures without aborting the batch.`,
	Run: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}

	result, err := parseFile(root.SharedFlags.Input, sources.Source(root.SharedFlags.Source))
	if err != nil {
		root.Log.Fatalf("Error parsing file: %v", err)
	}

	root.Log.WithFields(logrus.Fields{
		"success": result.SuccessCount,
		"failed":  result.FailedCount,
	}).Info("Parse completed")

	for _, warning := range result.Warnings {
		root.Log.Warn(warning)
	}
	for _, rowErr := range result.Errors {
		root.Log.Warn(rowErr)
	}

	if result.SuccessCount == 0 {
		root.Log.Warn("No valid rows found, check the file format and selected source")
	}

	if root.SharedFlags.Output != "" {
		if err := common.WriteRecordsToCSV(result.Records, root.SharedFlags.Output); err != nil {
			root.Log.Fatalf("Error writing output: %v", err)
		}
		root.Log.WithField("file", root.SharedFlags.Output).Info("Records written")
	}
}

func parseFile(path string, src sources.Source) (*models.ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}

	engine := importer.New(root.EngineOptions())
	return engine.Parse(string(data), src)
}
