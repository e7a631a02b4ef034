// Package commit handles the commit command: parse an export file and
// persist all records to the CSV ledger sink.
package commit

import (
	"os"

	"fjacquet/bill-import/cmd/root"
	"fjacquet/bill-import/internal/committer"
	"fjacquet/bill-import/internal/importer"
	"fjacquet/bill-import/internal/sources"
	"fjacquet/bill-import/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Cmd represents the commit command.
var Cmd = &cobra.Command{
	Use:   "commit",
	Short: "Parse an export file and commit transactions to the ledger",
	Long: `Parse an export file and commit every parsed record as a canonical
transaction to the CSV ledger, resolving categories against the live
category list. Interactive record selection happens in the host app; the
CLI commits everything that parsed.`,
	Run: commitFunc,
}

func commitFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}
	if root.SharedFlags.Output == "" {
		root.Log.Fatal("No output ledger file specified, use --output")
	}

	data, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	engine := importer.New(root.EngineOptions())
	result, err := engine.Parse(string(data), sources.Source(root.SharedFlags.Source))
	if err != nil {
		root.Log.Fatalf("Error parsing file: %v", err)
	}
	for _, warning := range result.Warnings {
		root.Log.Warn(warning)
	}

	categories, err := store.NewCategoryStore(root.SharedFlags.Categories).LoadCategories()
	if err != nil {
		root.Log.Fatalf("Error loading categories: %v", err)
	}

	sink := store.NewCSVSink(root.SharedFlags.Output)
	results := committer.New(sink).Commit(result.Records, categories, root.SharedFlags.Account)

	var failures int
	for _, res := range results {
		if res.Err != nil {
			failures++
			root.Log.WithError(res.Err).WithField("record", res.RecordID).Warn("Record not committed")
		}
	}

	if err := sink.Flush(); err != nil {
		root.Log.Fatalf("Error writing ledger file: %v", err)
	}

	root.Log.WithFields(logrus.Fields{
		"committed": sink.Count(),
		"failed":    failures,
		"file":      root.SharedFlags.Output,
	}).Info("Commit completed")
}
