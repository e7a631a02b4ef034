// Package sources handles the sources command: list the supported import
// source formats.
package sources

import (
	"fmt"

	"fjacquet/bill-import/internal/sources"

	"github.com/spf13/cobra"
)

// Cmd represents the sources command.
var Cmd = &cobra.Command{
	Use:   "sources",
	Short: "List supported import sources",
	Run:   sourcesFunc,
}

func sourcesFunc(cmd *cobra.Command, args []string) {
	for _, d := range sources.All() {
		policy := "flag column"
		if d.SignBased {
			policy = "flag column or amount sign"
		}
		fmt.Printf("%-12s %-20s locale=%-4s direction=%s\n", d.ID, d.Name, d.Locale, policy)
	}
}
