// Package currencyutils provides amount standardization and sign extraction
// for the import engine. All money values are decimals; floats never appear.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// symbolRe matches the currency symbols and codes seen across supported
// export formats, plus whitespace.
var symbolRe = regexp.MustCompile(`[¥￥€$£\s]|CNY|RMB|USD|EUR|元`)

// StandardizeAmount strips currency symbols, whitespace and thousands
// separators so the remainder can be parsed by decimal.NewFromString.
// Handles patterns like "¥1,234.56", "￥88.50", "1'234.56", "CNY 100".
func StandardizeAmount(amountStr string) string {
	amountStr = symbolRe.ReplaceAllString(amountStr, "")

	// Thousands separators: comma only when a dot decimal point is present
	// or the trailing group is clearly not decimals.
	if strings.Contains(amountStr, ",") {
		if strings.Contains(amountStr, ".") {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		} else {
			parts := strings.Split(amountStr, ",")
			if len(parts[len(parts)-1]) <= 2 {
				// Comma used as decimal separator (1234,56)
				amountStr = strings.ReplaceAll(amountStr, ",", ".")
			} else {
				amountStr = strings.ReplaceAll(amountStr, ",", "")
			}
		}
	}

	// Apostrophes used as thousands separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return amountStr
}

// NormalizeAmount parses a raw amount field into a strictly positive
// magnitude plus a separately recorded sign. The sign is input for the
// direction resolver; it is never the final direction for sources that
// carry an explicit flag column. A zero or non-numeric magnitude is an
// error and rejects the row.
func NormalizeAmount(amountStr string) (decimal.Decimal, bool, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, false, fmt.Errorf("empty amount")
	}

	negative := strings.HasPrefix(standardized, "-")
	standardized = strings.TrimPrefix(standardized, "-")

	magnitude, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	if magnitude.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false, fmt.Errorf("amount must be positive, got '%s'", amountStr)
	}

	log.WithFields(logrus.Fields{
		"raw":       amountStr,
		"magnitude": magnitude.String(),
		"negative":  negative,
	}).Debug("Normalized amount")

	return magnitude, negative, nil
}
