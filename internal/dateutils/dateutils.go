// Package dateutils provides multi-format date parsing for export files.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Layout constants for the encodings seen across supported export formats.
const (
	LayoutDateTimeDash    = "2006-01-02 15:04:05"
	LayoutDateTimeSlash   = "2006/01/02 15:04:05"
	LayoutDateMinuteDash  = "2006-01-02 15:04"
	LayoutDateMinuteSlash = "2006/01/02 15:04"
	LayoutDateDash        = "2006-01-02"
	LayoutDateSlash       = "2006/01/02"
	LayoutUS              = "01/02/2006"
	LayoutEuropean        = "02/01/2006"
)

// CommonLayouts is the ordered list tried when a source does not pin its own
// layouts: full date+time in both separator styles, then date-only, then the
// two ambiguous month/day orderings. First successful parse wins, so the
// ordering is part of the contract.
var CommonLayouts = []string{
	LayoutDateTimeDash,
	LayoutDateTimeSlash,
	LayoutDateMinuteDash,
	LayoutDateMinuteSlash,
	LayoutDateDash,
	LayoutDateSlash,
	LayoutUS,
	LayoutEuropean,
}

var spaceRe = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace in a raw date field.
func CleanDateString(dateStr string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate attempts to parse a date string against CommonLayouts.
func ParseDate(dateStr string) (time.Time, error) {
	return ParseDateIn(dateStr, CommonLayouts)
}

// ParseDateIn attempts to parse a date string against an ordered layout
// list, stopping at the first successful parse. An empty layout list falls
// back to CommonLayouts.
func ParseDateIn(dateStr string, layouts []string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	if len(layouts) == 0 {
		layouts = CommonLayouts
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}
