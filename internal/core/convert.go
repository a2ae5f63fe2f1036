package core

// convert.go provides date handling shared by the validator and the
// transformers.
//
// Import files come from spreadsheets, so dates arrive in many shapes:
//   - ISO (2024-01-15, 2024-01-15T09:30:00Z)
//   - US slashes or dashes (1/15/2024, 01-15-2024)
//   - Written months (Jan 15, 2024 or 15 Jan 2024)
//   - Two-digit years (1/15/24), resolved with TwoDigitYearPivot
//
// Exports always write dates back as YYYY-MM-DD.

import (
	"strings"
	"time"
)

// DateLayout is the layout used for every date written to CSV.
const DateLayout = "2006-01-02"

// TwoDigitYearPivot defines how 2-digit years are interpreted.
// Years that would result in dates more than this many years in the future
// are assumed to be in the previous century.
var TwoDigitYearPivot = 20

// Date layouts split by year format for proper 2-digit year handling
var (
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06", "01.02.06",
	}
	fourDigitYearLayouts = []string{
		DateLayout, time.RFC3339, time.RFC3339Nano,
		"2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02T15:04",
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
		"2006/01/02", "2006/1/2", "2006.01.02",
		"Jan 2, 2006", "Jan 2 2006", "January 2, 2006", "January 2 2006",
		"2 Jan 2006", "2 January 2006", "Mon, 02 Jan 2006",
	}
)

// ParseDate parses a date in any supported layout.
// Returns false for empty or unrecognised input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// Try 4-digit year layouts first (unambiguous)
	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	// Try 2-digit year layouts with pivot year adjustment
	pivotYear := time.Now().Year() + TwoDigitYearPivot

	for _, layout := range twoDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return t, true
		}
	}

	return time.Time{}, false
}

// IsValidDate reports whether s parses as a calendar date.
func IsValidDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}

// FormatDate renders t as YYYY-MM-DD, or "" for a nil or zero time.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// parseOptionalDate returns nil when s is empty or not a date.
func parseOptionalDate(s string) *time.Time {
	t, ok := ParseDate(s)
	if !ok {
		return nil
	}
	return &t
}
