package textfmt

import (
	"fmt"
	"time"
)

// Placeholder strings rendered when a date is missing or unparsable.  The
// prescribed forms leave a blank for manual completion rather than failing,
// so the exact underscore runs matter.
const (
	ShortDatePlaceholder = "_______________"
	LongDatePlaceholder  = "this _____ day of _____, _____"
)

// dateLayouts are the input layouts accepted at the input boundary, tried in
// order.  ISO dates come from the canonical store; the slash forms appear in
// older records imported from spreadsheets.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
	"2/1/2006",
}

// ParseDate converts a boundary date string into a *time.Time.  It returns
// nil for empty or unparsable input; per the error taxonomy an unparsable
// date is not an error, it is a missing date.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ShortDate renders a date as DD/MM/YYYY, the numeric format used in form
// field tables.  A nil date renders the fixed blank placeholder.
func ShortDate(t *time.Time) string {
	if t == nil {
		return ShortDatePlaceholder
	}
	return t.Format("02/01/2006")
}

// LongDate renders a date in the attestation style used by declarations and
// powers of attorney, e.g. "5th day of March, 2024".  A nil date renders the
// fixed fill-in-the-blank placeholder.
func LongDate(t *time.Time) string {
	if t == nil {
		return LongDatePlaceholder
	}
	return fmt.Sprintf("%s day of %s, %d", ordinal(t.Day()), t.Month().String(), t.Year())
}

// ordinal returns the English ordinal form of a day number (1st, 2nd, 3rd,
// 4th, ..., 11th, 12th, 13th, 21st, ...).
func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		// 11th, 12th, 13th keep "th" despite ending in 1, 2, 3.
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
