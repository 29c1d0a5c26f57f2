package coerce

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Date layouts are tried in a fixed order; the first match wins. A match
// whose parsed components fall outside sane ranges is discarded and the
// value passes through unchanged.
var (
	// Already ISO, optionally followed by a time suffix to strip.
	isoDateRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})([T ].*)?$`)

	// ISO with single-digit month/day or a time portion.
	isoLooseRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})(?:[T ].*)?$`)

	// US month/day/year, 2- or 4-digit year.
	usDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})$`)

	// European day-month-year with dashes or dots.
	euDateRe = regexp.MustCompile(`^(\d{1,2})[.-](\d{1,2})[.-](\d{2}|\d{4})$`)

	// Written "January 15, 2024" / "Jan 15 2024".
	monthFirstRe = regexp.MustCompile(`^([A-Za-z]+)\.?\s+(\d{1,2}),?\s+(\d{4})$`)

	// Written "15 January 2024".
	dayFirstRe = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+),?\s+(\d{4})$`)
)

var monthNames = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5,
	"june": 6, "july": 7, "august": 8, "september": 9, "october": 10,
	"november": 11, "december": 12,
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6, "jul": 7,
	"aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// normalizeDate normalizes a date-like string to zero-padded YYYY-MM-DD.
// It returns the normalized value, whether any layout matched with sane
// components, and whether the result differs from the input.
func normalizeDate(s string) (string, bool, bool) {
	t := strings.TrimSpace(s)

	// Fast path: already ISO, strip any time suffix.
	if m := isoDateRe.FindStringSubmatch(t); m != nil {
		return m[1], true, m[1] != s
	}

	var year, month, day int
	switch {
	case isoLooseRe.MatchString(t):
		m := isoLooseRe.FindStringSubmatch(t)
		year, month, day = atoi(m[1]), atoi(m[2]), atoi(m[3])
	case usDateRe.MatchString(t):
		m := usDateRe.FindStringSubmatch(t)
		month, day, year = atoi(m[1]), atoi(m[2]), pivotYear(m[3])
	case euDateRe.MatchString(t):
		m := euDateRe.FindStringSubmatch(t)
		day, month, year = atoi(m[1]), atoi(m[2]), pivotYear(m[3])
	case monthFirstRe.MatchString(t):
		m := monthFirstRe.FindStringSubmatch(t)
		mo, ok := monthNames[strings.ToLower(m[1])]
		if !ok {
			return s, false, false
		}
		month, day, year = mo, atoi(m[2]), atoi(m[3])
	case dayFirstRe.MatchString(t):
		m := dayFirstRe.FindStringSubmatch(t)
		mo, ok := monthNames[strings.ToLower(m[2])]
		if !ok {
			return s, false, false
		}
		day, month, year = atoi(m[1]), mo, atoi(m[3])
	default:
		return s, false, false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1900 || year > 2100 {
		return s, false, false
	}

	out := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	return out, true, out != s
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// pivotYear expands 2-digit years: <50 lands in the 2000s, >=50 in the
// 1900s.
func pivotYear(s string) int {
	y := atoi(s)
	if len(s) == 4 {
		return y
	}
	if y < 50 {
		return 2000 + y
	}
	return 1900 + y
}
