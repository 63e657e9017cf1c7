// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import (
	"strings"
	"time"
)

// fixedLayouts are tried in order against the first 19 characters of a date
// string. Every numeric field except the year accepts one or two digits.
var fixedLayouts = []string{
	"2006-1-2",
	"2006-1-2T15:4:5",
	"1/2/2006",
	"2006/1/2",
}

// isoLayouts cover the remaining ISO-8601 shapes: a bare date, or a date
// and time with space or T separator, optional minutes/seconds/fractions,
// and an optional numeric offset.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04-07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04-07:00",
	"2006-01-02 15:04",
	"2006-01-02T15-07:00",
	"2006-01-02T15",
	"2006-01-02 15-07:00",
	"2006-01-02 15",
	"2006-01-02",
	"20060102",
}

const fixedPrefixLen = 19

// ParseDate converts a date-like value to a time. Numbers (serial or epoch
// values) and empty values are treated as unset. Strings are matched against
// the fixed layouts first, then against ISO-8601 with any "Z" removed. The
// boolean is false when nothing matched.
func ParseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	prefix := truncateRunes(s, fixedPrefixLen)
	for _, layout := range fixedLayouts {
		if t, err := time.Parse(layout, prefix); err == nil {
			return t, true
		}
	}

	iso := strings.ReplaceAll(s, "Z", "")
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
