package search

import (
	"strings"
	"time"

	"github.com/poiesic/scout/core"
)

// dateLayouts are tried in order. Slash and dash dates with the year last
// are read month first.
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	time.RFC3339,
	"2006-1-2T15:04:05",
	"1/2/2006",
	"1-2-2006",
	"1/2/06",
	"1-2-06",
}

// ParseDate reads a tender date in any of the formats seen in provider
// text and fixtures.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterByDate keeps the tenders dated in year and, when month is non-zero,
// in that month. A year of zero skips the year check. Tenders without a
// usable date are always kept, including ones whose date does not parse.
func FilterByDate(tenders []core.Tender, year, month int) []core.Tender {
	out := make([]core.Tender, 0, len(tenders))
	for _, t := range tenders {
		if matchesDate(&t, year, month) {
			out = append(out, t)
		}
	}
	return out
}

func matchesDate(t *core.Tender, year, month int) bool {
	d, ok := ParseDate(t.DateField())
	if !ok {
		return true
	}
	if year != 0 && d.Year() != year {
		return false
	}
	if month != 0 && int(d.Month()) != month {
		return false
	}
	return true
}
