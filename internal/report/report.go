// Package report filters complete entries by date range and rolls them up
// into a per-category spending summary.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"outlay/internal/clean"
)

// FilterByDate returns the entries whose Date lies in [start, end], both
// ends inclusive.
func FilterByDate(entries []clean.Entry, start, end time.Time) []clean.Entry {
	var out []clean.Entry
	for _, e := range entries {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CategoryTotal is one summary line.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary is the per-category rollup, ordered by category ascending. An
// empty summary is distinct from a zero total: it means no entries matched.
type Summary struct {
	Lines []CategoryTotal
}

// Empty reports whether the summary has no lines.
func (s Summary) Empty() bool {
	return len(s.Lines) == 0
}

// GrandTotal sums every line.
func (s Summary) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Lines {
		total = total.Add(l.Total)
	}
	return total
}

// Summarize groups entries by category and sums Amount within each group.
func Summarize(entries []clean.Entry) Summary {
	totals := make(map[string]decimal.Decimal)
	for _, e := range entries {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	s := Summary{}
	for cat, total := range totals {
		s.Lines = append(s.Lines, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(s.Lines, func(i, j int) bool { return s.Lines[i].Category < s.Lines[j].Category })
	return s
}
