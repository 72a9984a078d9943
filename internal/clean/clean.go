// Package clean coerces the typed columns of a loaded table and partitions
// its rows into complete entries and an incomplete sub-table.
//
// Coercion never fails: a Date or Amount cell that does not parse is
// demoted to the missing sentinel, which in turn demotes the row to the
// incomplete set. Coerced cells are rewritten in canonical form, so running
// Partition twice over the same table is a no-op after the first pass.
package clean

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"outlay/internal/table"
)

// canonicalDateLayout is the form coerced Date cells are rewritten in.
const canonicalDateLayout = "2006-01-02"

// Entry is a fully typed complete row.
type Entry struct {
	Source   int // row position in the loaded table
	Date     time.Time
	Category string
	Amount   decimal.Decimal
}

// Incomplete is the sub-table of rows with at least one missing cell. Row
// indices are reset to a dense 0-based sequence; Sources maps each reset
// index back to the row's position in the loaded table.
type Incomplete struct {
	Table   table.Table
	Sources []int
}

// Len returns the number of incomplete rows.
func (in Incomplete) Len() int {
	return in.Table.Len()
}

// Result is the outcome of one partition pass.
type Result struct {
	Complete   []Entry
	Incomplete Incomplete
}

// ParseDate tries each layout in order. The canonical and ISO layouts are
// always tried so coerced and JSON-round-tripped cells re-parse.
func ParseDate(s string, layouts []string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if d, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// ParseAmount parses a decimal amount, tolerating thousands separators.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// DateLayouts returns the parse layouts for a configured list, with the
// built-in canonical forms appended.
func DateLayouts(configured []string) []string {
	layouts := make([]string, 0, len(configured)+3)
	layouts = append(layouts, configured...)
	for _, l := range []string{canonicalDateLayout, "2006-01-02T15:04:05.000", "2006-01-02T15:04:05"} {
		if !containsLayout(layouts, l) {
			layouts = append(layouts, l)
		}
	}
	return layouts
}

func containsLayout(layouts []string, l string) bool {
	for _, have := range layouts {
		if have == l {
			return true
		}
	}
	return false
}

// Partition coerces the Date and Amount columns of t in place and splits its
// rows. A row is complete when Date, Category, and Amount are all present
// and well typed; it is incomplete when any cell in any column is missing.
func Partition(t *table.Table, dateLayouts []string) Result {
	coerce(t, dateLayouts)

	res := Result{}
	res.Incomplete.Table.Columns = append([]string(nil), t.Columns...)

	dateIdx, hasDate := t.ColumnIndex(table.ColDate)
	catIdx, hasCat := t.ColumnIndex(table.ColCategory)
	amtIdx, hasAmt := t.ColumnIndex(table.ColAmount)

	for ri, row := range t.Rows {
		if hasDate && hasCat && hasAmt &&
			!row[dateIdx].Missing && !row[catIdx].Missing && !row[amtIdx].Missing {
			date, okD := ParseDate(row[dateIdx].Raw, dateLayouts)
			amount, okA := ParseAmount(row[amtIdx].Raw)
			if okD && okA {
				res.Complete = append(res.Complete, Entry{
					Source:   ri,
					Date:     date,
					Category: row[catIdx].Raw,
					Amount:   amount,
				})
			}
		}
		if rowHasMissing(row) {
			res.Incomplete.Table.Rows = append(res.Incomplete.Table.Rows, append([]table.Value(nil), row...))
			res.Incomplete.Sources = append(res.Incomplete.Sources, ri)
		}
	}
	return res
}

// coerce rewrites the Date and Amount columns in canonical form, demoting
// unparseable cells to missing.
func coerce(t *table.Table, dateLayouts []string) {
	if idx, ok := t.ColumnIndex(table.ColDate); ok {
		for ri := range t.Rows {
			cell := &t.Rows[ri][idx]
			if cell.Missing {
				continue
			}
			d, ok := ParseDate(cell.Raw, dateLayouts)
			if !ok {
				*cell = table.MissingValue()
				continue
			}
			cell.Raw = d.Format(canonicalDateLayout)
		}
	}
	if idx, ok := t.ColumnIndex(table.ColAmount); ok {
		for ri := range t.Rows {
			cell := &t.Rows[ri][idx]
			if cell.Missing {
				continue
			}
			d, ok := ParseAmount(cell.Raw)
			if !ok {
				*cell = table.MissingValue()
				continue
			}
			cell.Raw = d.String()
		}
	}
}

func rowHasMissing(row []table.Value) bool {
	for _, v := range row {
		if v.Missing {
			return true
		}
	}
	return false
}

// Categories returns the distinct categories of a set of entries in
// ascending order. Exposed for prompt completion and reporting.
func Categories(entries []Entry) []string {
	seen := make(map[string]bool, len(entries))
	var out []string
	for _, e := range entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	sort.Strings(out)
	return out
}
