// Package table holds the uniform row/column model shared by the CSV and
// JSON codecs. Cells are raw strings plus a missing flag; typing of the
// Date and Amount columns happens later, in the clean package.
package table

// Well-known column names. Any other column in a source file is carried
// through untouched.
const (
	ColDate     = "Date"
	ColCategory = "Category"
	ColAmount   = "Amount"
)

// Value is a single cell. Missing cells render as "None" and never hold
// a meaningful Raw string.
type Value struct {
	Raw     string
	Missing bool
}

// MissingValue returns the sentinel for an absent or unparseable cell.
func MissingValue() Value {
	return Value{Missing: true}
}

// String returns the cell for display, with "None" standing in for missing.
func (v Value) String() string {
	if v.Missing {
		return "None"
	}
	return v.Raw
}

// Table is an ordered set of columns and rows as read from a source file.
// Row cells align positionally with Columns.
type Table struct {
	Columns []string
	Rows    [][]Value
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.ColumnIndex(name)
	return ok
}

// Get returns the cell at (row, column). Unknown columns and out-of-range
// rows read as missing.
func (t *Table) Get(row int, column string) Value {
	idx, ok := t.ColumnIndex(column)
	if !ok || row < 0 || row >= len(t.Rows) {
		return MissingValue()
	}
	return t.Rows[row][idx]
}

// Set overwrites the cell at (row, column). Out-of-range writes are ignored.
func (t *Table) Set(row int, column string, v Value) {
	idx, ok := t.ColumnIndex(column)
	if !ok || row < 0 || row >= len(t.Rows) {
		return
	}
	t.Rows[row][idx] = v
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
