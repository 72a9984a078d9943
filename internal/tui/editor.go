package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"outlay/internal/table"
)

// suggestionDistance caps how far a typo may be from a real column name
// before the hint is dropped.
const suggestionDistance = 2

// parseEditCommand parses a `"Column, Row"` selection against the
// incomplete view. All failures are recoverable: the editor re-prompts.
func parseEditCommand(input string, t *table.Table) (string, int, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("expected two comma-separated parts, got %d", len(parts))
	}
	column := strings.TrimSpace(parts[0])
	rowStr := strings.TrimSpace(parts[1])
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return "", 0, fmt.Errorf("row %q is not a number", rowStr)
	}
	if !t.HasColumn(column) {
		if hint := closestColumn(column, t.Columns); hint != "" {
			return "", 0, fmt.Errorf("unknown column %q (did you mean %q?)", column, hint)
		}
		return "", 0, fmt.Errorf("unknown column %q", column)
	}
	if row < 0 || row >= t.Len() {
		return "", 0, fmt.Errorf("row %d is out of range (0-%d)", row, t.Len()-1)
	}
	return column, row, nil
}

// closestColumn returns the column name nearest to the typo, or "" when
// nothing is close enough to be a plausible intent.
func closestColumn(input string, columns []string) string {
	best := ""
	bestDist := suggestionDistance + 1
	for _, c := range columns {
		d := levenshtein.ComputeDistance(strings.ToLower(input), strings.ToLower(c))
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

// applyEdit writes a single-cell change through to the backing file: the
// file is re-parsed fresh, the row at the same positional index as the
// edited incomplete row is patched, and the whole file is rewritten in its
// own format. The positional match is the historical contract of this flow;
// it assumes the file's row order still matches the load order.
func applyEdit(path, column string, row int, value string, dateLayouts []string) error {
	t, err := table.Load(path)
	if err != nil {
		return fmt.Errorf("reload %s: %w", path, err)
	}
	if !t.HasColumn(column) {
		return fmt.Errorf("column %q not present in %s", column, path)
	}
	if row < 0 || row >= t.Len() {
		return fmt.Errorf("row %d not present in %s (%d rows)", row, path, t.Len())
	}
	t.Set(row, column, table.Value{Raw: value})
	if err := table.Save(path, t, dateLayouts); err != nil {
		return fmt.Errorf("rewrite %s: %w", path, err)
	}
	return nil
}
