package tui

import (
	"fmt"
	"strconv"
	"strings"

	"outlay/internal/table"
)

const bannerWidth = 50

func (m Model) View() string {
	if m.fatalErr != nil {
		return statusErrStyle.Render(fmt.Sprintf("An unexpected error occurred: %v", m.fatalErr)) + "\n"
	}
	if m.quitMessage != "" {
		return m.quitMessage + "\n"
	}

	var b strings.Builder
	switch m.state {
	case statePath:
		b.WriteString(titleStyle.Render(appName) + "\n\n")
		b.WriteString(promptStyle.Render("Enter the file path (CSV/JSON):") + "\n")
		b.WriteString(m.input.View() + "\n")
	case stateRange:
		b.WriteString(promptStyle.Render("Select a time range:") + "\n")
		b.WriteString(menuStyle.Render("1. Last week") + "\n")
		b.WriteString(menuStyle.Render("2. Last month") + "\n")
		b.WriteString(menuStyle.Render("3. Custom range") + "\n")
		b.WriteString("Enter your choice (1/2/3): " + m.input.View() + "\n")
	case stateCustomStart:
		b.WriteString(promptStyle.Render("Enter start date (YYYY-MM-DD):") + "\n")
		b.WriteString(m.input.View() + "\n")
	case stateCustomEnd:
		b.WriteString(promptStyle.Render("Enter end date (YYYY-MM-DD):") + "\n")
		b.WriteString(m.input.View() + "\n")
	case stateSummary:
		b.WriteString(m.viewResults())
		b.WriteString("\n" + promptStyle.Render("Select a choice:") + "\n")
		b.WriteString(menuStyle.Render("1. Reselect time range") + "\n")
		b.WriteString(menuStyle.Render("2. Fill out incomplete entries") + "\n")
		b.WriteString(menuStyle.Render("q. Quit") + "\n")
		b.WriteString("Enter your choice (1/2/q): " + m.input.View() + "\n")
	case stateEditor:
		b.WriteString(m.viewEditor())
	case stateEditValue:
		current := m.res.Incomplete.Table.Get(m.editRow, m.editColumn)
		b.WriteString(fmt.Sprintf("Current value for %s at row %d: %s\n", m.editColumn, m.editRow, current.String()))
		b.WriteString(promptStyle.Render("Enter new value:") + "\n")
		b.WriteString(m.input.View() + "\n")
	}
	return b.String()
}

// viewResults renders the incomplete dump, the category summary, and the
// grand total between banners.
func (m Model) viewResults() string {
	var b strings.Builder
	banner := bannerStyle.Render(strings.Repeat("=", bannerWidth))

	b.WriteString("\n" + banner + "\n")
	b.WriteString(titleStyle.Render("Welcome to the Expense Tracker!") + "\n")
	b.WriteString(banner + "\n\n")

	if m.res.Incomplete.Len() > 0 {
		b.WriteString("Incomplete Entries:\n")
		b.WriteString(renderGrid(m.res.Incomplete.Table.Columns, incompleteCells(&m.res.Incomplete.Table)))
	} else {
		b.WriteString("No incomplete entries found.\n")
	}

	b.WriteString("\n" + banner + "\n")
	b.WriteString(titleStyle.Render("Expense Summary:") + "\n")
	b.WriteString(banner + "\n")

	if m.summary.Empty() {
		b.WriteString("No expenses found for the specified range.\n")
	} else {
		for _, line := range m.summary.Lines {
			b.WriteString(fmt.Sprintf("%-20s %s%s\n", line.Category, m.cfg.UI.CurrencySymbol, line.Total.StringFixed(2)))
		}
		total := fmt.Sprintf("Total Expense: %s%s", m.cfg.UI.CurrencySymbol, m.summary.GrandTotal().StringFixed(2))
		b.WriteString("\n" + totalStyle.Render(total) + "\n")
	}
	b.WriteString(banner + "\n")
	return b.String()
}

// viewEditor renders the incomplete table with its reset Row index and the
// editor prompt.
func (m Model) viewEditor() string {
	var b strings.Builder
	b.WriteString("\nIncomplete Entries:\n\n")

	headers := append([]string{"Row"}, m.res.Incomplete.Table.Columns...)
	var rows [][]string
	for ri := range m.res.Incomplete.Table.Rows {
		row := []string{strconv.Itoa(ri)}
		for _, cell := range m.res.Incomplete.Table.Rows[ri] {
			row = append(row, cell.String())
		}
		rows = append(rows, row)
	}
	b.WriteString(renderGrid(headers, rows))

	if m.status != "" {
		style := statusOKStyle
		if m.statusErr {
			style = statusErrStyle
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}
	b.WriteString("\n" + menuStyle.Render("1. Edit an entry (Column, Row)") + "\n")
	b.WriteString(menuStyle.Render("2. Quit (q)") + "\n")
	b.WriteString("\nEnter here: " + m.input.View() + "\n")
	return b.String()
}

// incompleteCells flattens the incomplete table for grid rendering, with
// "None" standing in for missing cells.
func incompleteCells(t *table.Table) [][]string {
	var rows [][]string
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell.String()
		}
		rows = append(rows, cells)
	}
	return rows
}

// renderGrid lays out a small left-aligned text table. Column widths fit
// the widest cell; missing cells get the warning color.
func renderGrid(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = padRight(h, widths[i])
	}
	b.WriteString(tableHeaderStyle.Render(strings.Join(headerCells, "  ")) + "\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			padded := padRight(cell, widths[i])
			if cell == "None" {
				padded = missingStyle.Render(padded)
			}
			cells[i] = padded
		}
		b.WriteString(strings.Join(cells, "  ") + "\n")
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
