package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"outlay/internal/table"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleSubmit(strings.TrimSpace(m.input.Value()))
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSubmit consumes one line of input for the current state.
func (m Model) handleSubmit(value string) (tea.Model, tea.Cmd) {
	m.input.SetValue("")
	switch m.state {
	case statePath:
		return m.submitPath(value)
	case stateRange:
		return m.submitRange(value)
	case stateCustomStart:
		return m.submitCustomStart(value)
	case stateCustomEnd:
		return m.submitCustomEnd(value)
	case stateSummary:
		return m.submitSummaryChoice(value)
	case stateEditor:
		return m.submitEditorCommand(value)
	case stateEditValue:
		return m.submitEditValue(value)
	}
	return m, nil
}

// fatal records a top-level error and ends the program; the final view
// prints it. Load errors, bad range input, and bad menu choices all land
// here, matching the one outermost handler of the flow.
func (m Model) fatal(err error) (tea.Model, tea.Cmd) {
	m.fatalErr = err
	m.logger.Error("fatal", "err", err)
	return m, tea.Quit
}

func (m Model) submitPath(value string) (tea.Model, tea.Cmd) {
	t, err := table.Load(value)
	if err != nil {
		return m.fatal(err)
	}
	m.path = value
	m.tbl = t
	m.logger.Debug("loaded file", "path", value, "rows", t.Len(), "columns", len(t.Columns))
	m.repartition()
	m.state = stateRange
	return m, nil
}

func (m Model) submitRange(value string) (tea.Model, tea.Cmd) {
	if value == "3" {
		m.state = stateCustomStart
		return m, nil
	}
	start, end, ok := presetRange(value, m.now())
	if !ok {
		return m.fatal(errors.New("invalid choice: please enter 1, 2, or 3"))
	}
	m.rangeStart, m.rangeEnd = start, end
	m.runReport()
	return m, nil
}

func (m Model) submitCustomStart(value string) (tea.Model, tea.Cmd) {
	start, err := parseRangeBound(value, m.layouts)
	if err != nil {
		return m.fatal(fmt.Errorf("start date: %w", err))
	}
	m.rangeStart = start
	m.state = stateCustomEnd
	return m, nil
}

func (m Model) submitCustomEnd(value string) (tea.Model, tea.Cmd) {
	end, err := parseRangeBound(value, m.layouts)
	if err != nil {
		return m.fatal(fmt.Errorf("end date: %w", err))
	}
	m.rangeEnd = end
	m.runReport()
	return m, nil
}

func (m Model) submitSummaryChoice(value string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(value) {
	case "1":
		m.repartition()
		m.state = stateRange
		return m, nil
	case "2":
		m.status = ""
		m.statusErr = false
		m.state = stateEditor
		return m, nil
	case "q":
		m.quitMessage = "Thank you for using the Expense Tracker. Goodbye!"
		return m, tea.Quit
	default:
		m.quitMessage = "Invalid choice. Exiting program."
		return m, tea.Quit
	}
}

func (m Model) submitEditorCommand(value string) (tea.Model, tea.Cmd) {
	if strings.ToLower(value) == "q" {
		m.repartition()
		m.state = stateRange
		return m, nil
	}
	column, row, err := parseEditCommand(value, &m.res.Incomplete.Table)
	if err != nil {
		m.status = fmt.Sprintf("Error: %v. Please ensure input is in the format 'Column, Row'.", err)
		m.statusErr = true
		return m, nil
	}
	m.editColumn = column
	m.editRow = row
	m.status = ""
	m.statusErr = false
	m.state = stateEditValue
	return m, nil
}

func (m Model) submitEditValue(value string) (tea.Model, tea.Cmd) {
	// The replacement is stored exactly as typed; re-typing happens on the
	// next partition pass, not here.
	m.res.Incomplete.Table.Set(m.editRow, m.editColumn, table.Value{Raw: value})
	if err := applyEdit(m.path, m.editColumn, m.editRow, value, m.layouts); err != nil {
		m.status = fmt.Sprintf("Error: %v. Please ensure input is in the format 'Column, Row'.", err)
		m.statusErr = true
	} else {
		m.status = fmt.Sprintf("[%s] edit complete.", m.path)
		m.statusErr = false
		m.logger.Info("edit applied",
			"path", m.path,
			"column", m.editColumn,
			"row", m.editRow,
			"value", value)
	}
	m.state = stateEditor
	return m, nil
}
