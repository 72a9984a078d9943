// Package tui implements the interactive expense tracker flow: file prompt,
// time-range menu, summary display, and the incomplete-entry editor.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"outlay/internal/clean"
	"outlay/internal/config"
	"outlay/internal/report"
	"outlay/internal/table"
)

const appName = "Expense Tracker"

// ---------------------------------------------------------------------------
// States
// ---------------------------------------------------------------------------

// state identifies which prompt the model is blocked on. Every state reads
// one line of input; transitions happen on enter.
type state int

const (
	statePath state = iota
	stateRange
	stateCustomStart
	stateCustomEnd
	stateSummary
	stateEditor
	stateEditValue
)

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type Model struct {
	cfg    config.Config
	logger *log.Logger

	state state
	input textinput.Model
	width int

	path    string
	layouts []string
	tbl     *table.Table
	res     clean.Result

	rangeStart time.Time
	rangeEnd   time.Time
	filtered   []clean.Entry
	summary    report.Summary

	editColumn string
	editRow    int
	status     string
	statusErr  bool

	fatalErr    error
	quitMessage string

	// now is swapped out in tests to pin the preset ranges.
	now func() time.Time
}

// New builds the initial model, blocked on the file-path prompt.
func New(cfg config.Config, logger *log.Logger) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	return Model{
		cfg:     cfg,
		logger:  logger,
		state:   statePath,
		input:   ti,
		layouts: clean.DateLayouts(cfg.Dates.InputLayouts),
		now:     time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// repartition re-derives complete/incomplete from the loaded table. The
// table keeps its coerced cells, so repeated passes are stable; in-memory
// editor patches live only in the incomplete view and are dropped here,
// mirroring the on-disk-only persistence of edits.
func (m *Model) repartition() {
	m.res = clean.Partition(m.tbl, m.layouts)
	m.logger.Debug("partitioned table",
		"rows", m.tbl.Len(),
		"complete", len(m.res.Complete),
		"incomplete", m.res.Incomplete.Len())
}

// runReport filters the complete entries by the selected range and builds
// the category summary.
func (m *Model) runReport() {
	m.filtered = report.FilterByDate(m.res.Complete, m.rangeStart, m.rangeEnd)
	m.summary = report.Summarize(m.filtered)
	m.logger.Debug("filtered range",
		"start", m.rangeStart.Format("2006-01-02"),
		"end", m.rangeEnd.Format("2006-01-02"),
		"matched", len(m.filtered),
		"categories", len(m.summary.Lines))
	m.state = stateSummary
}
