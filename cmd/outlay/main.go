package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"outlay/internal/config"
	"outlay/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// One session id per run, carried on every log line so the edit audit
	// trail can be grouped per sitting.
	logger = logger.With("session", uuid.NewString())
	logger.Debug("starting")

	p := tea.NewProgram(tui.New(cfg, logger))
	if _, err := p.Run(); err != nil {
		logger.Error("run", "err", err)
		fmt.Fprintf(os.Stderr, "outlay: %v\n", err)
		os.Exit(1)
	}
}

// newLogger opens the configured log file. The TUI owns the terminal, so
// with no file configured logging is disabled entirely.
func newLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
	if cfg.Path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.New(f)
	if lvl, err := log.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger, func() { f.Close() }, nil
}
