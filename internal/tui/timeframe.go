package tui

import (
	"fmt"
	"time"

	"outlay/internal/clean"
)

// presetRange resolves the numbered range choices: "1" is the last seven
// days and "2" the last calendar month, both ending today. Custom ranges
// ("3") are handled by the caller.
func presetRange(choice string, now time.Time) (time.Time, time.Time, bool) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	switch choice {
	case "1":
		return day.AddDate(0, 0, -7), day, true
	case "2":
		return day.AddDate(0, -1, 0), day, true
	}
	return time.Time{}, time.Time{}, false
}

// parseRangeBound parses a custom range bound. Unlike cell coercion this is
// an error, not a demotion: a bad bound aborts the run.
func parseRangeBound(s string, layouts []string) (time.Time, error) {
	d, ok := clean.ParseDate(s, layouts)
	if !ok {
		return time.Time{}, fmt.Errorf("could not parse %q as a date (YYYY-MM-DD)", s)
	}
	return d, nil
}
