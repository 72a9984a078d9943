package table

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// isoDateLayout matches the millisecond ISO form the JSON codec emits for
// recognised dates.
const isoDateLayout = "2006-01-02T15:04:05.000"

// Save rewrites the whole file at path in its own format. dateFormats is the
// ordered list of layouts used to recognise Date cells for JSON ISO output.
func Save(path string, t *Table, dateFormats []string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return SaveCSV(path, t)
	case ".json":
		return SaveJSON(path, t, dateFormats)
	default:
		return fmt.Errorf("%w: %s (want .csv or .json)", ErrUnsupportedFormat, path)
	}
}

// SaveCSV writes the header row followed by every row. Missing cells become
// empty fields; no index column is written.
func SaveCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	rec := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range rec {
			rec[i] = ""
			if i < len(row) && !row[i].Missing {
				rec[i] = row[i].Raw
			}
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// SaveJSON writes the table as a column-oriented object in column order.
// Date-column cells that parse under one of dateFormats are normalised to
// ISO form; missing cells are written as nulls.
func SaveJSON(path string, t *Table, dateFormats []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	w.WriteByte('{')
	for ci, col := range t.Columns {
		if ci > 0 {
			w.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return fmt.Errorf("encode json column %q: %w", col, err)
		}
		w.Write(key)
		w.WriteString(":{")
		for ri, row := range t.Rows {
			if ri > 0 {
				w.WriteByte(',')
			}
			w.WriteString(strconv.Quote(strconv.Itoa(ri)))
			w.WriteByte(':')
			cell, err := jsonCellBytes(col, row[ci], dateFormats)
			if err != nil {
				return fmt.Errorf("encode json cell %s[%d]: %w", col, ri, err)
			}
			w.Write(cell)
		}
		w.WriteByte('}')
	}
	w.WriteByte('}')
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush json: %w", err)
	}
	return nil
}

func jsonCellBytes(col string, v Value, dateFormats []string) ([]byte, error) {
	if v.Missing {
		return []byte("null"), nil
	}
	if col == ColDate {
		for _, layout := range dateFormats {
			if d, err := time.ParseInLocation(layout, v.Raw, time.Local); err == nil {
				return json.Marshal(d.Format(isoDateLayout))
			}
		}
	}
	return json.Marshal(v.Raw)
}
