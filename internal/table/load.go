package table

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrUnsupportedFormat is returned by Load for any extension other than
// .csv or .json.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Load reads the file at path into a Table, dispatching on the extension.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		return LoadJSON(path)
	default:
		return nil, fmt.Errorf("%w: %s (want .csv or .json)", ErrUnsupportedFormat, path)
	}
}

// newCSVReader applies the reader settings shared by every CSV parse:
// ragged records are tolerated and leading space is not significant.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	return cr
}

// LoadCSV reads a comma-separated file with a header row. Short records are
// padded with missing cells; empty cells read as missing.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := newCSVReader(bufio.NewReader(f))
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read csv header: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	t := &Table{Columns: make([]string, len(header))}
	for i, h := range header {
		t.Columns[i] = strings.TrimSpace(h)
	}

	line := 1
	for {
		line++
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		row := make([]Value, len(t.Columns))
		for i := range row {
			if i >= len(rec) || strings.TrimSpace(rec[i]) == "" {
				row[i] = MissingValue()
				continue
			}
			row[i] = Value{Raw: strings.TrimSpace(rec[i])}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// LoadJSON reads a column-oriented JSON object: each top-level key is a
// column name mapping row indices to cell values. Column order follows the
// document, so a token-level decode is used instead of a plain map.
func LoadJSON(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open json: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(bufio.NewReader(f))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("read json: expected a column-oriented object, got %v", tok)
	}

	type column struct {
		name  string
		cells map[int]Value
	}
	var (
		cols   []column
		maxRow = -1
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read json column name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("read json column name: got %v", tok)
		}
		var raw map[string]any
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("read json column %q: %w", name, err)
		}
		col := column{name: name, cells: make(map[int]Value, len(raw))}
		for key, cell := range raw {
			idx, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("json column %q: row key %q is not an index", name, key)
			}
			col.cells[idx] = jsonCell(cell)
			if idx > maxRow {
				maxRow = idx
			}
		}
		cols = append(cols, col)
	}

	t := &Table{}
	for _, c := range cols {
		t.Columns = append(t.Columns, c.name)
	}
	for r := 0; r <= maxRow; r++ {
		row := make([]Value, len(cols))
		for i, c := range cols {
			v, ok := c.cells[r]
			if !ok {
				v = MissingValue()
			}
			row[i] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// jsonCell converts a decoded JSON value into a cell. Nulls become missing;
// numbers keep their literal form via json.Number.
func jsonCell(v any) Value {
	switch x := v.(type) {
	case nil:
		return MissingValue()
	case string:
		return Value{Raw: x}
	case json.Number:
		return Value{Raw: x.String()}
	case bool:
		return Value{Raw: strconv.FormatBool(x)}
	default:
		return Value{Raw: fmt.Sprintf("%v", x)}
	}
}
