// Package export serializes flat record sets for download.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
)

// ErrEmptyExport is returned when there are no records to export. Callers
// surface it as a warning and must not produce a file.
var ErrEmptyExport = errors.New("nothing to export")

// Field is one named column value. Records keep fields ordered so column
// order is stable across rows.
type Field struct {
	Name  string
	Value string
}

type Record []Field

// CSV renders records as RFC 4180 CSV. Headers come from the first record;
// rows are assumed homogeneous.
func CSV(records []Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmptyExport
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(records[0]))
	for i, f := range records[0] {
		header[i] = f.Name
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := make([]string, len(header))
	for _, rec := range records {
		for i := range row {
			row[i] = ""
			if i < len(rec) {
				row[i] = rec[i].Value
			}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename appends the csv extension to the requested name.
func Filename(name string) string {
	return name + ".csv"
}
