// Package csvbatch reads comment-collection CSV exports into header-keyed
// records for the batch runner.
//
// This is boundary I/O only: the pipeline itself never touches a file. Both
// supported collectors export plain CSV with a header row; which columns mean
// what is the schema adapter's business, not ours.
package csvbatch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Record is one CSV row keyed by header column name.
type Record map[string]string

// ReadFile loads every row of the CSV at path. Ragged rows (fewer cells than
// headers) are padded with empty strings; extra cells are dropped.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvbatch: open %s: %w", path, err)
	}
	defer f.Close() // nolint: errcheck

	recs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("csvbatch: read %s: %w", path, err)
	}
	return recs, nil
}

// Read consumes r as headered CSV. An empty input (no header row) yields no
// records and no error.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // we pad/truncate ourselves

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("header row: %w", err)
	}

	var out []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(out)+2, err)
		}
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		out = append(out, rec)
	}
}
