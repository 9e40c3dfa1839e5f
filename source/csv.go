// Package source reads the row-oriented CSV inputs for the conversion and
// linkage pipelines.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Row is one CSV record keyed by column header. Missing columns read as
// empty strings, which the builders treat as a skip signal.
type Row map[string]string

// Get returns the value of a column, or "" when the column is absent.
func (r Row) Get(column string) string {
	return r[column]
}

// ReadFile reads all rows of a header-keyed CSV file. Structurally broken
// records (wrong field count, bare quotes) are skipped with a warning so a
// single defective row never aborts the batch.
func ReadFile(path string, logger *slog.Logger) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Read(f, logger)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// Read reads all header-keyed rows from r.
func Read(r io.Reader, logger *slog.Logger) ([]Row, error) {
	if logger == nil {
		logger = slog.Default()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				logger.Warn("Skipping malformed CSV row", "line", line, "error", err)
				continue
			}
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) != len(header) {
			logger.Warn("Skipping CSV row with wrong field count",
				"line", line, "fields", len(record), "expected", len(header))
			continue
		}

		row := make(Row, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}
