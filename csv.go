package gendb

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"
)

// CSV ingestion for generated loader functions. A CSVTable holds a
// fully parsed file; generated code walks Rows, pulls typed column
// values, and hands each constructed row to Table.AddRow like any other
// caller. There is no cross-language format contract here, just
// RFC 4180 CSV with a header line.

// CSVTable is a parsed CSV file: a header mapping column names to
// positions, plus all data records.
type CSVTable struct {
	columns map[string]int
	records [][]string
}

// ReadCSV parses CSV from r. The first record is the header; leading
// and trailing whitespace in header cells is ignored.
func ReadCSV(r io.Reader) (*CSVTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv: missing header line")
	}
	if err != nil {
		return nil, err
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return &CSVTable{columns: columns, records: records}, nil
}

// ReadCSVFile parses the CSV file at path.
func ReadCSVFile(path string) (*CSVTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Len returns the number of data rows (the header excluded).
func (t *CSVTable) Len() int {
	return len(t.records)
}

// Row returns the i-th data row.
func (t *CSVTable) Row(i int) CSVRow {
	return CSVRow{t, t.records[i]}
}

// Rows iterates over the data rows in file order.
func (t *CSVTable) Rows() iter.Seq[CSVRow] {
	return func(yield func(CSVRow) bool) {
		for _, rec := range t.records {
			if !yield(CSVRow{t, rec}) {
				return
			}
		}
	}
}

// CSVRow is one data row with typed access by column name. Missing
// columns and unparsable cells yield zero values: generated loaders
// treat CSV as trusted authored content, and a schema-level validation
// pass (not this reader) is where bad cells get reported.
type CSVRow struct {
	table  *CSVTable
	values []string
}

func (r CSVRow) cell(column string) (string, bool) {
	idx, ok := r.table.columns[column]
	if !ok || idx >= len(r.values) {
		return "", false
	}
	return r.values[idx], true
}

// String returns the cell in the given column, or "" if the column is
// missing.
func (r CSVRow) String(column string) string {
	s, _ := r.cell(column)
	return s
}

// OptString returns nil for a missing column or empty cell, matching
// the optional-field convention of generated types.
func (r CSVRow) OptString(column string) *string {
	s, ok := r.cell(column)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func (r CSVRow) Int32(column string) int32 {
	s, _ := r.cell(column)
	v, _ := strconv.ParseInt(s, 10, 32)
	return int32(v)
}

func (r CSVRow) Int64(column string) int64 {
	s, _ := r.cell(column)
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func (r CSVRow) Uint32(column string) uint32 {
	s, _ := r.cell(column)
	v, _ := strconv.ParseUint(s, 10, 32)
	return uint32(v)
}

func (r CSVRow) Uint64(column string) uint64 {
	s, _ := r.cell(column)
	v, _ := strconv.ParseUint(s, 10, 64)
	return v
}

func (r CSVRow) Float32(column string) float32 {
	s, _ := r.cell(column)
	v, _ := strconv.ParseFloat(s, 32)
	return float32(v)
}

func (r CSVRow) Float64(column string) float64 {
	s, _ := r.cell(column)
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// Bool accepts true/1/yes in any case; everything else is false.
func (r CSVRow) Bool(column string) bool {
	s, _ := r.cell(column)
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// CSVEnum reads the column as an i32 discriminant of the enum type.
func CSVEnum[E ~int32](r CSVRow, column string) E {
	return E(r.Int32(column))
}
