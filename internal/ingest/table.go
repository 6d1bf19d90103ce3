// Package ingest turns room-occupancy spreadsheets into timetable entries.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Table is a rectangular grid of string cells addressed from 1, as in a
// spreadsheet. Cells outside the data read as "".
type Table interface {
	Rows() int
	Cols() int
	Cell(row, col int) string
}

// Sheet is a Table backed by rows of strings. Rows may be ragged.
type Sheet [][]string

// NewSheet wraps rows as a Table.
func NewSheet(rows [][]string) Sheet {
	return Sheet(rows)
}

// Rows returns the number of rows.
func (s Sheet) Rows() int {
	return len(s)
}

// Cols returns the length of the longest row.
func (s Sheet) Cols() int {
	n := 0
	for _, r := range s {
		n = max(n, len(r))
	}
	return n
}

// Cell returns the value at row, col (1-indexed).
func (s Sheet) Cell(row, col int) string {
	if row < 1 || row > len(s) {
		return ""
	}
	r := s[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// ReadXLSX loads one worksheet of an Excel workbook. An empty sheet name
// selects the first worksheet.
func ReadXLSX(path, sheet string) (Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no worksheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return NewSheet(rows), nil
}

// ReadCSV loads a sheet exported as CSV.
func ReadCSV(r io.Reader) (Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return NewSheet(rows), nil
}
