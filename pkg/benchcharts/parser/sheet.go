// Package parser reads benchmark tables out of Excel workbooks.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/benchcharts-go/pkg/benchcharts/models"
	"github.com/xuri/excelize/v2"
)

// CellError reports a cell that could not be read as a measurement.
type CellError struct {
	Sheet string
	Cell  string
	Value string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("sheet %q cell %s: %q is not a number", e.Sheet, e.Cell, e.Value)
}

// ReadDataset extracts a Dataset from a sheet laid out as a benchmark table.
// Row 1 holds the categories from column B onwards; every following non-empty
// row is a series whose name is in column A. If sheetName is empty the first
// sheet is used.
func ReadDataset(f *excelize.File, sheetName string) (*models.Dataset, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	ds := &models.Dataset{Title: sheetName}
	if len(rows) == 0 {
		return ds, nil
	}

	for _, c := range trimRight(rows[0][min(1, len(rows[0])):]) {
		ds.Categories = append(ds.Categories, strings.TrimSpace(c))
	}

	for rowIdx, row := range rows[1:] {
		rowNum := rowIdx + 2 // 1-based, skipping the header
		row = trimRight(row)
		if len(row) == 0 {
			continue
		}

		s := models.Series{Name: strings.TrimSpace(row[0])}
		for colIdx := 1; colIdx < len(row); colIdx++ {
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			v, ok := parseValue(strings.TrimSpace(row[colIdx]))
			if !ok {
				return nil, &CellError{Sheet: sheetName, Cell: cellName, Value: row[colIdx]}
			}
			s.Data = append(s.Data, v)
		}
		ds.Series = append(ds.Series, s)
	}

	return ds, nil
}

// OpenDataset opens an xlsx file and reads its benchmark table.
func OpenDataset(path, sheetName string) (*models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadDataset(f, sheetName)
}

// parseValue parses a cell as a number. Integers are tried before floats;
// anything else is rejected.
func parseValue(s string) (float64, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	return 0, false
}

// trimRight drops trailing empty cells.
func trimRight(row []string) []string {
	end := len(row)
	for end > 0 && strings.TrimSpace(row[end-1]) == "" {
		end--
	}
	return row[:end]
}
