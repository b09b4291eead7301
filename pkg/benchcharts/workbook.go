package benchcharts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/benchcharts-go/pkg/benchcharts/models"
	"github.com/xuri/excelize/v2"
)

const dataSheet = "Data"

// chartTypes maps the kinds with a native Excel counterpart.
var chartTypes = map[Kind]excelize.ChartType{
	KindLine:   excelize.Line,
	KindColumn: excelize.Col,
}

// WriteWorkbook writes ds to an xlsx file at path with one native chart per kind.
// Missing parent directories are created.
func WriteWorkbook(path string, ds *models.Dataset, kinds ...Kind) error {
	if err := checkDataset(ds); err != nil {
		return err
	}
	if len(kinds) == 0 {
		kinds = []Kind{KindColumn, KindLine}
	}

	f, err := buildWorkbook(ds, kinds)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &WriteError{Path: path, Op: "mkdir", Err: err}
	}
	if err := f.SaveAs(path); err != nil {
		return &WriteError{Path: path, Op: "write", Err: err}
	}
	return nil
}

func buildWorkbook(ds *models.Dataset, kinds []Kind) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		f.Close()
		return nil, err
	}

	width := ds.Width()
	header := make([]interface{}, width+1)
	header[0] = ""
	for i := 0; i < width; i++ {
		if i < len(ds.Categories) {
			header[i+1] = ds.Categories[i]
		} else {
			header[i+1] = fmt.Sprintf("#%d", i+1)
		}
	}
	if err := f.SetSheetRow(dataSheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	for i, s := range ds.Series {
		row := make([]interface{}, 0, len(s.Data)+1)
		row = append(row, s.Name)
		for _, v := range s.Data {
			row = append(row, v)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(dataSheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(width + 1)
	if err != nil {
		f.Close()
		return nil, err
	}

	anchorRow := len(ds.Series) + 3
	for _, kind := range kinds {
		chartType, ok := chartTypes[kind]
		if !ok {
			f.Close()
			return nil, fmt.Errorf("%w: %q has no workbook chart", ErrUnknownKind, string(kind))
		}

		chart := &excelize.Chart{
			Type:      chartType,
			Dimension: excelize.ChartDimension{Width: 720, Height: 360},
			Legend:    excelize.ChartLegend{Position: "bottom"},
		}
		if ds.Title != "" {
			chart.Title = []excelize.RichTextRun{{Text: ds.Title}}
		}
		for i := range ds.Series {
			row := i + 2
			chart.Series = append(chart.Series, excelize.ChartSeries{
				Name:       fmt.Sprintf("'%s'!$A$%d", dataSheet, row),
				Categories: fmt.Sprintf("'%s'!$B$1:$%s$1", dataSheet, lastCol),
				Values:     fmt.Sprintf("'%s'!$B$%d:$%s$%d", dataSheet, row, lastCol, row),
			})
		}

		anchor, _ := excelize.CoordinatesToCellName(1, anchorRow)
		if err := f.AddChart(dataSheet, anchor, chart); err != nil {
			f.Close()
			return nil, err
		}
		anchorRow += 20
	}

	return f, nil
}
