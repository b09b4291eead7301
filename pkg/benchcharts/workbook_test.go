package benchcharts

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/benchcharts-go/pkg/benchcharts/models"
	"github.com/ukaji3/benchcharts-go/pkg/benchcharts/parser"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	ds := &models.Dataset{
		Title:      "Solvers",
		Categories: []string{"p1", "p2", "p3"},
		Series: []models.Series{
			{Name: "a", Data: []float64{1, 2, 3}},
			{Name: "b", Data: []float64{3, 2}},
		},
	}

	path := filepath.Join(t.TempDir(), "nested", "solvers.xlsx")
	require.NoError(t, WriteWorkbook(path, ds))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{dataSheet}, f.GetSheetList())

	got, err := parser.ReadDataset(f, dataSheet)
	require.NoError(t, err)
	assert.Equal(t, ds.Categories, got.Categories)
	assert.Equal(t, ds.Series, got.Series)
}

func TestWriteWorkbookPadsCategories(t *testing.T) {
	ds := &models.Dataset{Series: []models.Series{{Name: "a", Data: []float64{1, 2}}}}

	path := filepath.Join(t.TempDir(), "pad.xlsx")
	require.NoError(t, WriteWorkbook(path, ds, KindLine))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(dataSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "#1", "#2"}, rows[0])
}

func TestWriteWorkbookErrors(t *testing.T) {
	dir := t.TempDir()

	err := WriteWorkbook(filepath.Join(dir, "empty.xlsx"), &models.Dataset{})
	assert.True(t, errors.Is(err, ErrSchemaMismatch))

	ds := &models.Dataset{Series: []models.Series{{Name: "a", Data: []float64{1}}}}
	err = WriteWorkbook(filepath.Join(dir, "pp.xlsx"), ds, KindProfile)
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.NoFileExists(t, filepath.Join(dir, "pp.xlsx"))
}

func TestWriteWorkbookRejectsEmptyData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty-data.xlsx")
	ds := &models.Dataset{Series: []models.Series{{Name: "a", Data: []float64{}}}}

	err := WriteWorkbook(path, ds)
	var serr *SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "series", serr.Path)
	assert.NoFileExists(t, path)
}
