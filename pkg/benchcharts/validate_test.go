package benchcharts

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/benchcharts-go/pkg/benchcharts/models"
)

func TestValidateDataset(t *testing.T) {
	ds, err := ValidateDataset(json.RawMessage(`{
		"title": "solvers",
		"categories": ["p1", 2],
		"series": [
			{"name": "a", "data": [1, 2.5]},
			{"name": "b", "data": []}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "solvers", ds.Title)
	assert.Equal(t, []string{"p1", "2"}, ds.Categories)
	require.Len(t, ds.Series, 2)
	assert.Equal(t, models.Series{Name: "a", Data: []float64{1, 2.5}}, ds.Series[0])
	assert.Empty(t, ds.Series[1].Data)
	assert.Equal(t, 2, ds.Width())
}

func TestValidateDatasetErrors(t *testing.T) {
	tests := []struct {
		input string
		path  string
	}{
		{`[1,2,3]`, ""},
		{`{"x":[1,2,3]}`, "series"},
		{`{"series":{}}`, "series"},
		{`{"series":[]}`, "series"},
		{`{"series":[1]}`, "series[0]"},
		{`{"series":[{"data":[1]}]}`, "series[0].name"},
		{`{"series":[{"name":"","data":[1]}]}`, "series[0].name"},
		{`{"series":[{"name":"a"}]}`, "series[0].data"},
		{`{"series":[{"name":"a","data":[1,"2"]}]}`, "series[0].data[1]"},
		{`{"series":[{"name":"a","data":[]},{"name":"b","data":[]}]}`, "series"},
		{`{"title":3,"series":[{"name":"a","data":[]}]}`, "title"},
		{`{"categories":[true],"series":[{"name":"a","data":[]}]}`, "categories[0]"},
	}

	for _, tt := range tests {
		_, err := ValidateDataset(json.RawMessage(tt.input))
		var serr *SchemaError
		if !errors.As(err, &serr) {
			t.Errorf("ValidateDataset(%s) error = %v, expected SchemaError", tt.input, err)
			continue
		}
		if serr.Path != tt.path {
			t.Errorf("ValidateDataset(%s) path = %q, expected %q", tt.input, serr.Path, tt.path)
		}
		if !errors.Is(err, ErrSchemaMismatch) {
			t.Errorf("ValidateDataset(%s) does not wrap ErrSchemaMismatch", tt.input)
		}
	}
}

func TestValidateDatasetTyped(t *testing.T) {
	ds := &models.Dataset{Series: []models.Series{{Name: "a", Data: []float64{1}}}}
	got, err := ValidateDataset(ds)
	require.NoError(t, err)
	assert.Same(t, ds, got)

	_, err = ValidateDataset(&models.Dataset{})
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
}

func TestValidateDatasetGoValue(t *testing.T) {
	ds, err := ValidateDataset(map[string]any{
		"series": []map[string]any{{"name": "a", "data": []int{3, 4}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, ds.Series[0].Data)
}

func TestValidateDatasetInvalidJSON(t *testing.T) {
	_, err := ValidateDataset(json.RawMessage(`{"series":[1,]}`))
	assert.True(t, errors.Is(err, ErrInvalidJSON))
}
