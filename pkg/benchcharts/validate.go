package benchcharts

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ukaji3/benchcharts-go/pkg/benchcharts/models"
)

// ValidateDataset checks data against the series schema and returns it in typed form.
// The error, if any, is a *SchemaError naming the first offending path.
func ValidateDataset(data any) (*models.Dataset, error) {
	switch v := data.(type) {
	case *models.Dataset:
		return v, checkDataset(v)
	case models.Dataset:
		return &v, checkDataset(&v)
	}

	root, err := toGeneric(data)
	if err != nil {
		return nil, err
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, &SchemaError{Reason: fmt.Sprintf("expected object, got %s", typeName(root))}
	}

	ds := &models.Dataset{}
	if title, ok := obj["title"]; ok {
		s, ok := title.(string)
		if !ok {
			return nil, &SchemaError{Path: "title", Reason: "expected string, got " + typeName(title)}
		}
		ds.Title = s
	}
	if cats, ok := obj["categories"]; ok {
		list, ok := cats.([]any)
		if !ok {
			return nil, &SchemaError{Path: "categories", Reason: "expected array, got " + typeName(cats)}
		}
		for i, c := range list {
			switch c := c.(type) {
			case string:
				ds.Categories = append(ds.Categories, c)
			case json.Number:
				ds.Categories = append(ds.Categories, c.String())
			default:
				return nil, &SchemaError{Path: fmt.Sprintf("categories[%d]", i), Reason: "expected string, got " + typeName(c)}
			}
		}
	}

	rawSeries, ok := obj["series"]
	if !ok {
		return nil, &SchemaError{Path: "series", Reason: "missing"}
	}
	list, ok := rawSeries.([]any)
	if !ok {
		return nil, &SchemaError{Path: "series", Reason: "expected array, got " + typeName(rawSeries)}
	}
	for i, item := range list {
		s, err := toSeries(i, item)
		if err != nil {
			return nil, err
		}
		ds.Series = append(ds.Series, s)
	}

	return ds, checkDataset(ds)
}

func toSeries(i int, item any) (models.Series, error) {
	path := fmt.Sprintf("series[%d]", i)
	obj, ok := item.(map[string]any)
	if !ok {
		return models.Series{}, &SchemaError{Path: path, Reason: "expected object, got " + typeName(item)}
	}

	name, ok := obj["name"].(string)
	if !ok {
		return models.Series{}, &SchemaError{Path: path + ".name", Reason: "expected string, got " + typeName(obj["name"])}
	}

	points, ok := obj["data"].([]any)
	if !ok {
		return models.Series{}, &SchemaError{Path: path + ".data", Reason: "expected array, got " + typeName(obj["data"])}
	}

	s := models.Series{Name: name, Data: make([]float64, 0, len(points))}
	for j, p := range points {
		n, ok := p.(json.Number)
		if !ok {
			return models.Series{}, &SchemaError{Path: fmt.Sprintf("%s.data[%d]", path, j), Reason: "expected number, got " + typeName(p)}
		}
		f, err := n.Float64()
		if err != nil {
			return models.Series{}, &SchemaError{Path: fmt.Sprintf("%s.data[%d]", path, j), Reason: err.Error()}
		}
		s.Data = append(s.Data, f)
	}
	return s, nil
}

// checkDataset enforces the rules shared by typed and decoded datasets.
func checkDataset(ds *models.Dataset) error {
	if ds == nil || len(ds.Series) == 0 {
		return &SchemaError{Path: "series", Reason: "at least one series is required"}
	}
	for i, s := range ds.Series {
		if s.Name == "" {
			return &SchemaError{Path: fmt.Sprintf("series[%d].name", i), Reason: "must not be empty"}
		}
	}
	if ds.Width() == 0 {
		return &SchemaError{Path: "series", Reason: "no data points"}
	}
	return nil
}

// toGeneric decodes data into plain maps/slices with numbers kept as json.Number.
func toGeneric(data any) (any, error) {
	var raw []byte
	switch v := data.(type) {
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	default:
		b, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		raw = b
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return out, nil
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
