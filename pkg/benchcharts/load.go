package benchcharts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/benchcharts-go/pkg/benchcharts/parser"
)

// LoadJSON reads a dataset file and returns its contents as raw JSON.
// The document is checked for well-formedness but its shape is not inspected.
func LoadJSON(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
	}
	return json.RawMessage(data), nil
}

// Load reads a dataset from a .json or .xlsx file. For workbooks, sheet selects
// the sheet to read; empty means the first one.
func Load(path, sheet string) (any, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		ds, err := parser.OpenDataset(path, sheet)
		if err != nil {
			var cellErr *parser.CellError
			if errors.As(err, &cellErr) {
				return nil, &SchemaError{Path: cellErr.Sheet + "!" + cellErr.Cell, Reason: "expected number, got " + fmt.Sprintf("%q", cellErr.Value)}
			}
			return nil, err
		}
		return ds, nil
	}
	return LoadJSON(path)
}
