package benchcharts

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed templates/*.html
var embeddedFS embed.FS

// EmbeddedTemplates returns the template set compiled into the binary.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embeddedFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// readTemplate loads the template text for kind. The store is read on every call.
func readTemplate(store fs.FS, kind Kind) (string, error) {
	name, err := kind.TemplateName()
	if err != nil {
		return "", err
	}
	data, err := fs.ReadFile(store, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s: %w", ErrTemplateNotFound, name, err)
		}
		return "", err
	}
	return string(data), nil
}
