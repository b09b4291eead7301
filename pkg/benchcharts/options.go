// Package benchcharts renders benchmark result datasets into self-contained HTML chart pages.
package benchcharts

import (
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"go.uber.org/zap"
)

// Kind represents a chart kind, each backed by one template.
type Kind string

const (
	// KindLine renders one line per series.
	KindLine Kind = "line"
	// KindColumn renders grouped columns per category.
	KindColumn Kind = "column"
	// KindProfile renders a performance profile parameterized by a metric label.
	KindProfile Kind = "performance-profile"
)

// Default performance-profile labels used by the ppo and ppt commands.
const (
	LabelObjective = "Objective ratio (lower the better)"
	LabelTime      = "Time"
	defaultLabel   = "Ratio"
)

// ParseKind converts a command-line value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "line":
		return KindLine, nil
	case "column":
		return KindColumn, nil
	case "performance-profile", "profile", "pp":
		return KindProfile, nil
	default:
		return "", fmt.Errorf("%w: %s (must be line, column, or performance-profile)", ErrUnknownKind, s)
	}
}

// TemplateName returns the template file name backing the kind.
func (k Kind) TemplateName() (string, error) {
	switch k {
	case KindLine:
		return "line-chart.html", nil
	case KindColumn:
		return "column-chart.html", nil
	case KindProfile:
		return "performance-profile.html", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
}

// Options configures rendering and batch behavior.
type Options struct {
	// Templates is the template store. If nil, the embedded templates are used.
	Templates fs.FS
	// Label is the metric label for performance-profile charts.
	Label string
	// Strict validates datasets against the series schema before rendering.
	Strict bool
	// Concurrency bounds how many batch inputs are processed at once.
	// If <= 0, defaults to runtime.NumCPU().
	Concurrency int
	// Workbook additionally writes an .xlsx workbook per batch input.
	Workbook bool
	// OnWritten is called after each successful write.
	OnWritten func(input string, kind Kind, path string)
	// Logger receives diagnostics. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default options backed by the embedded templates.
func DefaultOptions() Options {
	return Options{
		Templates: EmbeddedTemplates(),
	}
}

// WithTemplateDir returns a copy of o reading templates from dir on disk.
func (o Options) WithTemplateDir(dir string) Options {
	if dir != "" {
		o.Templates = os.DirFS(dir)
	}
	return o
}

func (o Options) templates() fs.FS {
	if o.Templates != nil {
		return o.Templates
	}
	return EmbeddedTemplates()
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.NumCPU()
}

func (o Options) written(input string, kind Kind, path string) {
	if o.OnWritten != nil {
		o.OnWritten(input, kind, path)
	}
}
