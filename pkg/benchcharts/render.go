package benchcharts

import (
	"encoding/json"
	"sort"
	"strings"
)

// Placeholders substituted into chart templates.
const (
	DataPlaceholder  = "{ /** DATA **/ }"
	LabelPlaceholder = "{ /** LABEL **/ }"
)

// Render loads the template for kind and substitutes the serialized data into it.
// Only the first placeholder occurrence is replaced; a template without one is
// returned unchanged.
func Render(kind Kind, data any, opts Options) (string, error) {
	tmpl, err := readTemplate(opts.templates(), kind)
	if err != nil {
		return "", err
	}

	if opts.Strict {
		if _, err := ValidateDataset(data); err != nil {
			return "", err
		}
	}

	text, err := Serialize(data)
	if err != nil {
		return "", err
	}

	subs := map[string]string{DataPlaceholder: text}
	if kind == KindProfile {
		label := opts.Label
		if label == "" {
			label = defaultLabel
		}
		subs[LabelPlaceholder] = quoteString(label)
	}

	return substitute(tmpl, subs), nil
}

// substitute replaces the first occurrence of each key in tmpl. Positions are
// taken from tmpl itself, so inserted text is never searched.
func substitute(tmpl string, subs map[string]string) string {
	type hit struct {
		at    int
		token string
	}
	var hits []hit
	for token := range subs {
		if i := strings.Index(tmpl, token); i >= 0 {
			hits = append(hits, hit{i, token})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].at < hits[j].at })

	var b strings.Builder
	pos := 0
	for _, h := range hits {
		if h.at < pos {
			continue // overlaps a previous token
		}
		b.WriteString(tmpl[pos:h.at])
		b.WriteString(subs[h.token])
		pos = h.at + len(h.token)
	}
	b.WriteString(tmpl[pos:])
	return b.String()
}

// LineChart renders a line chart page.
func LineChart(data any, opts Options) (string, error) {
	return Render(KindLine, data, opts)
}

// ColumnChart renders a column chart page.
func ColumnChart(data any, opts Options) (string, error) {
	return Render(KindColumn, data, opts)
}

// ProfileChart renders a performance-profile page labeled with label.
func ProfileChart(data any, label string, opts Options) (string, error) {
	opts.Label = label
	return Render(KindProfile, data, opts)
}

// Serialize returns data as JSON.stringify(data, null, 4) would print it.
// Raw JSON input keeps its key order; numbers and strings are rewritten in
// their canonical form.
func Serialize(data any) (string, error) {
	var raw []byte
	switch v := data.(type) {
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	default:
		b, err := json.Marshal(data)
		if err != nil {
			return "", err
		}
		raw = b
	}
	return formatJSON(raw)
}
