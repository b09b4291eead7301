package benchcharts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	tmplDir := filepath.Join(dir, "templates")
	require.NoError(t, os.Mkdir(tmplDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmplDir, "line-chart.html"), []byte("custom { /** DATA **/ }"), 0644))

	path := filepath.Join(dir, "benchcharts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
templates_dir: `+tmplDir+`
strict: true
concurrency: 3
labels:
  time: Wall time (s)
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, "Wall time (s)", cfg.Labels.Time)
	assert.Equal(t, LabelObjective, cfg.Labels.Objective, "unset keys keep defaults")

	opts := cfg.Options()
	assert.Equal(t, 3, opts.concurrency())
	out, err := Render(KindLine, json.RawMessage(`{"series":[{"name":"a","data":[1]}]}`), opts)
	require.NoError(t, err)
	assert.Contains(t, out, "custom {")
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "strict: [unterminated"},
		{"negative concurrency", "concurrency: -1"},
		{"missing templates dir", "templates_dir: " + filepath.Join(dir, "nope")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, LabelObjective, cfg.Labels.Objective)
	assert.Equal(t, LabelTime, cfg.Labels.Time)
	assert.NoError(t, cfg.Validate())
	assert.Greater(t, cfg.Options().concurrency(), 0)
}
