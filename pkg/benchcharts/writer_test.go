package benchcharts

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResultCreatesAncestors(t *testing.T) {
	tests := []struct {
		name string
		rel  string
	}{
		{"no missing ancestors", "chart.html"},
		{"one missing ancestor", "out/chart.html"},
		{"many missing ancestors", "out/a/b/c/chart.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.rel)
			require.NoError(t, WriteResult(path, "content"))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "content", string(got))
		})
	}
}

func TestWriteResultIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "sub", "chart.html")

	require.NoError(t, WriteResult(path, "same"))
	require.NoError(t, WriteResult(path, "same"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "same", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteResultOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.html")
	require.NoError(t, WriteResult(path, "a much longer first version"))
	require.NoError(t, WriteResult(path, "short"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(got))
}

func TestWriteResultMkdirFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := WriteResult(filepath.Join(blocker, "sub", "chart.html"), "content")
	require.Error(t, err)

	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, "mkdir", werr.Op)
}

func TestWriteResultWriteFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory permissions differ on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := filepath.Join(t.TempDir(), "ro")
	require.NoError(t, os.Mkdir(dir, 0555))

	err := WriteResult(filepath.Join(dir, "chart.html"), "content")
	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, "write", werr.Op)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestWriteResultAsync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "chart.html")
	require.NoError(t, <-WriteResultAsync(path, "async"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "async", string(got))
}
