package validate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(file, []byte("abc\n"), 0644))

	assert.NoError(t, InputFile(file))
	assert.Error(t, InputFile(dir))

	err := InputFile(filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestOutputFile(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, OutputFile(filepath.Join(dir, "map.png")))
	assert.Error(t, OutputFile(dir))
	assert.Error(t, OutputFile(filepath.Join(dir, "missing", "map.png")))
}

func TestOutputDirectory(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, OutputDirectory(dir))
	assert.Error(t, OutputDirectory(filepath.Join(dir, "missing")))
}
