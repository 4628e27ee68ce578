package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, ".lastword"), ExpandHome("~/.lastword"))
	assert.Equal(t, "/tmp/x", ExpandHome("/tmp/x"))
	assert.Equal(t, "~user/x", ExpandHome("~user/x"))
	assert.Empty(t, ExpandHome(""))
}

func TestReadLimited(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "phrase.txt")
	require.NoError(t, os.WriteFile(path, []byte("zoo zoo"), 0o600))

	data, err := ReadLimited(path, 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("zoo zoo"), data)

	_, err = ReadLimited(path, 6)
	require.ErrorIs(t, err, ErrTooLarge)

	_, err = ReadLimited(filepath.Join(dir, "missing"), 10)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadLimited("", 10)
	require.ErrorIs(t, err, ErrEmptyPath)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadAllLimited(t *testing.T) {
	t.Parallel()
	data, err := ReadAllLimited(strings.NewReader("abc"), 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)

	_, err = ReadAllLimited(strings.NewReader("abcd"), 3)
	require.ErrorIs(t, err, ErrTooLarge)

	_, err = ReadAllLimited(failingReader{}, 3)
	require.EqualError(t, err, "boom")
}
