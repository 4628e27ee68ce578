package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrTooLarge indicates a file exceeded the caller's size limit.
var ErrTooLarge = errors.New("file exceeds size limit")

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Paths are returned unchanged when the home directory is unknown.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// ReadLimited reads at most limit bytes from path. Larger files yield
// ErrTooLarge and no data.
func ReadLimited(path string, limit int64) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	f, err := os.Open(ExpandHome(path)) //nolint:gosec // G304: user-supplied input file
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return readLimited(f, limit)
}

// ReadAllLimited reads r to EOF, failing with ErrTooLarge past limit bytes.
func ReadAllLimited(r io.Reader, limit int64) ([]byte, error) {
	return readLimited(r, limit)
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		clear(data)
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return data, nil
}
