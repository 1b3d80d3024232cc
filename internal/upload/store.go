// Package upload persists product images in a single flat directory.
package upload

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnsafeFilename is returned for upload names that survive sanitation as
// path-traversal attempts.
var ErrUnsafeFilename = errors.New("unsafe filename")

type Store struct {
	dir string
}

// NewStore creates the upload directory if it does not exist.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save writes one multipart file under `<original>_<timestamp><ext>` and
// returns the stored name. The timestamp keeps concurrent uploads sharing an
// original name from colliding.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	original, err := sanitize(fh.Filename)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%d%s", original, time.Now().UnixMilli(), filepath.Ext(original))

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a stored file by name. A file that is already absent is
// treated as success; any other I/O error is returned.
func (s *Store) Remove(name string) error {
	name = filepath.Base(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// sanitize reduces a client-supplied filename to a safe base name: path
// separators are stripped, ".." is rejected, and the charset is narrowed to
// letters, digits, dot, dash and underscore.
func sanitize(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "" || name == "." || strings.Contains(name, "..") {
		return "", ErrUnsafeFilename
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := b.String()
	if strings.Trim(out, ".-_") == "" {
		return "", ErrUnsafeFilename
	}
	return out, nil
}
