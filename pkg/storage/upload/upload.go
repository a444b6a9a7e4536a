package upload

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes uploaded documents to per-request temp files under one directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory temp files are written to.
func (s *Store) Dir() string { return s.dir }

// File is one stored upload. It must be released once the request is done.
type File struct {
	Path string
}

// Save writes data to a new uniquely named file with the given extension.
// The client filename is never used on disk.
func (s *Store) Save(ext string, data []byte) (*File, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare upload dir: %w", err)
	}
	dst := filepath.Join(s.dir, uuid.NewString()+ext)
	// O_EXCL so a name collision never overwrites another request's file
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return nil, fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return nil, fmt.Errorf("close upload file: %w", err)
	}
	return &File{Path: dst}, nil
}

// ReadAll returns the stored bytes.
func (f *File) ReadAll() ([]byte, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read upload file: %w", err)
	}
	return b, nil
}

// Release deletes the file. Releasing twice is not an error.
func (f *File) Release() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}
