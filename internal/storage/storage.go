// Package storage persists uploaded PDF documents on the filesystem.
// Files are stored under <root>/<kind>/<year>/<month>/ with generated
// UUID filenames so concurrent uploads never collide.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	apperrors "fintrack/internal/errors"
)

// MaxFileSize is the upload size ceiling (10 MB).
const MaxFileSize = 10 << 20

// SavedFile describes a file written to the store.
type SavedFile struct {
	Filename string // generated name, e.g. 0190a6e2-....pdf
	Path     string // path relative to the store root
	Size     int64
	MimeType string
}

// Store writes and serves documents under a root directory.
type Store struct {
	root string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the store's root directory.
func (s *Store) Root() string { return s.root }

// Validate checks that data is a well-formed PDF within the size ceiling.
func Validate(data []byte) error {
	if int64(len(data)) > MaxFileSize {
		return apperrors.ErrFileTooLarge
	}
	if !mimetype.Detect(data).Is("application/pdf") {
		return apperrors.ErrInvalidPDF
	}
	return nil
}

// Save validates data and writes it under <root>/<kind>/<year>/<month>/.
// A partially written file is removed when the write fails.
func (s *Store) Save(kind string, data []byte, originalName string) (*SavedFile, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	now := time.Now()
	relDir := filepath.Join(kind, fmt.Sprintf("%04d", now.Year()), fmt.Sprintf("%02d", now.Month()))
	if err := os.MkdirAll(filepath.Join(s.root, relDir), 0o755); err != nil {
		return nil, s.classifyWriteError(err)
	}

	filename := uuid.New().String() + ".pdf"
	relPath := filepath.Join(relDir, filename)
	absPath := filepath.Join(s.root, relPath)

	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		// Best-effort cleanup of a partial write.
		_ = os.Remove(absPath)
		return nil, s.classifyWriteError(err)
	}

	return &SavedFile{
		Filename: filename,
		Path:     relPath,
		Size:     int64(len(data)),
		MimeType: "application/pdf",
	}, nil
}

// Open opens a stored file by its relative path. A missing file is a
// distinct failure from a missing metadata row; callers map it themselves.
func (s *Store) Open(relPath string) (*os.File, os.FileInfo, error) {
	abs, err := s.abs(relPath)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, info, nil
}

// Exists reports whether the stored file is present on disk.
func (s *Store) Exists(relPath string) bool {
	abs, err := s.abs(relPath)
	if err != nil {
		return false
	}
	_, err = os.Stat(abs)
	return err == nil
}

// Remove deletes a stored file. Removing a file that is already gone is
// not an error.
func (s *Store) Remove(relPath string) error {
	abs, err := s.abs(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// abs resolves a relative path inside the root, rejecting traversal.
func (s *Store) abs(relPath string) (string, error) {
	clean := filepath.Clean(relPath)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid stored path %q", relPath)
	}
	return filepath.Join(s.root, clean), nil
}

func (s *Store) classifyWriteError(err error) error {
	if errors.Is(err, syscall.ENOSPC) {
		return apperrors.Wrap(apperrors.ErrInsufficientStorage, err)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
