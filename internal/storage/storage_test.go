package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "fintrack/internal/errors"
)

func pdfBytes() []byte {
	return []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
}

func TestValidate(t *testing.T) {
	t.Run("accepts_pdf", func(t *testing.T) {
		assert.NoError(t, Validate(pdfBytes()))
	})

	t.Run("rejects_non_pdf", func(t *testing.T) {
		err := Validate([]byte("hello world"))
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Contains(t, appErr.Message, "validation failed")
	})

	t.Run("rejects_pdf_extension_with_wrong_content", func(t *testing.T) {
		// Content sniffing, not filename, decides validity.
		err := Validate([]byte("GIF89a not a pdf at all"))
		assert.Error(t, err)
	})

	t.Run("rejects_oversized", func(t *testing.T) {
		data := append(pdfBytes(), make([]byte, MaxFileSize)...)
		err := Validate(data)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FILE_TOO_LARGE", appErr.Code)
	})
}

func TestSave(t *testing.T) {
	t.Run("writes_under_kind_year_month", func(t *testing.T) {
		store := NewStore(t.TempDir())

		saved, err := store.Save("invoices", pdfBytes(), "receipt.pdf")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(saved.Path, "invoices"+string(filepath.Separator)))
		assert.True(t, strings.HasSuffix(saved.Filename, ".pdf"))
		assert.Equal(t, int64(len(pdfBytes())), saved.Size)
		assert.Equal(t, "application/pdf", saved.MimeType)
		assert.True(t, store.Exists(saved.Path))
	})

	t.Run("unique_names_for_same_original", func(t *testing.T) {
		store := NewStore(t.TempDir())

		first, err := store.Save("invoices", pdfBytes(), "receipt.pdf")
		require.NoError(t, err)
		second, err := store.Save("invoices", pdfBytes(), "receipt.pdf")
		require.NoError(t, err)

		assert.NotEqual(t, first.Path, second.Path)
		assert.True(t, store.Exists(first.Path))
		assert.True(t, store.Exists(second.Path))
	})

	t.Run("invalid_data_writes_nothing", func(t *testing.T) {
		root := t.TempDir()
		store := NewStore(root)

		_, err := store.Save("invoices", []byte("not a pdf"), "bad.pdf")
		assert.Error(t, err)

		entries, readErr := os.ReadDir(root)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})
}

func TestOpen(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		store := NewStore(t.TempDir())
		saved, err := store.Save("statements", pdfBytes(), "statement.pdf")
		require.NoError(t, err)

		f, info, err := store.Open(saved.Path)
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, saved.Size, info.Size())
	})

	t.Run("missing_file", func(t *testing.T) {
		store := NewStore(t.TempDir())
		_, _, err := store.Open("invoices/2025/03/gone.pdf")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("rejects_traversal", func(t *testing.T) {
		store := NewStore(t.TempDir())
		_, _, err := store.Open("../../etc/passwd")
		assert.Error(t, err)
		assert.False(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestRemove(t *testing.T) {
	store := NewStore(t.TempDir())
	saved, err := store.Save("invoices", pdfBytes(), "receipt.pdf")
	require.NoError(t, err)

	assert.NoError(t, store.Remove(saved.Path))
	assert.False(t, store.Exists(saved.Path))

	// Removing again is not an error.
	assert.NoError(t, store.Remove(saved.Path))
}
