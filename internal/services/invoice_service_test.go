package services

import (
	"os"
	"path/filepath"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/storage"
	"fintrack/internal/testutil"
)

func TestUploadInvoice(t *testing.T) {
	t.Run("stores_file_and_metadata", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewStore(t.TempDir())
		svc := NewInvoiceService(db, store)
		expense := testutil.CreateTestExpense(t, db, nil, 50, "2025-03-01")

		invoice, err := svc.UploadInvoice(expense.ID, nil, testutil.PDFBytes(), "receipt.pdf")
		testutil.AssertNoError(t, err)

		if invoice.OriginalFilename != "receipt.pdf" {
			t.Errorf("expected original filename receipt.pdf, got %s", invoice.OriginalFilename)
		}
		if invoice.MimeType != "application/pdf" {
			t.Errorf("expected mime type application/pdf, got %s", invoice.MimeType)
		}
		if invoice.UploadDate.IsZero() {
			t.Error("expected upload date to be set")
		}
		if !store.Exists(invoice.FilePath) {
			t.Error("expected file on disk")
		}
	})

	t.Run("with_person", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewStore(t.TempDir())
		svc := NewInvoiceService(db, store)
		expense := testutil.CreateTestExpense(t, db, nil, 50, "2025-03-01")
		person := testutil.CreateTestPerson(t, db)

		invoice, err := svc.UploadInvoice(expense.ID, &person.ID, testutil.PDFBytes(), "receipt.pdf")
		testutil.AssertNoError(t, err)
		if invoice.PersonID == nil || *invoice.PersonID != person.ID {
			t.Error("expected invoice linked to person")
		}
	})

	t.Run("rejects_non_pdf", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewStore(t.TempDir())
		svc := NewInvoiceService(db, store)
		expense := testutil.CreateTestExpense(t, db, nil, 50, "2025-03-01")

		_, err := svc.UploadInvoice(expense.ID, nil, []byte("just some text"), "notes.txt")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")

		var count int64
		db.Model(&models.Invoice{}).Count(&count)
		if count != 0 {
			t.Error("expected no invoice row for rejected upload")
		}
	})

	t.Run("unknown_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewStore(t.TempDir())
		svc := NewInvoiceService(db, store)

		_, err := svc.UploadInvoice(999, nil, testutil.PDFBytes(), "receipt.pdf")
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})

	t.Run("unknown_person", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewStore(t.TempDir())
		svc := NewInvoiceService(db, store)
		expense := testutil.CreateTestExpense(t, db, nil, 50, "2025-03-01")

		missing := uint(999)
		_, err := svc.UploadInvoice(expense.ID, &missing, testutil.PDFBytes(), "receipt.pdf")
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}

func TestOpenInvoiceFile(t *testing.T) {
	t.Run("opens_stored_file", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewStore(t.TempDir())
		svc := NewInvoiceService(db, store)
		expense := testutil.CreateTestExpense(t, db, nil, 50, "2025-03-01")

		invoice, err := svc.UploadInvoice(expense.ID, nil, testutil.PDFBytes(), "receipt.pdf")
		testutil.AssertNoError(t, err)

		f, info, meta, err := svc.OpenInvoiceFile(invoice.ID)
		testutil.AssertNoError(t, err)
		defer f.Close()

		if info.Size() != int64(len(testutil.PDFBytes())) {
			t.Errorf("expected size %d, got %d", len(testutil.PDFBytes()), info.Size())
		}
		if meta.ID != invoice.ID {
			t.Errorf("expected metadata for invoice %d, got %d", invoice.ID, meta.ID)
		}
	})

	t.Run("row_without_file", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		root := t.TempDir()
		store := storage.NewStore(root)
		svc := NewInvoiceService(db, store)
		expense := testutil.CreateTestExpense(t, db, nil, 50, "2025-03-01")

		invoice, err := svc.UploadInvoice(expense.ID, nil, testutil.PDFBytes(), "receipt.pdf")
		testutil.AssertNoError(t, err)

		// Yank the file out from under the row.
		testutil.AssertNoError(t, os.Remove(filepath.Join(root, invoice.FilePath)))

		_, _, _, err = svc.OpenInvoiceFile(invoice.ID)
		testutil.AssertAppError(t, err, "NOT_FOUND")
		if err.Error() != "Invoice file is missing from storage" {
			t.Errorf("expected missing-file message, got %q", err.Error())
		}
	})

	t.Run("unknown_invoice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewStore(t.TempDir())
		svc := NewInvoiceService(db, store)

		_, _, _, err := svc.OpenInvoiceFile(999)
		testutil.AssertAppError(t, err, "NOT_FOUND")
		if err.Error() != "Invoice not found" {
			t.Errorf("expected not-found message, got %q", err.Error())
		}
	})
}

func TestReplaceInvoice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := storage.NewStore(t.TempDir())
	svc := NewInvoiceService(db, store)
	expense := testutil.CreateTestExpense(t, db, nil, 50, "2025-03-01")

	invoice, err := svc.UploadInvoice(expense.ID, nil, testutil.PDFBytes(), "first.pdf")
	testutil.AssertNoError(t, err)
	oldPath := invoice.FilePath

	replaced, err := svc.ReplaceInvoice(invoice.ID, nil, testutil.PDFBytes(), "second.pdf")
	testutil.AssertNoError(t, err)

	if replaced.OriginalFilename != "second.pdf" {
		t.Errorf("expected original filename second.pdf, got %s", replaced.OriginalFilename)
	}
	if replaced.FilePath == oldPath {
		t.Error("expected a new stored file path")
	}
	if store.Exists(oldPath) {
		t.Error("expected the old file to be removed")
	}
	if !store.Exists(replaced.FilePath) {
		t.Error("expected the new file on disk")
	}

	var count int64
	db.Model(&models.Invoice{}).Count(&count)
	if count != 1 {
		t.Errorf("expected replace to keep a single row, got %d", count)
	}
}

func TestDeleteInvoice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := storage.NewStore(t.TempDir())
	svc := NewInvoiceService(db, store)
	expense := testutil.CreateTestExpense(t, db, nil, 50, "2025-03-01")

	invoice, err := svc.UploadInvoice(expense.ID, nil, testutil.PDFBytes(), "receipt.pdf")
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteInvoice(invoice.ID))

	if store.Exists(invoice.FilePath) {
		t.Error("expected the file to be removed with the row")
	}
	testutil.AssertAppError(t, svc.DeleteInvoice(invoice.ID), "NOT_FOUND")
}

func TestGetInvoicesByExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := storage.NewStore(t.TempDir())
	svc := NewInvoiceService(db, store)
	expense := testutil.CreateTestExpense(t, db, nil, 50, "2025-03-01")
	other := testutil.CreateTestExpense(t, db, nil, 75, "2025-03-02")

	_, err := svc.UploadInvoice(expense.ID, nil, testutil.PDFBytes(), "a.pdf")
	testutil.AssertNoError(t, err)
	_, err = svc.UploadInvoice(expense.ID, nil, testutil.PDFBytes(), "b.pdf")
	testutil.AssertNoError(t, err)
	_, err = svc.UploadInvoice(other.ID, nil, testutil.PDFBytes(), "c.pdf")
	testutil.AssertNoError(t, err)

	invoices, err := svc.GetInvoicesByExpense(expense.ID)
	testutil.AssertNoError(t, err)
	if len(invoices) != 2 {
		t.Errorf("expected 2 invoices, got %d", len(invoices))
	}

	_, err = svc.GetInvoicesByExpense(999)
	testutil.AssertAppError(t, err, "NOT_FOUND")
}
