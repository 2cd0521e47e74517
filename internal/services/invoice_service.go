package services

import (
	"errors"
	"os"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/storage"
)

// invoiceService validates and stores invoice PDFs attached to expenses.
type invoiceService struct {
	db    *gorm.DB
	store *storage.Store
}

// NewInvoiceService creates a new InvoiceServicer.
func NewInvoiceService(db *gorm.DB, store *storage.Store) InvoiceServicer {
	return &invoiceService{db: db, store: store}
}

// UploadInvoice stores a PDF for the expense, optionally linked to a
// person. If the metadata insert fails after the file was written, the
// file is removed again.
func (s *invoiceService) UploadInvoice(expenseID uint, personID *uint, data []byte, originalName string) (*models.Invoice, error) {
	var expense models.Expense
	if err := s.db.First(&expense, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if personID != nil {
		var person models.Person
		if err := s.db.First(&person, *personID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPersonNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	saved, err := s.store.Save("invoices", data, originalName)
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		ExpenseID:        expenseID,
		PersonID:         personID,
		Filename:         saved.Filename,
		OriginalFilename: originalName,
		FilePath:         saved.Path,
		FileSize:         saved.Size,
		MimeType:         saved.MimeType,
		UploadDate:       time.Now(),
	}

	if err := s.db.Create(invoice).Error; err != nil {
		// Cleanup-on-error: don't leave an orphaned file behind.
		if rmErr := s.store.Remove(saved.Path); rmErr != nil {
			logger.Get().Warnw("failed to clean up invoice file after DB error",
				"path", saved.Path, "error", rmErr)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return invoice, nil
}

// GetInvoiceByID returns invoice metadata.
func (s *invoiceService) GetInvoiceByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &invoice, nil
}

// GetInvoicesByExpense lists all invoices attached to an expense.
func (s *invoiceService) GetInvoicesByExpense(expenseID uint) ([]models.Invoice, error) {
	var expense models.Expense
	if err := s.db.First(&expense, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var invoices []models.Invoice
	err := s.db.Where("expense_id = ?", expenseID).Order("created_at DESC").Find(&invoices).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return invoices, nil
}

// OpenInvoiceFile opens the stored PDF for streaming. A missing DB row and
// a missing backing file are reported as distinct failures.
func (s *invoiceService) OpenInvoiceFile(id uint) (*os.File, os.FileInfo, *models.Invoice, error) {
	invoice, err := s.GetInvoiceByID(id)
	if err != nil {
		return nil, nil, nil, err
	}

	f, info, err := s.store.Open(invoice.FilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, nil, apperrors.ErrInvoiceFileGone
		}
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return f, info, invoice, nil
}

// ReplaceInvoice deletes the previous file (if any) and stores the new one
// in its place, updating the metadata row.
func (s *invoiceService) ReplaceInvoice(id uint, personID *uint, data []byte, originalName string) (*models.Invoice, error) {
	invoice, err := s.GetInvoiceByID(id)
	if err != nil {
		return nil, err
	}

	saved, err := s.store.Save("invoices", data, originalName)
	if err != nil {
		return nil, err
	}

	oldPath := invoice.FilePath
	invoice.Filename = saved.Filename
	invoice.OriginalFilename = originalName
	invoice.FilePath = saved.Path
	invoice.FileSize = saved.Size
	invoice.MimeType = saved.MimeType
	if personID != nil {
		invoice.PersonID = personID
	}

	if err := s.db.Save(invoice).Error; err != nil {
		if rmErr := s.store.Remove(saved.Path); rmErr != nil {
			logger.Get().Warnw("failed to clean up invoice file after DB error",
				"path", saved.Path, "error", rmErr)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if oldPath != "" && oldPath != saved.Path {
		if err := s.store.Remove(oldPath); err != nil {
			logger.Get().Warnw("failed to remove replaced invoice file", "path", oldPath, "error", err)
		}
	}
	return invoice, nil
}

// DeleteInvoice removes the metadata row and the stored file. The row
// delete is not rolled back if the file delete fails; that is logged and
// the file is left orphaned.
func (s *invoiceService) DeleteInvoice(id uint) error {
	invoice, err := s.GetInvoiceByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(invoice).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.store.Remove(invoice.FilePath); err != nil {
		logger.Get().Warnw("failed to remove invoice file after row delete",
			"path", invoice.FilePath, "error", err)
	}
	return nil
}
