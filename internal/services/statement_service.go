package services

import (
	"errors"
	"os"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/storage"
)

// statementService stores uploaded credit-card statement PDFs.
type statementService struct {
	db    *gorm.DB
	store *storage.Store
}

// NewStatementService creates a new StatementServicer.
func NewStatementService(db *gorm.DB, store *storage.Store) StatementServicer {
	return &statementService{db: db, store: store}
}

// UploadStatement stores a statement PDF for a credit card.
func (s *statementService) UploadStatement(paymentMethodID uint, statementDate, periodStart, periodEnd string, data []byte, originalName string) (*models.CreditCardStatement, error) {
	var pm models.PaymentMethod
	if err := s.db.First(&pm, paymentMethodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentMethodNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !pm.IsCreditCard() {
		return nil, apperrors.ErrNotCreditCard
	}

	saved, err := s.store.Save("statements", data, originalName)
	if err != nil {
		return nil, err
	}

	statement := &models.CreditCardStatement{
		PaymentMethodID:      paymentMethodID,
		StatementDate:        statementDate,
		StatementPeriodStart: periodStart,
		StatementPeriodEnd:   periodEnd,
		Filename:             saved.Filename,
		OriginalFilename:     originalName,
		FilePath:             saved.Path,
		FileSize:             saved.Size,
		MimeType:             saved.MimeType,
	}
	if err := s.db.Create(statement).Error; err != nil {
		if rmErr := s.store.Remove(saved.Path); rmErr != nil {
			logger.Get().Warnw("failed to clean up statement file after DB error",
				"path", saved.Path, "error", rmErr)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return statement, nil
}

// GetStatements lists a card's statements, newest first.
func (s *statementService) GetStatements(paymentMethodID uint) ([]models.CreditCardStatement, error) {
	var statements []models.CreditCardStatement
	err := s.db.Where("payment_method_id = ?", paymentMethodID).
		Order("statement_date DESC").
		Find(&statements).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return statements, nil
}

// OpenStatementFile opens the stored PDF for streaming.
func (s *statementService) OpenStatementFile(paymentMethodID, statementID uint) (*os.File, os.FileInfo, *models.CreditCardStatement, error) {
	statement, err := s.statementForMethod(paymentMethodID, statementID)
	if err != nil {
		return nil, nil, nil, err
	}

	f, info, err := s.store.Open(statement.FilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, nil, apperrors.WithMessage(apperrors.ErrStatementNotFound, "Statement file is missing from storage")
		}
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return f, info, statement, nil
}

// DeleteStatement removes the row and its stored file. A failed file
// delete is logged, not escalated.
func (s *statementService) DeleteStatement(paymentMethodID, statementID uint) error {
	statement, err := s.statementForMethod(paymentMethodID, statementID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(statement).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.store.Remove(statement.FilePath); err != nil {
		logger.Get().Warnw("failed to remove statement file after row delete",
			"path", statement.FilePath, "error", err)
	}
	return nil
}

func (s *statementService) statementForMethod(paymentMethodID, statementID uint) (*models.CreditCardStatement, error) {
	var statement models.CreditCardStatement
	err := s.db.Where("id = ? AND payment_method_id = ?", statementID, paymentMethodID).First(&statement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStatementNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &statement, nil
}
