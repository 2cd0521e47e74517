package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// loanService handles loan business logic.
type loanService struct {
	db *gorm.DB
}

// NewLoanService creates a new LoanServicer.
func NewLoanService(db *gorm.DB) LoanServicer {
	return &loanService{db: db}
}

// CreateLoan creates a new loan.
func (s *loanService) CreateLoan(input CreateLoanInput) (*models.Loan, error) {
	loan := &models.Loan{
		Name:              input.Name,
		InitialBalance:    input.InitialBalance,
		StartDate:         input.StartDate,
		LoanType:          input.LoanType,
		FixedInterestRate: input.FixedInterestRate,
	}
	if err := s.db.Create(loan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return loan, nil
}

// GetLoans lists all loans.
func (s *loanService) GetLoans() ([]models.Loan, error) {
	var loans []models.Loan
	if err := s.db.Order("start_date DESC").Find(&loans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return loans, nil
}

// GetLoanByID returns a loan by ID.
func (s *loanService) GetLoanByID(id uint) (*models.Loan, error) {
	var loan models.Loan
	if err := s.db.First(&loan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLoanNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &loan, nil
}

// UpdateLoan merges the provided fields onto an existing loan.
func (s *loanService) UpdateLoan(id uint, input UpdateLoanInput) (*models.Loan, error) {
	loan, err := s.GetLoanByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.InitialBalance != nil {
		updates["initial_balance"] = *input.InitialBalance
	}
	if input.StartDate != nil {
		updates["start_date"] = *input.StartDate
	}
	if input.LoanType != nil {
		updates["loan_type"] = *input.LoanType
	}
	if input.FixedInterestRate != nil {
		updates["fixed_interest_rate"] = *input.FixedInterestRate
	}

	if len(updates) > 0 {
		if err := s.db.Model(loan).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return loan, nil
}

// DeleteLoan removes a loan and its balance history.
func (s *loanService) DeleteLoan(id uint) error {
	loan, err := s.GetLoanByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Where("loan_id = ?", id).Delete(&models.LoanBalance{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(loan).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
