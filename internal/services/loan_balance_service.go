package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// loanBalanceService records month-indexed balance/rate snapshots,
// enforcing the fixed-vs-variable-rate contract.
type loanBalanceService struct {
	db *gorm.DB
}

// NewLoanBalanceService creates a new LoanBalanceServicer.
func NewLoanBalanceService(db *gorm.DB) LoanBalanceServicer {
	return &loanBalanceService{db: db}
}

// CreateOrUpdateBalance upserts the balance for (loan, year, month).
// When rate is omitted it is auto-populated from the loan's fixed rate;
// loans without a fixed rate require an explicit rate. The second return
// value reports whether a new row was created.
func (s *loanBalanceService) CreateOrUpdateBalance(loanID uint, year, month int, remainingBalance float64, rate *float64) (*models.LoanBalance, bool, error) {
	var loan models.Loan
	if err := s.db.First(&loan, loanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.ErrLoanNotFound
		}
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	effectiveRate := rate
	if effectiveRate == nil {
		if loan.FixedInterestRate == nil {
			return nil, false, apperrors.ErrRateRequired
		}
		effectiveRate = loan.FixedInterestRate
	}

	var existing models.LoanBalance
	err := s.db.Where("loan_id = ? AND year = ? AND month = ?", loanID, year, month).First(&existing).Error
	switch {
	case err == nil:
		existing.RemainingBalance = remainingBalance
		existing.Rate = *effectiveRate
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &existing, false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		balance := &models.LoanBalance{
			LoanID:           loanID,
			Year:             year,
			Month:            month,
			RemainingBalance: remainingBalance,
			Rate:             *effectiveRate,
		}
		if err := s.db.Create(balance).Error; err != nil {
			return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return balance, true, nil
	default:
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// GetBalanceForMonth returns the balance entry for one period.
func (s *loanBalanceService) GetBalanceForMonth(loanID uint, year, month int) (*models.LoanBalance, error) {
	var balance models.LoanBalance
	err := s.db.Where("loan_id = ? AND year = ? AND month = ?", loanID, year, month).First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLoanBalanceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &balance, nil
}

// GetBalanceHistory lists a loan's balance entries, newest period first.
func (s *loanBalanceService) GetBalanceHistory(loanID uint) ([]models.LoanBalance, error) {
	var loan models.Loan
	if err := s.db.First(&loan, loanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLoanNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var balances []models.LoanBalance
	err := s.db.Where("loan_id = ?", loanID).
		Order("year DESC, month DESC").
		Find(&balances).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return balances, nil
}

// UpdateBalance updates an existing balance entry by row ID.
func (s *loanBalanceService) UpdateBalance(id uint, remainingBalance, rate *float64) (*models.LoanBalance, error) {
	var balance models.LoanBalance
	if err := s.db.First(&balance, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLoanBalanceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := make(map[string]interface{})
	if remainingBalance != nil {
		updates["remaining_balance"] = *remainingBalance
	}
	if rate != nil {
		updates["rate"] = *rate
	}
	if len(updates) > 0 {
		if err := s.db.Model(&balance).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return &balance, nil
}

// DeleteBalance removes a balance entry by row ID.
func (s *loanBalanceService) DeleteBalance(id uint) error {
	var balance models.LoanBalance
	if err := s.db.First(&balance, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLoanBalanceNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&balance).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
