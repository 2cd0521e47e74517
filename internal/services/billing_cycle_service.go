package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// Bounds for the unified cycle listing.
const (
	defaultUnifiedLimit = 12
	maxUnifiedLimit     = 60
)

// billingCycleService derives monthly cycle boundaries from a card's
// billing cycle day, auto-generates placeholder rows for elapsed periods,
// and reconciles actual against calculated statement balances.
type billingCycleService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBillingCycleService creates a new BillingCycleServicer.
func NewBillingCycleService(db *gorm.DB) BillingCycleServicer {
	return &billingCycleService{db: db, now: time.Now}
}

// clampedDay returns the given day-of-month in year/month, clamped to the
// month's last valid day (day 31 in April becomes April 30).
func clampedDay(year int, month time.Month, day int) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CycleBounds computes the current cycle window for a billing cycle day.
// The cycle end is the occurrence of that day in today's month (clamped);
// once today has passed it, the end rolls to the next month. The start is
// the day after the previous occurrence.
func CycleBounds(billingCycleDay int, today time.Time) (start, end time.Time) {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	end = clampedDay(today.Year(), today.Month(), billingCycleDay)
	if end.Before(today) {
		end = clampedDay(today.Year(), today.Month()+1, billingCycleDay)
	}
	prev := clampedDay(end.Year(), end.Month()-1, billingCycleDay)
	start = prev.AddDate(0, 0, 1)
	return start, end
}

// creditCard loads the payment method and checks it supports billing cycles.
func (s *billingCycleService) creditCard(paymentMethodID uint) (*models.PaymentMethod, error) {
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
	if pm.BillingCycleDay == nil {
		return nil, apperrors.ErrNoBillingCycleDay
	}
	return &pm, nil
}

// calculatedBalance sums tracked expenses minus payments inside the window.
// Dates are YYYY-MM-DD strings, so string comparison is date comparison.
func (s *billingCycleService) calculatedBalance(paymentMethodID uint, startDate, endDate string) (float64, error) {
	var expenses float64
	err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_method_id = ? AND date >= ? AND date <= ?", paymentMethodID, startDate, endDate).
		Scan(&expenses).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var payments float64
	err = s.db.Model(&models.CreditCardPayment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_method_id = ? AND payment_date >= ? AND payment_date <= ?", paymentMethodID, startDate, endDate).
		Scan(&payments).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expenses - payments, nil
}

// ComputeDiscrepancy classifies actual minus calculated.
func ComputeDiscrepancy(actual, calculated float64) models.Discrepancy {
	amount := actual - calculated
	d := models.Discrepancy{Amount: amount}
	switch {
	case amount > 0:
		d.Type = models.DiscrepancyHigher
		d.Description = fmt.Sprintf("Actual statement balance is %.2f higher than tracked spending", amount)
	case amount < 0:
		d.Type = models.DiscrepancyLower
		d.Description = fmt.Sprintf("Actual statement balance is %.2f lower than tracked spending", -amount)
	default:
		d.Type = models.DiscrepancyMatch
		d.Description = "Actual statement balance matches tracked spending"
	}
	return d
}

// GetCurrentCycleStatus reports where the card stands in its current cycle.
func (s *billingCycleService) GetCurrentCycleStatus(paymentMethodID uint) (*CycleStatus, error) {
	pm, err := s.creditCard(paymentMethodID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	start, end := CycleBounds(*pm.BillingCycleDay, today)
	startStr := start.Format(models.DateLayout)
	endStr := end.Format(models.DateLayout)

	calculated, err := s.calculatedBalance(paymentMethodID, startStr, endStr)
	if err != nil {
		return nil, err
	}

	status := &CycleStatus{
		CycleStartDate:    startStr,
		CycleEndDate:      endStr,
		CalculatedBalance: calculated,
	}

	var cycle models.BillingCycle
	err = s.db.Where("payment_method_id = ? AND cycle_end_date = ?", paymentMethodID, endStr).First(&cycle).Error
	switch {
	case err == nil:
		status.ActualBalance = cycle.ActualStatementBalance
		status.HasActualBalance = cycle.ActualStatementBalance != nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No row yet for the current cycle.
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	status.DaysUntilCycleEnd = int(end.Sub(midnight).Hours() / 24)
	status.NeedsEntry = !status.HasActualBalance
	return status, nil
}

// CreateBillingCycle enters the current cycle's actual statement balance.
func (s *billingCycleService) CreateBillingCycle(paymentMethodID uint, input CreateBillingCycleInput) (*models.BillingCycle, *models.Discrepancy, error) {
	pm, err := s.creditCard(paymentMethodID)
	if err != nil {
		return nil, nil, err
	}

	start, end := CycleBounds(*pm.BillingCycleDay, s.now())
	startStr := start.Format(models.DateLayout)
	endStr := end.Format(models.DateLayout)

	// One cycle per (payment method, cycle end date).
	var count int64
	if err := s.db.Model(&models.BillingCycle{}).
		Where("payment_method_id = ? AND cycle_end_date = ?", paymentMethodID, endStr).
		Count(&count).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, nil, apperrors.ErrDuplicateBillingCycle
	}

	calculated, err := s.calculatedBalance(paymentMethodID, startStr, endStr)
	if err != nil {
		return nil, nil, err
	}

	actual := input.ActualStatementBalance
	now := s.now()
	cycle := &models.BillingCycle{
		PaymentMethodID:            paymentMethodID,
		CycleStartDate:             startStr,
		CycleEndDate:               endStr,
		ActualStatementBalance:     &actual,
		CalculatedStatementBalance: calculated,
		MinimumPayment:             input.MinimumPayment,
		Notes:                      input.Notes,
		StatementPDFPath:           input.StatementPDFPath,
		IsUserEntered:              true,
		ReviewedAt:                 &now,
	}
	if err := s.db.Create(cycle).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	discrepancy := ComputeDiscrepancy(actual, calculated)
	return cycle, &discrepancy, nil
}

// UpdateBillingCycle merges the provided fields onto the existing cycle
// and recomputes the discrepancy. The read and the write are separate
// statements; a concurrent writer can be lost between them.
func (s *billingCycleService) UpdateBillingCycle(paymentMethodID, cycleID uint, input UpdateBillingCycleInput) (*models.BillingCycle, *models.Discrepancy, error) {
	cycle, err := s.cycleForMethod(paymentMethodID, cycleID)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	if input.ActualStatementBalance != nil {
		cycle.ActualStatementBalance = input.ActualStatementBalance
		cycle.IsUserEntered = true
		cycle.ReviewedAt = &now
	}
	if input.MinimumPayment != nil {
		cycle.MinimumPayment = input.MinimumPayment
	}
	if input.Notes != nil {
		cycle.Notes = *input.Notes
	}
	if input.StatementPDFPath != nil {
		cycle.StatementPDFPath = *input.StatementPDFPath
	}

	if err := s.db.Save(cycle).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var discrepancy *models.Discrepancy
	if cycle.ActualStatementBalance != nil {
		d := ComputeDiscrepancy(*cycle.ActualStatementBalance, cycle.CalculatedStatementBalance)
		discrepancy = &d
	}
	return cycle, discrepancy, nil
}

// DeleteBillingCycle removes the cycle row and returns it so the caller
// can delete any attached statement PDF from disk.
func (s *billingCycleService) DeleteBillingCycle(paymentMethodID, cycleID uint) (*models.BillingCycle, error) {
	cycle, err := s.cycleForMethod(paymentMethodID, cycleID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(cycle).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return cycle, nil
}

// GetUnifiedBillingCycles lists cycles newest-first, lazily inserting
// placeholder rows for elapsed periods that have no record.
func (s *billingCycleService) GetUnifiedBillingCycles(paymentMethodID uint, limit int, includeAutoGenerate bool) (*UnifiedCyclesResult, error) {
	pm, err := s.creditCard(paymentMethodID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultUnifiedLimit
	}
	if limit > maxUnifiedLimit {
		limit = maxUnifiedLimit
	}

	today := s.now()
	autoGenerated := 0

	if includeAutoGenerate {
		_, currentEnd := CycleBounds(*pm.BillingCycleDay, today)
		for i := 0; i < limit; i++ {
			end := clampedDay(currentEnd.Year(), currentEnd.Month()-time.Month(i), *pm.BillingCycleDay)
			if end.After(today) {
				// Only elapsed periods get placeholders.
				continue
			}
			endStr := end.Format(models.DateLayout)

			var count int64
			if err := s.db.Model(&models.BillingCycle{}).
				Where("payment_method_id = ? AND cycle_end_date = ?", paymentMethodID, endStr).
				Count(&count).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if count > 0 {
				continue
			}

			start := clampedDay(end.Year(), end.Month()-1, *pm.BillingCycleDay).AddDate(0, 0, 1)
			startStr := start.Format(models.DateLayout)
			calculated, err := s.calculatedBalance(paymentMethodID, startStr, endStr)
			if err != nil {
				return nil, err
			}

			placeholder := &models.BillingCycle{
				PaymentMethodID:            paymentMethodID,
				CycleStartDate:             startStr,
				CycleEndDate:               endStr,
				CalculatedStatementBalance: calculated,
				IsUserEntered:              false,
			}
			if err := s.db.Create(placeholder).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			autoGenerated++
		}
	}

	var cycles []models.BillingCycle
	if err := s.db.Where("payment_method_id = ?", paymentMethodID).
		Order("cycle_end_date DESC").
		Limit(limit).
		Find(&cycles).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	unified := make([]models.UnifiedBillingCycle, 0, len(cycles))
	for _, c := range cycles {
		unified = append(unified, c.Unified())
	}

	return &UnifiedCyclesResult{Cycles: unified, AutoGeneratedCount: autoGenerated}, nil
}

// GetCycleHistory lists cycles newest-first, optionally bounded by
// cycle end date.
func (s *billingCycleService) GetCycleHistory(paymentMethodID uint, limit int, startDate, endDate string) ([]models.BillingCycle, error) {
	if _, err := s.creditCard(paymentMethodID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultUnifiedLimit
	}

	q := s.db.Where("payment_method_id = ?", paymentMethodID)
	if startDate != "" {
		q = q.Where("cycle_end_date >= ?", startDate)
	}
	if endDate != "" {
		q = q.Where("cycle_end_date <= ?", endDate)
	}

	var cycles []models.BillingCycle
	if err := q.Order("cycle_end_date DESC").Limit(limit).Find(&cycles).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return cycles, nil
}

// GetLatestStatementBalance returns the newest cycle with a user-entered
// actual balance.
func (s *billingCycleService) GetLatestStatementBalance(paymentMethodID uint) (*models.BillingCycle, error) {
	var cycle models.BillingCycle
	err := s.db.Where("payment_method_id = ? AND actual_statement_balance IS NOT NULL", paymentMethodID).
		Order("cycle_end_date DESC").
		First(&cycle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillingCycleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &cycle, nil
}

func (s *billingCycleService) cycleForMethod(paymentMethodID, cycleID uint) (*models.BillingCycle, error) {
	var cycle models.BillingCycle
	err := s.db.Where("id = ? AND payment_method_id = ?", cycleID, paymentMethodID).First(&cycle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillingCycleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &cycle, nil
}
