package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// paymentMethodService handles payment-method business logic.
type paymentMethodService struct {
	db *gorm.DB
}

// NewPaymentMethodService creates a new PaymentMethodServicer.
func NewPaymentMethodService(db *gorm.DB) PaymentMethodServicer {
	return &paymentMethodService{db: db}
}

// CreatePaymentMethod creates a new payment method.
func (s *paymentMethodService) CreatePaymentMethod(input CreatePaymentMethodInput) (*models.PaymentMethod, error) {
	pm := &models.PaymentMethod{
		Type:            input.Type,
		DisplayName:     input.DisplayName,
		FullName:        input.FullName,
		CreditLimit:     input.CreditLimit,
		CurrentBalance:  input.CurrentBalance,
		PaymentDueDay:   input.PaymentDueDay,
		BillingCycleDay: input.BillingCycleDay,
		IsActive:        true,
	}

	if err := s.db.Create(pm).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return pm, nil
}

// GetPaymentMethods lists payment methods, active ones only by default.
func (s *paymentMethodService) GetPaymentMethods(includeInactive bool) ([]models.PaymentMethod, error) {
	q := s.db.Order("display_name")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}

	var methods []models.PaymentMethod
	if err := q.Find(&methods).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return methods, nil
}

// GetPaymentMethodByID returns a payment method by ID.
func (s *paymentMethodService) GetPaymentMethodByID(id uint) (*models.PaymentMethod, error) {
	var pm models.PaymentMethod
	if err := s.db.First(&pm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentMethodNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &pm, nil
}

// UpdatePaymentMethod merges the provided fields onto an existing payment method.
func (s *paymentMethodService) UpdatePaymentMethod(id uint, input UpdatePaymentMethodInput) (*models.PaymentMethod, error) {
	pm, err := s.GetPaymentMethodByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.DisplayName != nil {
		updates["display_name"] = *input.DisplayName
	}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.CreditLimit != nil {
		updates["credit_limit"] = *input.CreditLimit
	}
	if input.CurrentBalance != nil {
		updates["current_balance"] = *input.CurrentBalance
	}
	if input.PaymentDueDay != nil {
		updates["payment_due_day"] = *input.PaymentDueDay
	}
	if input.BillingCycleDay != nil {
		updates["billing_cycle_day"] = *input.BillingCycleDay
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(pm).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return pm, nil
}

// DeletePaymentMethod removes a payment method.
func (s *paymentMethodService) DeletePaymentMethod(id uint) error {
	pm, err := s.GetPaymentMethodByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(pm).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
