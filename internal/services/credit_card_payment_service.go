package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// creditCardPaymentService handles payments made towards credit cards.
type creditCardPaymentService struct {
	db *gorm.DB
}

// NewCreditCardPaymentService creates a new CreditCardPaymentServicer.
func NewCreditCardPaymentService(db *gorm.DB) CreditCardPaymentServicer {
	return &creditCardPaymentService{db: db}
}

// CreatePayment records a payment against a credit card.
func (s *creditCardPaymentService) CreatePayment(paymentMethodID uint, amount float64, paymentDate, notes string) (*models.CreditCardPayment, error) {
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

	payment := &models.CreditCardPayment{
		PaymentMethodID: paymentMethodID,
		Amount:          amount,
		PaymentDate:     paymentDate,
		Notes:           notes,
	}
	if err := s.db.Create(payment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return payment, nil
}

// GetPayments lists a card's payments, newest first.
func (s *creditCardPaymentService) GetPayments(paymentMethodID uint) ([]models.CreditCardPayment, error) {
	var payments []models.CreditCardPayment
	err := s.db.Where("payment_method_id = ?", paymentMethodID).
		Order("payment_date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return payments, nil
}

// DeletePayment hard-deletes a payment belonging to the card.
func (s *creditCardPaymentService) DeletePayment(paymentMethodID, paymentID uint) error {
	var payment models.CreditCardPayment
	err := s.db.Where("id = ? AND payment_method_id = ?", paymentID, paymentMethodID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPaymentNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&payment).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
