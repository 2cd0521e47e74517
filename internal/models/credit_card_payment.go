package models

// CreditCardPayment is a payment made towards a credit card balance.
// Payments are hard-deleted; there is no soft-delete state.
type CreditCardPayment struct {
	Base
	PaymentMethodID uint    `gorm:"not null;index" json:"payment_method_id"`
	Amount          float64 `gorm:"not null" json:"amount"`
	PaymentDate     string  `gorm:"not null" json:"payment_date"`
	Notes           string  `json:"notes"`
}
