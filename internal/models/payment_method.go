package models

// PaymentMethodType represents how an expense is paid.
type PaymentMethodType string

const (
	PaymentMethodTypeCash       PaymentMethodType = "cash"
	PaymentMethodTypeCheque     PaymentMethodType = "cheque"
	PaymentMethodTypeDebit      PaymentMethodType = "debit"
	PaymentMethodTypeCreditCard PaymentMethodType = "credit_card"
)

// PaymentMethod represents a way of paying for expenses. Credit-limit,
// balance and billing-cycle fields are only meaningful for credit cards.
type PaymentMethod struct {
	Base
	Type           PaymentMethodType `gorm:"not null" json:"type"`
	DisplayName    string            `gorm:"not null" json:"display_name"`
	FullName       string            `json:"full_name"`
	CreditLimit    float64           `json:"credit_limit"`
	CurrentBalance float64           `json:"current_balance"`
	PaymentDueDay  *int              `json:"payment_due_day,omitempty"`
	BillingCycleDay *int             `json:"billing_cycle_day,omitempty"`
	IsActive       bool              `gorm:"default:true" json:"is_active"`

	// Relationships
	BillingCycles []BillingCycle      `gorm:"foreignKey:PaymentMethodID" json:"billing_cycles,omitempty"`
	Payments      []CreditCardPayment `gorm:"foreignKey:PaymentMethodID" json:"payments,omitempty"`
}

// IsCreditCard reports whether billing-cycle operations apply to this method.
func (p *PaymentMethod) IsCreditCard() bool {
	return p.Type == PaymentMethodTypeCreditCard
}
