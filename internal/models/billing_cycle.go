package models

import "time"

// BillingCycle represents one monthly statement period of a credit card.
// Cycle dates are stored as YYYY-MM-DD strings; the pair
// (payment_method_id, cycle_end_date) is unique.
type BillingCycle struct {
	Base
	PaymentMethodID            uint       `gorm:"not null;index" json:"payment_method_id"`
	CycleStartDate             string     `gorm:"not null" json:"cycle_start_date"`
	CycleEndDate               string     `gorm:"not null" json:"cycle_end_date"`
	ActualStatementBalance     *float64   `json:"actual_statement_balance"`
	CalculatedStatementBalance float64    `json:"calculated_statement_balance"`
	MinimumPayment             *float64   `json:"minimum_payment,omitempty"`
	Notes                      string     `json:"notes"`
	StatementPDFPath           string     `json:"statement_pdf_path,omitempty"`
	IsUserEntered              bool       `gorm:"default:false" json:"is_user_entered"`
	ReviewedAt                 *time.Time `json:"reviewed_at,omitempty"`
}

// DiscrepancyType classifies the sign of actual minus calculated balance.
type DiscrepancyType string

const (
	DiscrepancyHigher DiscrepancyType = "higher"
	DiscrepancyLower  DiscrepancyType = "lower"
	DiscrepancyMatch  DiscrepancyType = "match"
)

// Discrepancy is the signed difference between a user-entered actual
// statement balance and the system-calculated balance for the same cycle.
type Discrepancy struct {
	Amount      float64         `json:"amount"`
	Type        DiscrepancyType `json:"type"`
	Description string          `json:"description"`
}

// BalanceType tags which balance an effective balance was taken from.
type BalanceType string

const (
	BalanceTypeActual     BalanceType = "actual"
	BalanceTypeCalculated BalanceType = "calculated"
)

// UnifiedBillingCycle is a billing cycle enriched with the balance the
// frontend should display: the actual balance when entered, otherwise the
// calculated one.
type UnifiedBillingCycle struct {
	BillingCycle
	EffectiveBalance float64     `json:"effective_balance"`
	BalanceType      BalanceType `json:"balance_type"`
}

// Unified wraps the cycle with its effective balance and tag.
func (b BillingCycle) Unified() UnifiedBillingCycle {
	u := UnifiedBillingCycle{BillingCycle: b}
	if b.ActualStatementBalance != nil {
		u.EffectiveBalance = *b.ActualStatementBalance
		u.BalanceType = BalanceTypeActual
	} else {
		u.EffectiveBalance = b.CalculatedStatementBalance
		u.BalanceType = BalanceTypeCalculated
	}
	return u
}
