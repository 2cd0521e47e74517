package models

// LoanBalance is a month-indexed snapshot of a loan's remaining balance
// and the rate in effect. One row per (loan_id, year, month); a second
// write for the same period overwrites the first.
type LoanBalance struct {
	Base
	LoanID           uint    `gorm:"not null;index:idx_loan_period,unique" json:"loan_id"`
	Year             int     `gorm:"not null;index:idx_loan_period,unique" json:"year"`
	Month            int     `gorm:"not null;index:idx_loan_period,unique" json:"month"`
	RemainingBalance float64 `gorm:"not null" json:"remaining_balance"`
	Rate             float64 `gorm:"not null" json:"rate"`
}
