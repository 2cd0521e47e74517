package models

// LoanType represents the kind of borrowing being tracked.
type LoanType string

const (
	LoanTypeLoan         LoanType = "loan"
	LoanTypeLineOfCredit LoanType = "line_of_credit"
	LoanTypeMortgage     LoanType = "mortgage"
)

// Loan represents a loan, line of credit or mortgage. A nil
// FixedInterestRate means the rate is variable and every balance entry
// must carry its own rate.
type Loan struct {
	Base
	Name              string   `gorm:"not null" json:"name"`
	InitialBalance    float64  `gorm:"not null" json:"initial_balance"`
	StartDate         string   `gorm:"not null" json:"start_date"`
	LoanType          LoanType `gorm:"not null" json:"loan_type"`
	FixedInterestRate *float64 `json:"fixed_interest_rate"`

	Balances []LoanBalance `gorm:"foreignKey:LoanID" json:"balances,omitempty"`
}
