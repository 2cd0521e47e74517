package models

// Expense is a single tracked expense. Expenses paid by credit card feed
// the calculated statement balance of that card's billing cycles.
type Expense struct {
	Base
	Description     string  `gorm:"not null" json:"description"`
	Amount          float64 `gorm:"not null" json:"amount"`
	Date            string  `gorm:"not null" json:"date"`
	Category        string  `json:"category"`
	PaymentMethodID *uint   `gorm:"index" json:"payment_method_id,omitempty"`
	PersonID        *uint   `json:"person_id,omitempty"`

	Invoices []Invoice `gorm:"foreignKey:ExpenseID" json:"invoices,omitempty"`
}

// Person is someone an expense or invoice can be attributed to.
type Person struct {
	Base
	Name         string `gorm:"not null" json:"name"`
	Relationship string `json:"relationship"`
}
