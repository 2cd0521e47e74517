package services

import (
	"os"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// CreatePaymentMethodInput holds the fields for creating a payment method.
type CreatePaymentMethodInput struct {
	Type            models.PaymentMethodType
	DisplayName     string
	FullName        string
	CreditLimit     float64
	CurrentBalance  float64
	PaymentDueDay   *int
	BillingCycleDay *int
}

// UpdatePaymentMethodInput holds optional fields for updating a payment
// method; nil fields are left unchanged.
type UpdatePaymentMethodInput struct {
	DisplayName     *string
	FullName        *string
	CreditLimit     *float64
	CurrentBalance  *float64
	PaymentDueDay   *int
	BillingCycleDay *int
	IsActive        *bool
}

// PaymentMethodServicer defines the contract for payment-method business logic.
type PaymentMethodServicer interface {
	CreatePaymentMethod(input CreatePaymentMethodInput) (*models.PaymentMethod, error)
	GetPaymentMethods(includeInactive bool) ([]models.PaymentMethod, error)
	GetPaymentMethodByID(id uint) (*models.PaymentMethod, error)
	UpdatePaymentMethod(id uint, input UpdatePaymentMethodInput) (*models.PaymentMethod, error)
	DeletePaymentMethod(id uint) error
}

// CycleStatus describes where a credit card stands in its current billing cycle.
type CycleStatus struct {
	CycleStartDate    string   `json:"cycleStartDate"`
	CycleEndDate      string   `json:"cycleEndDate"`
	HasActualBalance  bool     `json:"hasActualBalance"`
	CalculatedBalance float64  `json:"calculatedBalance"`
	ActualBalance     *float64 `json:"actualBalance"`
	DaysUntilCycleEnd int      `json:"daysUntilCycleEnd"`
	NeedsEntry        bool     `json:"needsEntry"`
}

// CreateBillingCycleInput holds the fields for entering a billing cycle.
type CreateBillingCycleInput struct {
	ActualStatementBalance float64
	MinimumPayment         *float64
	Notes                  string
	StatementPDFPath       string
}

// UpdateBillingCycleInput holds optional fields for updating a billing
// cycle; nil fields preserve the existing values.
type UpdateBillingCycleInput struct {
	ActualStatementBalance *float64
	MinimumPayment         *float64
	Notes                  *string
	StatementPDFPath       *string
}

// UnifiedCyclesResult is the unified cycle list plus how many placeholder
// rows were auto-generated while building it.
type UnifiedCyclesResult struct {
	Cycles             []models.UnifiedBillingCycle `json:"cycles"`
	AutoGeneratedCount int                          `json:"autoGeneratedCount"`
}

// BillingCycleServicer defines the contract for billing-cycle business logic.
type BillingCycleServicer interface {
	GetCurrentCycleStatus(paymentMethodID uint) (*CycleStatus, error)
	CreateBillingCycle(paymentMethodID uint, input CreateBillingCycleInput) (*models.BillingCycle, *models.Discrepancy, error)
	UpdateBillingCycle(paymentMethodID, cycleID uint, input UpdateBillingCycleInput) (*models.BillingCycle, *models.Discrepancy, error)
	DeleteBillingCycle(paymentMethodID, cycleID uint) (*models.BillingCycle, error)
	GetUnifiedBillingCycles(paymentMethodID uint, limit int, includeAutoGenerate bool) (*UnifiedCyclesResult, error)
	GetCycleHistory(paymentMethodID uint, limit int, startDate, endDate string) ([]models.BillingCycle, error)
	GetLatestStatementBalance(paymentMethodID uint) (*models.BillingCycle, error)
}

// CreditCardPaymentServicer defines the contract for credit-card payments.
type CreditCardPaymentServicer interface {
	CreatePayment(paymentMethodID uint, amount float64, paymentDate, notes string) (*models.CreditCardPayment, error)
	GetPayments(paymentMethodID uint) ([]models.CreditCardPayment, error)
	DeletePayment(paymentMethodID, paymentID uint) error
}

// StatementServicer defines the contract for uploaded credit-card statements.
type StatementServicer interface {
	UploadStatement(paymentMethodID uint, statementDate, periodStart, periodEnd string, data []byte, originalName string) (*models.CreditCardStatement, error)
	GetStatements(paymentMethodID uint) ([]models.CreditCardStatement, error)
	OpenStatementFile(paymentMethodID, statementID uint) (*os.File, os.FileInfo, *models.CreditCardStatement, error)
	DeleteStatement(paymentMethodID, statementID uint) error
}

// CreateLoanInput holds the fields for creating a loan.
type CreateLoanInput struct {
	Name              string
	InitialBalance    float64
	StartDate         string
	LoanType          models.LoanType
	FixedInterestRate *float64
}

// UpdateLoanInput holds optional fields for updating a loan.
type UpdateLoanInput struct {
	Name              *string
	InitialBalance    *float64
	StartDate         *string
	LoanType          *models.LoanType
	FixedInterestRate *float64
}

// LoanServicer defines the contract for loan business logic.
type LoanServicer interface {
	CreateLoan(input CreateLoanInput) (*models.Loan, error)
	GetLoans() ([]models.Loan, error)
	GetLoanByID(id uint) (*models.Loan, error)
	UpdateLoan(id uint, input UpdateLoanInput) (*models.Loan, error)
	DeleteLoan(id uint) error
}

// LoanBalanceServicer defines the contract for month-indexed loan balances.
type LoanBalanceServicer interface {
	CreateOrUpdateBalance(loanID uint, year, month int, remainingBalance float64, rate *float64) (*models.LoanBalance, bool, error)
	GetBalanceForMonth(loanID uint, year, month int) (*models.LoanBalance, error)
	GetBalanceHistory(loanID uint) ([]models.LoanBalance, error)
	UpdateBalance(id uint, remainingBalance, rate *float64) (*models.LoanBalance, error)
	DeleteBalance(id uint) error
}

// ActivityLogServicer defines the contract for the audit trail and its retention.
type ActivityLogServicer interface {
	// Log is fire-and-forget: failures are logged, never returned.
	Log(eventType, entityType string, entityID uint, userAction string, metadata map[string]any)
	FindRecent(page pagination.LimitOffset) (*pagination.ListResponse[models.ActivityLogEvent], error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
	DeleteExcessEvents(maxCount int) (int64, error)
	GetSettings() (*models.ActivityLogSettings, error)
	UpdateSettings(maxAgeDays, maxCount int) (*models.ActivityLogSettings, error)
	EnforceRetention() error
}

// InvoiceServicer defines the contract for invoice documents.
type InvoiceServicer interface {
	UploadInvoice(expenseID uint, personID *uint, data []byte, originalName string) (*models.Invoice, error)
	GetInvoiceByID(id uint) (*models.Invoice, error)
	GetInvoicesByExpense(expenseID uint) ([]models.Invoice, error)
	OpenInvoiceFile(id uint) (*os.File, os.FileInfo, *models.Invoice, error)
	ReplaceInvoice(id uint, personID *uint, data []byte, originalName string) (*models.Invoice, error)
	DeleteInvoice(id uint) error
}

// CreateExpenseInput holds the fields for creating an expense.
type CreateExpenseInput struct {
	Description     string
	Amount          float64
	Date            string
	Category        string
	PaymentMethodID *uint
	PersonID        *uint
}

// UpdateExpenseInput holds optional fields for updating an expense.
type UpdateExpenseInput struct {
	Description     *string
	Amount          *float64
	Date            *string
	Category        *string
	PaymentMethodID *uint
	PersonID        *uint
}

// ExpenseServicer defines the contract for expense business logic.
type ExpenseServicer interface {
	CreateExpense(input CreateExpenseInput) (*models.Expense, error)
	GetExpenses(page pagination.LimitOffset) (*pagination.ListResponse[models.Expense], error)
	GetExpenseByID(id uint) (*models.Expense, error)
	UpdateExpense(id uint, input UpdateExpenseInput) (*models.Expense, error)
	DeleteExpense(id uint) error
}

// PersonServicer defines the contract for people records.
type PersonServicer interface {
	CreatePerson(name, relationship string) (*models.Person, error)
	GetPeople() ([]models.Person, error)
	GetPersonByID(id uint) (*models.Person, error)
	UpdatePerson(id uint, name, relationship *string) (*models.Person, error)
	DeletePerson(id uint) error
}
