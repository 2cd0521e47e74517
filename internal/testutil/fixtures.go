package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCreditCard creates a credit card with the given billing cycle day.
func CreateTestCreditCard(t *testing.T, db *gorm.DB, billingCycleDay int) *models.PaymentMethod {
	t.Helper()

	dueDay := 10
	pm := &models.PaymentMethod{
		Type:            models.PaymentMethodTypeCreditCard,
		DisplayName:     fmt.Sprintf("Test Card %d", nextID()),
		CreditLimit:     5000,
		PaymentDueDay:   &dueDay,
		BillingCycleDay: &billingCycleDay,
		IsActive:        true,
	}
	if err := db.Create(pm).Error; err != nil {
		t.Fatalf("failed to create test credit card: %v", err)
	}
	return pm
}

// CreateTestPaymentMethod creates a non-card payment method of the given type.
func CreateTestPaymentMethod(t *testing.T, db *gorm.DB, pmType models.PaymentMethodType) *models.PaymentMethod {
	t.Helper()

	pm := &models.PaymentMethod{
		Type:        pmType,
		DisplayName: fmt.Sprintf("Test Method %d", nextID()),
		IsActive:    true,
	}
	if err := db.Create(pm).Error; err != nil {
		t.Fatalf("failed to create test payment method: %v", err)
	}
	return pm
}

// CreateTestExpense creates an expense on the given date, optionally tied
// to a payment method.
func CreateTestExpense(t *testing.T, db *gorm.DB, paymentMethodID *uint, amount float64, date string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Description:     fmt.Sprintf("Test Expense %d", nextID()),
		Amount:          amount,
		Date:            date,
		PaymentMethodID: paymentMethodID,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestPayment records a credit card payment on the given date.
func CreateTestPayment(t *testing.T, db *gorm.DB, paymentMethodID uint, amount float64, date string) *models.CreditCardPayment {
	t.Helper()

	payment := &models.CreditCardPayment{
		PaymentMethodID: paymentMethodID,
		Amount:          amount,
		PaymentDate:     date,
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return payment
}

// CreateTestLoan creates a variable-rate loan.
func CreateTestLoan(t *testing.T, db *gorm.DB) *models.Loan {
	t.Helper()
	return createLoan(t, db, nil)
}

// CreateTestFixedRateLoan creates a loan with a fixed interest rate.
func CreateTestFixedRateLoan(t *testing.T, db *gorm.DB, rate float64) *models.Loan {
	t.Helper()
	return createLoan(t, db, &rate)
}

func createLoan(t *testing.T, db *gorm.DB, rate *float64) *models.Loan {
	t.Helper()

	loan := &models.Loan{
		Name:              fmt.Sprintf("Test Loan %d", nextID()),
		InitialBalance:    25000,
		StartDate:         "2024-01-01",
		LoanType:          models.LoanTypeLoan,
		FixedInterestRate: rate,
	}
	if err := db.Create(loan).Error; err != nil {
		t.Fatalf("failed to create test loan: %v", err)
	}
	return loan
}

// CreateTestPerson creates a person.
func CreateTestPerson(t *testing.T, db *gorm.DB) *models.Person {
	t.Helper()

	person := &models.Person{
		Name:         fmt.Sprintf("Test Person %d", nextID()),
		Relationship: "family",
	}
	if err := db.Create(person).Error; err != nil {
		t.Fatalf("failed to create test person: %v", err)
	}
	return person
}

// CreateTestActivityLogEvent creates an audit event with the given timestamp.
func CreateTestActivityLogEvent(t *testing.T, db *gorm.DB, eventType string, timestamp time.Time) *models.ActivityLogEvent {
	t.Helper()

	event := &models.ActivityLogEvent{
		EventType:  eventType,
		EntityType: "test_entity",
		EntityID:   uint(nextID()),
		UserAction: "test action",
		Timestamp:  timestamp,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create test activity log event: %v", err)
	}
	return event
}

// PDFBytes returns a minimal but valid PDF document for upload tests.
func PDFBytes() []byte {
	return []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n2 0 obj\n<< /Type /Pages /Kids [] /Count 0 >>\nendobj\nxref\n0 3\ntrailer\n<< /Size 3 /Root 1 0 R >>\nstartxref\n0\n%%EOF\n")
}
