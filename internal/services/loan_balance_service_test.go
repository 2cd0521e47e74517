package services

import (
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestCreateOrUpdateBalance(t *testing.T) {
	t.Run("creates_with_explicit_rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLoanBalanceService(db)
		loan := testutil.CreateTestLoan(t, db)

		rate := 6.25
		balance, created, err := svc.CreateOrUpdateBalance(loan.ID, 2025, 3, 18000, &rate)
		testutil.AssertNoError(t, err)

		if !created {
			t.Error("expected a new row")
		}
		if balance.Rate != 6.25 {
			t.Errorf("expected rate 6.25, got %f", balance.Rate)
		}
		if balance.RemainingBalance != 18000 {
			t.Errorf("expected balance 18000, got %f", balance.RemainingBalance)
		}
	})

	t.Run("auto_populates_fixed_rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLoanBalanceService(db)
		loan := testutil.CreateTestFixedRateLoan(t, db, 4.5)

		balance, created, err := svc.CreateOrUpdateBalance(loan.ID, 2025, 3, 18000, nil)
		testutil.AssertNoError(t, err)

		if !created {
			t.Error("expected a new row")
		}
		if balance.Rate != 4.5 {
			t.Errorf("expected fixed rate 4.5, got %f", balance.Rate)
		}
	})

	t.Run("variable_rate_loan_requires_rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLoanBalanceService(db)
		loan := testutil.CreateTestLoan(t, db)

		_, _, err := svc.CreateOrUpdateBalance(loan.ID, 2025, 3, 18000, nil)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")

		want := "Interest rate is required for loans without a fixed interest rate"
		if got := err.Error(); got != want {
			t.Errorf("expected message %q, got %q", want, got)
		}
	})

	t.Run("same_period_overwrites", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLoanBalanceService(db)
		loan := testutil.CreateTestFixedRateLoan(t, db, 5.0)

		first, created, err := svc.CreateOrUpdateBalance(loan.ID, 2025, 3, 18000, nil)
		testutil.AssertNoError(t, err)
		if !created {
			t.Fatal("expected first write to create")
		}

		second, created, err := svc.CreateOrUpdateBalance(loan.ID, 2025, 3, 17500, nil)
		testutil.AssertNoError(t, err)
		if created {
			t.Error("expected second write to update in place")
		}
		if second.ID != first.ID {
			t.Errorf("expected the same row, got %d then %d", first.ID, second.ID)
		}
		if second.RemainingBalance != 17500 {
			t.Errorf("expected balance 17500, got %f", second.RemainingBalance)
		}

		var count int64
		db.Model(&models.LoanBalance{}).Where("loan_id = ?", loan.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected exactly 1 row for the period, got %d", count)
		}
	})

	t.Run("unknown_loan", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLoanBalanceService(db)

		rate := 5.0
		_, _, err := svc.CreateOrUpdateBalance(999, 2025, 3, 18000, &rate)
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}

func TestGetBalanceForMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewLoanBalanceService(db)
	loan := testutil.CreateTestFixedRateLoan(t, db, 5.0)

	_, _, err := svc.CreateOrUpdateBalance(loan.ID, 2025, 3, 18000, nil)
	testutil.AssertNoError(t, err)

	balance, err := svc.GetBalanceForMonth(loan.ID, 2025, 3)
	testutil.AssertNoError(t, err)
	if balance.RemainingBalance != 18000 {
		t.Errorf("expected balance 18000, got %f", balance.RemainingBalance)
	}

	_, err = svc.GetBalanceForMonth(loan.ID, 2025, 4)
	testutil.AssertAppError(t, err, "NOT_FOUND")
}

func TestGetBalanceHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewLoanBalanceService(db)
	loan := testutil.CreateTestFixedRateLoan(t, db, 5.0)

	for _, period := range []struct{ year, month int }{
		{2024, 11}, {2025, 2}, {2024, 12}, {2025, 1},
	} {
		_, _, err := svc.CreateOrUpdateBalance(loan.ID, period.year, period.month, 10000, nil)
		testutil.AssertNoError(t, err)
	}

	balances, err := svc.GetBalanceHistory(loan.ID)
	testutil.AssertNoError(t, err)

	if len(balances) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(balances))
	}
	want := []struct{ year, month int }{{2025, 2}, {2025, 1}, {2024, 12}, {2024, 11}}
	for i, w := range want {
		if balances[i].Year != w.year || balances[i].Month != w.month {
			t.Errorf("position %d: expected %d-%d, got %d-%d", i, w.year, w.month, balances[i].Year, balances[i].Month)
		}
	}
}

func TestUpdateBalance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewLoanBalanceService(db)
	loan := testutil.CreateTestFixedRateLoan(t, db, 5.0)

	created, _, err := svc.CreateOrUpdateBalance(loan.ID, 2025, 3, 18000, nil)
	testutil.AssertNoError(t, err)

	newBalance := 17000.0
	updated, err := svc.UpdateBalance(created.ID, &newBalance, nil)
	testutil.AssertNoError(t, err)
	if updated.RemainingBalance != 17000 {
		t.Errorf("expected balance 17000, got %f", updated.RemainingBalance)
	}
	if updated.Rate != 5.0 {
		t.Errorf("expected rate unchanged at 5.0, got %f", updated.Rate)
	}

	_, err = svc.UpdateBalance(999, &newBalance, nil)
	testutil.AssertAppError(t, err, "NOT_FOUND")
}

func TestDeleteBalance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewLoanBalanceService(db)
	loan := testutil.CreateTestFixedRateLoan(t, db, 5.0)

	created, _, err := svc.CreateOrUpdateBalance(loan.ID, 2025, 3, 18000, nil)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteBalance(created.ID))
	testutil.AssertAppError(t, svc.DeleteBalance(created.ID), "NOT_FOUND")
}
