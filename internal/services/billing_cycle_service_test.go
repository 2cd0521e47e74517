package services

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func fixedNow(date string) func() time.Time {
	t, _ := time.Parse(models.DateLayout, date)
	return func() time.Time { return t }
}

func TestCycleBounds(t *testing.T) {
	cases := []struct {
		name            string
		billingCycleDay int
		today           string
		wantStart       string
		wantEnd         string
	}{
		{"before_cycle_day", 15, "2025-03-10", "2025-02-16", "2025-03-15"},
		{"on_cycle_day", 15, "2025-03-15", "2025-02-16", "2025-03-15"},
		{"after_cycle_day", 15, "2025-03-20", "2025-03-16", "2025-04-15"},
		{"day_31_in_april", 31, "2025-04-10", "2025-04-01", "2025-04-30"},
		{"day_31_february", 31, "2025-02-10", "2025-02-01", "2025-02-28"},
		{"day_31_leap_february", 31, "2024-02-10", "2024-02-01", "2024-02-29"},
		{"day_1_rolls_forward", 1, "2025-03-10", "2025-03-02", "2025-04-01"},
		{"year_boundary", 15, "2024-12-20", "2024-12-16", "2025-01-15"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			today, _ := time.Parse(models.DateLayout, tc.today)
			start, end := CycleBounds(tc.billingCycleDay, today)
			if got := start.Format(models.DateLayout); got != tc.wantStart {
				t.Errorf("start: expected %s, got %s", tc.wantStart, got)
			}
			if got := end.Format(models.DateLayout); got != tc.wantEnd {
				t.Errorf("end: expected %s, got %s", tc.wantEnd, got)
			}
		})
	}
}

func TestComputeDiscrepancy(t *testing.T) {
	t.Run("higher", func(t *testing.T) {
		d := ComputeDiscrepancy(500, 450)
		if d.Type != models.DiscrepancyHigher {
			t.Errorf("expected type higher, got %s", d.Type)
		}
		if d.Amount != 50 {
			t.Errorf("expected amount 50, got %f", d.Amount)
		}
	})

	t.Run("lower", func(t *testing.T) {
		d := ComputeDiscrepancy(400, 450)
		if d.Type != models.DiscrepancyLower {
			t.Errorf("expected type lower, got %s", d.Type)
		}
		if d.Amount != -50 {
			t.Errorf("expected amount -50, got %f", d.Amount)
		}
	})

	t.Run("match", func(t *testing.T) {
		d := ComputeDiscrepancy(450, 450)
		if d.Type != models.DiscrepancyMatch {
			t.Errorf("expected type match, got %s", d.Type)
		}
		if d.Amount != 0 {
			t.Errorf("expected amount 0, got %f", d.Amount)
		}
	})
}

func TestGetCurrentCycleStatus(t *testing.T) {
	t.Run("calculated_balance_from_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &billingCycleService{db: db, now: fixedNow("2025-03-10")}
		card := testutil.CreateTestCreditCard(t, db, 15)

		// Window is 2025-02-16 .. 2025-03-15.
		testutil.CreateTestExpense(t, db, &card.ID, 120, "2025-02-20")
		testutil.CreateTestExpense(t, db, &card.ID, 80, "2025-03-01")
		testutil.CreateTestExpense(t, db, &card.ID, 999, "2025-02-10") // before window
		testutil.CreateTestPayment(t, db, card.ID, 50, "2025-03-05")

		status, err := svc.GetCurrentCycleStatus(card.ID)
		testutil.AssertNoError(t, err)

		if status.CycleStartDate != "2025-02-16" || status.CycleEndDate != "2025-03-15" {
			t.Errorf("unexpected window %s..%s", status.CycleStartDate, status.CycleEndDate)
		}
		if status.CalculatedBalance != 150 {
			t.Errorf("expected calculated balance 150, got %f", status.CalculatedBalance)
		}
		if status.HasActualBalance {
			t.Error("expected no actual balance yet")
		}
		if !status.NeedsEntry {
			t.Error("expected needsEntry true")
		}
		if status.DaysUntilCycleEnd != 5 {
			t.Errorf("expected 5 days until cycle end, got %d", status.DaysUntilCycleEnd)
		}
	})

	t.Run("not_a_credit_card", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &billingCycleService{db: db, now: fixedNow("2025-03-10")}
		cash := testutil.CreateTestPaymentMethod(t, db, models.PaymentMethodTypeCash)

		_, err := svc.GetCurrentCycleStatus(cash.ID)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("unknown_payment_method", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &billingCycleService{db: db, now: fixedNow("2025-03-10")}

		_, err := svc.GetCurrentCycleStatus(999)
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}

func TestCreateBillingCycle(t *testing.T) {
	t.Run("creates_with_discrepancy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &billingCycleService{db: db, now: fixedNow("2025-03-10")}
		card := testutil.CreateTestCreditCard(t, db, 15)
		testutil.CreateTestExpense(t, db, &card.ID, 100, "2025-03-01")

		cycle, discrepancy, err := svc.CreateBillingCycle(card.ID, CreateBillingCycleInput{
			ActualStatementBalance: 130,
		})
		testutil.AssertNoError(t, err)

		if cycle.CycleEndDate != "2025-03-15" {
			t.Errorf("expected cycle end 2025-03-15, got %s", cycle.CycleEndDate)
		}
		if !cycle.IsUserEntered {
			t.Error("expected cycle to be user entered")
		}
		if cycle.ReviewedAt == nil {
			t.Error("expected reviewedAt to be set")
		}
		if discrepancy.Type != models.DiscrepancyHigher || discrepancy.Amount != 30 {
			t.Errorf("expected discrepancy higher/30, got %s/%f", discrepancy.Type, discrepancy.Amount)
		}
	})

	t.Run("duplicate_period_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &billingCycleService{db: db, now: fixedNow("2025-03-10")}
		card := testutil.CreateTestCreditCard(t, db, 15)

		_, _, err := svc.CreateBillingCycle(card.ID, CreateBillingCycleInput{ActualStatementBalance: 100})
		testutil.AssertNoError(t, err)

		_, _, err = svc.CreateBillingCycle(card.ID, CreateBillingCycleInput{ActualStatementBalance: 200})
		testutil.AssertAppError(t, err, "DUPLICATE_ENTRY")
	})
}

func TestUpdateBillingCycle(t *testing.T) {
	t.Run("merges_fields_and_recomputes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &billingCycleService{db: db, now: fixedNow("2025-03-10")}
		card := testutil.CreateTestCreditCard(t, db, 15)
		testutil.CreateTestExpense(t, db, &card.ID, 100, "2025-03-01")

		cycle, _, err := svc.CreateBillingCycle(card.ID, CreateBillingCycleInput{ActualStatementBalance: 130, Notes: "first pass"})
		testutil.AssertNoError(t, err)

		newBalance := 90.0
		updated, discrepancy, err := svc.UpdateBillingCycle(card.ID, cycle.ID, UpdateBillingCycleInput{
			ActualStatementBalance: &newBalance,
		})
		testutil.AssertNoError(t, err)

		if *updated.ActualStatementBalance != 90 {
			t.Errorf("expected actual balance 90, got %f", *updated.ActualStatementBalance)
		}
		if updated.Notes != "first pass" {
			t.Errorf("expected notes preserved, got %q", updated.Notes)
		}
		if discrepancy.Type != models.DiscrepancyLower {
			t.Errorf("expected discrepancy lower, got %s", discrepancy.Type)
		}
	})

	t.Run("wrong_payment_method", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &billingCycleService{db: db, now: fixedNow("2025-03-10")}
		card := testutil.CreateTestCreditCard(t, db, 15)
		other := testutil.CreateTestCreditCard(t, db, 20)

		cycle, _, err := svc.CreateBillingCycle(card.ID, CreateBillingCycleInput{ActualStatementBalance: 100})
		testutil.AssertNoError(t, err)

		notes := "hijack"
		_, _, err = svc.UpdateBillingCycle(other.ID, cycle.ID, UpdateBillingCycleInput{Notes: &notes})
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}

func TestDeleteBillingCycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := &billingCycleService{db: db, now: fixedNow("2025-03-10")}
	card := testutil.CreateTestCreditCard(t, db, 15)

	cycle, _, err := svc.CreateBillingCycle(card.ID, CreateBillingCycleInput{ActualStatementBalance: 100})
	testutil.AssertNoError(t, err)

	deleted, err := svc.DeleteBillingCycle(card.ID, cycle.ID)
	testutil.AssertNoError(t, err)
	if deleted.ID != cycle.ID {
		t.Errorf("expected deleted cycle %d, got %d", cycle.ID, deleted.ID)
	}

	var count int64
	db.Model(&models.BillingCycle{}).Where("id = ?", cycle.ID).Count(&count)
	if count != 0 {
		t.Error("expected cycle row to be gone")
	}
}

func TestGetUnifiedBillingCycles(t *testing.T) {
	t.Run("generates_placeholders_for_elapsed_periods", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &billingCycleService{db: db, now: fixedNow("2025-03-20")}
		card := testutil.CreateTestCreditCard(t, db, 15)

		result, err := svc.GetUnifiedBillingCycles(card.ID, 3, true)
		testutil.AssertNoError(t, err)

		// Current cycle ends 2025-04-15 (future, skipped); 03-15 and 02-15
		// have elapsed and get placeholders.
		if result.AutoGeneratedCount != 2 {
			t.Errorf("expected 2 auto-generated cycles, got %d", result.AutoGeneratedCount)
		}
		if len(result.Cycles) != 2 {
			t.Fatalf("expected 2 cycles, got %d", len(result.Cycles))
		}
		if result.Cycles[0].CycleEndDate != "2025-03-15" {
			t.Errorf("expected newest cycle 2025-03-15 first, got %s", result.Cycles[0].CycleEndDate)
		}
		for _, c := range result.Cycles {
			if c.IsUserEntered {
				t.Errorf("placeholder cycle %s should not be user entered", c.CycleEndDate)
			}
			if c.BalanceType != models.BalanceTypeCalculated {
				t.Errorf("placeholder cycle %s should use calculated balance", c.CycleEndDate)
			}
		}
	})

	t.Run("idempotent_generation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &billingCycleService{db: db, now: fixedNow("2025-03-20")}
		card := testutil.CreateTestCreditCard(t, db, 15)

		first, err := svc.GetUnifiedBillingCycles(card.ID, 3, true)
		testutil.AssertNoError(t, err)
		second, err := svc.GetUnifiedBillingCycles(card.ID, 3, true)
		testutil.AssertNoError(t, err)

		if second.AutoGeneratedCount != 0 {
			t.Errorf("expected no new placeholders on second call, got %d", second.AutoGeneratedCount)
		}
		if len(second.Cycles) != len(first.Cycles) {
			t.Errorf("expected stable cycle count, got %d then %d", len(first.Cycles), len(second.Cycles))
		}
	})

	t.Run("user_entered_balance_wins", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &billingCycleService{db: db, now: fixedNow("2025-03-10")}
		card := testutil.CreateTestCreditCard(t, db, 15)
		testutil.CreateTestExpense(t, db, &card.ID, 100, "2025-03-01")

		_, _, err := svc.CreateBillingCycle(card.ID, CreateBillingCycleInput{ActualStatementBalance: 250})
		testutil.AssertNoError(t, err)

		result, err := svc.GetUnifiedBillingCycles(card.ID, 1, false)
		testutil.AssertNoError(t, err)
		if len(result.Cycles) != 1 {
			t.Fatalf("expected 1 cycle, got %d", len(result.Cycles))
		}
		if result.Cycles[0].EffectiveBalance != 250 {
			t.Errorf("expected effective balance 250, got %f", result.Cycles[0].EffectiveBalance)
		}
		if result.Cycles[0].BalanceType != models.BalanceTypeActual {
			t.Errorf("expected balance type actual, got %s", result.Cycles[0].BalanceType)
		}
	})

	t.Run("no_generation_when_disabled", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &billingCycleService{db: db, now: fixedNow("2025-03-20")}
		card := testutil.CreateTestCreditCard(t, db, 15)

		result, err := svc.GetUnifiedBillingCycles(card.ID, 5, false)
		testutil.AssertNoError(t, err)
		if result.AutoGeneratedCount != 0 || len(result.Cycles) != 0 {
			t.Errorf("expected empty result, got %d cycles (%d generated)", len(result.Cycles), result.AutoGeneratedCount)
		}
	})
}

func TestGetCycleHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := &billingCycleService{db: db, now: fixedNow("2025-06-20")}
	card := testutil.CreateTestCreditCard(t, db, 15)

	// Backfill four months of placeholders.
	_, err := svc.GetUnifiedBillingCycles(card.ID, 4, true)
	testutil.AssertNoError(t, err)

	cycles, err := svc.GetCycleHistory(card.ID, 0, "2025-04-01", "2025-05-31")
	testutil.AssertNoError(t, err)

	if len(cycles) != 2 {
		t.Fatalf("expected 2 cycles in range, got %d", len(cycles))
	}
	if cycles[0].CycleEndDate != "2025-05-15" || cycles[1].CycleEndDate != "2025-04-15" {
		t.Errorf("unexpected order: %s, %s", cycles[0].CycleEndDate, cycles[1].CycleEndDate)
	}
}

func TestGetLatestStatementBalance(t *testing.T) {
	t.Run("skips_placeholder_cycles", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		card := testutil.CreateTestCreditCard(t, db, 15)

		// March has an actual balance; April is a bare placeholder.
		actual := 300.0
		db.Create(&models.BillingCycle{
			PaymentMethodID:        card.ID,
			CycleStartDate:         "2025-02-16",
			CycleEndDate:           "2025-03-15",
			ActualStatementBalance: &actual,
			IsUserEntered:          true,
		})
		db.Create(&models.BillingCycle{
			PaymentMethodID: card.ID,
			CycleStartDate:  "2025-03-16",
			CycleEndDate:    "2025-04-15",
		})

		svc := &billingCycleService{db: db, now: fixedNow("2025-04-20")}
		cycle, err := svc.GetLatestStatementBalance(card.ID)
		testutil.AssertNoError(t, err)
		if cycle.CycleEndDate != "2025-03-15" {
			t.Errorf("expected 2025-03-15, got %s", cycle.CycleEndDate)
		}
	})

	t.Run("none_entered", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		card := testutil.CreateTestCreditCard(t, db, 15)

		svc := &billingCycleService{db: db, now: fixedNow("2025-04-20")}
		_, err := svc.GetLatestStatementBalance(card.ID)
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}
