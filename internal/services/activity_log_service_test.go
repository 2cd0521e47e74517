package services

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/testutil"
)

func TestLog(t *testing.T) {
	t.Run("records_event_with_metadata", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityLogService(db)

		svc.Log("expense_created", "expense", 42, "Created expense lunch", map[string]any{"amount": 12.5})

		var event models.ActivityLogEvent
		testutil.AssertNoError(t, db.First(&event).Error)
		if event.EventType != "expense_created" {
			t.Errorf("expected event type expense_created, got %s", event.EventType)
		}
		if event.EntityID != 42 {
			t.Errorf("expected entity ID 42, got %d", event.EntityID)
		}
		if event.Metadata == "" {
			t.Error("expected metadata to be recorded")
		}
	})

	t.Run("nil_metadata", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityLogService(db)

		svc.Log("loan_deleted", "loan", 7, "Deleted loan", nil)

		var event models.ActivityLogEvent
		testutil.AssertNoError(t, db.First(&event).Error)
		if event.Metadata != "" {
			t.Errorf("expected empty metadata, got %q", event.Metadata)
		}
	})
}

func TestFindRecent(t *testing.T) {
	t.Run("newest_first_with_total", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityLogService(db)

		base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			testutil.CreateTestActivityLogEvent(t, db, "event", base.Add(time.Duration(i)*time.Hour))
		}

		result, err := svc.FindRecent(pagination.LimitOffset{Limit: 2, Offset: 0})
		testutil.AssertNoError(t, err)

		if result.Total != 5 {
			t.Errorf("expected total 5, got %d", result.Total)
		}
		if len(result.Data) != 2 {
			t.Fatalf("expected 2 events, got %d", len(result.Data))
		}
		if !result.Data[0].Timestamp.After(result.Data[1].Timestamp) {
			t.Error("expected newest event first")
		}
	})

	t.Run("offset_past_end", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityLogService(db)

		testutil.CreateTestActivityLogEvent(t, db, "event", time.Now())

		result, err := svc.FindRecent(pagination.LimitOffset{Limit: 10, Offset: 50})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 0 {
			t.Errorf("expected empty window, got %d events", len(result.Data))
		}
		if result.Total != 1 {
			t.Errorf("expected total 1, got %d", result.Total)
		}
	})

	t.Run("default_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityLogService(db)

		result, err := svc.FindRecent(pagination.LimitOffset{})
		testutil.AssertNoError(t, err)
		if result.Limit != 50 {
			t.Errorf("expected default limit 50, got %d", result.Limit)
		}
	})
}

func TestRetention(t *testing.T) {
	t.Run("delete_older_than", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityLogService(db)

		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestActivityLogEvent(t, db, "old", now.AddDate(0, 0, -120))
		testutil.CreateTestActivityLogEvent(t, db, "recent", now.AddDate(0, 0, -10))

		deleted, err := svc.DeleteOlderThan(now.AddDate(0, 0, -90))
		testutil.AssertNoError(t, err)
		if deleted != 1 {
			t.Errorf("expected 1 deletion, got %d", deleted)
		}

		var remaining []models.ActivityLogEvent
		db.Find(&remaining)
		if len(remaining) != 1 || remaining[0].EventType != "recent" {
			t.Errorf("expected only the recent event to survive")
		}
	})

	t.Run("delete_excess_keeps_newest", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityLogService(db)

		base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		for i := 0; i < 10; i++ {
			testutil.CreateTestActivityLogEvent(t, db, "event", base.Add(time.Duration(i)*time.Minute))
		}

		deleted, err := svc.DeleteExcessEvents(3)
		testutil.AssertNoError(t, err)
		if deleted != 7 {
			t.Errorf("expected 7 deletions, got %d", deleted)
		}

		var remaining []models.ActivityLogEvent
		db.Order("timestamp ASC").Find(&remaining)
		if len(remaining) != 3 {
			t.Fatalf("expected 3 survivors, got %d", len(remaining))
		}
		// The three newest timestamps survive.
		if remaining[0].Timestamp.Before(base.Add(7 * time.Minute)) {
			t.Errorf("expected oldest survivor at or after %v, got %v", base.Add(7*time.Minute), remaining[0].Timestamp)
		}
	})

	t.Run("enforce_applies_both_limits", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		svc := &activityLogService{db: db, now: func() time.Time { return now }}

		_, err := svc.UpdateSettings(30, 100)
		testutil.AssertNoError(t, err)

		testutil.CreateTestActivityLogEvent(t, db, "stale", now.AddDate(0, 0, -60))
		testutil.CreateTestActivityLogEvent(t, db, "fresh", now.AddDate(0, 0, -5))

		testutil.AssertNoError(t, svc.EnforceRetention())

		var remaining []models.ActivityLogEvent
		db.Find(&remaining)
		if len(remaining) != 1 || remaining[0].EventType != "fresh" {
			t.Error("expected only the fresh event to survive retention")
		}
	})
}

func TestSettings(t *testing.T) {
	t.Run("defaults_created_on_first_read", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityLogService(db)

		settings, err := svc.GetSettings()
		testutil.AssertNoError(t, err)
		if settings.MaxAgeDays != models.DefaultMaxAgeDays {
			t.Errorf("expected default maxAgeDays %d, got %d", models.DefaultMaxAgeDays, settings.MaxAgeDays)
		}
		if settings.MaxCount != models.DefaultMaxCount {
			t.Errorf("expected default maxCount %d, got %d", models.DefaultMaxCount, settings.MaxCount)
		}

		// Singleton: a second read returns the same row.
		again, err := svc.GetSettings()
		testutil.AssertNoError(t, err)
		if again.ID != settings.ID {
			t.Errorf("expected singleton settings row, got %d then %d", settings.ID, again.ID)
		}
	})

	t.Run("update_persists", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityLogService(db)

		updated, err := svc.UpdateSettings(30, 500)
		testutil.AssertNoError(t, err)
		if updated.MaxAgeDays != 30 || updated.MaxCount != 500 {
			t.Errorf("expected 30/500, got %d/%d", updated.MaxAgeDays, updated.MaxCount)
		}

		settings, err := svc.GetSettings()
		testutil.AssertNoError(t, err)
		if settings.MaxAgeDays != 30 || settings.MaxCount != 500 {
			t.Errorf("expected persisted 30/500, got %d/%d", settings.MaxAgeDays, settings.MaxCount)
		}
	})

	t.Run("out_of_range_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityLogService(db)

		cases := []struct{ maxAgeDays, maxCount int }{
			{6, 1000},
			{366, 1000},
			{90, 99},
			{90, 10001},
		}
		for _, tc := range cases {
			_, err := svc.UpdateSettings(tc.maxAgeDays, tc.maxCount)
			testutil.AssertAppError(t, err, "VALIDATION_ERROR")
		}

		// Bounds themselves are accepted.
		_, err := svc.UpdateSettings(7, 100)
		testutil.AssertNoError(t, err)
		_, err = svc.UpdateSettings(365, 10000)
		testutil.AssertNoError(t, err)
	})
}
