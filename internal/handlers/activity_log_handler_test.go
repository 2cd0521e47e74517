package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

func setupActivityLogRouter(handler *ActivityLogHandler) *gin.Engine {
	r := gin.New()
	r.GET("/activity-logs", handler.GetActivityLogs)
	r.GET("/activity-logs/settings", handler.GetSettings)
	r.PUT("/activity-logs/settings", handler.UpdateSettings)
	return r
}

func TestActivityLogHandler_GetActivityLogs(t *testing.T) {
	t.Run("returns 200 with window", func(t *testing.T) {
		svc := &mockActivityLogService{
			findRecentFn: func(page pagination.LimitOffset) (*pagination.ListResponse[models.ActivityLogEvent], error) {
				page.Defaults()
				resp := pagination.NewListResponse([]models.ActivityLogEvent{
					{Base: models.Base{ID: 2}, EventType: "expense_created"},
					{Base: models.Base{ID: 1}, EventType: "loan_created"},
				}, page.Limit, page.Offset, 12)
				return &resp, nil
			},
		}
		r := setupActivityLogRouter(NewActivityLogHandler(svc))

		rec := doRequest(r, "GET", "/activity-logs?limit=2&offset=4", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total"] != float64(12) {
			t.Errorf("expected total 12, got %v", result["total"])
		}
		if len(result["data"].([]interface{})) != 2 {
			t.Errorf("expected 2 events in window")
		}
	})

	t.Run("passes parsed window to service", func(t *testing.T) {
		var got pagination.LimitOffset
		svc := &mockActivityLogService{
			findRecentFn: func(page pagination.LimitOffset) (*pagination.ListResponse[models.ActivityLogEvent], error) {
				got = page
				resp := pagination.NewListResponse([]models.ActivityLogEvent{}, page.Limit, page.Offset, 0)
				return &resp, nil
			},
		}
		r := setupActivityLogRouter(NewActivityLogHandler(svc))

		doRequest(r, "GET", "/activity-logs?limit=7&offset=3", "")
		if got.Limit != 7 || got.Offset != 3 {
			t.Errorf("expected limit=7 offset=3, got %d/%d", got.Limit, got.Offset)
		}
	})

	t.Run("invalid limits rejected", func(t *testing.T) {
		r := setupActivityLogRouter(NewActivityLogHandler(&mockActivityLogService{}))

		for _, q := range []string{"limit=0", "limit=-1", "limit=201", "limit=abc", "offset=-1", "offset=x"} {
			rec := doRequest(r, "GET", "/activity-logs?"+q, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("query %q: expected 400, got %d", q, rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
		}
	})

	t.Run("boundary limits accepted", func(t *testing.T) {
		r := setupActivityLogRouter(NewActivityLogHandler(&mockActivityLogService{}))

		for _, q := range []string{"limit=1", "limit=200", "offset=0", ""} {
			rec := doRequest(r, "GET", "/activity-logs?"+q, "")
			if rec.Code != http.StatusOK {
				t.Errorf("query %q: expected 200, got %d", q, rec.Code)
			}
		}
	})
}

func TestActivityLogHandler_Settings(t *testing.T) {
	t.Run("get returns flat settings", func(t *testing.T) {
		r := setupActivityLogRouter(NewActivityLogHandler(&mockActivityLogService{}))

		rec := doRequest(r, "GET", "/activity-logs/settings", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["maxAgeDays"] != float64(models.DefaultMaxAgeDays) {
			t.Errorf("expected maxAgeDays %d, got %v", models.DefaultMaxAgeDays, result["maxAgeDays"])
		}
		if result["maxCount"] != float64(models.DefaultMaxCount) {
			t.Errorf("expected maxCount %d, got %v", models.DefaultMaxCount, result["maxCount"])
		}
	})

	t.Run("update enforces retention immediately", func(t *testing.T) {
		svc := &mockActivityLogService{}
		r := setupActivityLogRouter(NewActivityLogHandler(svc))

		rec := doRequest(r, "PUT", "/activity-logs/settings", `{"maxAgeDays":30,"maxCount":500}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if svc.enforceRetentions != 1 {
			t.Errorf("expected 1 retention sweep after update, got %d", svc.enforceRetentions)
		}
		result := parseJSON(t, rec)
		if result["maxAgeDays"] != float64(30) || result["maxCount"] != float64(500) {
			t.Errorf("unexpected settings payload: %v", result)
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		r := setupActivityLogRouter(NewActivityLogHandler(&mockActivityLogService{}))

		rec := doRequest(r, "PUT", "/activity-logs/settings", `{"maxAgeDays":30}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("out of range rejected by service", func(t *testing.T) {
		svc := &mockActivityLogService{
			updateSettingsFn: func(maxAgeDays, maxCount int) (*models.ActivityLogSettings, error) {
				return nil, apperrors.WithMessage(apperrors.ErrValidation, "maxAgeDays must be an integer between 7 and 365")
			},
		}
		r := setupActivityLogRouter(NewActivityLogHandler(svc))

		rec := doRequest(r, "PUT", "/activity-logs/settings", `{"maxAgeDays":6,"maxCount":500}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})
}
