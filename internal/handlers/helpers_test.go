package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- shared mock activity log service ---

type mockActivityLogService struct {
	logged            []string
	findRecentFn      func(page pagination.LimitOffset) (*pagination.ListResponse[models.ActivityLogEvent], error)
	getSettingsFn     func() (*models.ActivityLogSettings, error)
	updateSettingsFn  func(maxAgeDays, maxCount int) (*models.ActivityLogSettings, error)
	enforceRetentions int
}

func (m *mockActivityLogService) Log(eventType, _ string, _ uint, _ string, _ map[string]any) {
	m.logged = append(m.logged, eventType)
}

func (m *mockActivityLogService) FindRecent(page pagination.LimitOffset) (*pagination.ListResponse[models.ActivityLogEvent], error) {
	if m.findRecentFn != nil {
		return m.findRecentFn(page)
	}
	resp := pagination.NewListResponse([]models.ActivityLogEvent{}, 50, 0, 0)
	return &resp, nil
}

func (m *mockActivityLogService) DeleteOlderThan(_ time.Time) (int64, error) { return 0, nil }

func (m *mockActivityLogService) DeleteExcessEvents(_ int) (int64, error) { return 0, nil }

func (m *mockActivityLogService) GetSettings() (*models.ActivityLogSettings, error) {
	if m.getSettingsFn != nil {
		return m.getSettingsFn()
	}
	return &models.ActivityLogSettings{MaxAgeDays: models.DefaultMaxAgeDays, MaxCount: models.DefaultMaxCount}, nil
}

func (m *mockActivityLogService) UpdateSettings(maxAgeDays, maxCount int) (*models.ActivityLogSettings, error) {
	if m.updateSettingsFn != nil {
		return m.updateSettingsFn(maxAgeDays, maxCount)
	}
	return &models.ActivityLogSettings{MaxAgeDays: maxAgeDays, MaxCount: maxCount}, nil
}

func (m *mockActivityLogService) EnforceRetention() error {
	m.enforceRetentions++
	return nil
}

var _ services.ActivityLogServicer = (*mockActivityLogService)(nil)

// --- request helpers ---

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
