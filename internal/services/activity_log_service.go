package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// activityLogService records the append-only audit trail and enforces
// its retention policy.
type activityLogService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewActivityLogService creates a new ActivityLogServicer.
func NewActivityLogService(db *gorm.DB) ActivityLogServicer {
	return &activityLogService{db: db, now: time.Now}
}

// Log records an audit event. Errors are logged but never propagate, so a
// business mutation can never fail because its audit insert failed.
func (s *activityLogService) Log(eventType, entityType string, entityID uint, userAction string, metadata map[string]any) {
	var metadataJSON string
	if metadata != nil {
		data, err := json.Marshal(metadata)
		if err != nil {
			logger.Get().Errorw("failed to marshal activity log metadata", "error", err, "event_type", eventType)
			metadataJSON = "{}"
		} else {
			metadataJSON = string(data)
		}
	}

	event := &models.ActivityLogEvent{
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   entityID,
		UserAction: userAction,
		Metadata:   metadataJSON,
		Timestamp:  s.now(),
	}

	if err := s.db.Create(event).Error; err != nil {
		logger.Get().Errorw("failed to create activity log event",
			"error", err,
			"event_type", eventType,
			"entity_type", entityType,
			"entity_id", entityID,
		)
	}
}

// FindRecent returns a window of events ordered by timestamp descending.
// Total always reflects the full table count; a window past the end is an
// empty list, not an error.
func (s *activityLogService) FindRecent(page pagination.LimitOffset) (*pagination.ListResponse[models.ActivityLogEvent], error) {
	page.Defaults()

	var total int64
	if err := s.db.Model(&models.ActivityLogEvent{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var events []models.ActivityLogEvent
	err := s.db.Order("timestamp DESC").
		Scopes(pagination.Window(page)).
		Find(&events).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewListResponse(events, page.Limit, page.Offset, total)
	return &result, nil
}

// DeleteOlderThan removes events with a timestamp before the cutoff.
func (s *activityLogService) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := s.db.Where("timestamp < ?", cutoff).Delete(&models.ActivityLogEvent{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteExcessEvents keeps the maxCount most recent events and deletes
// the rest in a single statement.
func (s *activityLogService) DeleteExcessEvents(maxCount int) (int64, error) {
	res := s.db.Exec(
		"DELETE FROM activity_log_events WHERE id NOT IN (SELECT id FROM activity_log_events ORDER BY timestamp DESC, id DESC LIMIT ?)",
		maxCount,
	)
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected, nil
}

// GetSettings returns the retention settings, creating the default row on
// first use.
func (s *activityLogService) GetSettings() (*models.ActivityLogSettings, error) {
	var settings models.ActivityLogSettings
	err := s.db.First(&settings).Error
	switch {
	case err == nil:
		return &settings, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings = models.ActivityLogSettings{
			MaxAgeDays: models.DefaultMaxAgeDays,
			MaxCount:   models.DefaultMaxCount,
		}
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &settings, nil
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// UpdateSettings validates and stores the retention policy.
func (s *activityLogService) UpdateSettings(maxAgeDays, maxCount int) (*models.ActivityLogSettings, error) {
	if maxAgeDays < models.RetentionMinAgeDays || maxAgeDays > models.RetentionMaxAgeDays {
		return nil, apperrors.WithMessage(apperrors.ErrValidation,
			fmt.Sprintf("maxAgeDays must be an integer between %d and %d", models.RetentionMinAgeDays, models.RetentionMaxAgeDays))
	}
	if maxCount < models.RetentionMinCount || maxCount > models.RetentionMaxCount {
		return nil, apperrors.WithMessage(apperrors.ErrValidation,
			fmt.Sprintf("maxCount must be an integer between %d and %d", models.RetentionMinCount, models.RetentionMaxCount))
	}

	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	settings.MaxAgeDays = maxAgeDays
	settings.MaxCount = maxCount
	if err := s.db.Save(settings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return settings, nil
}

// EnforceRetention applies both the age and count limits.
func (s *activityLogService) EnforceRetention() error {
	settings, err := s.GetSettings()
	if err != nil {
		return err
	}

	cutoff := s.now().AddDate(0, 0, -settings.MaxAgeDays)
	byAge, err := s.DeleteOlderThan(cutoff)
	if err != nil {
		return err
	}
	byCount, err := s.DeleteExcessEvents(settings.MaxCount)
	if err != nil {
		return err
	}

	if byAge > 0 || byCount > 0 {
		logger.Get().Infow("activity log retention applied",
			"deleted_by_age", byAge,
			"deleted_by_count", byCount,
			"max_age_days", settings.MaxAgeDays,
			"max_count", settings.MaxCount,
		)
	}
	return nil
}
