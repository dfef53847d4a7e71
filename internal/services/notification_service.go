package services

import (
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	apperrors "frota/internal/errors"
	"frota/internal/events"
	"frota/internal/logger"
	"frota/internal/metrics"
	"frota/internal/models"
)

const (
	defaultNotificationBatch = 20
	maxNotificationBatch     = 100
	maxNotificationError     = 500
)

// notificationService exposes the damage notification queue to the pipeline
// endpoints. It works across tenants because the notifier job authenticates
// with an API key rather than a user session.
type notificationService struct {
	db        *gorm.DB
	publisher events.Publisher
}

// NewNotificationService creates a new NotificationServicer.
func NewNotificationService(db *gorm.DB, publisher events.Publisher) NotificationServicer {
	return &notificationService{db: db, publisher: publisherOrNop(publisher)}
}

// GetPendingNotifications returns the oldest pending notifications.
func (s *notificationService) GetPendingNotifications(limit int) ([]models.DamageNotification, error) {
	if limit <= 0 {
		limit = defaultNotificationBatch
	}
	if limit > maxNotificationBatch {
		limit = maxNotificationBatch
	}

	var pending []models.DamageNotification
	err := s.db.Where("status = ?", models.NotificationPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&pending).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return pending, nil
}

// MarkNotificationSent records a successful delivery.
func (s *notificationService) MarkNotificationSent(id string) (*models.DamageNotification, error) {
	now := time.Now()
	return s.close(id, map[string]interface{}{
		"status":  models.NotificationSent,
		"sent_at": now,
	}, "sent")
}

// MarkNotificationFailed records a failed delivery with its reason.
func (s *notificationService) MarkNotificationFailed(id, reason string) (*models.DamageNotification, error) {
	return s.close(id, map[string]interface{}{
		"status":     models.NotificationFailed,
		"last_error": truncateUTF8(reason, maxNotificationError),
	}, "failed")
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (s *notificationService) close(id string, updates map[string]interface{}, result string) (*models.DamageNotification, error) {
	var notification models.DamageNotification
	if err := s.db.Where("id = ?", id).First(&notification).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrNotificationNotFound)
	}
	if notification.Status != models.NotificationPending {
		return nil, apperrors.ErrNotificationClosed
	}

	updates["attempts"] = gorm.Expr("attempts + 1")
	res := s.db.Model(&models.DamageNotification{}).
		Where("id = ? AND status = ?", notification.ID, models.NotificationPending).
		Updates(updates)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrNotificationClosed
	}

	if err := s.db.Where("id = ?", notification.ID).First(&notification).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	metrics.NotificationsTotal.WithLabelValues(result).Inc()
	logger.Get().Infow("damage notification closed",
		"tenant_id", notification.TenantID,
		"notification_id", notification.ID,
		"result", result,
		"attempts", notification.Attempts,
	)
	s.publisher.Publish(events.NewChange(notification.TenantID, events.TableDamageNotification, events.OpUpdate, notification.ID))
	return &notification, nil
}
