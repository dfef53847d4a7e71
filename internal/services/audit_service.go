package services

import (
	"encoding/json"
	"strings"

	apperrors "frota/internal/errors"
	"frota/internal/logger"
	"frota/internal/models"
	"frota/internal/pagination"

	"gorm.io/gorm"
)

// redactedKeys never reach the audit trail.
var redactedKeys = []string{"password", "token", "secret"}

// AuditFilter narrows an audit log listing.
type AuditFilter struct {
	UserID       *string
	ResourceType string
	ResourceID   string
	Action       string
}

// auditService records who changed what in a tenant.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Failures are logged and swallowed so the audited
// operation, which has already committed, still succeeds.
func (s *auditService) Log(tenantID, userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	entry := &models.AuditLog{
		TenantScoped: models.TenantScoped{TenantID: tenantID},
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      encodeChanges(action, changes),
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Named("audit").Errorw("failed to create audit log entry",
			"error", err,
			"tenant_id", tenantID,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

// ListAuditLogs returns the tenant's audit trail, newest first.
func (s *auditService) ListAuditLogs(tenantID string, page pagination.PageRequest, filter AuditFilter) (*pagination.PageResponse[models.AuditLog], error) {
	page.Defaults()

	base := s.db.Model(&models.AuditLog{}).Scopes(tenantScope(tenantID))
	if filter.UserID != nil {
		base = base.Where("user_id = ?", *filter.UserID)
	}
	if filter.ResourceType != "" {
		base = base.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.ResourceID != "" {
		base = base.Where("resource_id = ?", filter.ResourceID)
	}
	if filter.Action != "" {
		base = base.Where("action = ?", strings.ToUpper(filter.Action))
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.AuditLog
	err := base.Order("created_at DESC").Order("id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&entries).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func encodeChanges(action string, changes map[string]interface{}) string {
	if changes == nil {
		return ""
	}

	clean := make(map[string]interface{}, len(changes))
	for k, v := range changes {
		if isRedacted(k) {
			continue
		}
		clean[k] = v
	}

	data, err := json.Marshal(clean)
	if err != nil {
		logger.Named("audit").Errorw("failed to marshal audit log changes", "error", err, "action", action)
		return "{}"
	}
	return string(data)
}

func isRedacted(key string) bool {
	key = strings.ToLower(key)
	for _, r := range redactedKeys {
		if strings.Contains(key, r) {
			return true
		}
	}
	return false
}
