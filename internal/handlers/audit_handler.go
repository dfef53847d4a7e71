package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frota/internal/pagination"
	"frota/internal/services"
)

// AuditHandler exposes the tenant's audit trail.
type AuditHandler struct {
	auditService services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService services.AuditServicer) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// GetAuditLogs lists audit entries, newest first.
// @Summary     List audit logs
// @Tags        audit
// @Produce     json
// @Security    BearerAuth
// @Param       user_id       query string false "User ID"
// @Param       resource_type query string false "Resource type, e.g. payable"
// @Param       resource_id   query string false "Resource ID"
// @Param       action        query string false "Action, e.g. PAY_PAYABLE"
// @Param       page          query int    false "Page number (default 1)"
// @Param       page_size     query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.AuditLog] "Paginated audit logs"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	userID, err := parseUUIDQuery(c, "user_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.auditService.ListAuditLogs(tenantID, page, services.AuditFilter{
		UserID:       userID,
		ResourceType: c.Query("resource_type"),
		ResourceID:   c.Query("resource_id"),
		Action:       c.Query("action"),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
