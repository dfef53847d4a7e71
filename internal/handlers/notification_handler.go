package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "frota/internal/errors"
	"frota/internal/services"
)

// NotificationHandler serves the pipeline endpoints polled by the notifier job.
// Routes are guarded by the pipeline API key, not by user tokens, so they act
// across tenants.
type NotificationHandler struct {
	notificationService services.NotificationServicer
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService services.NotificationServicer) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// MarkFailedRequest carries the delivery error.
type MarkFailedRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// GetPending lists notifications waiting to be sent, oldest first.
// @Summary     Pending damage notifications
// @Tags        pipeline
// @Produce     json
// @Security    PipelineKey
// @Param       limit query int false "Maximum items (default 20, max 100)"
// @Success     200 {object} map[string]interface{} "Pending notifications"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /pipeline/notifications/pending [get]
func (h *NotificationHandler) GetPending(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	pending, err := h.notificationService.GetPendingNotifications(limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": pending})
}

// MarkSent records a delivered notification.
// @Summary     Mark notification sent
// @Tags        pipeline
// @Produce     json
// @Security    PipelineKey
// @Param       id path string true "Notification ID"
// @Success     200 {object} models.DamageNotification "Updated notification"
// @Failure     404 {object} ErrorResponse "Notification not found"
// @Failure     409 {object} ErrorResponse "Notification no longer pending"
// @Router      /pipeline/notifications/{id}/sent [post]
func (h *NotificationHandler) MarkSent(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	notification, err := h.notificationService.MarkNotificationSent(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notification": notification})
}

// MarkFailed records a failed delivery.
// @Summary     Mark notification failed
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Security    PipelineKey
// @Param       id      path string            true "Notification ID"
// @Param       request body MarkFailedRequest true "Failure reason"
// @Success     200 {object} models.DamageNotification "Updated notification"
// @Failure     404 {object} ErrorResponse "Notification not found"
// @Failure     409 {object} ErrorResponse "Notification no longer pending"
// @Router      /pipeline/notifications/{id}/failed [post]
func (h *NotificationHandler) MarkFailed(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req MarkFailedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	notification, err := h.notificationService.MarkNotificationFailed(id, req.Reason)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notification": notification})
}
