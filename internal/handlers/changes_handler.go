package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "frota/internal/errors"
	"frota/internal/events"
	"frota/internal/logger"
)

const (
	defaultHeartbeat = 25 * time.Second
	changeBuffer     = 64
)

var tableName = regexp.MustCompile(`^[a-z_]+$`)

// ChangesHandler streams table changes to browsers over Server-Sent Events so
// open screens can refresh when another session writes.
type ChangesHandler struct {
	subscriber events.Subscriber
	heartbeat  time.Duration
}

// NewChangesHandler creates a new ChangesHandler.
func NewChangesHandler(subscriber events.Subscriber) *ChangesHandler {
	return &ChangesHandler{subscriber: subscriber, heartbeat: defaultHeartbeat}
}

// Stream handles the change feed.
// @Summary     Stream changes
// @Description Server-Sent Events feed of writes to the tenant's tables. Sends a "change" event per write and a "heartbeat" comment-style event to keep proxies open.
// @Tags        realtime
// @Produce     text/event-stream
// @Security    BearerAuth
// @Param       tables    query string false "Comma separated tables (default all)"
// @Param       record_id query string false "Only changes to this record"
// @Success     200 {object} events.Change "Stream of changes"
// @Failure     400 {object} ErrorResponse "Invalid table"
// @Failure     503 {object} ErrorResponse "Change feed not configured"
// @Router      /changes [get]
func (h *ChangesHandler) Stream(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tables := events.ParseTables(c.Query("tables"))
	for _, t := range tables {
		if !tableName.MatchString(t) {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid table "+t))
			return
		}
	}
	var filter events.Filter
	if recordID := c.Query("record_id"); recordID != "" {
		filter = events.RecordFilter(recordID)
	}

	log := logger.Named("changes").With("tenant_id", tenantID)
	changes := make(chan events.Change, changeBuffer)
	sub, err := h.subscriber.Subscribe(tenantID, tables, filter, func(change events.Change) {
		select {
		case changes <- change:
		default:
			log.Warnw("dropping change for slow client", "table", change.Table, "record_id", change.RecordID)
		}
	})
	if errors.Is(err, events.ErrUnavailable) {
		respondWithError(c, apperrors.ErrRealtimeUnavailable)
		return
	}
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer func() {
		if err := sub.Unsubscribe(); err != nil {
			log.Warnw("unsubscribe failed", "error", err)
		}
	}()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.SSEvent("ready", gin.H{"tables": tables})
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case change := <-changes:
			c.SSEvent("change", change)
			c.Writer.Flush()
		case now := <-ticker.C:
			c.SSEvent("heartbeat", now.UTC().Format(time.RFC3339))
			c.Writer.Flush()
		case <-ctx.Done():
			return
		}
	}
}
