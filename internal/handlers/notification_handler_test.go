package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "frota/internal/errors"
	"frota/internal/models"
)

func setupNotificationRouter(handler *NotificationHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/pipeline/notifications")
	g.GET("/pending", handler.GetPending)
	g.POST("/:id/sent", handler.MarkSent)
	g.POST("/:id/failed", handler.MarkFailed)
	return r
}

func TestNotificationHandler_GetPending(t *testing.T) {
	t.Run("passes the limit", func(t *testing.T) {
		var gotLimit int
		svc := &mockNotificationService{
			pendingFn: func(limit int) ([]models.DamageNotification, error) {
				gotLimit = limit
				return []models.DamageNotification{{RecipientEmail: "cliente@example.com", VehiclePlate: "ABC1D23"}}, nil
			},
		}
		rec := doRequest(setupNotificationRouter(NewNotificationHandler(svc)), http.MethodGet, "/pipeline/notifications/pending?limit=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotLimit != 5 {
			t.Errorf("expected limit 5, got %d", gotLimit)
		}
		list, _ := parseJSON(t, rec)["notifications"].([]interface{})
		if len(list) != 1 {
			t.Errorf("expected 1 notification, got %d", len(list))
		}
	})

	for _, q := range []string{"limit=0", "limit=abc", "limit=-3"} {
		t.Run("returns 400 for "+q, func(t *testing.T) {
			rec := doRequest(setupNotificationRouter(NewNotificationHandler(&mockNotificationService{})), http.MethodGet, "/pipeline/notifications/pending?"+q, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestNotificationHandler_Mark(t *testing.T) {
	t.Run("marks sent", func(t *testing.T) {
		rec := doRequest(setupNotificationRouter(NewNotificationHandler(&mockNotificationService{})), http.MethodPost, "/pipeline/notifications/"+testID+"/sent", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		n, _ := parseJSON(t, rec)["notification"].(map[string]interface{})
		if n["status"] != "sent" {
			t.Errorf("expected sent status, got %v", n["status"])
		}
	})

	t.Run("returns 409 when already closed", func(t *testing.T) {
		svc := &mockNotificationService{
			sentFn: func(_ string) (*models.DamageNotification, error) { return nil, apperrors.ErrNotificationClosed },
		}
		rec := doRequest(setupNotificationRouter(NewNotificationHandler(svc)), http.MethodPost, "/pipeline/notifications/"+testID+"/sent", "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("marks failed with a reason", func(t *testing.T) {
		var gotReason string
		svc := &mockNotificationService{
			failedFn: func(id, reason string) (*models.DamageNotification, error) {
				gotReason = reason
				return &models.DamageNotification{Base: models.Base{ID: id}, Status: models.NotificationFailed}, nil
			},
		}
		rec := doRequest(setupNotificationRouter(NewNotificationHandler(svc)), http.MethodPost, "/pipeline/notifications/"+testID+"/failed", `{"reason":"550 mailbox unavailable"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotReason != "550 mailbox unavailable" {
			t.Errorf("unexpected reason %q", gotReason)
		}
	})

	t.Run("requires a reason", func(t *testing.T) {
		rec := doRequest(setupNotificationRouter(NewNotificationHandler(&mockNotificationService{})), http.MethodPost, "/pipeline/notifications/"+testID+"/failed", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
