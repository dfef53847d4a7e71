package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"frota/internal/models"
	"frota/internal/pagination"
	"frota/internal/services"
)

func setupAuditRouter(handler *AuditHandler) *gin.Engine {
	r := gin.New()
	r.GET("/audit-logs", injectCaller(testTenantID, testUserID), handler.GetAuditLogs)
	return r
}

func TestAuditHandler_GetAuditLogs(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		var gotTenant string
		var got services.AuditFilter
		audit := &mockAuditService{
			listFn: func(tenantID string, _ pagination.PageRequest, filter services.AuditFilter) (*pagination.PageResponse[models.AuditLog], error) {
				gotTenant, got = tenantID, filter
				return emptyPage[models.AuditLog](), nil
			},
		}
		r := setupAuditRouter(NewAuditHandler(audit))
		rec := doRequest(r, http.MethodGet, "/audit-logs?resource_type=payable&resource_id="+testID+"&user_id="+testUserID+"&action=PAY_PAYABLE", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotTenant != testTenantID {
			t.Errorf("expected tenant %s, got %s", testTenantID, gotTenant)
		}
		if got.ResourceType != "payable" || got.ResourceID != testID || got.Action != "PAY_PAYABLE" {
			t.Errorf("unexpected filter %+v", got)
		}
		if got.UserID == nil || *got.UserID != testUserID {
			t.Errorf("expected user filter, got %v", got.UserID)
		}
	})

	t.Run("rejects malformed user id", func(t *testing.T) {
		r := setupAuditRouter(NewAuditHandler(&mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/audit-logs?user_id=42", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects oversized page", func(t *testing.T) {
		r := setupAuditRouter(NewAuditHandler(&mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/audit-logs?page_size=500", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
