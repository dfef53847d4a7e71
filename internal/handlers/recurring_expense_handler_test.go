package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "frota/internal/errors"
	"frota/internal/models"
	"frota/internal/pagination"
	"frota/internal/services"
)

func setupRecurringRouter(handler *RecurringExpenseHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/recurring-expenses", injectCaller(testTenantID, testUserID))
	g.POST("", handler.CreateRecurringExpense)
	g.GET("", handler.GetRecurringExpenses)
	g.POST("/generate", handler.GenerateRecurringExpenses)
	g.GET("/:id", handler.GetRecurringExpense)
	g.PUT("/:id", handler.UpdateRecurringExpense)
	g.PATCH("/:id/active", handler.SetRecurringExpenseActive)
	g.DELETE("/:id", handler.DeleteRecurringExpense)
	return r
}

func TestRecurringExpenseHandler_Create(t *testing.T) {
	t.Run("returns 201 and audits", func(t *testing.T) {
		svc := &mockRecurringExpenseService{
			createFn: func(tenantID, description string, amount int64, dueDay int, category, _ string) (*models.RecurringExpense, error) {
				if tenantID != testTenantID {
					t.Errorf("expected tenant %q, got %q", testTenantID, tenantID)
				}
				return &models.RecurringExpense{
					Base:        models.Base{ID: testID},
					Description: description, Amount: amount, DueDay: dueDay, Category: category, IsActive: true,
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupRecurringRouter(NewRecurringExpenseHandler(svc, audit))

		rec := doRequest(r, http.MethodPost, "/recurring-expenses",
			`{"description":"Aluguel do pátio","amount":350000,"due_day":10,"category":"Despesa Recorrente"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		exp, _ := parseJSON(t, rec)["recurring_expense"].(map[string]interface{})
		if exp["due_day"] != float64(10) {
			t.Errorf("expected due_day 10, got %v", exp["due_day"])
		}
		if len(audit.entries) != 1 || audit.entries[0].ResourceID != testID {
			t.Errorf("unexpected audit entries: %+v", audit.entries)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"zero amount", `{"description":"x","amount":0,"due_day":10,"category":"Avulsa"}`},
		{"due day 32", `{"description":"x","amount":100,"due_day":32,"category":"Avulsa"}`},
		{"blank category", `{"description":"x","amount":100,"due_day":5,"category":"   "}`},
		{"missing description", `{"amount":100,"due_day":5,"category":"Avulsa"}`},
	}
	for _, tc := range tests {
		t.Run("returns 400 for "+tc.name, func(t *testing.T) {
			r := setupRecurringRouter(NewRecurringExpenseHandler(&mockRecurringExpenseService{}, &mockAuditService{}))
			rec := doRequest(r, http.MethodPost, "/recurring-expenses", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}
}

func TestRecurringExpenseHandler_List(t *testing.T) {
	t.Run("passes is_active filter", func(t *testing.T) {
		var got *bool
		svc := &mockRecurringExpenseService{
			listFn: func(_ string, _ pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.RecurringExpense], error) {
				got = isActive
				return emptyPage[models.RecurringExpense](), nil
			},
		}
		r := setupRecurringRouter(NewRecurringExpenseHandler(svc, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/recurring-expenses?is_active=false", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got == nil || *got {
			t.Errorf("expected is_active=false filter, got %v", got)
		}
	})

	t.Run("returns 400 for bad is_active", func(t *testing.T) {
		r := setupRecurringRouter(NewRecurringExpenseHandler(&mockRecurringExpenseService{}, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/recurring-expenses?is_active=maybe", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRecurringExpenseHandler_Get(t *testing.T) {
	t.Run("returns 400 for invalid id", func(t *testing.T) {
		r := setupRecurringRouter(NewRecurringExpenseHandler(&mockRecurringExpenseService{}, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/recurring-expenses/42", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockRecurringExpenseService{
			getFn: func(_, _ string) (*models.RecurringExpense, error) {
				return nil, apperrors.ErrRecurringExpenseNotFound
			},
		}
		r := setupRecurringRouter(NewRecurringExpenseHandler(svc, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/recurring-expenses/"+testID, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "RECURRING_EXPENSE_NOT_FOUND")
	})
}

func TestRecurringExpenseHandler_Update(t *testing.T) {
	var got services.RecurringExpenseUpdate
	svc := &mockRecurringExpenseService{
		updateFn: func(_, _ string, update services.RecurringExpenseUpdate) (*models.RecurringExpense, error) {
			got = update
			return &models.RecurringExpense{Base: models.Base{ID: testID}}, nil
		},
	}
	r := setupRecurringRouter(NewRecurringExpenseHandler(svc, &mockAuditService{}))
	rec := doRequest(r, http.MethodPut, "/recurring-expenses/"+testID, `{"amount":42000}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Amount == nil || *got.Amount != 42000 {
		t.Errorf("expected amount 42000, got %v", got.Amount)
	}
	if got.Description != nil || got.DueDay != nil {
		t.Error("expected untouched fields to stay nil")
	}
}

func TestRecurringExpenseHandler_SetActive(t *testing.T) {
	t.Run("deactivates", func(t *testing.T) {
		var got *bool
		svc := &mockRecurringExpenseService{
			setActiveFn: func(_, _ string, active bool) (*models.RecurringExpense, error) {
				got = &active
				return &models.RecurringExpense{IsActive: active}, nil
			},
		}
		r := setupRecurringRouter(NewRecurringExpenseHandler(svc, &mockAuditService{}))
		rec := doRequest(r, http.MethodPatch, "/recurring-expenses/"+testID+"/active", `{"is_active":false}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got == nil || *got {
			t.Error("expected active=false to reach the service")
		}
	})

	t.Run("requires is_active", func(t *testing.T) {
		r := setupRecurringRouter(NewRecurringExpenseHandler(&mockRecurringExpenseService{}, &mockAuditService{}))
		rec := doRequest(r, http.MethodPatch, "/recurring-expenses/"+testID+"/active", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRecurringExpenseHandler_Delete(t *testing.T) {
	audit := &mockAuditService{}
	r := setupRecurringRouter(NewRecurringExpenseHandler(&mockRecurringExpenseService{}, audit))
	rec := doRequest(r, http.MethodDelete, "/recurring-expenses/"+testID, "")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != "DELETE_RECURRING_EXPENSE" {
		t.Errorf("unexpected audit entries: %v", audit.actions())
	}
}

func TestRecurringExpenseHandler_Generate(t *testing.T) {
	t.Run("generates the requested month", func(t *testing.T) {
		var gotMonth time.Time
		svc := &mockRecurringExpenseService{
			generateFn: func(_ string, month time.Time) ([]models.AccountsPayable, error) {
				gotMonth = month
				return []models.AccountsPayable{{Amount: 100}, {Amount: 200}}, nil
			},
		}
		r := setupRecurringRouter(NewRecurringExpenseHandler(svc, &mockAuditService{}))
		rec := doRequest(r, http.MethodPost, "/recurring-expenses/generate", `{"month":"2025-02"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !gotMonth.Equal(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected February 2025, got %v", gotMonth)
		}
		if parseJSON(t, rec)["created"] != float64(2) {
			t.Error("expected created=2")
		}
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		r := setupRecurringRouter(NewRecurringExpenseHandler(&mockRecurringExpenseService{}, &mockAuditService{}))
		rec := doRequest(r, http.MethodPost, "/recurring-expenses/generate", `{"month":"2025-13"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
