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
	"frota/internal/taxonomy"
)

func setupSalaryRouter(salaries *SalaryHandler, finance *FinanceHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("", injectCaller(testTenantID, testUserID))
	g.POST("/salaries", salaries.CreateSalary)
	g.GET("/salaries", salaries.GetSalaries)
	g.POST("/salaries/generate", salaries.GenerateSalaries)
	g.GET("/salaries/:id", salaries.GetSalary)
	g.POST("/salaries/:id/pay", salaries.PaySalary)
	g.GET("/finance/summary", finance.GetSummary)
	g.POST("/finance/sync-costs", finance.SyncCosts)
	return r
}

func TestSalaryHandler_Create(t *testing.T) {
	t.Run("parses the reference month", func(t *testing.T) {
		var gotMonth time.Time
		svc := &mockSalaryService{
			createFn: func(_, name, _ string, amount int64, day int, month time.Time) (*models.Salary, error) {
				gotMonth = month
				return &models.Salary{EmployeeName: name, Amount: amount, PaymentDay: day, ReferenceMonth: "2025-04"}, nil
			},
		}
		r := setupSalaryRouter(NewSalaryHandler(svc, &mockAuditService{}), NewFinanceHandler(&mockFinanceService{}, &mockAuditService{}))
		rec := doRequest(r, http.MethodPost, "/salaries", `{"employee_name":"João","amount":320000,"payment_day":5,"reference_month":"2025-04"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMonth.Month() != time.April || gotMonth.Year() != 2025 {
			t.Errorf("unexpected month %v", gotMonth)
		}
	})

	t.Run("returns 409 for a duplicate", func(t *testing.T) {
		svc := &mockSalaryService{
			createFn: func(_, _, _ string, _ int64, _ int, _ time.Time) (*models.Salary, error) {
				return nil, apperrors.ErrDuplicateSalary
			},
		}
		r := setupSalaryRouter(NewSalaryHandler(svc, &mockAuditService{}), NewFinanceHandler(&mockFinanceService{}, &mockAuditService{}))
		rec := doRequest(r, http.MethodPost, "/salaries", `{"employee_name":"João","amount":320000,"payment_day":5,"reference_month":"2025-04"}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("rejects a full date as month", func(t *testing.T) {
		r := setupSalaryRouter(NewSalaryHandler(&mockSalaryService{}, &mockAuditService{}), NewFinanceHandler(&mockFinanceService{}, &mockAuditService{}))
		rec := doRequest(r, http.MethodPost, "/salaries", `{"employee_name":"João","amount":320000,"payment_day":5,"reference_month":"2025-04-01"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSalaryHandler_List(t *testing.T) {
	var gotMonth *string
	var gotStatus *taxonomy.SalaryStatus
	svc := &mockSalaryService{
		listFn: func(_ string, _ pagination.PageRequest, month *string, status *taxonomy.SalaryStatus) (*pagination.PageResponse[models.Salary], error) {
			gotMonth, gotStatus = month, status
			return emptyPage[models.Salary](), nil
		},
	}
	r := setupSalaryRouter(NewSalaryHandler(svc, &mockAuditService{}), NewFinanceHandler(&mockFinanceService{}, &mockAuditService{}))

	rec := doRequest(r, http.MethodGet, "/salaries?reference_month=2025-04&status=Pago", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotMonth == nil || *gotMonth != "2025-04" {
		t.Errorf("unexpected month filter %v", gotMonth)
	}
	if gotStatus == nil || *gotStatus != taxonomy.SalaryPago {
		t.Errorf("unexpected status filter %v", gotStatus)
	}

	rec = doRequest(r, http.MethodGet, "/salaries?status=Autorizado", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for payable-only status, got %d", rec.Code)
	}
}

func TestSalaryHandler_PayAndGenerate(t *testing.T) {
	audit := &mockAuditService{}
	svc := &mockSalaryService{
		markPaidFn: func(_, id string) (*models.Salary, error) {
			return &models.Salary{Base: models.Base{ID: id}, Status: taxonomy.SalaryPago}, nil
		},
		generateFn: func(_ string, _ time.Time) ([]models.Salary, error) {
			return []models.Salary{{EmployeeName: "João"}}, nil
		},
	}
	r := setupSalaryRouter(NewSalaryHandler(svc, audit), NewFinanceHandler(&mockFinanceService{}, &mockAuditService{}))

	rec := doRequest(r, http.MethodPost, "/salaries/"+testID+"/pay", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = doRequest(r, http.MethodPost, "/salaries/generate", `{"month":"2025-05"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["created"] != float64(1) {
		t.Error("expected created=1")
	}
	if len(audit.entries) != 2 {
		t.Errorf("expected 2 audit entries, got %v", audit.actions())
	}
}

func TestFinanceHandler(t *testing.T) {
	t.Run("summary defaults to current month", func(t *testing.T) {
		var gotMonth time.Time
		finance := &mockFinanceService{
			summaryFn: func(_ string, month time.Time) (*services.FinancialSummary, error) {
				gotMonth = month
				return &services.FinancialSummary{Month: month.Format("2006-01")}, nil
			},
		}
		r := setupSalaryRouter(NewSalaryHandler(&mockSalaryService{}, &mockAuditService{}), NewFinanceHandler(finance, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/finance/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		now := time.Now().UTC()
		if gotMonth.Year() != now.Year() || gotMonth.Month() != now.Month() || gotMonth.Day() != 1 {
			t.Errorf("expected current month start, got %v", gotMonth)
		}
	})

	t.Run("summary rejects bad month", func(t *testing.T) {
		r := setupSalaryRouter(NewSalaryHandler(&mockSalaryService{}, &mockAuditService{}), NewFinanceHandler(&mockFinanceService{}, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/finance/summary?month=abril", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("sync reports created payables", func(t *testing.T) {
		finance := &mockFinanceService{
			syncFn: func(_ string) ([]models.AccountsPayable, error) {
				return []models.AccountsPayable{{Amount: 1}, {Amount: 2}, {Amount: 3}}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupSalaryRouter(NewSalaryHandler(&mockSalaryService{}, &mockAuditService{}), NewFinanceHandler(finance, audit))
		rec := doRequest(r, http.MethodPost, "/finance/sync-costs", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["created"] != float64(3) {
			t.Error("expected created=3")
		}
		if len(audit.entries) != 1 {
			t.Errorf("expected 1 audit entry, got %v", audit.actions())
		}
	})
}
