package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frota/internal/services"
)

// FinanceHandler serves the finance dashboard and the cost-to-payable sync.
type FinanceHandler struct {
	financeService services.FinanceServicer
	auditService   services.AuditServicer
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(financeService services.FinanceServicer, auditService services.AuditServicer) *FinanceHandler {
	return &FinanceHandler{financeService: financeService, auditService: auditService}
}

// GetSummary returns the month's financial summary.
// @Summary     Financial summary
// @Description Payables, costs and salaries of a month grouped by status
// @Tags        finance
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "YYYY-MM (default current month)"
// @Success     200 {object} services.FinancialSummary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /finance/summary [get]
func (h *FinanceHandler) GetSummary(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := parseMonthQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.financeService.GetSummary(tenantID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// SyncCosts creates payables for pending costs that have none.
// @Summary     Sync costs to payables
// @Tags        finance
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Created payables"
// @Router      /finance/sync-costs [post]
func (h *FinanceHandler) SyncCosts(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	created, err := h.financeService.SyncCostsToPayables(tenantID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "SYNC_COSTS_TO_PAYABLES", "accounts_payable", "", c.ClientIP(),
		map[string]interface{}{"created": len(created)})

	c.JSON(http.StatusOK, gin.H{"created": len(created), "payables": created})
}
