package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "frota/internal/errors"
	"frota/internal/pagination"
	"frota/internal/services"
	"frota/internal/taxonomy"
)

// AccountsPayableHandler handles accounts payable requests.
type AccountsPayableHandler struct {
	payableService services.AccountsPayableServicer
	auditService   services.AuditServicer
}

// NewAccountsPayableHandler creates a new AccountsPayableHandler.
func NewAccountsPayableHandler(payableService services.AccountsPayableServicer, auditService services.AuditServicer) *AccountsPayableHandler {
	return &AccountsPayableHandler{payableService: payableService, auditService: auditService}
}

// CreatePayableRequest represents the request body for a manual payable.
type CreatePayableRequest struct {
	Description   string `json:"description" binding:"required,max=255"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	DueDate       string `json:"due_date" binding:"required,datetime=2006-01-02"`
	Category      string `json:"category" binding:"omitempty,payable_category"`
	PaymentMethod string `json:"payment_method" binding:"max=50"`
	Notes         string `json:"notes" binding:"max=1000"`
}

// CreatePayable handles creating a payable by hand.
// @Summary     Create payable
// @Description Create an accounts payable entry. Category defaults to Avulsa.
// @Tags        payables
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePayableRequest true "Payable details"
// @Success     201 {object} models.AccountsPayable "Created payable"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /payables [post]
func (h *AccountsPayableHandler) CreatePayable(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "due_date must be YYYY-MM-DD"))
		return
	}

	payable, err := h.payableService.CreatePayable(tenantID, req.Description, req.Amount, dueDate, req.Category, req.PaymentMethod, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "CREATE_PAYABLE", "accounts_payable", payable.ID, c.ClientIP(),
		map[string]interface{}{"description": req.Description, "amount": req.Amount, "due_date": req.DueDate})

	c.JSON(http.StatusCreated, gin.H{"payable": payable})
}

// GetPayables handles listing payables.
// @Summary     List payables
// @Description Get a paginated list of payables ordered by due date
// @Tags        payables
// @Produce     json
// @Security    BearerAuth
// @Param       status               query string false "Pendente, Autorizado or Pago"
// @Param       category             query string false "Category"
// @Param       from_date            query string false "Due on or after (YYYY-MM-DD)"
// @Param       to_date              query string false "Due on or before (YYYY-MM-DD)"
// @Param       recurring_expense_id query string false "Generated from this template"
// @Param       overdue              query bool   false "Only unpaid entries past due"
// @Param       page                 query int    false "Page number (default 1)"
// @Param       page_size            query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.AccountsPayable] "Paginated payables"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /payables [get]
func (h *AccountsPayableHandler) GetPayables(c *gin.Context) {
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

	var filter services.PayableFilter
	if v := c.Query("status"); v != "" {
		status := taxonomy.PayableStatus(v)
		if !status.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be Pendente, Autorizado or Pago"))
			return
		}
		filter.Status = &status
	}
	if v := c.Query("category"); v != "" {
		filter.Category = &v
	}
	if filter.FromDate, err = parseDateQuery(c, "from_date"); err != nil {
		respondWithError(c, err)
		return
	}
	if filter.ToDate, err = parseDateQuery(c, "to_date"); err != nil {
		respondWithError(c, err)
		return
	}
	if filter.RecurringExpenseID, err = parseUUIDQuery(c, "recurring_expense_id"); err != nil {
		respondWithError(c, err)
		return
	}
	overdue, err := parseBoolQuery(c, "overdue")
	if err != nil {
		respondWithError(c, err)
		return
	}
	filter.OverdueOnly = overdue != nil && *overdue

	result, err := h.payableService.GetPayables(tenantID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPayable handles retrieving one payable.
// @Summary     Get payable
// @Tags        payables
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Payable ID"
// @Success     200 {object} models.AccountsPayable "Payable"
// @Failure     404 {object} ErrorResponse "Payable not found"
// @Router      /payables/{id} [get]
func (h *AccountsPayableHandler) GetPayable(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	payable, err := h.payableService.GetPayableByID(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payable": payable})
}

// AuthorizePayable moves a pending payable to Autorizado.
// @Summary     Authorize payable
// @Tags        payables
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Payable ID"
// @Success     200 {object} models.AccountsPayable "Authorized payable"
// @Failure     404 {object} ErrorResponse "Payable not found"
// @Failure     409 {object} ErrorResponse "Payable is not pending"
// @Router      /payables/{id}/authorize [post]
func (h *AccountsPayableHandler) AuthorizePayable(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	payable, err := h.payableService.AuthorizePayable(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "AUTHORIZE_PAYABLE", "accounts_payable", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"payable": payable})
}

// PayPayable marks a payable as paid, recording its cost and, for recurring
// expenses, generating the next cycle. Paying twice is a no-op.
// @Summary     Pay payable
// @Tags        payables
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Payable ID"
// @Success     200 {object} services.PaymentResult "Payment result"
// @Failure     404 {object} ErrorResponse "Payable not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payables/{id}/pay [post]
func (h *AccountsPayableHandler) PayPayable(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.payableService.MarkAsPaid(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if !result.AlreadyPaid {
		changes := map[string]interface{}{"amount": result.Payable.Amount}
		if result.Cost != nil {
			changes["cost_id"] = result.Cost.ID
		}
		if result.NextPayable != nil {
			changes["next_payable_id"] = result.NextPayable.ID
		}
		h.auditService.Log(tenantID, userID, "PAY_PAYABLE", "accounts_payable", id, c.ClientIP(), changes)
	}

	c.JSON(http.StatusOK, result)
}
