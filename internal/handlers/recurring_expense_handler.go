package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frota/internal/cycle"
	apperrors "frota/internal/errors"
	"frota/internal/pagination"
	"frota/internal/services"
)

// RecurringExpenseHandler handles recurring expense template requests.
type RecurringExpenseHandler struct {
	recurringService services.RecurringExpenseServicer
	auditService     services.AuditServicer
}

// NewRecurringExpenseHandler creates a new RecurringExpenseHandler.
func NewRecurringExpenseHandler(recurringService services.RecurringExpenseServicer, auditService services.AuditServicer) *RecurringExpenseHandler {
	return &RecurringExpenseHandler{recurringService: recurringService, auditService: auditService}
}

// CreateRecurringExpenseRequest represents the request body for creating a template.
type CreateRecurringExpenseRequest struct {
	Description   string `json:"description" binding:"required,max=255"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	DueDay        int    `json:"due_day" binding:"required,due_day"`
	Category      string `json:"category" binding:"required,payable_category"`
	PaymentMethod string `json:"payment_method" binding:"max=50"`
}

// UpdateRecurringExpenseRequest represents the request body for updating a template.
type UpdateRecurringExpenseRequest struct {
	Description   *string `json:"description" binding:"omitempty,min=1,max=255"`
	Amount        *int64  `json:"amount" binding:"omitempty,gt=0"`
	DueDay        *int    `json:"due_day" binding:"omitempty,due_day"`
	Category      *string `json:"category" binding:"omitempty,payable_category"`
	PaymentMethod *string `json:"payment_method" binding:"omitempty,max=50"`
}

// SetActiveRequest toggles a template.
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// GenerateRequest selects the month to generate.
type GenerateRequest struct {
	Month string `json:"month" binding:"required,month"`
}

// CreateRecurringExpense handles creating a recurring expense template.
// @Summary     Create recurring expense
// @Description Create a monthly recurring expense template. Amounts are in centavos.
// @Tags        recurring-expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateRecurringExpenseRequest true "Template details"
// @Success     201 {object} models.RecurringExpense "Created template"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring-expenses [post]
func (h *RecurringExpenseHandler) CreateRecurringExpense(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateRecurringExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	expense, err := h.recurringService.CreateRecurringExpense(tenantID, req.Description, req.Amount, req.DueDay, req.Category, req.PaymentMethod)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "CREATE_RECURRING_EXPENSE", "recurring_expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"description": req.Description, "amount": req.Amount, "due_day": req.DueDay})

	c.JSON(http.StatusCreated, gin.H{"recurring_expense": expense})
}

// GetRecurringExpenses handles listing templates.
// @Summary     List recurring expenses
// @Description Get a paginated list of recurring expense templates
// @Tags        recurring-expenses
// @Produce     json
// @Security    BearerAuth
// @Param       is_active query bool false "Filter by active status"
// @Param       page      query int  false "Page number (default 1)"
// @Param       page_size query int  false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.RecurringExpense] "Paginated templates"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring-expenses [get]
func (h *RecurringExpenseHandler) GetRecurringExpenses(c *gin.Context) {
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

	isActive, err := parseBoolQuery(c, "is_active")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.recurringService.GetRecurringExpenses(tenantID, page, isActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecurringExpense handles retrieving one template.
// @Summary     Get recurring expense
// @Tags        recurring-expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Template ID"
// @Success     200 {object} models.RecurringExpense "Template"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Router      /recurring-expenses/{id} [get]
func (h *RecurringExpenseHandler) GetRecurringExpense(c *gin.Context) {
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

	expense, err := h.recurringService.GetRecurringExpenseByID(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recurring_expense": expense})
}

// UpdateRecurringExpense handles updating a template. Payables already
// generated keep their values.
// @Summary     Update recurring expense
// @Tags        recurring-expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                        true "Template ID"
// @Param       request body UpdateRecurringExpenseRequest true "Fields to change"
// @Success     200 {object} models.RecurringExpense "Updated template"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Router      /recurring-expenses/{id} [put]
func (h *RecurringExpenseHandler) UpdateRecurringExpense(c *gin.Context) {
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

	var req UpdateRecurringExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	expense, err := h.recurringService.UpdateRecurringExpense(tenantID, id, services.RecurringExpenseUpdate{
		Description:   req.Description,
		Amount:        req.Amount,
		DueDay:        req.DueDay,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "UPDATE_RECURRING_EXPENSE", "recurring_expense", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"recurring_expense": expense})
}

// SetRecurringExpenseActive activates or deactivates a template.
// @Summary     Activate or deactivate recurring expense
// @Tags        recurring-expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string           true "Template ID"
// @Param       request body SetActiveRequest true "Active flag"
// @Success     200 {object} models.RecurringExpense "Updated template"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Router      /recurring-expenses/{id}/active [patch]
func (h *RecurringExpenseHandler) SetRecurringExpenseActive(c *gin.Context) {
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

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	expense, err := h.recurringService.SetRecurringExpenseActive(tenantID, id, *req.IsActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "SET_RECURRING_EXPENSE_ACTIVE", "recurring_expense", id, c.ClientIP(),
		map[string]interface{}{"is_active": *req.IsActive})

	c.JSON(http.StatusOK, gin.H{"recurring_expense": expense})
}

// DeleteRecurringExpense handles deleting a template.
// @Summary     Delete recurring expense
// @Description Soft-delete a template. Payables already generated are kept.
// @Tags        recurring-expenses
// @Security    BearerAuth
// @Param       id path string true "Template ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Router      /recurring-expenses/{id} [delete]
func (h *RecurringExpenseHandler) DeleteRecurringExpense(c *gin.Context) {
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

	if err := h.recurringService.DeleteRecurringExpense(tenantID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "DELETE_RECURRING_EXPENSE", "recurring_expense", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// GenerateRecurringExpenses creates the month's payables for every active template.
// @Summary     Generate month payables
// @Description Ensure one pending payable per active template for the month. Safe to repeat.
// @Tags        recurring-expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body GenerateRequest true "Month (YYYY-MM)"
// @Success     200 {object} map[string]interface{} "Created payables"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /recurring-expenses/generate [post]
func (h *RecurringExpenseHandler) GenerateRecurringExpenses(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	month, err := cycle.ParseMonth(req.Month)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	created, err := h.recurringService.GenerateForMonth(tenantID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "GENERATE_RECURRING_EXPENSES", "accounts_payable", "", c.ClientIP(),
		map[string]interface{}{"month": req.Month, "created": len(created)})

	c.JSON(http.StatusOK, gin.H{"month": req.Month, "created": len(created), "payables": created})
}
