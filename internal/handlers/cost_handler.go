package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"frota/internal/cycle"
	apperrors "frota/internal/errors"
	"frota/internal/pagination"
	"frota/internal/services"
	"frota/internal/taxonomy"
)

// CostHandler handles the cost ledger.
type CostHandler struct {
	costService  services.CostServicer
	auditService services.AuditServicer
}

// NewCostHandler creates a new CostHandler.
func NewCostHandler(costService services.CostServicer, auditService services.AuditServicer) *CostHandler {
	return &CostHandler{costService: costService, auditService: auditService}
}

// CreateCostRequest represents the request body for creating a cost.
// An amount of zero records a cost whose value is still to be defined.
type CreateCostRequest struct {
	Category      string  `json:"category" binding:"required,cost_category"`
	Description   string  `json:"description" binding:"required,max=255"`
	Amount        int64   `json:"amount" binding:"min=0"`
	CostDate      string  `json:"cost_date" binding:"omitempty,datetime=2006-01-02"`
	Status        string  `json:"status" binding:"omitempty,cost_status"`
	Origin        string  `json:"origin" binding:"omitempty,cost_origin"`
	IsRecurring   bool    `json:"is_recurring"`
	RecurrenceDay *int    `json:"recurrence_day" binding:"omitempty,due_day"`
	DocumentRef   string  `json:"document_ref" binding:"max=100"`
	Observations  string  `json:"observations" binding:"max=1000"`
	VehicleID     *string `json:"vehicle_id" binding:"omitempty,uuid"`
	CustomerID    *string `json:"customer_id" binding:"omitempty,uuid"`
	ContractID    *string `json:"contract_id" binding:"omitempty,uuid"`
}

// UpdateCostRequest represents the request body for updating a cost.
type UpdateCostRequest struct {
	Category     *string `json:"category" binding:"omitempty,cost_category"`
	Description  *string `json:"description" binding:"omitempty,min=1,max=255"`
	Amount       *int64  `json:"amount" binding:"omitempty,min=0"`
	CostDate     *string `json:"cost_date" binding:"omitempty,datetime=2006-01-02"`
	Status       *string `json:"status" binding:"omitempty,cost_status"`
	DocumentRef  *string `json:"document_ref" binding:"omitempty,max=100"`
	Observations *string `json:"observations" binding:"omitempty,max=1000"`
}

// UpdateEstimateRequest sets the amount of an amount-to-define entry.
type UpdateEstimateRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// CreateCost handles creating a cost.
// @Summary     Create cost
// @Tags        costs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCostRequest true "Cost details"
// @Success     201 {object} models.Cost "Created cost"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /costs [post]
func (h *CostHandler) CreateCost(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	input := services.CostInput{
		Category:      taxonomy.CostCategory(req.Category),
		Description:   req.Description,
		Amount:        req.Amount,
		Status:        taxonomy.CostStatus(req.Status),
		Origin:        taxonomy.Origin(req.Origin),
		IsRecurring:   req.IsRecurring,
		RecurrenceDay: req.RecurrenceDay,
		DocumentRef:   req.DocumentRef,
		Observations:  req.Observations,
		VehicleID:     req.VehicleID,
		CustomerID:    req.CustomerID,
		ContractID:    req.ContractID,
	}
	if d := parseOptionalDate(&req.CostDate); d != nil {
		input.CostDate = *d
	}

	cost, err := h.costService.CreateCost(tenantID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "CREATE_COST", "cost", cost.ID, c.ClientIP(),
		map[string]interface{}{"category": req.Category, "amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"cost": cost})
}

// parseCostFilter reads the ledger filters shared by the list and totals endpoints.
func parseCostFilter(c *gin.Context) (services.CostFilter, error) {
	filter := services.CostFilter{IncludeVirtual: true}
	var err error

	if v := c.Query("category"); v != "" {
		category := taxonomy.CostCategory(v)
		if !category.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is not an accepted cost category")
		}
		filter.Category = &category
	}
	if v := c.Query("origin"); v != "" {
		origin := taxonomy.Origin(v)
		if !origin.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid origin")
		}
		filter.Origin = &origin
	}
	if v := c.Query("status"); v != "" {
		status := taxonomy.CostStatus(v)
		if !status.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be Pendente, Pago or Cancelado")
		}
		filter.Status = &status
	}
	if filter.VehicleID, err = parseUUIDQuery(c, "vehicle_id"); err != nil {
		return filter, err
	}
	if filter.CustomerID, err = parseUUIDQuery(c, "customer_id"); err != nil {
		return filter, err
	}
	if filter.FromDate, err = parseDateQuery(c, "from_date"); err != nil {
		return filter, err
	}
	if filter.ToDate, err = parseDateQuery(c, "to_date"); err != nil {
		return filter, err
	}

	includeVirtual, err := parseBoolQuery(c, "include_virtual")
	if err != nil {
		return filter, err
	}
	if includeVirtual != nil {
		filter.IncludeVirtual = *includeVirtual
	}
	toDefine, err := parseBoolQuery(c, "amount_to_define")
	if err != nil {
		return filter, err
	}
	filter.OnlyAmountToDefine = toDefine != nil && *toDefine

	return filter, nil
}

// GetCosts handles listing the unified cost ledger.
// @Summary     List costs
// @Description Real costs merged with entries projected from fines, inspection damages and fuel notes, newest first
// @Tags        costs
// @Produce     json
// @Security    BearerAuth
// @Param       category         query string false "Cost category"
// @Param       origin           query string false "Origin"
// @Param       status           query string false "Pendente, Pago or Cancelado"
// @Param       vehicle_id       query string false "Vehicle ID"
// @Param       customer_id      query string false "Customer ID"
// @Param       from_date        query string false "On or after (YYYY-MM-DD)"
// @Param       to_date          query string false "On or before (YYYY-MM-DD)"
// @Param       include_virtual  query bool   false "Include projected entries (default true)"
// @Param       amount_to_define query bool   false "Only entries still waiting for an amount"
// @Param       page             query int    false "Page number (default 1)"
// @Param       page_size        query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[services.CostEntry] "Paginated ledger"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /costs [get]
func (h *CostHandler) GetCosts(c *gin.Context) {
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
	filter, err := parseCostFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.costService.GetCosts(tenantID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCostTotals handles the ledger totals.
// @Summary     Cost totals
// @Description Totals by status for the filtered ledger. Entries with no amount yet are counted but not summed.
// @Tags        costs
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.CostTotals "Totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /costs/totals [get]
func (h *CostHandler) GetCostTotals(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseCostFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.costService.GetCostTotals(tenantID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

// GetCostStatistics handles the statistics report.
// @Summary     Cost statistics
// @Description Totals by category, origin and month. Defaults to the last twelve months.
// @Tags        costs
// @Produce     json
// @Security    BearerAuth
// @Param       from_date query string false "Start (YYYY-MM-DD)"
// @Param       to_date   query string false "End (YYYY-MM-DD)"
// @Success     200 {object} services.CostStatistics "Statistics"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /costs/statistics [get]
func (h *CostHandler) GetCostStatistics(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	to := cycle.Day(time.Now().UTC())
	from := cycle.MonthStart(to).AddDate(0, -11, 0)
	if d, err := parseDateQuery(c, "from_date"); err != nil {
		respondWithError(c, err)
		return
	} else if d != nil {
		from = *d
	}
	if d, err := parseDateQuery(c, "to_date"); err != nil {
		respondWithError(c, err)
		return
	} else if d != nil {
		to = *d
	}

	stats, err := h.costService.GetCostStatistics(tenantID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}

// GetCost handles retrieving a real cost.
// @Summary     Get cost
// @Tags        costs
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Cost ID"
// @Success     200 {object} models.Cost "Cost"
// @Failure     404 {object} ErrorResponse "Cost not found"
// @Router      /costs/{id} [get]
func (h *CostHandler) GetCost(c *gin.Context) {
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

	cost, err := h.costService.GetCostByID(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cost": cost})
}

// UpdateCost handles updating a real cost.
// @Summary     Update cost
// @Tags        costs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Cost ID"
// @Param       request body UpdateCostRequest true "Fields to change"
// @Success     200 {object} models.Cost "Updated cost"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Cost not found"
// @Router      /costs/{id} [put]
func (h *CostHandler) UpdateCost(c *gin.Context) {
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

	var req UpdateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	update := services.CostUpdate{
		Description:  req.Description,
		Amount:       req.Amount,
		CostDate:     parseOptionalDate(req.CostDate),
		DocumentRef:  req.DocumentRef,
		Observations: req.Observations,
	}
	if req.Category != nil {
		category := taxonomy.CostCategory(*req.Category)
		update.Category = &category
	}
	if req.Status != nil {
		status := taxonomy.CostStatus(*req.Status)
		update.Status = &status
	}

	cost, err := h.costService.UpdateCost(tenantID, id, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "UPDATE_COST", "cost", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"cost": cost})
}

// DeleteCost handles deleting a real cost.
// @Summary     Delete cost
// @Tags        costs
// @Security    BearerAuth
// @Param       id path string true "Cost ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Cost not found"
// @Router      /costs/{id} [delete]
func (h *CostHandler) DeleteCost(c *gin.Context) {
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

	if err := h.costService.DeleteCost(tenantID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "DELETE_COST", "cost", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// PayCost marks a real cost as paid.
// @Summary     Pay cost
// @Tags        costs
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Cost ID"
// @Success     200 {object} models.Cost "Paid cost"
// @Failure     404 {object} ErrorResponse "Cost not found"
// @Router      /costs/{id}/pay [post]
func (h *CostHandler) PayCost(c *gin.Context) {
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

	cost, err := h.costService.MarkCostAsPaid(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "PAY_COST", "cost", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"cost": cost})
}

// UpdateCostEstimate sets the amount of a ledger entry, real or projected.
// @Summary     Set cost estimate
// @Description Write an amount back to the cost, fine, inspection damage or fuel note behind a ledger entry
// @Tags        costs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Ledger entry ID (cost ID or fine_/damage_/fuel_ prefixed)"
// @Param       request body UpdateEstimateRequest true "Amount in centavos"
// @Success     200 {object} services.CostEntry "Updated entry"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Source not found"
// @Router      /costs/{id}/estimate [patch]
func (h *CostHandler) UpdateCostEstimate(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entryID := c.Param("id")
	_, sourceID, err := services.ParseEntryID(entryID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if _, err := uuid.Parse(sourceID); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid id"))
		return
	}

	var req UpdateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	entry, err := h.costService.UpdateCostEstimate(tenantID, entryID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "UPDATE_COST_ESTIMATE", string(entry.SourceKind), entry.SourceID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount})

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}
