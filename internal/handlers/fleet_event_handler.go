package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "frota/internal/errors"
	"frota/internal/models"
	"frota/internal/pagination"
	"frota/internal/services"
)

// FleetEventHandler handles fines, inspection damages and service notes.
type FleetEventHandler struct {
	fleetService services.FleetEventServicer
	auditService services.AuditServicer
}

// NewFleetEventHandler creates a new FleetEventHandler.
func NewFleetEventHandler(fleetService services.FleetEventServicer, auditService services.AuditServicer) *FleetEventHandler {
	return &FleetEventHandler{fleetService: fleetService, auditService: auditService}
}

// CreateFineRequest represents the request body for recording a fine.
type CreateFineRequest struct {
	VehicleID      string  `json:"vehicle_id" binding:"required,uuid"`
	CustomerID     *string `json:"customer_id" binding:"omitempty,uuid"`
	DriverID       *string `json:"driver_id" binding:"omitempty,uuid"`
	InfractionDate string  `json:"infraction_date" binding:"required,datetime=2006-01-02"`
	InfractionCode string  `json:"infraction_code" binding:"max=20"`
	Description    string  `json:"description" binding:"required,max=500"`
	Amount         int64   `json:"amount" binding:"min=0"`
}

// CreateDamageRequest represents the request body for recording an inspection damage.
type CreateDamageRequest struct {
	VehicleID       string  `json:"vehicle_id" binding:"required,uuid"`
	CustomerID      *string `json:"customer_id" binding:"omitempty,uuid"`
	InspectionDate  string  `json:"inspection_date" binding:"required,datetime=2006-01-02"`
	Location        string  `json:"location" binding:"max=100"`
	Description     string  `json:"description" binding:"required,max=500"`
	EstimatedAmount int64   `json:"estimated_amount" binding:"min=0"`
}

// CreateServiceNoteRequest represents the request body for a fuel or maintenance note.
type CreateServiceNoteRequest struct {
	VehicleID   string  `json:"vehicle_id" binding:"required,uuid"`
	CustomerID  *string `json:"customer_id" binding:"omitempty,uuid"`
	Kind        string  `json:"kind" binding:"required,oneof=Combustivel Manutencao"`
	NoteDate    string  `json:"note_date" binding:"required,datetime=2006-01-02"`
	Description string  `json:"description" binding:"max=500"`
	Liters      float64 `json:"liters" binding:"min=0"`
	Amount      int64   `json:"amount" binding:"min=0"`
}

// UpdateFleetStatusRequest changes the status of a fine or damage.
type UpdateFleetStatusRequest struct {
	Status string `json:"status" binding:"required,fleet_status"`
}

func parseFleetEventFilter(c *gin.Context) (services.FleetEventFilter, error) {
	var filter services.FleetEventFilter
	var err error
	if filter.VehicleID, err = parseUUIDQuery(c, "vehicle_id"); err != nil {
		return filter, err
	}
	if filter.CustomerID, err = parseUUIDQuery(c, "customer_id"); err != nil {
		return filter, err
	}
	switch v := models.FleetEventStatus(c.Query("status")); v {
	case "":
	case models.FleetEventPendente, models.FleetEventCobrado, models.FleetEventPago, models.FleetEventCancelado:
		filter.Status = &v
	default:
		return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status")
	}
	return filter, nil
}

func mustDate(s string) time.Time {
	t, _ := parseDate(s)
	return t
}

// CreateFine handles recording a traffic fine.
// @Summary     Create fine
// @Description Record a traffic fine. An amount of zero shows up in the cost ledger as still to be defined.
// @Tags        fleet-events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateFineRequest true "Fine details"
// @Success     201 {object} models.Fine "Created fine"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Vehicle or customer not found"
// @Router      /fines [post]
func (h *FleetEventHandler) CreateFine(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateFineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	fine, err := h.fleetService.CreateFine(tenantID, services.FineInput{
		VehicleID:      req.VehicleID,
		CustomerID:     req.CustomerID,
		DriverID:       req.DriverID,
		InfractionDate: mustDate(req.InfractionDate),
		InfractionCode: req.InfractionCode,
		Description:    req.Description,
		Amount:         req.Amount,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "CREATE_FINE", "fine", fine.ID, c.ClientIP(),
		map[string]interface{}{"vehicle_id": req.VehicleID, "amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"fine": fine})
}

// GetFines handles listing fines.
// @Summary     List fines
// @Tags        fleet-events
// @Produce     json
// @Security    BearerAuth
// @Param       vehicle_id  query string false "Vehicle ID"
// @Param       customer_id query string false "Customer ID"
// @Param       status      query string false "Pendente, Cobrado, Pago or Cancelado"
// @Success     200 {object} pagination.PageResponse[models.Fine] "Paginated fines"
// @Router      /fines [get]
func (h *FleetEventHandler) GetFines(c *gin.Context) {
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
	filter, err := parseFleetEventFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.fleetService.GetFines(tenantID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateFineStatus handles moving a fine through its statuses.
// @Summary     Update fine status
// @Tags        fleet-events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Fine ID"
// @Param       request body UpdateFleetStatusRequest true "New status"
// @Success     200 {object} models.Fine "Updated fine"
// @Failure     404 {object} ErrorResponse "Fine not found"
// @Router      /fines/{id}/status [patch]
func (h *FleetEventHandler) UpdateFineStatus(c *gin.Context) {
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

	var req UpdateFleetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	fine, err := h.fleetService.UpdateFineStatus(tenantID, id, models.FleetEventStatus(req.Status))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "UPDATE_FINE_STATUS", "fine", id, c.ClientIP(),
		map[string]interface{}{"status": req.Status})

	c.JSON(http.StatusOK, gin.H{"fine": fine})
}

// CreateDamage handles recording an inspection damage. When the customer has
// an email a notification is queued for the notifier job.
// @Summary     Create inspection damage
// @Tags        fleet-events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDamageRequest true "Damage details"
// @Success     201 {object} models.InspectionDamage "Created damage"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Vehicle or customer not found"
// @Router      /damages [post]
func (h *FleetEventHandler) CreateDamage(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDamageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	damage, err := h.fleetService.CreateDamage(tenantID, services.DamageInput{
		VehicleID:       req.VehicleID,
		CustomerID:      req.CustomerID,
		InspectionDate:  mustDate(req.InspectionDate),
		Location:        req.Location,
		Description:     req.Description,
		EstimatedAmount: req.EstimatedAmount,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "CREATE_DAMAGE", "inspection_damage", damage.ID, c.ClientIP(),
		map[string]interface{}{"vehicle_id": req.VehicleID, "estimated_amount": req.EstimatedAmount})

	c.JSON(http.StatusCreated, gin.H{"damage": damage})
}

// GetDamages handles listing inspection damages.
// @Summary     List inspection damages
// @Tags        fleet-events
// @Produce     json
// @Security    BearerAuth
// @Param       vehicle_id  query string false "Vehicle ID"
// @Param       customer_id query string false "Customer ID"
// @Param       status      query string false "Pendente, Cobrado, Pago or Cancelado"
// @Success     200 {object} pagination.PageResponse[models.InspectionDamage] "Paginated damages"
// @Router      /damages [get]
func (h *FleetEventHandler) GetDamages(c *gin.Context) {
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
	filter, err := parseFleetEventFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.fleetService.GetDamages(tenantID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateDamageStatus handles moving a damage through its statuses.
// @Summary     Update damage status
// @Tags        fleet-events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Damage ID"
// @Param       request body UpdateFleetStatusRequest true "New status"
// @Success     200 {object} models.InspectionDamage "Updated damage"
// @Failure     404 {object} ErrorResponse "Damage not found"
// @Router      /damages/{id}/status [patch]
func (h *FleetEventHandler) UpdateDamageStatus(c *gin.Context) {
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

	var req UpdateFleetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	damage, err := h.fleetService.UpdateDamageStatus(tenantID, id, models.FleetEventStatus(req.Status))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "UPDATE_DAMAGE_STATUS", "inspection_damage", id, c.ClientIP(),
		map[string]interface{}{"status": req.Status})

	c.JSON(http.StatusOK, gin.H{"damage": damage})
}

// CreateServiceNote handles recording a fuel or maintenance note.
// @Summary     Create service note
// @Tags        fleet-events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateServiceNoteRequest true "Note details"
// @Success     201 {object} models.ServiceNote "Created note"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Vehicle not found"
// @Router      /service-notes [post]
func (h *FleetEventHandler) CreateServiceNote(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateServiceNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	note, err := h.fleetService.CreateServiceNote(tenantID, services.ServiceNoteInput{
		VehicleID:   req.VehicleID,
		CustomerID:  req.CustomerID,
		Kind:        models.ServiceNoteKind(req.Kind),
		NoteDate:    mustDate(req.NoteDate),
		Description: req.Description,
		Liters:      req.Liters,
		Amount:      req.Amount,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "CREATE_SERVICE_NOTE", "service_note", note.ID, c.ClientIP(),
		map[string]interface{}{"kind": req.Kind, "amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"service_note": note})
}

// GetServiceNotes handles listing service notes.
// @Summary     List service notes
// @Tags        fleet-events
// @Produce     json
// @Security    BearerAuth
// @Param       vehicle_id  query string false "Vehicle ID"
// @Param       customer_id query string false "Customer ID"
// @Success     200 {object} pagination.PageResponse[models.ServiceNote] "Paginated notes"
// @Router      /service-notes [get]
func (h *FleetEventHandler) GetServiceNotes(c *gin.Context) {
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
	filter, err := parseFleetEventFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.fleetService.GetServiceNotes(tenantID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
