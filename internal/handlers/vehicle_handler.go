package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "frota/internal/errors"
	"frota/internal/models"
	"frota/internal/pagination"
	"frota/internal/services"
)

// VehicleHandler handles fleet vehicle requests.
type VehicleHandler struct {
	vehicleService services.VehicleServicer
	auditService   services.AuditServicer
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicleService services.VehicleServicer, auditService services.AuditServicer) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService, auditService: auditService}
}

// CreateVehicleRequest represents the request body for creating a vehicle.
type CreateVehicleRequest struct {
	Plate   string `json:"plate" binding:"required,min=7,max=8"`
	Model   string `json:"model" binding:"required,max=100"`
	Year    int    `json:"year" binding:"omitempty,min=1950,max=2100"`
	Color   string `json:"color" binding:"max=50"`
	Mileage int64  `json:"mileage" binding:"min=0"`
}

// UpdateVehicleRequest represents the request body for updating a vehicle.
type UpdateVehicleRequest struct {
	Model   *string `json:"model" binding:"omitempty,min=1,max=100"`
	Year    *int    `json:"year" binding:"omitempty,min=1950,max=2100"`
	Color   *string `json:"color" binding:"omitempty,max=50"`
	Status  *string `json:"status" binding:"omitempty,vehicle_status"`
	Mileage *int64  `json:"mileage" binding:"omitempty,min=0"`
}

// CreateVehicle handles adding a vehicle to the fleet.
// @Summary     Create vehicle
// @Tags        vehicles
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateVehicleRequest true "Vehicle details"
// @Success     201 {object} models.Vehicle "Created vehicle"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Plate already registered"
// @Router      /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(tenantID, req.Plate, req.Model, req.Year, req.Color, req.Mileage)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "CREATE_VEHICLE", "vehicle", vehicle.ID, c.ClientIP(),
		map[string]interface{}{"plate": vehicle.Plate})

	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

// GetVehicles handles listing vehicles.
// @Summary     List vehicles
// @Tags        vehicles
// @Produce     json
// @Security    BearerAuth
// @Param       status    query string false "Disponivel, Alugado, Manutencao or Inativo"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Vehicle] "Paginated vehicles"
// @Router      /vehicles [get]
func (h *VehicleHandler) GetVehicles(c *gin.Context) {
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

	var status *models.VehicleStatus
	switch v := models.VehicleStatus(c.Query("status")); v {
	case "":
	case models.VehicleDisponivel, models.VehicleAlugado, models.VehicleManutencao, models.VehicleInativo:
		status = &v
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid vehicle status"))
		return
	}

	result, err := h.vehicleService.GetVehicles(tenantID, page, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetVehicle handles retrieving one vehicle.
// @Summary     Get vehicle
// @Tags        vehicles
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Vehicle ID"
// @Success     200 {object} models.Vehicle "Vehicle"
// @Failure     404 {object} ErrorResponse "Vehicle not found"
// @Router      /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
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

	vehicle, err := h.vehicleService.GetVehicleByID(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// UpdateVehicle handles updating a vehicle.
// @Summary     Update vehicle
// @Tags        vehicles
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Vehicle ID"
// @Param       request body UpdateVehicleRequest true "Fields to change"
// @Success     200 {object} models.Vehicle "Updated vehicle"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Vehicle not found"
// @Router      /vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
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

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	update := services.VehicleUpdate{Model: req.Model, Year: req.Year, Color: req.Color, Mileage: req.Mileage}
	if req.Status != nil {
		status := models.VehicleStatus(*req.Status)
		update.Status = &status
	}

	vehicle, err := h.vehicleService.UpdateVehicle(tenantID, id, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "UPDATE_VEHICLE", "vehicle", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// DeleteVehicle handles removing a vehicle.
// @Summary     Delete vehicle
// @Tags        vehicles
// @Security    BearerAuth
// @Param       id path string true "Vehicle ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Vehicle not found"
// @Router      /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
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

	if err := h.vehicleService.DeleteVehicle(tenantID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "DELETE_VEHICLE", "vehicle", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// GetVehicleHistory returns the vehicle timeline.
// @Summary     Vehicle history
// @Description Costs, fines, damages, service notes and driver assignments of a vehicle, newest first
// @Tags        vehicles
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Vehicle ID"
// @Success     200 {object} services.VehicleHistory "History"
// @Failure     404 {object} ErrorResponse "Vehicle not found"
// @Router      /vehicles/{id}/history [get]
func (h *VehicleHandler) GetVehicleHistory(c *gin.Context) {
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

	history, err := h.vehicleService.GetVehicleHistory(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
