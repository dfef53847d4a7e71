package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frota/internal/pagination"
	"frota/internal/services"
)

// DriverHandler handles drivers and their vehicle assignments.
type DriverHandler struct {
	driverService services.DriverServicer
	auditService  services.AuditServicer
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(driverService services.DriverServicer, auditService services.AuditServicer) *DriverHandler {
	return &DriverHandler{driverService: driverService, auditService: auditService}
}

// CreateDriverRequest represents the request body for creating a driver.
type CreateDriverRequest struct {
	Name          string `json:"name" binding:"required,max=200"`
	LicenseNumber string `json:"license_number" binding:"max=20"`
	Phone         string `json:"phone" binding:"max=30"`
	Email         string `json:"email" binding:"omitempty,email,max=255"`
}

// UpdateDriverRequest represents the request body for updating a driver.
type UpdateDriverRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=200"`
	LicenseNumber *string `json:"license_number" binding:"omitempty,max=20"`
	Phone         *string `json:"phone" binding:"omitempty,max=30"`
	Email         *string `json:"email" binding:"omitempty,email,max=255"`
	IsActive      *bool   `json:"is_active"`
}

// AssignVehicleRequest represents the request body for assigning a vehicle.
type AssignVehicleRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required,uuid"`
	Notes     string `json:"notes" binding:"max=500"`
}

// CreateDriver handles creating a driver.
// @Summary     Create driver
// @Tags        drivers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDriverRequest true "Driver details"
// @Success     201 {object} models.Driver "Created driver"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /drivers [post]
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	driver, err := h.driverService.CreateDriver(tenantID, req.Name, req.LicenseNumber, req.Phone, req.Email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "CREATE_DRIVER", "driver", driver.ID, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

// GetDrivers handles listing drivers.
// @Summary     List drivers
// @Tags        drivers
// @Produce     json
// @Security    BearerAuth
// @Param       is_active query bool false "Filter by active status"
// @Param       page      query int  false "Page number (default 1)"
// @Param       page_size query int  false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Driver] "Paginated drivers"
// @Router      /drivers [get]
func (h *DriverHandler) GetDrivers(c *gin.Context) {
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

	result, err := h.driverService.GetDrivers(tenantID, page, isActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDriver handles retrieving one driver.
// @Summary     Get driver
// @Tags        drivers
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Driver ID"
// @Success     200 {object} models.Driver "Driver"
// @Failure     404 {object} ErrorResponse "Driver not found"
// @Router      /drivers/{id} [get]
func (h *DriverHandler) GetDriver(c *gin.Context) {
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

	driver, err := h.driverService.GetDriverByID(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// UpdateDriver handles updating a driver. Deactivating a driver ends their assignment.
// @Summary     Update driver
// @Tags        drivers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Driver ID"
// @Param       request body UpdateDriverRequest true "Fields to change"
// @Success     200 {object} models.Driver "Updated driver"
// @Failure     404 {object} ErrorResponse "Driver not found"
// @Router      /drivers/{id} [put]
func (h *DriverHandler) UpdateDriver(c *gin.Context) {
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

	var req UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	driver, err := h.driverService.UpdateDriver(tenantID, id, services.DriverUpdate{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		Phone:         req.Phone,
		Email:         req.Email,
		IsActive:      req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "UPDATE_DRIVER", "driver", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// DeleteDriver handles deleting a driver.
// @Summary     Delete driver
// @Tags        drivers
// @Security    BearerAuth
// @Param       id path string true "Driver ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Driver not found"
// @Router      /drivers/{id} [delete]
func (h *DriverHandler) DeleteDriver(c *gin.Context) {
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

	if err := h.driverService.DeleteDriver(tenantID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "DELETE_DRIVER", "driver", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// AssignVehicle gives a vehicle to a driver, closing any open assignment of either.
// @Summary     Assign vehicle
// @Tags        drivers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Driver ID"
// @Param       request body AssignVehicleRequest true "Vehicle"
// @Success     201 {object} models.DriverAssignment "New assignment"
// @Failure     404 {object} ErrorResponse "Driver or vehicle not found"
// @Failure     409 {object} ErrorResponse "Driver inactive"
// @Router      /drivers/{id}/assign [post]
func (h *DriverHandler) AssignVehicle(c *gin.Context) {
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

	var req AssignVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	assignment, err := h.driverService.AssignVehicle(tenantID, id, req.VehicleID, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "ASSIGN_VEHICLE", "driver", id, c.ClientIP(),
		map[string]interface{}{"vehicle_id": req.VehicleID})

	c.JSON(http.StatusCreated, gin.H{"assignment": assignment})
}

// UnassignVehicle ends the driver's open assignment.
// @Summary     Unassign vehicle
// @Tags        drivers
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Driver ID"
// @Success     200 {object} models.DriverAssignment "Closed assignment"
// @Failure     404 {object} ErrorResponse "Driver not found"
// @Failure     409 {object} ErrorResponse "No vehicle assigned"
// @Router      /drivers/{id}/unassign [post]
func (h *DriverHandler) UnassignVehicle(c *gin.Context) {
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

	assignment, err := h.driverService.UnassignVehicle(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "UNASSIGN_VEHICLE", "driver", id, c.ClientIP(),
		map[string]interface{}{"vehicle_id": assignment.VehicleID})

	c.JSON(http.StatusOK, gin.H{"assignment": assignment})
}

// GetAssignments lists assignment history.
// @Summary     List assignments
// @Tags        drivers
// @Produce     json
// @Security    BearerAuth
// @Param       driver_id  query string false "Driver ID"
// @Param       vehicle_id query string false "Vehicle ID"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.DriverAssignment] "Paginated assignments"
// @Router      /assignments [get]
func (h *DriverHandler) GetAssignments(c *gin.Context) {
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
	driverID, err := parseUUIDQuery(c, "driver_id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	vehicleID, err := parseUUIDQuery(c, "vehicle_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.driverService.GetAssignments(tenantID, page, driverID, vehicleID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
