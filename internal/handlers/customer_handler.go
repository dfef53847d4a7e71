package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"frota/internal/pagination"
	"frota/internal/services"
)

// CustomerHandler handles rental customer requests.
type CustomerHandler struct {
	customerService services.CustomerServicer
	auditService    services.AuditServicer
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService services.CustomerServicer, auditService services.AuditServicer) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, auditService: auditService}
}

// CreateCustomerRequest represents the request body for creating a customer.
type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Document string `json:"document" binding:"max=20"`
	Email    string `json:"email" binding:"omitempty,email,max=255"`
	Phone    string `json:"phone" binding:"max=30"`
	Notes    string `json:"notes" binding:"max=1000"`
}

// UpdateCustomerRequest represents the request body for updating a customer.
type UpdateCustomerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Document *string `json:"document" binding:"omitempty,max=20"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Phone    *string `json:"phone" binding:"omitempty,max=30"`
	Notes    *string `json:"notes" binding:"omitempty,max=1000"`
}

// CreateCustomer handles creating a customer.
// @Summary     Create customer
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCustomerRequest true "Customer details"
// @Success     201 {object} models.Customer "Created customer"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	customer, err := h.customerService.CreateCustomer(tenantID, req.Name, req.Document, req.Email, req.Phone, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "CREATE_CUSTOMER", "customer", customer.ID, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

// GetCustomers handles listing customers.
// @Summary     List customers
// @Tags        customers
// @Produce     json
// @Security    BearerAuth
// @Param       search    query string false "Name, document or email contains"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Customer] "Paginated customers"
// @Router      /customers [get]
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
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

	result, err := h.customerService.GetCustomers(tenantID, page, strings.TrimSpace(c.Query("search")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCustomer handles retrieving one customer.
// @Summary     Get customer
// @Tags        customers
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Customer ID"
// @Success     200 {object} models.Customer "Customer"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Router      /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
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

	customer, err := h.customerService.GetCustomerByID(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// UpdateCustomer handles updating a customer.
// @Summary     Update customer
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Customer ID"
// @Param       request body UpdateCustomerRequest true "Fields to change"
// @Success     200 {object} models.Customer "Updated customer"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Router      /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
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

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	customer, err := h.customerService.UpdateCustomer(tenantID, id, services.CustomerUpdate{
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
		Notes:    req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "UPDATE_CUSTOMER", "customer", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// DeleteCustomer handles deleting a customer.
// @Summary     Delete customer
// @Tags        customers
// @Security    BearerAuth
// @Param       id path string true "Customer ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Router      /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
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

	if err := h.customerService.DeleteCustomer(tenantID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "DELETE_CUSTOMER", "customer", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// GetCustomerHistory returns everything charged to a customer.
// @Summary     Customer history
// @Tags        customers
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Customer ID"
// @Success     200 {object} services.CustomerHistory "History"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Router      /customers/{id}/history [get]
func (h *CustomerHandler) GetCustomerHistory(c *gin.Context) {
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

	history, err := h.customerService.GetCustomerHistory(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
