package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frota/internal/cycle"
	apperrors "frota/internal/errors"
	"frota/internal/pagination"
	"frota/internal/services"
	"frota/internal/taxonomy"
)

// SalaryHandler handles salary requests.
type SalaryHandler struct {
	salaryService services.SalaryServicer
	auditService  services.AuditServicer
}

// NewSalaryHandler creates a new SalaryHandler.
func NewSalaryHandler(salaryService services.SalaryServicer, auditService services.AuditServicer) *SalaryHandler {
	return &SalaryHandler{salaryService: salaryService, auditService: auditService}
}

// CreateSalaryRequest represents the request body for creating a salary.
type CreateSalaryRequest struct {
	EmployeeName   string `json:"employee_name" binding:"required,max=200"`
	Role           string `json:"role" binding:"max=100"`
	Amount         int64  `json:"amount" binding:"required,gt=0"`
	PaymentDay     int    `json:"payment_day" binding:"required,due_day"`
	ReferenceMonth string `json:"reference_month" binding:"required,month"`
}

// CreateSalary handles creating a salary with its cost and payable.
// @Summary     Create salary
// @Description Create a salary together with a recurring cost and a Salário payable
// @Tags        salaries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSalaryRequest true "Salary details"
// @Success     201 {object} models.Salary "Created salary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Salary already exists for the month"
// @Router      /salaries [post]
func (h *SalaryHandler) CreateSalary(c *gin.Context) {
	tenantID, userID, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	month, err := cycle.ParseMonth(req.ReferenceMonth)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	salary, err := h.salaryService.CreateSalary(tenantID, req.EmployeeName, req.Role, req.Amount, req.PaymentDay, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "CREATE_SALARY", "salary", salary.ID, c.ClientIP(),
		map[string]interface{}{"employee_name": req.EmployeeName, "amount": req.Amount, "reference_month": req.ReferenceMonth})

	c.JSON(http.StatusCreated, gin.H{"salary": salary})
}

// GetSalaries handles listing salaries.
// @Summary     List salaries
// @Tags        salaries
// @Produce     json
// @Security    BearerAuth
// @Param       reference_month query string false "YYYY-MM"
// @Param       status          query string false "Pendente or Pago"
// @Param       page            query int    false "Page number (default 1)"
// @Param       page_size       query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Salary] "Paginated salaries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /salaries [get]
func (h *SalaryHandler) GetSalaries(c *gin.Context) {
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

	var month *string
	if v := c.Query("reference_month"); v != "" {
		if _, err := cycle.ParseMonth(v); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
		month = &v
	}

	var status *taxonomy.SalaryStatus
	switch v := taxonomy.SalaryStatus(c.Query("status")); v {
	case "":
	case taxonomy.SalaryPendente, taxonomy.SalaryPago:
		status = &v
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be Pendente or Pago"))
		return
	}

	result, err := h.salaryService.GetSalaries(tenantID, page, month, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSalary handles retrieving one salary.
// @Summary     Get salary
// @Tags        salaries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Salary ID"
// @Success     200 {object} models.Salary "Salary"
// @Failure     404 {object} ErrorResponse "Salary not found"
// @Router      /salaries/{id} [get]
func (h *SalaryHandler) GetSalary(c *gin.Context) {
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

	salary, err := h.salaryService.GetSalaryByID(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"salary": salary})
}

// PaySalary marks a salary and its linked cost and payable as paid.
// @Summary     Pay salary
// @Tags        salaries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Salary ID"
// @Success     200 {object} models.Salary "Paid salary"
// @Failure     404 {object} ErrorResponse "Salary not found"
// @Router      /salaries/{id}/pay [post]
func (h *SalaryHandler) PaySalary(c *gin.Context) {
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

	salary, err := h.salaryService.MarkSalaryAsPaid(tenantID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "PAY_SALARY", "salary", id, c.ClientIP(),
		map[string]interface{}{"amount": salary.Amount})

	c.JSON(http.StatusOK, gin.H{"salary": salary})
}

// GenerateSalaries copies the previous month's salaries into the given month.
// @Summary     Generate month salaries
// @Tags        salaries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body GenerateRequest true "Month (YYYY-MM)"
// @Success     200 {object} map[string]interface{} "Created salaries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /salaries/generate [post]
func (h *SalaryHandler) GenerateSalaries(c *gin.Context) {
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

	created, err := h.salaryService.GenerateForMonth(tenantID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(tenantID, userID, "GENERATE_SALARIES", "salary", "", c.ClientIP(),
		map[string]interface{}{"month": req.Month, "created": len(created)})

	c.JSON(http.StatusOK, gin.H{"month": req.Month, "created": len(created), "salaries": created})
}
