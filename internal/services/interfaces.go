package services

import (
	"time"

	"frota/internal/models"
	"frota/internal/money"
	"frota/internal/pagination"
	"frota/internal/taxonomy"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(tenantName, email, password, firstName, lastName string) (*models.User, error)
	CreateUser(tenantID, email, password, firstName, lastName string, role models.UserRole) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	ListActiveTenantIDs() ([]string, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(tenantID, userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
	ListAuditLogs(tenantID string, page pagination.PageRequest, filter AuditFilter) (*pagination.PageResponse[models.AuditLog], error)
}

// RecurringExpenseUpdate holds the optional fields of a template update.
type RecurringExpenseUpdate struct {
	Description   *string
	Amount        *int64
	DueDay        *int
	Category      *string
	PaymentMethod *string
}

// RecurringExpenseServicer manages recurring expense templates and their monthly generation.
type RecurringExpenseServicer interface {
	CreateRecurringExpense(tenantID, description string, amount int64, dueDay int, category, paymentMethod string) (*models.RecurringExpense, error)
	GetRecurringExpenses(tenantID string, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.RecurringExpense], error)
	GetRecurringExpenseByID(tenantID, id string) (*models.RecurringExpense, error)
	UpdateRecurringExpense(tenantID, id string, update RecurringExpenseUpdate) (*models.RecurringExpense, error)
	SetRecurringExpenseActive(tenantID, id string, active bool) (*models.RecurringExpense, error)
	DeleteRecurringExpense(tenantID, id string) error
	GenerateForMonth(tenantID string, month time.Time) ([]models.AccountsPayable, error)
}

// PayableFilter holds optional filter parameters for listing payables.
type PayableFilter struct {
	Status             *taxonomy.PayableStatus
	Category           *string
	FromDate           *time.Time
	ToDate             *time.Time
	RecurringExpenseID *string
	OverdueOnly        bool
}

// PaymentResult is everything a payment touched.
type PaymentResult struct {
	Payable     *models.AccountsPayable `json:"payable"`
	Cost        *models.Cost            `json:"cost,omitempty"`
	NextPayable *models.AccountsPayable `json:"next_payable,omitempty"`
	AlreadyPaid bool                    `json:"already_paid"`
}

// AccountsPayableServicer manages the accounts payable ledger and its payment state machine.
type AccountsPayableServicer interface {
	CreatePayable(tenantID, description string, amount int64, dueDate time.Time, category, paymentMethod, notes string) (*models.AccountsPayable, error)
	GetPayables(tenantID string, page pagination.PageRequest, filter PayableFilter) (*pagination.PageResponse[models.AccountsPayable], error)
	GetPayableByID(tenantID, id string) (*models.AccountsPayable, error)
	AuthorizePayable(tenantID, id string) (*models.AccountsPayable, error)
	MarkAsPaid(tenantID, id string) (*PaymentResult, error)
}

// CostFilter holds optional filter parameters for the cost ledger.
type CostFilter struct {
	Category           *taxonomy.CostCategory
	Origin             *taxonomy.Origin
	Status             *taxonomy.CostStatus
	VehicleID          *string
	CustomerID         *string
	FromDate           *time.Time
	ToDate             *time.Time
	IncludeVirtual     bool
	OnlyAmountToDefine bool
}

// CostInput carries the fields of a new cost.
type CostInput struct {
	Category      taxonomy.CostCategory
	Description   string
	Amount        int64
	CostDate      time.Time
	Status        taxonomy.CostStatus
	Origin        taxonomy.Origin
	IsRecurring   bool
	RecurrenceDay *int
	DocumentRef   string
	Observations  string
	VehicleID     *string
	CustomerID    *string
	ContractID    *string
}

// CostUpdate holds the optional fields of a cost update.
type CostUpdate struct {
	Category     *taxonomy.CostCategory
	Description  *string
	Amount       *int64
	CostDate     *time.Time
	Status       *taxonomy.CostStatus
	DocumentRef  *string
	Observations *string
}

// CostTotals aggregates a cost listing. Amount-to-define rows are counted but never summed.
type CostTotals struct {
	Paid                int64 `json:"paid"`
	Pending             int64 `json:"pending"`
	Cancelled           int64 `json:"cancelled"`
	Total               int64 `json:"total"`
	Count               int   `json:"count"`
	AmountToDefineCount int   `json:"amount_to_define_count"`
}

// CategoryTotal is one row of the per-category statistics.
type CategoryTotal struct {
	Category taxonomy.CostCategory `json:"category"`
	Label    string                `json:"label"`
	Total    int64                 `json:"total"`
	Count    int                   `json:"count"`
}

// OriginTotal is one row of the per-origin statistics.
type OriginTotal struct {
	Origin taxonomy.Origin `json:"origin"`
	Label  string          `json:"label"`
	Total  int64           `json:"total"`
	Count  int             `json:"count"`
}

// MonthTotal is one row of the per-month statistics.
type MonthTotal struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
	Count int    `json:"count"`
}

// CostStatistics summarizes real costs over a date range.
type CostStatistics struct {
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	Total      int64           `json:"total"`
	Count      int             `json:"count"`
	ByCategory []CategoryTotal `json:"by_category"`
	ByOrigin   []OriginTotal   `json:"by_origin"`
	ByMonth    []MonthTotal    `json:"by_month"`
}

// CostServicer manages real costs and the unified ledger view over virtual ones.
type CostServicer interface {
	CreateCost(tenantID string, input CostInput) (*models.Cost, error)
	GetCostByID(tenantID, id string) (*models.Cost, error)
	UpdateCost(tenantID, id string, update CostUpdate) (*models.Cost, error)
	DeleteCost(tenantID, id string) error
	MarkCostAsPaid(tenantID, id string) (*models.Cost, error)
	GetCosts(tenantID string, page pagination.PageRequest, filter CostFilter) (*pagination.PageResponse[CostEntry], error)
	GetCostTotals(tenantID string, filter CostFilter) (*CostTotals, error)
	UpdateCostEstimate(tenantID, entryID string, amount int64) (*CostEntry, error)
	GetCostStatistics(tenantID string, from, to time.Time) (*CostStatistics, error)
}

// SalaryServicer manages salaries and their paired cost and payable.
type SalaryServicer interface {
	CreateSalary(tenantID, employeeName, role string, amount int64, paymentDay int, referenceMonth time.Time) (*models.Salary, error)
	GetSalaries(tenantID string, page pagination.PageRequest, referenceMonth *string, status *taxonomy.SalaryStatus) (*pagination.PageResponse[models.Salary], error)
	GetSalaryByID(tenantID, id string) (*models.Salary, error)
	MarkSalaryAsPaid(tenantID, id string) (*models.Salary, error)
	GenerateForMonth(tenantID string, month time.Time) ([]models.Salary, error)
}

// StatusTotal is a count and amount for one status bucket. Formatted is the
// amount rendered in reais.
type StatusTotal struct {
	Count     int64  `json:"count"`
	Amount    int64  `json:"amount"`
	Formatted string `json:"formatted"`
}

func newStatusTotal(count, amount int64) StatusTotal {
	return StatusTotal{Count: count, Amount: amount, Formatted: money.FormatBRL(amount)}
}

// PayablesSummary groups a month's payables by status.
type PayablesSummary struct {
	Pending    StatusTotal `json:"pending"`
	Authorized StatusTotal `json:"authorized"`
	Paid       StatusTotal `json:"paid"`
	Overdue    StatusTotal `json:"overdue"`
}

// CostsSummary groups a month's real costs by status.
type CostsSummary struct {
	Paid                StatusTotal `json:"paid"`
	Pending             StatusTotal `json:"pending"`
	AmountToDefineCount int64       `json:"amount_to_define_count"`
}

// SalariesSummary groups a month's salaries by status.
type SalariesSummary struct {
	Pending StatusTotal `json:"pending"`
	Paid    StatusTotal `json:"paid"`
}

// FinancialSummary is the finance dashboard for one month.
type FinancialSummary struct {
	Month    string          `json:"month"`
	Payables PayablesSummary `json:"payables"`
	Costs    CostsSummary    `json:"costs"`
	Salaries SalariesSummary `json:"salaries"`
}

// FinanceServicer provides cross-entity finance operations.
type FinanceServicer interface {
	GetSummary(tenantID string, month time.Time) (*FinancialSummary, error)
	SyncCostsToPayables(tenantID string) ([]models.AccountsPayable, error)
}

// VehicleUpdate holds the optional fields of a vehicle update.
type VehicleUpdate struct {
	Model   *string
	Year    *int
	Color   *string
	Status  *models.VehicleStatus
	Mileage *int64
}

// HistoryEvent is one entry of a vehicle or customer timeline.
type HistoryEvent struct {
	Date        time.Time `json:"date"`
	Kind        string    `json:"kind"`
	ReferenceID string    `json:"reference_id"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status,omitempty"`
}

// VehicleHistory is a vehicle with its timeline, newest first.
type VehicleHistory struct {
	Vehicle   *models.Vehicle `json:"vehicle"`
	Events    []HistoryEvent  `json:"events"`
	TotalCost int64           `json:"total_cost"`
}

// VehicleServicer manages fleet vehicles.
type VehicleServicer interface {
	CreateVehicle(tenantID, plate, model string, year int, color string, mileage int64) (*models.Vehicle, error)
	GetVehicles(tenantID string, page pagination.PageRequest, status *models.VehicleStatus) (*pagination.PageResponse[models.Vehicle], error)
	GetVehicleByID(tenantID, id string) (*models.Vehicle, error)
	UpdateVehicle(tenantID, id string, update VehicleUpdate) (*models.Vehicle, error)
	DeleteVehicle(tenantID, id string) error
	GetVehicleHistory(tenantID, id string) (*VehicleHistory, error)
}

// CustomerUpdate holds the optional fields of a customer update.
type CustomerUpdate struct {
	Name     *string
	Document *string
	Email    *string
	Phone    *string
	Notes    *string
}

// CustomerHistory is a customer with everything charged to them.
type CustomerHistory struct {
	Customer     *models.Customer `json:"customer"`
	Events       []HistoryEvent   `json:"events"`
	TotalCharged int64            `json:"total_charged"`
	TotalPending int64            `json:"total_pending"`
}

// CustomerServicer manages rental customers.
type CustomerServicer interface {
	CreateCustomer(tenantID, name, document, email, phone, notes string) (*models.Customer, error)
	GetCustomers(tenantID string, page pagination.PageRequest, search string) (*pagination.PageResponse[models.Customer], error)
	GetCustomerByID(tenantID, id string) (*models.Customer, error)
	UpdateCustomer(tenantID, id string, update CustomerUpdate) (*models.Customer, error)
	DeleteCustomer(tenantID, id string) error
	GetCustomerHistory(tenantID, id string) (*CustomerHistory, error)
}

// DriverUpdate holds the optional fields of a driver update.
type DriverUpdate struct {
	Name          *string
	LicenseNumber *string
	Phone         *string
	Email         *string
	IsActive      *bool
}

// DriverServicer manages drivers and their vehicle assignments.
type DriverServicer interface {
	CreateDriver(tenantID, name, licenseNumber, phone, email string) (*models.Driver, error)
	GetDrivers(tenantID string, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.Driver], error)
	GetDriverByID(tenantID, id string) (*models.Driver, error)
	UpdateDriver(tenantID, id string, update DriverUpdate) (*models.Driver, error)
	DeleteDriver(tenantID, id string) error
	AssignVehicle(tenantID, driverID, vehicleID, notes string) (*models.DriverAssignment, error)
	UnassignVehicle(tenantID, driverID string) (*models.DriverAssignment, error)
	GetAssignments(tenantID string, page pagination.PageRequest, driverID, vehicleID *string) (*pagination.PageResponse[models.DriverAssignment], error)
}

// FineInput carries the fields of a new fine.
type FineInput struct {
	VehicleID      string
	CustomerID     *string
	DriverID       *string
	InfractionDate time.Time
	InfractionCode string
	Description    string
	Amount         int64
}

// DamageInput carries the fields of a new inspection damage.
type DamageInput struct {
	VehicleID       string
	CustomerID      *string
	InspectionDate  time.Time
	Location        string
	Description     string
	EstimatedAmount int64
}

// ServiceNoteInput carries the fields of a new service note.
type ServiceNoteInput struct {
	VehicleID   string
	CustomerID  *string
	Kind        models.ServiceNoteKind
	NoteDate    time.Time
	Description string
	Liters      float64
	Amount      int64
}

// FleetEventFilter holds optional filter parameters for fines, damages and notes.
type FleetEventFilter struct {
	VehicleID  *string
	CustomerID *string
	Status     *models.FleetEventStatus
}

// FleetEventServicer records fines, inspection damages and service notes.
type FleetEventServicer interface {
	CreateFine(tenantID string, input FineInput) (*models.Fine, error)
	GetFines(tenantID string, page pagination.PageRequest, filter FleetEventFilter) (*pagination.PageResponse[models.Fine], error)
	UpdateFineStatus(tenantID, id string, status models.FleetEventStatus) (*models.Fine, error)
	CreateDamage(tenantID string, input DamageInput) (*models.InspectionDamage, error)
	GetDamages(tenantID string, page pagination.PageRequest, filter FleetEventFilter) (*pagination.PageResponse[models.InspectionDamage], error)
	UpdateDamageStatus(tenantID, id string, status models.FleetEventStatus) (*models.InspectionDamage, error)
	CreateServiceNote(tenantID string, input ServiceNoteInput) (*models.ServiceNote, error)
	GetServiceNotes(tenantID string, page pagination.PageRequest, filter FleetEventFilter) (*pagination.PageResponse[models.ServiceNote], error)
}

// NotificationServicer backs the pipeline endpoints polled by the notifier job.
type NotificationServicer interface {
	GetPendingNotifications(limit int) ([]models.DamageNotification, error)
	MarkNotificationSent(id string) (*models.DamageNotification, error)
	MarkNotificationFailed(id, reason string) (*models.DamageNotification, error)
}
