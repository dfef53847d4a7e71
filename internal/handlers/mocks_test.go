package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"frota/internal/models"
	"frota/internal/pagination"
	"frota/internal/services"
	"frota/internal/taxonomy"
	"frota/internal/validator"
)

const (
	testTenantID = "0190c0de-0000-7000-8000-0000000000aa"
	testUserID   = "0190c0de-0000-7000-8000-000000000001"
	testID       = "0190c0de-0000-7000-8000-000000000100"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- test helpers ---

func injectCaller(tenantID, userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("tenantID", tenantID)
		c.Set("userID", userID)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func emptyPage[T any]() *pagination.PageResponse[T] {
	resp := pagination.NewPageResponse([]T{}, 1, 20, 0)
	return &resp
}

// --- mock audit service ---

type auditEntry struct {
	TenantID, UserID, Action, ResourceType, ResourceID string
}

type mockAuditService struct {
	entries []auditEntry
	listFn  func(tenantID string, page pagination.PageRequest, filter services.AuditFilter) (*pagination.PageResponse[models.AuditLog], error)
}

func (m *mockAuditService) Log(tenantID, userID, action, resourceType, resourceID, _ string, _ map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{tenantID, userID, action, resourceType, resourceID})
}

func (m *mockAuditService) ListAuditLogs(tenantID string, page pagination.PageRequest, filter services.AuditFilter) (*pagination.PageResponse[models.AuditLog], error) {
	if m.listFn != nil {
		return m.listFn(tenantID, page, filter)
	}
	return emptyPage[models.AuditLog](), nil
}

func (m *mockAuditService) actions() []string {
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Action)
	}
	return out
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- mock user service ---

type mockUserService struct {
	registerFn              func(tenantName, email, password, firstName, lastName string) (*models.User, error)
	getUserByIDFn           func(id string) (*models.User, error)
	attemptLoginFn          func(email, password string) (*models.User, error)
	storeRefreshTokenHashFn func(userID, tokenHash string) error
	getRefreshTokenHashFn   func(userID string) (string, error)
}

func (m *mockUserService) Register(tenantName, email, password, firstName, lastName string) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(tenantName, email, password, firstName, lastName)
	}
	return &models.User{}, nil
}

func (m *mockUserService) CreateUser(tenantID, email, _, firstName, lastName string, role models.UserRole) (*models.User, error) {
	return &models.User{TenantScoped: models.TenantScoped{TenantID: tenantID}, Email: email, FirstName: firstName, LastName: lastName, Role: role}, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	return &models.User{Email: email}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}, IsActive: true}, nil
}

func (m *mockUserService) VerifyPassword(_ *models.User, _ string) bool { return true }

func (m *mockUserService) AttemptLogin(email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) StoreRefreshTokenHash(userID, tokenHash string) error {
	if m.storeRefreshTokenHashFn != nil {
		return m.storeRefreshTokenHashFn(userID, tokenHash)
	}
	return nil
}

func (m *mockUserService) GetRefreshTokenHash(userID string) (string, error) {
	if m.getRefreshTokenHashFn != nil {
		return m.getRefreshTokenHashFn(userID)
	}
	return "", nil
}

func (m *mockUserService) ListActiveTenantIDs() ([]string, error) { return nil, nil }

var _ services.UserServicer = (*mockUserService)(nil)

// --- mock recurring expense service ---

type mockRecurringExpenseService struct {
	createFn    func(tenantID, description string, amount int64, dueDay int, category, paymentMethod string) (*models.RecurringExpense, error)
	listFn      func(tenantID string, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.RecurringExpense], error)
	getFn       func(tenantID, id string) (*models.RecurringExpense, error)
	updateFn    func(tenantID, id string, update services.RecurringExpenseUpdate) (*models.RecurringExpense, error)
	setActiveFn func(tenantID, id string, active bool) (*models.RecurringExpense, error)
	deleteFn    func(tenantID, id string) error
	generateFn  func(tenantID string, month time.Time) ([]models.AccountsPayable, error)
}

func (m *mockRecurringExpenseService) CreateRecurringExpense(tenantID, description string, amount int64, dueDay int, category, paymentMethod string) (*models.RecurringExpense, error) {
	if m.createFn != nil {
		return m.createFn(tenantID, description, amount, dueDay, category, paymentMethod)
	}
	return &models.RecurringExpense{}, nil
}

func (m *mockRecurringExpenseService) GetRecurringExpenses(tenantID string, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.RecurringExpense], error) {
	if m.listFn != nil {
		return m.listFn(tenantID, page, isActive)
	}
	return emptyPage[models.RecurringExpense](), nil
}

func (m *mockRecurringExpenseService) GetRecurringExpenseByID(tenantID, id string) (*models.RecurringExpense, error) {
	if m.getFn != nil {
		return m.getFn(tenantID, id)
	}
	return &models.RecurringExpense{}, nil
}

func (m *mockRecurringExpenseService) UpdateRecurringExpense(tenantID, id string, update services.RecurringExpenseUpdate) (*models.RecurringExpense, error) {
	if m.updateFn != nil {
		return m.updateFn(tenantID, id, update)
	}
	return &models.RecurringExpense{}, nil
}

func (m *mockRecurringExpenseService) SetRecurringExpenseActive(tenantID, id string, active bool) (*models.RecurringExpense, error) {
	if m.setActiveFn != nil {
		return m.setActiveFn(tenantID, id, active)
	}
	return &models.RecurringExpense{IsActive: active}, nil
}

func (m *mockRecurringExpenseService) DeleteRecurringExpense(tenantID, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(tenantID, id)
	}
	return nil
}

func (m *mockRecurringExpenseService) GenerateForMonth(tenantID string, month time.Time) ([]models.AccountsPayable, error) {
	if m.generateFn != nil {
		return m.generateFn(tenantID, month)
	}
	return nil, nil
}

var _ services.RecurringExpenseServicer = (*mockRecurringExpenseService)(nil)

// --- mock accounts payable service ---

type mockPayableService struct {
	createFn    func(tenantID, description string, amount int64, dueDate time.Time, category, paymentMethod, notes string) (*models.AccountsPayable, error)
	listFn      func(tenantID string, page pagination.PageRequest, filter services.PayableFilter) (*pagination.PageResponse[models.AccountsPayable], error)
	getFn       func(tenantID, id string) (*models.AccountsPayable, error)
	authorizeFn func(tenantID, id string) (*models.AccountsPayable, error)
	markPaidFn  func(tenantID, id string) (*services.PaymentResult, error)
}

func (m *mockPayableService) CreatePayable(tenantID, description string, amount int64, dueDate time.Time, category, paymentMethod, notes string) (*models.AccountsPayable, error) {
	if m.createFn != nil {
		return m.createFn(tenantID, description, amount, dueDate, category, paymentMethod, notes)
	}
	return &models.AccountsPayable{}, nil
}

func (m *mockPayableService) GetPayables(tenantID string, page pagination.PageRequest, filter services.PayableFilter) (*pagination.PageResponse[models.AccountsPayable], error) {
	if m.listFn != nil {
		return m.listFn(tenantID, page, filter)
	}
	return emptyPage[models.AccountsPayable](), nil
}

func (m *mockPayableService) GetPayableByID(tenantID, id string) (*models.AccountsPayable, error) {
	if m.getFn != nil {
		return m.getFn(tenantID, id)
	}
	return &models.AccountsPayable{}, nil
}

func (m *mockPayableService) AuthorizePayable(tenantID, id string) (*models.AccountsPayable, error) {
	if m.authorizeFn != nil {
		return m.authorizeFn(tenantID, id)
	}
	return &models.AccountsPayable{}, nil
}

func (m *mockPayableService) MarkAsPaid(tenantID, id string) (*services.PaymentResult, error) {
	if m.markPaidFn != nil {
		return m.markPaidFn(tenantID, id)
	}
	return &services.PaymentResult{Payable: &models.AccountsPayable{}}, nil
}

var _ services.AccountsPayableServicer = (*mockPayableService)(nil)

// --- mock cost service ---

type mockCostService struct {
	createFn     func(tenantID string, input services.CostInput) (*models.Cost, error)
	getFn        func(tenantID, id string) (*models.Cost, error)
	updateFn     func(tenantID, id string, update services.CostUpdate) (*models.Cost, error)
	deleteFn     func(tenantID, id string) error
	markPaidFn   func(tenantID, id string) (*models.Cost, error)
	listFn       func(tenantID string, page pagination.PageRequest, filter services.CostFilter) (*pagination.PageResponse[services.CostEntry], error)
	totalsFn     func(tenantID string, filter services.CostFilter) (*services.CostTotals, error)
	estimateFn   func(tenantID, entryID string, amount int64) (*services.CostEntry, error)
	statisticsFn func(tenantID string, from, to time.Time) (*services.CostStatistics, error)
}

func (m *mockCostService) CreateCost(tenantID string, input services.CostInput) (*models.Cost, error) {
	if m.createFn != nil {
		return m.createFn(tenantID, input)
	}
	return &models.Cost{}, nil
}

func (m *mockCostService) GetCostByID(tenantID, id string) (*models.Cost, error) {
	if m.getFn != nil {
		return m.getFn(tenantID, id)
	}
	return &models.Cost{}, nil
}

func (m *mockCostService) UpdateCost(tenantID, id string, update services.CostUpdate) (*models.Cost, error) {
	if m.updateFn != nil {
		return m.updateFn(tenantID, id, update)
	}
	return &models.Cost{}, nil
}

func (m *mockCostService) DeleteCost(tenantID, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(tenantID, id)
	}
	return nil
}

func (m *mockCostService) MarkCostAsPaid(tenantID, id string) (*models.Cost, error) {
	if m.markPaidFn != nil {
		return m.markPaidFn(tenantID, id)
	}
	return &models.Cost{}, nil
}

func (m *mockCostService) GetCosts(tenantID string, page pagination.PageRequest, filter services.CostFilter) (*pagination.PageResponse[services.CostEntry], error) {
	if m.listFn != nil {
		return m.listFn(tenantID, page, filter)
	}
	return emptyPage[services.CostEntry](), nil
}

func (m *mockCostService) GetCostTotals(tenantID string, filter services.CostFilter) (*services.CostTotals, error) {
	if m.totalsFn != nil {
		return m.totalsFn(tenantID, filter)
	}
	return &services.CostTotals{}, nil
}

func (m *mockCostService) UpdateCostEstimate(tenantID, entryID string, amount int64) (*services.CostEntry, error) {
	if m.estimateFn != nil {
		return m.estimateFn(tenantID, entryID, amount)
	}
	return &services.CostEntry{ID: entryID, Amount: amount}, nil
}

func (m *mockCostService) GetCostStatistics(tenantID string, from, to time.Time) (*services.CostStatistics, error) {
	if m.statisticsFn != nil {
		return m.statisticsFn(tenantID, from, to)
	}
	return &services.CostStatistics{From: from, To: to}, nil
}

var _ services.CostServicer = (*mockCostService)(nil)

// --- mock salary service ---

type mockSalaryService struct {
	createFn   func(tenantID, employeeName, role string, amount int64, paymentDay int, referenceMonth time.Time) (*models.Salary, error)
	listFn     func(tenantID string, page pagination.PageRequest, referenceMonth *string, status *taxonomy.SalaryStatus) (*pagination.PageResponse[models.Salary], error)
	markPaidFn func(tenantID, id string) (*models.Salary, error)
	generateFn func(tenantID string, month time.Time) ([]models.Salary, error)
}

func (m *mockSalaryService) CreateSalary(tenantID, employeeName, role string, amount int64, paymentDay int, referenceMonth time.Time) (*models.Salary, error) {
	if m.createFn != nil {
		return m.createFn(tenantID, employeeName, role, amount, paymentDay, referenceMonth)
	}
	return &models.Salary{}, nil
}

func (m *mockSalaryService) GetSalaries(tenantID string, page pagination.PageRequest, referenceMonth *string, status *taxonomy.SalaryStatus) (*pagination.PageResponse[models.Salary], error) {
	if m.listFn != nil {
		return m.listFn(tenantID, page, referenceMonth, status)
	}
	return emptyPage[models.Salary](), nil
}

func (m *mockSalaryService) GetSalaryByID(_, id string) (*models.Salary, error) {
	return &models.Salary{Base: models.Base{ID: id}}, nil
}

func (m *mockSalaryService) MarkSalaryAsPaid(tenantID, id string) (*models.Salary, error) {
	if m.markPaidFn != nil {
		return m.markPaidFn(tenantID, id)
	}
	return &models.Salary{}, nil
}

func (m *mockSalaryService) GenerateForMonth(tenantID string, month time.Time) ([]models.Salary, error) {
	if m.generateFn != nil {
		return m.generateFn(tenantID, month)
	}
	return nil, nil
}

var _ services.SalaryServicer = (*mockSalaryService)(nil)

// --- mock finance service ---

type mockFinanceService struct {
	summaryFn func(tenantID string, month time.Time) (*services.FinancialSummary, error)
	syncFn    func(tenantID string) ([]models.AccountsPayable, error)
}

func (m *mockFinanceService) GetSummary(tenantID string, month time.Time) (*services.FinancialSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(tenantID, month)
	}
	return &services.FinancialSummary{}, nil
}

func (m *mockFinanceService) SyncCostsToPayables(tenantID string) ([]models.AccountsPayable, error) {
	if m.syncFn != nil {
		return m.syncFn(tenantID)
	}
	return nil, nil
}

var _ services.FinanceServicer = (*mockFinanceService)(nil)

// --- mock driver service ---

type mockDriverService struct {
	getFn      func(tenantID, id string) (*models.Driver, error)
	assignFn   func(tenantID, driverID, vehicleID, notes string) (*models.DriverAssignment, error)
	unassignFn func(tenantID, driverID string) (*models.DriverAssignment, error)
	listAsgFn  func(tenantID string, page pagination.PageRequest, driverID, vehicleID *string) (*pagination.PageResponse[models.DriverAssignment], error)
}

func (m *mockDriverService) CreateDriver(tenantID, name, licenseNumber, phone, email string) (*models.Driver, error) {
	return &models.Driver{TenantScoped: models.TenantScoped{TenantID: tenantID}, Name: name, LicenseNumber: licenseNumber, Phone: phone, Email: email, IsActive: true}, nil
}

func (m *mockDriverService) GetDrivers(_ string, _ pagination.PageRequest, _ *bool) (*pagination.PageResponse[models.Driver], error) {
	return emptyPage[models.Driver](), nil
}

func (m *mockDriverService) GetDriverByID(tenantID, id string) (*models.Driver, error) {
	if m.getFn != nil {
		return m.getFn(tenantID, id)
	}
	return &models.Driver{}, nil
}

func (m *mockDriverService) UpdateDriver(_, id string, _ services.DriverUpdate) (*models.Driver, error) {
	return &models.Driver{Base: models.Base{ID: id}}, nil
}

func (m *mockDriverService) DeleteDriver(_, _ string) error { return nil }

func (m *mockDriverService) AssignVehicle(tenantID, driverID, vehicleID, notes string) (*models.DriverAssignment, error) {
	if m.assignFn != nil {
		return m.assignFn(tenantID, driverID, vehicleID, notes)
	}
	return &models.DriverAssignment{DriverID: driverID, VehicleID: vehicleID}, nil
}

func (m *mockDriverService) UnassignVehicle(tenantID, driverID string) (*models.DriverAssignment, error) {
	if m.unassignFn != nil {
		return m.unassignFn(tenantID, driverID)
	}
	return &models.DriverAssignment{DriverID: driverID}, nil
}

func (m *mockDriverService) GetAssignments(tenantID string, page pagination.PageRequest, driverID, vehicleID *string) (*pagination.PageResponse[models.DriverAssignment], error) {
	if m.listAsgFn != nil {
		return m.listAsgFn(tenantID, page, driverID, vehicleID)
	}
	return emptyPage[models.DriverAssignment](), nil
}

var _ services.DriverServicer = (*mockDriverService)(nil)

// --- mock fleet event service ---

type mockFleetEventService struct {
	createFineFn   func(tenantID string, input services.FineInput) (*models.Fine, error)
	listFinesFn    func(tenantID string, page pagination.PageRequest, filter services.FleetEventFilter) (*pagination.PageResponse[models.Fine], error)
	createDamageFn func(tenantID string, input services.DamageInput) (*models.InspectionDamage, error)
	createNoteFn   func(tenantID string, input services.ServiceNoteInput) (*models.ServiceNote, error)
}

func (m *mockFleetEventService) CreateFine(tenantID string, input services.FineInput) (*models.Fine, error) {
	if m.createFineFn != nil {
		return m.createFineFn(tenantID, input)
	}
	return &models.Fine{}, nil
}

func (m *mockFleetEventService) GetFines(tenantID string, page pagination.PageRequest, filter services.FleetEventFilter) (*pagination.PageResponse[models.Fine], error) {
	if m.listFinesFn != nil {
		return m.listFinesFn(tenantID, page, filter)
	}
	return emptyPage[models.Fine](), nil
}

func (m *mockFleetEventService) UpdateFineStatus(_, id string, status models.FleetEventStatus) (*models.Fine, error) {
	return &models.Fine{Base: models.Base{ID: id}, Status: status}, nil
}

func (m *mockFleetEventService) CreateDamage(tenantID string, input services.DamageInput) (*models.InspectionDamage, error) {
	if m.createDamageFn != nil {
		return m.createDamageFn(tenantID, input)
	}
	return &models.InspectionDamage{}, nil
}

func (m *mockFleetEventService) GetDamages(_ string, _ pagination.PageRequest, _ services.FleetEventFilter) (*pagination.PageResponse[models.InspectionDamage], error) {
	return emptyPage[models.InspectionDamage](), nil
}

func (m *mockFleetEventService) UpdateDamageStatus(_, id string, status models.FleetEventStatus) (*models.InspectionDamage, error) {
	return &models.InspectionDamage{Base: models.Base{ID: id}, Status: status}, nil
}

func (m *mockFleetEventService) CreateServiceNote(tenantID string, input services.ServiceNoteInput) (*models.ServiceNote, error) {
	if m.createNoteFn != nil {
		return m.createNoteFn(tenantID, input)
	}
	return &models.ServiceNote{}, nil
}

func (m *mockFleetEventService) GetServiceNotes(_ string, _ pagination.PageRequest, _ services.FleetEventFilter) (*pagination.PageResponse[models.ServiceNote], error) {
	return emptyPage[models.ServiceNote](), nil
}

var _ services.FleetEventServicer = (*mockFleetEventService)(nil)

// --- mock notification service ---

type mockNotificationService struct {
	pendingFn func(limit int) ([]models.DamageNotification, error)
	sentFn    func(id string) (*models.DamageNotification, error)
	failedFn  func(id, reason string) (*models.DamageNotification, error)
}

func (m *mockNotificationService) GetPendingNotifications(limit int) ([]models.DamageNotification, error) {
	if m.pendingFn != nil {
		return m.pendingFn(limit)
	}
	return []models.DamageNotification{}, nil
}

func (m *mockNotificationService) MarkNotificationSent(id string) (*models.DamageNotification, error) {
	if m.sentFn != nil {
		return m.sentFn(id)
	}
	return &models.DamageNotification{Base: models.Base{ID: id}, Status: models.NotificationSent}, nil
}

func (m *mockNotificationService) MarkNotificationFailed(id, reason string) (*models.DamageNotification, error) {
	if m.failedFn != nil {
		return m.failedFn(id, reason)
	}
	return &models.DamageNotification{Base: models.Base{ID: id}, Status: models.NotificationFailed, LastError: reason}, nil
}

var _ services.NotificationServicer = (*mockNotificationService)(nil)
