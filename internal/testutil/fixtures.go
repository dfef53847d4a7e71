package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"frota/internal/cycle"
	"frota/internal/models"
	"frota/internal/taxonomy"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestTenant creates an active tenant.
func CreateTestTenant(t *testing.T, db *gorm.DB) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		Name:     fmt.Sprintf("Locadora %d", nextID()),
		IsActive: true,
	}
	if err := db.Create(tenant).Error; err != nil {
		t.Fatalf("failed to create test tenant: %v", err)
	}
	return tenant
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB, tenantID string) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, tenantID, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, tenantID, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		TenantScoped: models.TenantScoped{TenantID: tenantID},
		Email:        email,
		Password:     string(hash),
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestRecurringExpense creates an active monthly template.
func CreateTestRecurringExpense(t *testing.T, db *gorm.DB, tenantID, description string, amount int64, dueDay int) *models.RecurringExpense {
	t.Helper()

	tmpl := &models.RecurringExpense{
		TenantScoped: models.TenantScoped{TenantID: tenantID},
		Description:  description,
		Amount:       amount,
		DueDay:       dueDay,
		Category:     taxonomy.PayableDespesaRecorrente,
		IsActive:     true,
	}
	if err := db.Create(tmpl).Error; err != nil {
		t.Fatalf("failed to create test recurring expense: %v", err)
	}
	return tmpl
}

// CreateTestPayable creates a pending payable.
func CreateTestPayable(t *testing.T, db *gorm.DB, tenantID, category string, amount int64, due time.Time) *models.AccountsPayable {
	t.Helper()

	payable := &models.AccountsPayable{
		TenantScoped: models.TenantScoped{TenantID: tenantID},
		Description:  fmt.Sprintf("Conta %d", nextID()),
		Amount:       amount,
		DueDate:      cycle.Day(due),
		Category:     category,
		Status:       taxonomy.PayablePendente,
	}
	if err := db.Create(payable).Error; err != nil {
		t.Fatalf("failed to create test payable: %v", err)
	}
	return payable
}

// CreateTestCost creates a real cost with the given status.
func CreateTestCost(t *testing.T, db *gorm.DB, tenantID string, category taxonomy.CostCategory, amount int64, status taxonomy.CostStatus) *models.Cost {
	t.Helper()

	cost := &models.Cost{
		TenantScoped: models.TenantScoped{TenantID: tenantID},
		Category:     category,
		Description:  fmt.Sprintf("Custo %d", nextID()),
		Amount:       amount,
		CostDate:     cycle.Day(time.Now()),
		Status:       status,
		Origin:       taxonomy.OriginUsuario,
	}
	if err := db.Create(cost).Error; err != nil {
		t.Fatalf("failed to create test cost: %v", err)
	}
	return cost
}

// CreateTestVehicle creates an available vehicle with a unique plate.
func CreateTestVehicle(t *testing.T, db *gorm.DB, tenantID string) *models.Vehicle {
	t.Helper()

	vehicle := &models.Vehicle{
		TenantScoped: models.TenantScoped{TenantID: tenantID},
		Plate:        fmt.Sprintf("TST%04d", nextID()),
		Model:        "Onix 1.0",
		Year:         2023,
		Status:       models.VehicleDisponivel,
	}
	if err := db.Create(vehicle).Error; err != nil {
		t.Fatalf("failed to create test vehicle: %v", err)
	}
	return vehicle
}

// CreateTestCustomer creates a customer with the given email (may be empty).
func CreateTestCustomer(t *testing.T, db *gorm.DB, tenantID, email string) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		TenantScoped: models.TenantScoped{TenantID: tenantID},
		Name:         fmt.Sprintf("Cliente %d", nextID()),
		Email:        email,
	}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}
	return customer
}

// CreateTestDriver creates an active driver.
func CreateTestDriver(t *testing.T, db *gorm.DB, tenantID string) *models.Driver {
	t.Helper()

	driver := &models.Driver{
		TenantScoped:  models.TenantScoped{TenantID: tenantID},
		Name:          fmt.Sprintf("Motorista %d", nextID()),
		LicenseNumber: fmt.Sprintf("CNH%06d", nextID()),
		IsActive:      true,
	}
	if err := db.Create(driver).Error; err != nil {
		t.Fatalf("failed to create test driver: %v", err)
	}
	return driver
}

// CreateTestFine creates a pending fine for the vehicle.
func CreateTestFine(t *testing.T, db *gorm.DB, tenantID, vehicleID string, amount int64) *models.Fine {
	t.Helper()

	fine := &models.Fine{
		TenantScoped:   models.TenantScoped{TenantID: tenantID},
		VehicleID:      vehicleID,
		InfractionDate: cycle.Day(time.Now()),
		Description:    "Excesso de velocidade",
		Amount:         amount,
		Status:         models.FleetEventPendente,
	}
	if err := db.Create(fine).Error; err != nil {
		t.Fatalf("failed to create test fine: %v", err)
	}
	return fine
}

// CreateTestDamage creates a pending inspection damage for the vehicle.
func CreateTestDamage(t *testing.T, db *gorm.DB, tenantID, vehicleID string, amount int64) *models.InspectionDamage {
	t.Helper()

	damage := &models.InspectionDamage{
		TenantScoped:    models.TenantScoped{TenantID: tenantID},
		VehicleID:       vehicleID,
		InspectionDate:  cycle.Day(time.Now()),
		Location:        "Para-choque dianteiro",
		Description:     "Risco profundo",
		EstimatedAmount: amount,
		Status:          models.FleetEventPendente,
	}
	if err := db.Create(damage).Error; err != nil {
		t.Fatalf("failed to create test damage: %v", err)
	}
	return damage
}

// CreateTestFuelNote creates a pending fuel service note for the vehicle.
func CreateTestFuelNote(t *testing.T, db *gorm.DB, tenantID, vehicleID string, amount int64) *models.ServiceNote {
	t.Helper()

	note := &models.ServiceNote{
		TenantScoped: models.TenantScoped{TenantID: tenantID},
		VehicleID:    vehicleID,
		Kind:         models.ServiceNoteCombustivel,
		NoteDate:     cycle.Day(time.Now()),
		Description:  "Tanque devolvido vazio",
		Liters:       40,
		Amount:       amount,
		Status:       models.FleetEventPendente,
	}
	if err := db.Create(note).Error; err != nil {
		t.Fatalf("failed to create test fuel note: %v", err)
	}
	return note
}
