// Package testutil provides test helpers for setting up in-memory databases,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"frota/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// AllModels is the list of all GORM models to auto-migrate in tests.
var AllModels = []interface{}{
	&models.Tenant{},
	&models.User{},
	&models.AuditLog{},
	&models.RecurringExpense{},
	&models.AccountsPayable{},
	&models.Cost{},
	&models.Salary{},
	&models.Vehicle{},
	&models.Customer{},
	&models.Driver{},
	&models.DriverAssignment{},
	&models.Fine{},
	&models.InspectionDamage{},
	&models.ServiceNote{},
	&models.DamageNotification{},
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

// SetupTestDB creates an isolated in-memory SQLite database with all models migrated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:frotatest%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(AllModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	// Mirrors the partial unique index from migrations/000001_init.up.sql.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_payable_template_cycle
		ON accounts_payable (recurring_expense_id, due_date)
		WHERE recurring_expense_id IS NOT NULL AND deleted_at IS NULL`).Error
	if err != nil {
		t.Fatalf("failed to create cycle index: %v", err)
	}

	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
