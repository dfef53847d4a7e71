package services

import (
	"testing"

	"frota/internal/cycle"
	"frota/internal/models"
	"frota/internal/pagination"
	"frota/internal/taxonomy"
	"frota/internal/testutil"
)

func TestCreateSalary(t *testing.T) {
	t.Run("creates_cost_and_payable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSalaryService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)

		salary, err := svc.CreateSalary(tenant.ID, "Maria Lima", "Atendente", 250000, 5, testutil.Date(2025, 3, 1))
		testutil.AssertNoError(t, err)

		if salary.ReferenceMonth != "2025-03" {
			t.Errorf("expected reference month 2025-03, got %s", salary.ReferenceMonth)
		}
		if !salary.PaymentDate.Equal(testutil.Date(2025, 3, 5)) {
			t.Errorf("expected payment date 2025-03-05, got %s", salary.PaymentDate.Format(cycle.DateLayout))
		}
		if salary.CostID == nil || salary.AccountsPayableID == nil {
			t.Fatal("expected salary to link its cost and payable")
		}

		var cost models.Cost
		db.First(&cost, "id = ?", *salary.CostID)
		if cost.Category != taxonomy.CostDespesas || !cost.IsRecurring || cost.Status != taxonomy.CostPendente {
			t.Errorf("unexpected salary cost: %+v", cost)
		}
		if cost.RecurrenceDay == nil || *cost.RecurrenceDay != 5 {
			t.Errorf("expected recurrence day 5, got %v", cost.RecurrenceDay)
		}

		var payable models.AccountsPayable
		db.First(&payable, "id = ?", *salary.AccountsPayableID)
		if payable.Category != taxonomy.PayableSalario {
			t.Errorf("expected Salário payable, got %s", payable.Category)
		}
		if payable.CostID == nil || *payable.CostID != cost.ID {
			t.Error("expected payable to link the salary cost")
		}
	})

	t.Run("duplicate_employee_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSalaryService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)

		_, err := svc.CreateSalary(tenant.ID, "Maria Lima", "", 250000, 5, testutil.Date(2025, 3, 1))
		testutil.AssertNoError(t, err)
		_, err = svc.CreateSalary(tenant.ID, "Maria Lima", "", 250000, 5, testutil.Date(2025, 3, 20))
		testutil.AssertAppError(t, err, "DUPLICATE_SALARY")

		var costs int64
		db.Model(&models.Cost{}).Where("tenant_id = ?", tenant.ID).Count(&costs)
		if costs != 1 {
			t.Errorf("expected the rejected salary to leave no cost, got %d", costs)
		}
	})

	t.Run("invalid_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSalaryService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)

		_, err := svc.CreateSalary(tenant.ID, "Maria Lima", "", 0, 5, testutil.Date(2025, 3, 1))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestMarkSalaryAsPaid(t *testing.T) {
	t.Run("settles_linked_records", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSalaryService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)

		salary, err := svc.CreateSalary(tenant.ID, "João", "", 200000, 10, testutil.Date(2025, 3, 1))
		testutil.AssertNoError(t, err)

		paid, err := svc.MarkSalaryAsPaid(tenant.ID, salary.ID)
		testutil.AssertNoError(t, err)
		if paid.Status != taxonomy.SalaryPago {
			t.Errorf("expected Pago, got %s", paid.Status)
		}

		var cost models.Cost
		db.First(&cost, "id = ?", *salary.CostID)
		if cost.Status != taxonomy.CostPago {
			t.Errorf("expected cost Pago, got %s", cost.Status)
		}
		var payable models.AccountsPayable
		db.First(&payable, "id = ?", *salary.AccountsPayableID)
		if payable.Status != taxonomy.PayablePago {
			t.Errorf("expected payable Pago, got %s", payable.Status)
		}

		var count int64
		db.Model(&models.Cost{}).Where("tenant_id = ?", tenant.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected no extra cost, got %d", count)
		}
	})

	t.Run("paying_the_payable_settles_the_salary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		salaries := NewSalaryService(db, nil)
		payables := NewAccountsPayableService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)

		salary, err := salaries.CreateSalary(tenant.ID, "João", "", 200000, 10, testutil.Date(2025, 3, 1))
		testutil.AssertNoError(t, err)

		result, err := payables.MarkAsPaid(tenant.ID, *salary.AccountsPayableID)
		testutil.AssertNoError(t, err)
		if result.Cost.ID != *salary.CostID {
			t.Errorf("expected the salary cost to be settled, got %s", result.Cost.ID)
		}

		got, err := salaries.GetSalaryByID(tenant.ID, salary.ID)
		testutil.AssertNoError(t, err)
		if got.Status != taxonomy.SalaryPago {
			t.Errorf("expected salary Pago, got %s", got.Status)
		}

		var count int64
		db.Model(&models.Cost{}).Where("tenant_id = ?", tenant.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected a single cost, got %d", count)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSalaryService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)

		_, err := svc.MarkSalaryAsPaid(tenant.ID, "00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "SALARY_NOT_FOUND")
	})
}

func TestSalaryGenerateForMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSalaryService(db, nil)
	tenant := testutil.CreateTestTenant(t, db)

	_, err := svc.CreateSalary(tenant.ID, "Ana", "Gerente", 500000, 5, testutil.Date(2025, 2, 1))
	testutil.AssertNoError(t, err)
	_, err = svc.CreateSalary(tenant.ID, "Bruno", "Lavador", 180000, 30, testutil.Date(2025, 2, 1))
	testutil.AssertNoError(t, err)
	_, err = svc.CreateSalary(tenant.ID, "Ana", "Gerente", 520000, 5, testutil.Date(2025, 3, 1))
	testutil.AssertNoError(t, err)

	created, err := svc.GenerateForMonth(tenant.ID, testutil.Date(2025, 3, 1))
	testutil.AssertNoError(t, err)
	if len(created) != 1 || created[0].EmployeeName != "Bruno" {
		t.Fatalf("expected only Bruno to be generated, got %v", created)
	}
	if created[0].PaymentDay != 30 || !created[0].PaymentDate.Equal(testutil.Date(2025, 3, 30)) {
		t.Errorf("unexpected payment date %s", created[0].PaymentDate.Format(cycle.DateLayout))
	}

	month := "2025-03"
	list, err := svc.GetSalaries(tenant.ID, pagination.PageRequest{}, &month, nil)
	testutil.AssertNoError(t, err)
	if list.TotalItems != 2 {
		t.Errorf("expected 2 salaries in March, got %d", list.TotalItems)
	}

	again, err := svc.GenerateForMonth(tenant.ID, testutil.Date(2025, 3, 1))
	testutil.AssertNoError(t, err)
	if len(again) != 0 {
		t.Errorf("expected nothing new on the second run, got %d", len(again))
	}
}
