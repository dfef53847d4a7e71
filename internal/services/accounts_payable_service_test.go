package services

import (
	"testing"
	"time"

	"frota/internal/cycle"
	"frota/internal/events"
	"frota/internal/models"
	"frota/internal/pagination"
	"frota/internal/taxonomy"
	"frota/internal/testutil"

	"gorm.io/gorm"
)

func TestCreatePayable(t *testing.T) {
	t.Run("defaults_to_avulsa", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		bus := &testutil.RecordingBus{}
		svc := NewAccountsPayableService(db, bus)
		tenant := testutil.CreateTestTenant(t, db)

		due := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
		payable, err := svc.CreatePayable(tenant.ID, " Peças ", 45000, due, "", "pix", "")
		testutil.AssertNoError(t, err)

		if payable.Category != taxonomy.PayableAvulsa {
			t.Errorf("expected Avulsa, got %s", payable.Category)
		}
		if payable.Status != taxonomy.PayablePendente {
			t.Errorf("expected Pendente, got %s", payable.Status)
		}
		if !payable.DueDate.Equal(testutil.Date(2025, 3, 10)) {
			t.Errorf("expected due date truncated to the day, got %s", payable.DueDate)
		}
		if payable.Description != "Peças" {
			t.Errorf("expected trimmed description, got %q", payable.Description)
		}
		if !bus.Tables()[events.TableAccountsPayable] {
			t.Errorf("expected one accounts_payable change, got %v", bus.Tables())
		}
	})

	t.Run("missing_description", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountsPayableService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)

		_, err := svc.CreatePayable(tenant.ID, "", 100, time.Now(), "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountsPayableService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)

		_, err := svc.CreatePayable(tenant.ID, "Conta", -1, time.Now(), "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetPayables(t *testing.T) {
	t.Run("filters", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountsPayableService(db, nil).(*accountsPayableService)
		svc.now = func() time.Time { return testutil.Date(2025, 3, 15) }
		tenant := testutil.CreateTestTenant(t, db)

		late := testutil.CreateTestPayable(t, db, tenant.ID, taxonomy.PayableSeguro, 1000, testutil.Date(2025, 3, 1))
		testutil.CreateTestPayable(t, db, tenant.ID, taxonomy.PayableAvulsa, 2000, testutil.Date(2025, 3, 20))
		paid := testutil.CreateTestPayable(t, db, tenant.ID, taxonomy.PayableAvulsa, 3000, testutil.Date(2025, 3, 2))
		db.Model(paid).Update("status", taxonomy.PayablePago)

		all, err := svc.GetPayables(tenant.ID, pagination.PageRequest{}, PayableFilter{})
		testutil.AssertNoError(t, err)
		if all.TotalItems != 3 {
			t.Errorf("expected 3 payables, got %d", all.TotalItems)
		}
		if all.Data[0].ID != late.ID {
			t.Errorf("expected earliest due date first, got %s", all.Data[0].Description)
		}

		overdue, err := svc.GetPayables(tenant.ID, pagination.PageRequest{}, PayableFilter{OverdueOnly: true})
		testutil.AssertNoError(t, err)
		if overdue.TotalItems != 1 || overdue.Data[0].ID != late.ID {
			t.Errorf("expected only the late unpaid payable, got %d", overdue.TotalItems)
		}

		category := taxonomy.PayableAvulsa
		from := testutil.Date(2025, 3, 10)
		ranged, err := svc.GetPayables(tenant.ID, pagination.PageRequest{}, PayableFilter{Category: &category, FromDate: &from})
		testutil.AssertNoError(t, err)
		if ranged.TotalItems != 1 {
			t.Errorf("expected 1 Avulsa payable after the 10th, got %d", ranged.TotalItems)
		}
	})

	t.Run("tenant_isolation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountsPayableService(db, nil)
		mine := testutil.CreateTestTenant(t, db)
		other := testutil.CreateTestTenant(t, db)

		p := testutil.CreateTestPayable(t, db, other.ID, taxonomy.PayableAvulsa, 1000, testutil.Date(2025, 3, 1))

		result, err := svc.GetPayables(mine.ID, pagination.PageRequest{}, PayableFilter{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 0 {
			t.Errorf("expected no payables for another tenant, got %d", result.TotalItems)
		}

		_, err = svc.GetPayableByID(mine.ID, p.ID)
		testutil.AssertAppError(t, err, "PAYABLE_NOT_FOUND")
	})
}

func TestAuthorizePayable(t *testing.T) {
	t.Run("pending_to_authorized", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountsPayableService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)
		p := testutil.CreateTestPayable(t, db, tenant.ID, taxonomy.PayableAvulsa, 1000, testutil.Date(2025, 3, 1))

		got, err := svc.AuthorizePayable(tenant.ID, p.ID)
		testutil.AssertNoError(t, err)
		if got.Status != taxonomy.PayableAutorizado || got.AuthorizedAt == nil {
			t.Errorf("expected Autorizado with timestamp, got %s", got.Status)
		}
	})

	t.Run("paid_cannot_be_authorized", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountsPayableService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)
		p := testutil.CreateTestPayable(t, db, tenant.ID, taxonomy.PayableAvulsa, 1000, testutil.Date(2025, 3, 1))
		db.Model(p).Update("status", taxonomy.PayablePago)

		_, err := svc.AuthorizePayable(tenant.ID, p.ID)
		testutil.AssertAppError(t, err, "INVALID_STATUS_TRANSITION")
	})
}

func TestMarkAsPaid(t *testing.T) {
	t.Run("creates_one_cost_when_paid_twice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountsPayableService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)
		testutil.CreateTestRecurringExpense(t, db, tenant.ID, "Aluguel", 100000, 5)

		p := &models.AccountsPayable{
			TenantScoped: models.TenantScoped{TenantID: tenant.ID},
			Description:  "Aluguel",
			Amount:       100000,
			DueDate:      testutil.Date(2025, 3, 5),
			Category:     taxonomy.PayableDespesaRecorrente,
			Status:       taxonomy.PayablePendente,
		}
		db.Create(p)

		first, err := svc.MarkAsPaid(tenant.ID, p.ID)
		testutil.AssertNoError(t, err)
		if first.AlreadyPaid {
			t.Error("first payment should not be flagged as already paid")
		}

		second, err := svc.MarkAsPaid(tenant.ID, p.ID)
		testutil.AssertNoError(t, err)
		if !second.AlreadyPaid {
			t.Error("second payment should be flagged as already paid")
		}
		if second.Cost.ID != first.Cost.ID {
			t.Errorf("expected the same cost, got %s and %s", first.Cost.ID, second.Cost.ID)
		}
		if second.NextPayable != nil {
			t.Error("second payment should not regenerate")
		}

		var costs []models.Cost
		db.Where("tenant_id = ?", tenant.ID).Find(&costs)
		if len(costs) != 1 {
			t.Fatalf("expected exactly 1 cost, got %d", len(costs))
		}
		if costs[0].Status != taxonomy.CostPago {
			t.Errorf("expected cost Pago, got %s", costs[0].Status)
		}

		var next int64
		db.Model(&models.AccountsPayable{}).Where("tenant_id = ? AND status = ?", tenant.ID, taxonomy.PayablePendente).Count(&next)
		if next != 1 {
			t.Errorf("expected exactly 1 next-cycle payable, got %d", next)
		}
	})

	t.Run("maps_category_and_recurrence", func(t *testing.T) {
		tests := []struct {
			category      string
			wantCategory  taxonomy.CostCategory
			wantRecurring bool
		}{
			{taxonomy.PayableSalario, taxonomy.CostDespesas, true},
			{taxonomy.PayableSeguro, taxonomy.CostSeguro, true},
			{taxonomy.PayableDespesas, taxonomy.CostDespesas, true},
			{taxonomy.PayableAvulsa, taxonomy.CostAvulsa, false},
			{"Combustível", taxonomy.CostCombustivel, false},
			{"Material de escritório", taxonomy.CostDespesas, false},
		}

		for _, tt := range tests {
			t.Run(tt.category, func(t *testing.T) {
				db := testutil.SetupTestDB(t)
				defer testutil.TeardownTestDB(t, db)
				svc := NewAccountsPayableService(db, nil)
				tenant := testutil.CreateTestTenant(t, db)
				p := testutil.CreateTestPayable(t, db, tenant.ID, tt.category, 5000, testutil.Date(2025, 3, 12))

				result, err := svc.MarkAsPaid(tenant.ID, p.ID)
				testutil.AssertNoError(t, err)

				cost := result.Cost
				if cost.Category != tt.wantCategory {
					t.Errorf("expected category %s, got %s", tt.wantCategory, cost.Category)
				}
				if !cost.Category.Valid() {
					t.Errorf("category %s is outside the allow-list", cost.Category)
				}
				if cost.IsRecurring != tt.wantRecurring {
					t.Errorf("expected is_recurring %v, got %v", tt.wantRecurring, cost.IsRecurring)
				}
				if tt.wantRecurring && (cost.RecurrenceDay == nil || *cost.RecurrenceDay != 12) {
					t.Errorf("expected recurrence day 12, got %v", cost.RecurrenceDay)
				}
				if cost.Origin != taxonomy.OriginFinanceiro {
					t.Errorf("expected Financeiro origin, got %s", cost.Origin)
				}
				if !cost.CostDate.Equal(testutil.Date(2025, 3, 12)) {
					t.Errorf("expected cost dated on the due date, got %s", cost.CostDate)
				}
				if result.Payable.CostID == nil || *result.Payable.CostID != cost.ID {
					t.Error("expected payable to link the cost")
				}
			})
		}
	})

	t.Run("settles_synced_cost_instead_of_creating", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountsPayableService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)

		cost := testutil.CreateTestCost(t, db, tenant.ID, taxonomy.CostFunilaria, 80000, taxonomy.CostPendente)
		p := testutil.CreateTestPayable(t, db, tenant.ID, taxonomy.PayableAvulsa, 80000, testutil.Date(2025, 3, 1))
		db.Model(p).Updates(map[string]interface{}{
			"source_reference_id":   cost.ID,
			"source_reference_type": taxonomy.SourceCost,
		})

		result, err := svc.MarkAsPaid(tenant.ID, p.ID)
		testutil.AssertNoError(t, err)
		if result.Cost.ID != cost.ID {
			t.Errorf("expected the source cost to be settled, got %s", result.Cost.ID)
		}

		var count int64
		db.Model(&models.Cost{}).Where("tenant_id = ?", tenant.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected no new cost, got %d costs", count)
		}

		var reloaded models.Cost
		db.First(&reloaded, "id = ?", cost.ID)
		if reloaded.Status != taxonomy.CostPago {
			t.Errorf("expected source cost Pago, got %s", reloaded.Status)
		}
	})

	t.Run("publishes_dependent_tables", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		bus := &testutil.RecordingBus{}
		svc := NewAccountsPayableService(db, bus)
		tenant := testutil.CreateTestTenant(t, db)
		p := testutil.CreateTestPayable(t, db, tenant.ID, taxonomy.PayableAvulsa, 1000, testutil.Date(2025, 3, 1))

		_, err := svc.MarkAsPaid(tenant.ID, p.ID)
		testutil.AssertNoError(t, err)

		tables := bus.Tables()
		for _, table := range []string{events.TableAccountsPayable, events.TableCosts, events.TableFinancialSummary} {
			if !tables[table] {
				t.Errorf("expected a change on %s", table)
			}
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountsPayableService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)

		_, err := svc.MarkAsPaid(tenant.ID, "00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "PAYABLE_NOT_FOUND")
	})
}

// payablesOn returns a payable service whose clock reads the given day.
func payablesOn(db *gorm.DB, day time.Time) AccountsPayableServicer {
	svc := NewAccountsPayableService(db, nil).(*accountsPayableService)
	svc.now = func() time.Time { return day }
	return svc
}

func TestMarkAsPaidRegeneration(t *testing.T) {
	t.Run("next_cycle_one_month_ahead", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		recurring := NewRecurringExpenseService(db, nil)
		svc := payablesOn(db, testutil.Date(2025, 3, 15))
		tenant := testutil.CreateTestTenant(t, db)

		tmpl := testutil.CreateTestRecurringExpense(t, db, tenant.ID, "Contador", 60000, 5)
		generated, err := recurring.GenerateForMonth(tenant.ID, testutil.Date(2025, 3, 1))
		testutil.AssertNoError(t, err)

		result, err := svc.MarkAsPaid(tenant.ID, generated[0].ID)
		testutil.AssertNoError(t, err)

		next := result.NextPayable
		if next == nil {
			t.Fatal("expected a next-cycle payable")
		}
		if !next.DueDate.Equal(testutil.Date(2025, 4, 5)) {
			t.Errorf("expected 2025-04-05, got %s", next.DueDate.Format(cycle.DateLayout))
		}
		if next.Status != taxonomy.PayablePendente {
			t.Errorf("expected Pendente, got %s", next.Status)
		}
		if next.RecurringExpenseID == nil || *next.RecurringExpenseID != tmpl.ID {
			t.Error("expected next payable to reference its template")
		}
	})

	t.Run("month_end_clamps", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		recurring := NewRecurringExpenseService(db, nil)
		svc := payablesOn(db, testutil.Date(2025, 1, 31))
		tenant := testutil.CreateTestTenant(t, db)

		testutil.CreateTestRecurringExpense(t, db, tenant.ID, "Limpeza", 20000, 31)
		generated, err := recurring.GenerateForMonth(tenant.ID, testutil.Date(2025, 1, 1))
		testutil.AssertNoError(t, err)

		result, err := svc.MarkAsPaid(tenant.ID, generated[0].ID)
		testutil.AssertNoError(t, err)
		if result.NextPayable == nil || !result.NextPayable.DueDate.Equal(testutil.Date(2025, 2, 28)) {
			t.Errorf("expected next due date clamped to 2025-02-28, got %v", result.NextPayable)
		}
	})

	t.Run("legacy_payable_with_edited_template_does_not_regenerate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := payablesOn(db, testutil.Date(2025, 3, 10))
		tenant := testutil.CreateTestTenant(t, db)

		tmpl := testutil.CreateTestRecurringExpense(t, db, tenant.ID, "Internet", 15000, 10)
		legacy := &models.AccountsPayable{
			TenantScoped: models.TenantScoped{TenantID: tenant.ID},
			Description:  "Internet",
			Amount:       15000,
			DueDate:      testutil.Date(2025, 3, 10),
			Category:     taxonomy.PayableDespesaRecorrente,
			Status:       taxonomy.PayablePendente,
		}
		db.Create(legacy)
		db.Model(tmpl).Update("description", "Internet fibra")

		result, err := svc.MarkAsPaid(tenant.ID, legacy.ID)
		testutil.AssertNoError(t, err)

		if result.Payable.Status != taxonomy.PayablePago {
			t.Errorf("expected Pago, got %s", result.Payable.Status)
		}
		if result.Cost == nil {
			t.Error("expected a cost to be created")
		}
		if result.NextPayable != nil {
			t.Error("expected no next-cycle payable")
		}

		var count int64
		db.Model(&models.AccountsPayable{}).Where("tenant_id = ?", tenant.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected only the paid payable, got %d", count)
		}
	})

	t.Run("linked_payable_survives_template_rename", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		recurring := NewRecurringExpenseService(db, nil)
		svc := payablesOn(db, testutil.Date(2025, 3, 10))
		tenant := testutil.CreateTestTenant(t, db)

		tmpl := testutil.CreateTestRecurringExpense(t, db, tenant.ID, "Internet", 15000, 10)
		generated, err := recurring.GenerateForMonth(tenant.ID, testutil.Date(2025, 3, 1))
		testutil.AssertNoError(t, err)

		name := "Internet fibra"
		_, err = recurring.UpdateRecurringExpense(tenant.ID, tmpl.ID, RecurringExpenseUpdate{Description: &name})
		testutil.AssertNoError(t, err)

		result, err := svc.MarkAsPaid(tenant.ID, generated[0].ID)
		testutil.AssertNoError(t, err)
		if result.NextPayable == nil {
			t.Fatal("expected next-cycle payable")
		}
		if result.NextPayable.Description != "Internet fibra" {
			t.Errorf("expected the renamed description, got %s", result.NextPayable.Description)
		}
	})

	t.Run("inactive_template_does_not_regenerate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		recurring := NewRecurringExpenseService(db, nil)
		svc := payablesOn(db, testutil.Date(2025, 3, 15))
		tenant := testutil.CreateTestTenant(t, db)

		tmpl := testutil.CreateTestRecurringExpense(t, db, tenant.ID, "Software", 9900, 15)
		generated, err := recurring.GenerateForMonth(tenant.ID, testutil.Date(2025, 3, 1))
		testutil.AssertNoError(t, err)

		_, err = recurring.SetRecurringExpenseActive(tenant.ID, tmpl.ID, false)
		testutil.AssertNoError(t, err)

		result, err := svc.MarkAsPaid(tenant.ID, generated[0].ID)
		testutil.AssertNoError(t, err)
		if result.NextPayable != nil {
			t.Error("expected no next-cycle payable for an inactive template")
		}
	})

	t.Run("existing_next_payable_is_reused", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		recurring := NewRecurringExpenseService(db, nil)
		svc := payablesOn(db, testutil.Date(2025, 3, 20))
		tenant := testutil.CreateTestTenant(t, db)

		testutil.CreateTestRecurringExpense(t, db, tenant.ID, "Energia", 30000, 20)
		march, err := recurring.GenerateForMonth(tenant.ID, testutil.Date(2025, 3, 1))
		testutil.AssertNoError(t, err)
		april, err := recurring.GenerateForMonth(tenant.ID, testutil.Date(2025, 4, 1))
		testutil.AssertNoError(t, err)

		result, err := svc.MarkAsPaid(tenant.ID, march[0].ID)
		testutil.AssertNoError(t, err)
		if result.NextPayable == nil || result.NextPayable.ID != april[0].ID {
			t.Error("expected the already generated April payable to be returned")
		}

		var count int64
		db.Model(&models.AccountsPayable{}).Where("tenant_id = ?", tenant.ID).Count(&count)
		if count != 2 {
			t.Errorf("expected 2 payables, got %d", count)
		}
	})

	t.Run("late_payment_rolls_past_today", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		recurring := NewRecurringExpenseService(db, nil)
		today := testutil.Date(2025, 6, 10)
		svc := payablesOn(db, today)
		tenant := testutil.CreateTestTenant(t, db)

		testutil.CreateTestRecurringExpense(t, db, tenant.ID, "Rastreamento", 8900, 5)
		generated, err := recurring.GenerateForMonth(tenant.ID, testutil.Date(2025, 3, 1))
		testutil.AssertNoError(t, err)
		if !generated[0].DueDate.Equal(testutil.Date(2025, 3, 5)) {
			t.Fatalf("expected 2025-03-05, got %s", generated[0].DueDate.Format(cycle.DateLayout))
		}

		result, err := svc.MarkAsPaid(tenant.ID, generated[0].ID)
		testutil.AssertNoError(t, err)
		if result.NextPayable == nil {
			t.Fatal("expected a next-cycle payable")
		}
		if result.NextPayable.DueDate.Before(today) {
			t.Errorf("next payable dated in the past: %s", result.NextPayable.DueDate.Format(cycle.DateLayout))
		}
		if !result.NextPayable.DueDate.Equal(testutil.Date(2025, 7, 5)) {
			t.Errorf("expected 2025-07-05, got %s", result.NextPayable.DueDate.Format(cycle.DateLayout))
		}
	})

	t.Run("due_today_is_not_rolled", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		recurring := NewRecurringExpenseService(db, nil)
		svc := payablesOn(db, testutil.Date(2025, 4, 5))
		tenant := testutil.CreateTestTenant(t, db)

		testutil.CreateTestRecurringExpense(t, db, tenant.ID, "Seguro", 45000, 5)
		generated, err := recurring.GenerateForMonth(tenant.ID, testutil.Date(2025, 3, 1))
		testutil.AssertNoError(t, err)

		result, err := svc.MarkAsPaid(tenant.ID, generated[0].ID)
		testutil.AssertNoError(t, err)
		if result.NextPayable == nil || !result.NextPayable.DueDate.Equal(testutil.Date(2025, 4, 5)) {
			t.Errorf("expected 2025-04-05, got %v", result.NextPayable)
		}
	})
}

func TestInternetLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	recurring := NewRecurringExpenseService(db, nil)
	payables := payablesOn(db, testutil.Date(2025, 3, 10))
	tenant := testutil.CreateTestTenant(t, db)

	_, err := recurring.CreateRecurringExpense(tenant.ID, "Internet", 15000, 10, taxonomy.PayableDespesaRecorrente, "boleto")
	testutil.AssertNoError(t, err)

	generated, err := recurring.GenerateForMonth(tenant.ID, testutil.Date(2025, 3, 1))
	testutil.AssertNoError(t, err)
	if len(generated) != 1 {
		t.Fatalf("expected 1 generated payable, got %d", len(generated))
	}
	march := generated[0]
	if march.Amount != 15000 || !march.DueDate.Equal(testutil.Date(2025, 3, 10)) || march.Status != taxonomy.PayablePendente {
		t.Fatalf("unexpected generated payable: %+v", march)
	}

	_, err = payables.MarkAsPaid(tenant.ID, march.ID)
	testutil.AssertNoError(t, err)

	var paid models.AccountsPayable
	db.First(&paid, "id = ?", march.ID)
	if paid.Status != taxonomy.PayablePago {
		t.Errorf("expected March payable Pago, got %s", paid.Status)
	}

	var costs []models.Cost
	db.Where("tenant_id = ?", tenant.ID).Find(&costs)
	if len(costs) != 1 {
		t.Fatalf("expected 1 cost, got %d", len(costs))
	}
	cost := costs[0]
	if cost.Amount != 15000 || cost.Category != taxonomy.CostDespesas || !cost.IsRecurring {
		t.Errorf("unexpected cost: %+v", cost)
	}
	if cost.RecurrenceDay == nil || *cost.RecurrenceDay != 10 {
		t.Errorf("expected recurrence day 10, got %v", cost.RecurrenceDay)
	}

	var pending []models.AccountsPayable
	db.Where("tenant_id = ? AND status = ?", tenant.ID, taxonomy.PayablePendente).Find(&pending)
	if len(pending) != 1 {
		t.Fatalf("expected exactly 1 pending payable, got %d", len(pending))
	}
	if pending[0].Amount != 15000 || !pending[0].DueDate.Equal(testutil.Date(2025, 4, 10)) {
		t.Errorf("unexpected next payable: %+v", pending[0])
	}
}
