package services

import (
	"testing"
	"time"

	"frota/internal/models"
	"frota/internal/pagination"
	"frota/internal/taxonomy"
	"frota/internal/testutil"
)

func TestCreateVehicle(t *testing.T) {
	t.Run("normalizes_plate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewVehicleService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)

		vehicle, err := svc.CreateVehicle(tenant.ID, "abc-1d23", "HB20", 2022, "Prata", 15000)
		testutil.AssertNoError(t, err)

		if vehicle.Plate != "ABC1D23" {
			t.Errorf("expected plate ABC1D23, got %s", vehicle.Plate)
		}
		if vehicle.Status != models.VehicleDisponivel {
			t.Errorf("expected Disponivel, got %s", vehicle.Status)
		}
	})

	t.Run("duplicate_plate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewVehicleService(db, nil)
		tenant := testutil.CreateTestTenant(t, db)

		_, err := svc.CreateVehicle(tenant.ID, "ABC1D23", "HB20", 2022, "", 0)
		testutil.AssertNoError(t, err)
		_, err = svc.CreateVehicle(tenant.ID, "abc-1d23", "Onix", 2023, "", 0)
		testutil.AssertAppError(t, err, "DUPLICATE_PLATE")
	})

	t.Run("same_plate_other_tenant", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewVehicleService(db, nil)
		a := testutil.CreateTestTenant(t, db)
		b := testutil.CreateTestTenant(t, db)

		_, err := svc.CreateVehicle(a.ID, "ABC1D23", "HB20", 2022, "", 0)
		testutil.AssertNoError(t, err)
		_, err = svc.CreateVehicle(b.ID, "ABC1D23", "HB20", 2022, "", 0)
		testutil.AssertNoError(t, err)
	})
}

func TestUpdateVehicle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewVehicleService(db, nil)
	tenant := testutil.CreateTestTenant(t, db)
	vehicle := testutil.CreateTestVehicle(t, db, tenant.ID)

	mileage := int64(30000)
	status := models.VehicleAlugado
	got, err := svc.UpdateVehicle(tenant.ID, vehicle.ID, VehicleUpdate{Mileage: &mileage, Status: &status})
	testutil.AssertNoError(t, err)
	if got.Mileage != 30000 || got.Status != models.VehicleAlugado {
		t.Errorf("unexpected vehicle: %+v", got)
	}

	lower := int64(100)
	_, err = svc.UpdateVehicle(tenant.ID, vehicle.ID, VehicleUpdate{Mileage: &lower})
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	rented, err := svc.GetVehicles(tenant.ID, pagination.PageRequest{}, &status)
	testutil.AssertNoError(t, err)
	if rented.TotalItems != 1 {
		t.Errorf("expected 1 rented vehicle, got %d", rented.TotalItems)
	}

	testutil.AssertNoError(t, svc.DeleteVehicle(tenant.ID, vehicle.ID))
	_, err = svc.GetVehicleByID(tenant.ID, vehicle.ID)
	testutil.AssertAppError(t, err, "VEHICLE_NOT_FOUND")
}

func TestGetVehicleHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewVehicleService(db, nil)
	costs := NewCostService(db, nil)
	drivers := NewDriverService(db, nil)
	tenant := testutil.CreateTestTenant(t, db)
	vehicle := testutil.CreateTestVehicle(t, db, tenant.ID)
	driver := testutil.CreateTestDriver(t, db, tenant.ID)

	_, err := costs.CreateCost(tenant.ID, CostInput{
		Category: taxonomy.CostFunilaria, Amount: 80000, Status: taxonomy.CostPago,
		CostDate: time.Now().AddDate(0, 0, -10), VehicleID: &vehicle.ID,
	})
	testutil.AssertNoError(t, err)
	_, err = costs.CreateCost(tenant.ID, CostInput{
		Category: taxonomy.CostFunilaria, Amount: 5000, Status: taxonomy.CostCancelado,
		CostDate: time.Now().AddDate(0, 0, -9), VehicleID: &vehicle.ID,
	})
	testutil.AssertNoError(t, err)
	testutil.CreateTestFine(t, db, tenant.ID, vehicle.ID, 19500)
	testutil.CreateTestDamage(t, db, tenant.ID, vehicle.ID, 30000)
	testutil.CreateTestFuelNote(t, db, tenant.ID, vehicle.ID, 25000)
	_, err = drivers.AssignVehicle(tenant.ID, driver.ID, vehicle.ID, "")
	testutil.AssertNoError(t, err)

	history, err := svc.GetVehicleHistory(tenant.ID, vehicle.ID)
	testutil.AssertNoError(t, err)

	kinds := make(map[string]int)
	for _, e := range history.Events {
		kinds[e.Kind]++
	}
	for kind, want := range map[string]int{"cost": 2, "fine": 1, "damage": 1, "fuel": 1, "assignment": 1} {
		if kinds[kind] != want {
			t.Errorf("expected %d %s events, got %d", want, kind, kinds[kind])
		}
	}
	if history.TotalCost != 80000 {
		t.Errorf("expected total cost 80000, got %d", history.TotalCost)
	}
	for i := 1; i < len(history.Events); i++ {
		if history.Events[i].Date.After(history.Events[i-1].Date) {
			t.Fatal("expected events newest first")
		}
	}
}
