package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "frota/internal/errors"
	"frota/internal/events"
	"frota/internal/models"
	"frota/internal/pagination"
)

// driverService handles drivers and vehicle assignments.
type driverService struct {
	db        *gorm.DB
	publisher events.Publisher
}

// NewDriverService creates a new DriverServicer.
func NewDriverService(db *gorm.DB, publisher events.Publisher) DriverServicer {
	return &driverService{db: db, publisher: publisherOrNop(publisher)}
}

// CreateDriver adds an active driver.
func (s *driverService) CreateDriver(tenantID, name, licenseNumber, phone, email string) (*models.Driver, error) {
	if err := requireText(name, "name"); err != nil {
		return nil, err
	}

	driver := &models.Driver{
		TenantScoped:  models.TenantScoped{TenantID: tenantID},
		Name:          strings.TrimSpace(name),
		LicenseNumber: strings.TrimSpace(licenseNumber),
		Phone:         phone,
		Email:         strings.ToLower(strings.TrimSpace(email)),
		IsActive:      true,
	}
	if err := s.db.Create(driver).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.publisher.Publish(events.NewChange(tenantID, events.TableDrivers, events.OpInsert, driver.ID))
	return driver, nil
}

// GetDrivers returns a paginated list of drivers with their current vehicle.
func (s *driverService) GetDrivers(tenantID string, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.Driver], error) {
	page.Defaults()

	base := s.db.Model(&models.Driver{}).Scopes(tenantScope(tenantID))
	if isActive != nil {
		base = base.Where("is_active = ?", *isActive)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var drivers []models.Driver
	if err := base.Preload("CurrentVehicle").Order("name ASC").Scopes(pagination.Paginate(page)).Find(&drivers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(drivers, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetDriverByID returns a driver with their current vehicle.
func (s *driverService) GetDriverByID(tenantID, id string) (*models.Driver, error) {
	return findDriver(s.db, tenantID, id)
}

func findDriver(db *gorm.DB, tenantID, id string) (*models.Driver, error) {
	var driver models.Driver
	if err := db.Scopes(tenantScope(tenantID)).Preload("CurrentVehicle").Where("id = ?", id).First(&driver).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrDriverNotFound)
	}
	return &driver, nil
}

// UpdateDriver updates a driver's fields. Deactivating a driver ends their
// open assignment.
func (s *driverService) UpdateDriver(tenantID, id string, update DriverUpdate) (*models.Driver, error) {
	driver, err := s.GetDriverByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Name != nil {
		if err := requireText(*update.Name, "name"); err != nil {
			return nil, err
		}
		updates["name"] = strings.TrimSpace(*update.Name)
	}
	if update.LicenseNumber != nil {
		updates["license_number"] = strings.TrimSpace(*update.LicenseNumber)
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*update.Email))
	}
	if update.IsActive != nil {
		updates["is_active"] = *update.IsActive
	}
	if len(updates) == 0 {
		return driver, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(driver).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if update.IsActive != nil && !*update.IsActive {
			return closeAssignments(tx, tenantID, "driver_id", driver.ID, time.Now())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.NewChange(tenantID, events.TableDrivers, events.OpUpdate, driver.ID))
	return findDriver(s.db, tenantID, id)
}

// DeleteDriver ends any open assignment and soft-deletes the driver.
func (s *driverService) DeleteDriver(tenantID, id string) error {
	driver, err := s.GetDriverByID(tenantID, id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := closeAssignments(tx, tenantID, "driver_id", driver.ID, time.Now()); err != nil {
			return err
		}
		if err := tx.Delete(driver).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(
		events.NewChange(tenantID, events.TableDrivers, events.OpDelete, driver.ID),
		events.NewChange(tenantID, events.TableDriverAssignments, events.OpUpdate, ""),
	)
	return nil
}

// closeAssignments ends every open assignment matching column = id and
// clears the current vehicle of the drivers involved.
func closeAssignments(tx *gorm.DB, tenantID, column, id string, at time.Time) error {
	var open []models.DriverAssignment
	if err := tx.Scopes(tenantScope(tenantID)).Where(column+" = ? AND ended_at IS NULL", id).Find(&open).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range open {
		if err := tx.Model(&open[i]).Update("ended_at", at).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		err := tx.Model(&models.Driver{}).Where("id = ?", open[i].DriverID).Update("current_vehicle_id", nil).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

// AssignVehicle gives a vehicle to a driver. The driver's previous assignment
// and whoever had the vehicle before are both closed.
func (s *driverService) AssignVehicle(tenantID, driverID, vehicleID, notes string) (*models.DriverAssignment, error) {
	var assignment *models.DriverAssignment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		driver, err := findDriver(tx, tenantID, driverID)
		if err != nil {
			return err
		}
		if !driver.IsActive {
			return apperrors.ErrDriverInactive
		}

		var vehicle models.Vehicle
		if err := tx.Scopes(tenantScope(tenantID)).Where("id = ?", vehicleID).First(&vehicle).Error; err != nil {
			return lookupError(err, apperrors.ErrVehicleNotFound)
		}

		now := time.Now()
		if err := closeAssignments(tx, tenantID, "driver_id", driver.ID, now); err != nil {
			return err
		}
		if err := closeAssignments(tx, tenantID, "vehicle_id", vehicle.ID, now); err != nil {
			return err
		}

		assignment = &models.DriverAssignment{
			TenantScoped: models.TenantScoped{TenantID: tenantID},
			DriverID:     driver.ID,
			VehicleID:    vehicle.ID,
			StartedAt:    now,
			Notes:        notes,
		}
		if err := tx.Create(assignment).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Model(&models.Driver{}).Where("id = ?", driver.ID).Update("current_vehicle_id", vehicle.ID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		assignment.Vehicle = &vehicle
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(
		events.NewChange(tenantID, events.TableDriverAssignments, events.OpInsert, assignment.ID),
		events.NewChange(tenantID, events.TableDrivers, events.OpUpdate, driverID),
	)
	return assignment, nil
}

// UnassignVehicle ends the driver's open assignment.
func (s *driverService) UnassignVehicle(tenantID, driverID string) (*models.DriverAssignment, error) {
	driver, err := s.GetDriverByID(tenantID, driverID)
	if err != nil {
		return nil, err
	}

	var open models.DriverAssignment
	err = s.db.Scopes(tenantScope(tenantID)).Where("driver_id = ? AND ended_at IS NULL", driver.ID).Limit(1).Find(&open).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if open.ID == "" {
		return nil, apperrors.ErrNoOpenAssignment
	}

	now := time.Now()
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return closeAssignments(tx, tenantID, "driver_id", driver.ID, now)
	}); err != nil {
		return nil, err
	}
	open.EndedAt = &now

	s.publisher.Publish(
		events.NewChange(tenantID, events.TableDriverAssignments, events.OpUpdate, open.ID),
		events.NewChange(tenantID, events.TableDrivers, events.OpUpdate, driver.ID),
	)
	return &open, nil
}

// GetAssignments returns a paginated assignment log, newest first.
func (s *driverService) GetAssignments(
	tenantID string,
	page pagination.PageRequest,
	driverID, vehicleID *string,
) (*pagination.PageResponse[models.DriverAssignment], error) {
	page.Defaults()

	base := s.db.Model(&models.DriverAssignment{}).Scopes(tenantScope(tenantID))
	if driverID != nil {
		base = base.Where("driver_id = ?", *driverID)
	}
	if vehicleID != nil {
		base = base.Where("vehicle_id = ?", *vehicleID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var assignments []models.DriverAssignment
	err := base.Preload("Driver").Preload("Vehicle").
		Order("started_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&assignments).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(assignments, page.Page, page.PageSize, totalItems)
	return &result, nil
}
