package services

import (
	"strings"

	"gorm.io/gorm"

	"frota/internal/cycle"
	apperrors "frota/internal/errors"
	"frota/internal/events"
	"frota/internal/logger"
	"frota/internal/metrics"
	"frota/internal/models"
	"frota/internal/pagination"
)

// fleetEventService records fines, inspection damages and service notes.
// These rows surface in the cost ledger as virtual entries.
type fleetEventService struct {
	db        *gorm.DB
	publisher events.Publisher
}

// NewFleetEventService creates a new FleetEventServicer.
func NewFleetEventService(db *gorm.DB, publisher events.Publisher) FleetEventServicer {
	return &fleetEventService{db: db, publisher: publisherOrNop(publisher)}
}

func validFleetStatus(s models.FleetEventStatus) bool {
	switch s {
	case models.FleetEventPendente, models.FleetEventCobrado, models.FleetEventPago, models.FleetEventCancelado:
		return true
	}
	return false
}

// requireVehicle loads the vehicle and, when given, checks the customer belongs to the tenant.
func requireVehicle(db *gorm.DB, tenantID, vehicleID string, customerID *string) (*models.Vehicle, *models.Customer, error) {
	var vehicle models.Vehicle
	if err := db.Scopes(tenantScope(tenantID)).Where("id = ?", vehicleID).First(&vehicle).Error; err != nil {
		return nil, nil, lookupError(err, apperrors.ErrVehicleNotFound)
	}
	if customerID == nil {
		return &vehicle, nil, nil
	}
	var customer models.Customer
	if err := db.Scopes(tenantScope(tenantID)).Where("id = ?", *customerID).First(&customer).Error; err != nil {
		return nil, nil, lookupError(err, apperrors.ErrCustomerNotFound)
	}
	return &vehicle, &customer, nil
}

func fleetEventQuery(db *gorm.DB, tenantID string, filter FleetEventFilter) *gorm.DB {
	q := db.Scopes(tenantScope(tenantID))
	if filter.VehicleID != nil {
		q = q.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	return q
}

// CreateFine records a traffic fine against a vehicle.
func (s *fleetEventService) CreateFine(tenantID string, input FineInput) (*models.Fine, error) {
	if input.Amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount cannot be negative")
	}
	if input.InfractionDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "infraction_date is required")
	}
	if _, _, err := requireVehicle(s.db, tenantID, input.VehicleID, input.CustomerID); err != nil {
		return nil, err
	}

	fine := &models.Fine{
		TenantScoped:   models.TenantScoped{TenantID: tenantID},
		VehicleID:      input.VehicleID,
		CustomerID:     input.CustomerID,
		DriverID:       input.DriverID,
		InfractionDate: cycle.Day(input.InfractionDate),
		InfractionCode: strings.TrimSpace(input.InfractionCode),
		Description:    strings.TrimSpace(input.Description),
		Amount:         input.Amount,
		Status:         models.FleetEventPendente,
	}
	if err := s.db.Create(fine).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.publisher.Publish(
		events.NewChange(tenantID, events.TableFines, events.OpInsert, fine.ID),
		events.NewChange(tenantID, events.TableCosts, events.OpInsert, virtualEntryID(SourceKindFine, fine.ID)),
	)
	return fine, nil
}

// GetFines returns a paginated list of fines, newest infraction first.
func (s *fleetEventService) GetFines(tenantID string, page pagination.PageRequest, filter FleetEventFilter) (*pagination.PageResponse[models.Fine], error) {
	page.Defaults()

	base := fleetEventQuery(s.db.Model(&models.Fine{}), tenantID, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var fines []models.Fine
	if err := base.Order("infraction_date DESC").Scopes(pagination.Paginate(page)).Find(&fines).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(fines, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateFineStatus moves a fine to a new billing status.
func (s *fleetEventService) UpdateFineStatus(tenantID, id string, status models.FleetEventStatus) (*models.Fine, error) {
	if !validFleetStatus(status) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status")
	}

	var fine models.Fine
	if err := s.db.Scopes(tenantScope(tenantID)).Where("id = ?", id).First(&fine).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrFineNotFound)
	}
	if err := s.db.Model(&fine).Update("status", status).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.publisher.Publish(
		events.NewChange(tenantID, events.TableFines, events.OpUpdate, fine.ID),
		events.NewChange(tenantID, events.TableCosts, events.OpUpdate, virtualEntryID(SourceKindFine, fine.ID)),
	)
	return &fine, nil
}

// CreateDamage records an inspection damage. When the damage is tied to a
// customer with an email address, a notification is queued in the same
// transaction for the notifier job to deliver.
func (s *fleetEventService) CreateDamage(tenantID string, input DamageInput) (*models.InspectionDamage, error) {
	if input.EstimatedAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "estimated_amount cannot be negative")
	}
	if input.InspectionDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "inspection_date is required")
	}
	if err := requireText(input.Description, "description"); err != nil {
		return nil, err
	}

	var damage *models.InspectionDamage
	var notification *models.DamageNotification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		vehicle, customer, err := requireVehicle(tx, tenantID, input.VehicleID, input.CustomerID)
		if err != nil {
			return err
		}

		damage = &models.InspectionDamage{
			TenantScoped:    models.TenantScoped{TenantID: tenantID},
			VehicleID:       vehicle.ID,
			CustomerID:      input.CustomerID,
			InspectionDate:  cycle.Day(input.InspectionDate),
			Location:        strings.TrimSpace(input.Location),
			Description:     strings.TrimSpace(input.Description),
			EstimatedAmount: input.EstimatedAmount,
			Status:          models.FleetEventPendente,
		}
		if err := tx.Create(damage).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if customer == nil || strings.TrimSpace(customer.Email) == "" {
			return nil
		}
		notification = &models.DamageNotification{
			TenantScoped:    models.TenantScoped{TenantID: tenantID},
			DamageID:        damage.ID,
			RecipientEmail:  customer.Email,
			RecipientName:   customer.Name,
			VehiclePlate:    vehicle.Plate,
			VehicleModel:    vehicle.Model,
			Description:     damage.Description,
			EstimatedAmount: damage.EstimatedAmount,
			InspectionDate:  damage.InspectionDate,
			Status:          models.NotificationPending,
		}
		if err := tx.Create(notification).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	changes := []events.Change{
		events.NewChange(tenantID, events.TableInspectionDamages, events.OpInsert, damage.ID),
		events.NewChange(tenantID, events.TableCosts, events.OpInsert, virtualEntryID(SourceKindDamage, damage.ID)),
	}
	if notification != nil {
		metrics.NotificationsTotal.WithLabelValues("queued").Inc()
		logger.Get().Infow("damage notification queued",
			"tenant_id", tenantID,
			"damage_id", damage.ID,
			"notification_id", notification.ID,
		)
		changes = append(changes, events.NewChange(tenantID, events.TableDamageNotification, events.OpInsert, notification.ID))
	}
	s.publisher.Publish(changes...)
	return damage, nil
}

// GetDamages returns a paginated list of inspection damages, newest first.
func (s *fleetEventService) GetDamages(
	tenantID string,
	page pagination.PageRequest,
	filter FleetEventFilter,
) (*pagination.PageResponse[models.InspectionDamage], error) {
	page.Defaults()

	base := fleetEventQuery(s.db.Model(&models.InspectionDamage{}), tenantID, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var damages []models.InspectionDamage
	if err := base.Order("inspection_date DESC").Scopes(pagination.Paginate(page)).Find(&damages).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(damages, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateDamageStatus moves a damage to a new billing status.
func (s *fleetEventService) UpdateDamageStatus(tenantID, id string, status models.FleetEventStatus) (*models.InspectionDamage, error) {
	if !validFleetStatus(status) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status")
	}

	var damage models.InspectionDamage
	if err := s.db.Scopes(tenantScope(tenantID)).Where("id = ?", id).First(&damage).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrDamageNotFound)
	}
	if err := s.db.Model(&damage).Update("status", status).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.publisher.Publish(
		events.NewChange(tenantID, events.TableInspectionDamages, events.OpUpdate, damage.ID),
		events.NewChange(tenantID, events.TableCosts, events.OpUpdate, virtualEntryID(SourceKindDamage, damage.ID)),
	)
	return &damage, nil
}

// CreateServiceNote records a fuel or maintenance note.
func (s *fleetEventService) CreateServiceNote(tenantID string, input ServiceNoteInput) (*models.ServiceNote, error) {
	if input.Kind != models.ServiceNoteCombustivel && input.Kind != models.ServiceNoteManutencao {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be Combustivel or Manutencao")
	}
	if input.Amount < 0 || input.Liters < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount and liters cannot be negative")
	}
	if input.NoteDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "note_date is required")
	}
	if _, _, err := requireVehicle(s.db, tenantID, input.VehicleID, input.CustomerID); err != nil {
		return nil, err
	}

	note := &models.ServiceNote{
		TenantScoped: models.TenantScoped{TenantID: tenantID},
		VehicleID:    input.VehicleID,
		CustomerID:   input.CustomerID,
		Kind:         input.Kind,
		NoteDate:     cycle.Day(input.NoteDate),
		Description:  strings.TrimSpace(input.Description),
		Liters:       input.Liters,
		Amount:       input.Amount,
		Status:       models.FleetEventPendente,
	}
	if err := s.db.Create(note).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	changes := []events.Change{events.NewChange(tenantID, events.TableServiceNotes, events.OpInsert, note.ID)}
	if note.Kind == models.ServiceNoteCombustivel {
		changes = append(changes, events.NewChange(tenantID, events.TableCosts, events.OpInsert, virtualEntryID(SourceKindFuel, note.ID)))
	}
	s.publisher.Publish(changes...)
	return note, nil
}

// GetServiceNotes returns a paginated list of service notes, newest first.
func (s *fleetEventService) GetServiceNotes(tenantID string, page pagination.PageRequest, filter FleetEventFilter) (*pagination.PageResponse[models.ServiceNote], error) {
	page.Defaults()

	base := fleetEventQuery(s.db.Model(&models.ServiceNote{}), tenantID, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var notes []models.ServiceNote
	if err := base.Order("note_date DESC").Scopes(pagination.Paginate(page)).Find(&notes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(notes, page.Page, page.PageSize, totalItems)
	return &result, nil
}
