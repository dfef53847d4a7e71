package services

import (
	"sort"
	"strings"

	"gorm.io/gorm"

	apperrors "frota/internal/errors"
	"frota/internal/events"
	"frota/internal/models"
	"frota/internal/pagination"
	"frota/internal/taxonomy"
)

// vehicleService handles fleet vehicles.
type vehicleService struct {
	db        *gorm.DB
	publisher events.Publisher
}

// NewVehicleService creates a new VehicleServicer.
func NewVehicleService(db *gorm.DB, publisher events.Publisher) VehicleServicer {
	return &vehicleService{db: db, publisher: publisherOrNop(publisher)}
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), "-", ""))
}

// CreateVehicle adds a vehicle. Plates are unique per tenant.
func (s *vehicleService) CreateVehicle(tenantID, plate, model string, year int, color string, mileage int64) (*models.Vehicle, error) {
	plate = normalizePlate(plate)
	if err := requireText(plate, "plate"); err != nil {
		return nil, err
	}
	if err := requireText(model, "model"); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Vehicle{}).Scopes(tenantScope(tenantID)).Where("plate = ?", plate).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicatePlate
	}

	vehicle := &models.Vehicle{
		TenantScoped: models.TenantScoped{TenantID: tenantID},
		Plate:        plate,
		Model:        strings.TrimSpace(model),
		Year:         year,
		Color:        color,
		Status:       models.VehicleDisponivel,
		Mileage:      mileage,
	}
	if err := s.db.Create(vehicle).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.publisher.Publish(events.NewChange(tenantID, events.TableVehicles, events.OpInsert, vehicle.ID))
	return vehicle, nil
}

// GetVehicles returns a paginated list of vehicles ordered by plate.
func (s *vehicleService) GetVehicles(tenantID string, page pagination.PageRequest, status *models.VehicleStatus) (*pagination.PageResponse[models.Vehicle], error) {
	page.Defaults()

	base := s.db.Model(&models.Vehicle{}).Scopes(tenantScope(tenantID))
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var vehicles []models.Vehicle
	if err := base.Order("plate ASC").Scopes(pagination.Paginate(page)).Find(&vehicles).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(vehicles, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetVehicleByID returns a vehicle if it belongs to the tenant.
func (s *vehicleService) GetVehicleByID(tenantID, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.Scopes(tenantScope(tenantID)).Where("id = ?", id).First(&vehicle).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrVehicleNotFound)
	}
	return &vehicle, nil
}

// UpdateVehicle updates a vehicle's fields.
func (s *vehicleService) UpdateVehicle(tenantID, id string, update VehicleUpdate) (*models.Vehicle, error) {
	vehicle, err := s.GetVehicleByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Model != nil {
		if err := requireText(*update.Model, "model"); err != nil {
			return nil, err
		}
		updates["model"] = strings.TrimSpace(*update.Model)
	}
	if update.Year != nil {
		updates["year"] = *update.Year
	}
	if update.Color != nil {
		updates["color"] = *update.Color
	}
	if update.Status != nil {
		updates["status"] = *update.Status
	}
	if update.Mileage != nil {
		if *update.Mileage < vehicle.Mileage {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "mileage cannot decrease")
		}
		updates["mileage"] = *update.Mileage
	}

	if len(updates) > 0 {
		if err := s.db.Model(vehicle).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		s.publisher.Publish(events.NewChange(tenantID, events.TableVehicles, events.OpUpdate, vehicle.ID))
	}

	return vehicle, nil
}

// DeleteVehicle soft-deletes a vehicle.
func (s *vehicleService) DeleteVehicle(tenantID, id string) error {
	vehicle, err := s.GetVehicleByID(tenantID, id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(vehicle).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.publisher.Publish(events.NewChange(tenantID, events.TableVehicles, events.OpDelete, vehicle.ID))
	return nil
}

// GetVehicleHistory merges costs, fines, damages, service notes and driver
// assignments of a vehicle into one timeline, newest first.
func (s *vehicleService) GetVehicleHistory(tenantID, id string) (*VehicleHistory, error) {
	vehicle, err := s.GetVehicleByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	history := &VehicleHistory{Vehicle: vehicle}
	scoped := s.db.Scopes(tenantScope(tenantID))

	var costs []models.Cost
	if err := scoped.Where("vehicle_id = ?", id).Find(&costs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, c := range costs {
		history.Events = append(history.Events, HistoryEvent{
			Date: c.CostDate, Kind: "cost", ReferenceID: c.ID,
			Description: c.Description, Amount: c.Amount, Status: string(c.Status),
		})
		if c.Status != taxonomy.CostCancelado {
			history.TotalCost += c.Amount
		}
	}

	fleet, err := fleetHistory(s.db, tenantID, "vehicle_id", id)
	if err != nil {
		return nil, err
	}
	history.Events = append(history.Events, fleet...)

	var notes []models.ServiceNote
	if err := s.db.Scopes(tenantScope(tenantID)).Where("vehicle_id = ?", id).Find(&notes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, n := range notes {
		kind := "maintenance"
		if n.Kind == models.ServiceNoteCombustivel {
			kind = "fuel"
		}
		history.Events = append(history.Events, HistoryEvent{
			Date: n.NoteDate, Kind: kind, ReferenceID: n.ID,
			Description: n.Description, Amount: n.Amount, Status: string(n.Status),
		})
	}

	var assignments []models.DriverAssignment
	err = s.db.Scopes(tenantScope(tenantID)).Preload("Driver").Where("vehicle_id = ?", id).Find(&assignments).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, a := range assignments {
		desc := "Motorista atribuído"
		if a.Driver != nil {
			desc = "Motorista atribuído: " + a.Driver.Name
		}
		history.Events = append(history.Events, HistoryEvent{
			Date: a.StartedAt, Kind: "assignment", ReferenceID: a.ID, Description: desc,
		})
		if a.EndedAt != nil {
			history.Events = append(history.Events, HistoryEvent{
				Date: *a.EndedAt, Kind: "unassignment", ReferenceID: a.ID, Description: "Motorista desvinculado",
			})
		}
	}

	sortHistory(history.Events)
	return history, nil
}

// fleetHistory loads fines and damages linked through the given column.
func fleetHistory(db *gorm.DB, tenantID, column, id string) ([]HistoryEvent, error) {
	var out []HistoryEvent

	var fines []models.Fine
	if err := db.Scopes(tenantScope(tenantID)).Where(column+" = ?", id).Find(&fines).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, f := range fines {
		out = append(out, HistoryEvent{
			Date: f.InfractionDate, Kind: "fine", ReferenceID: f.ID,
			Description: f.Description, Amount: f.Amount, Status: string(f.Status),
		})
	}

	var damages []models.InspectionDamage
	if err := db.Scopes(tenantScope(tenantID)).Where(column+" = ?", id).Find(&damages).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, d := range damages {
		out = append(out, HistoryEvent{
			Date: d.InspectionDate, Kind: "damage", ReferenceID: d.ID,
			Description: d.Description, Amount: d.EstimatedAmount, Status: string(d.Status),
		})
	}

	return out, nil
}

func sortHistory(events []HistoryEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})
}
