package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "frota/internal/errors"
	"frota/internal/models"
	"frota/internal/taxonomy"
)

// CostSourceKind identifies where a ledger entry comes from.
type CostSourceKind string

const (
	SourceKindCost   CostSourceKind = "cost"
	SourceKindFine   CostSourceKind = "fine"
	SourceKindDamage CostSourceKind = "damage"
	SourceKindFuel   CostSourceKind = "fuel"
)

// CostEntry is one row of the unified cost ledger. Real costs keep their own
// ID; rows projected from fines, damages and fuel notes get "<kind>_<id>".
type CostEntry struct {
	ID             string                `json:"id"`
	SourceID       string                `json:"source_id"`
	SourceKind     CostSourceKind        `json:"source_kind"`
	IsRealCost     bool                  `json:"is_real_cost"`
	Category       taxonomy.CostCategory `json:"category"`
	CategoryLabel  string                `json:"category_label"`
	Description    string                `json:"description"`
	Amount         int64                 `json:"amount"`
	CostDate       time.Time             `json:"cost_date"`
	Status         taxonomy.CostStatus   `json:"status"`
	Origin         taxonomy.Origin       `json:"origin"`
	OriginLabel    string                `json:"origin_label"`
	IsRecurring    bool                  `json:"is_recurring"`
	RecurrenceDay  *int                  `json:"recurrence_day,omitempty"`
	VehicleID      *string               `json:"vehicle_id,omitempty"`
	CustomerID     *string               `json:"customer_id,omitempty"`
	AmountToDefine bool                  `json:"amount_to_define"`
}

func newCostEntry(kind CostSourceKind, sourceID string, category taxonomy.CostCategory, origin taxonomy.Origin,
	description string, amount int64, date time.Time, status taxonomy.CostStatus) CostEntry {
	return CostEntry{
		ID:             virtualEntryID(kind, sourceID),
		SourceID:       sourceID,
		SourceKind:     kind,
		IsRealCost:     kind == SourceKindCost,
		Category:       category,
		CategoryLabel:  category.Label(),
		Description:    description,
		Amount:         amount,
		CostDate:       date,
		Status:         status,
		Origin:         origin,
		OriginLabel:    origin.Label(),
		AmountToDefine: amount == 0 && status == taxonomy.CostPendente,
	}
}

// virtualEntryID builds the ledger ID of a source row.
func virtualEntryID(kind CostSourceKind, sourceID string) string {
	if kind == SourceKindCost {
		return sourceID
	}
	return string(kind) + "_" + sourceID
}

// ParseEntryID splits a ledger entry ID into its source kind and source ID.
// IDs without a known prefix are real cost IDs.
func ParseEntryID(entryID string) (CostSourceKind, string, error) {
	prefix, rest, found := strings.Cut(entryID, "_")
	if !found {
		return SourceKindCost, entryID, nil
	}
	switch kind := CostSourceKind(prefix); kind {
	case SourceKindFine, SourceKindDamage, SourceKindFuel:
		if rest == "" {
			return "", "", apperrors.ErrUnknownCostSource
		}
		return kind, rest, nil
	}
	return "", "", apperrors.WithMessage(apperrors.ErrUnknownCostSource, "unknown cost source "+prefix)
}

// CostSource is one table feeding the cost ledger.
type CostSource interface {
	Kind() CostSourceKind
	Entries(db *gorm.DB, tenantID string, filter CostFilter) ([]CostEntry, error)
	UpdateEstimate(tx *gorm.DB, tenantID, sourceID string, amount int64) (*CostEntry, error)
}

func fleetStatusToCost(s models.FleetEventStatus) taxonomy.CostStatus {
	switch s {
	case models.FleetEventPago:
		return taxonomy.CostPago
	case models.FleetEventCancelado:
		return taxonomy.CostCancelado
	}
	return taxonomy.CostPendente
}

// dateRange applies the filter's date bounds to a column.
func dateRange(q *gorm.DB, column string, filter CostFilter) *gorm.DB {
	if filter.FromDate != nil {
		q = q.Where(column+" >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		q = q.Where(column+" <= ?", *filter.ToDate)
	}
	return q
}

func linkFilter(q *gorm.DB, filter CostFilter) *gorm.DB {
	if filter.VehicleID != nil {
		q = q.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}
	return q
}

// realCostSource reads the costs table.
type realCostSource struct{}

func (realCostSource) Kind() CostSourceKind { return SourceKindCost }

func (realCostSource) Entries(db *gorm.DB, tenantID string, filter CostFilter) ([]CostEntry, error) {
	q := linkFilter(db.Model(&models.Cost{}).Scopes(tenantScope(tenantID)), filter)
	q = dateRange(q, "cost_date", filter)
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}
	if filter.Origin != nil {
		q = q.Where("origin = ?", *filter.Origin)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}

	var costs []models.Cost
	if err := q.Find(&costs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]CostEntry, 0, len(costs))
	for i := range costs {
		entries = append(entries, costEntryFromCost(&costs[i]))
	}
	return entries, nil
}

func (realCostSource) UpdateEstimate(tx *gorm.DB, tenantID, sourceID string, amount int64) (*CostEntry, error) {
	var cost models.Cost
	if err := tx.Scopes(tenantScope(tenantID)).Where("id = ?", sourceID).First(&cost).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrCostNotFound)
	}
	if err := tx.Model(&cost).Update("amount", amount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	cost.Amount = amount
	entry := costEntryFromCost(&cost)
	return &entry, nil
}

func costEntryFromCost(c *models.Cost) CostEntry {
	e := newCostEntry(SourceKindCost, c.ID, c.Category, c.Origin, c.Description, c.Amount, c.CostDate, c.Status)
	e.IsRecurring = c.IsRecurring
	e.RecurrenceDay = c.RecurrenceDay
	e.VehicleID = c.VehicleID
	e.CustomerID = c.CustomerID
	return e
}

// fineSource projects traffic fines as Multa costs.
type fineSource struct{}

func (fineSource) Kind() CostSourceKind { return SourceKindFine }

func (fineSource) Entries(db *gorm.DB, tenantID string, filter CostFilter) ([]CostEntry, error) {
	q := linkFilter(db.Model(&models.Fine{}).Scopes(tenantScope(tenantID)), filter)
	q = dateRange(q, "infraction_date", filter)

	var fines []models.Fine
	if err := q.Find(&fines).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]CostEntry, 0, len(fines))
	for i := range fines {
		entries = append(entries, costEntryFromFine(&fines[i]))
	}
	return entries, nil
}

func (fineSource) UpdateEstimate(tx *gorm.DB, tenantID, sourceID string, amount int64) (*CostEntry, error) {
	var fine models.Fine
	if err := tx.Scopes(tenantScope(tenantID)).Where("id = ?", sourceID).First(&fine).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrFineNotFound)
	}
	if err := tx.Model(&fine).Update("amount", amount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	fine.Amount = amount
	entry := costEntryFromFine(&fine)
	return &entry, nil
}

func costEntryFromFine(f *models.Fine) CostEntry {
	e := newCostEntry(SourceKindFine, f.ID, taxonomy.CostMulta, taxonomy.OriginSistema,
		f.Description, f.Amount, f.InfractionDate, fleetStatusToCost(f.Status))
	e.VehicleID = strPtr(f.VehicleID)
	e.CustomerID = f.CustomerID
	return e
}

// damageSource projects inspection damages as Avaria costs.
type damageSource struct{}

func (damageSource) Kind() CostSourceKind { return SourceKindDamage }

func (damageSource) Entries(db *gorm.DB, tenantID string, filter CostFilter) ([]CostEntry, error) {
	q := linkFilter(db.Model(&models.InspectionDamage{}).Scopes(tenantScope(tenantID)), filter)
	q = dateRange(q, "inspection_date", filter)

	var damages []models.InspectionDamage
	if err := q.Find(&damages).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]CostEntry, 0, len(damages))
	for i := range damages {
		entries = append(entries, costEntryFromDamage(&damages[i]))
	}
	return entries, nil
}

func (damageSource) UpdateEstimate(tx *gorm.DB, tenantID, sourceID string, amount int64) (*CostEntry, error) {
	var damage models.InspectionDamage
	if err := tx.Scopes(tenantScope(tenantID)).Where("id = ?", sourceID).First(&damage).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrDamageNotFound)
	}
	if err := tx.Model(&damage).Update("estimated_amount", amount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	damage.EstimatedAmount = amount
	entry := costEntryFromDamage(&damage)
	return &entry, nil
}

func costEntryFromDamage(d *models.InspectionDamage) CostEntry {
	desc := d.Description
	if d.Location != "" {
		desc = d.Location + ": " + d.Description
	}
	e := newCostEntry(SourceKindDamage, d.ID, taxonomy.CostAvaria, taxonomy.OriginPatio,
		desc, d.EstimatedAmount, d.InspectionDate, fleetStatusToCost(d.Status))
	e.VehicleID = strPtr(d.VehicleID)
	e.CustomerID = d.CustomerID
	return e
}

// fuelSource projects fuel service notes as Combustível costs.
type fuelSource struct{}

func (fuelSource) Kind() CostSourceKind { return SourceKindFuel }

func (fuelSource) Entries(db *gorm.DB, tenantID string, filter CostFilter) ([]CostEntry, error) {
	q := linkFilter(db.Model(&models.ServiceNote{}).Scopes(tenantScope(tenantID)), filter)
	q = dateRange(q, "note_date", filter).Where("kind = ?", models.ServiceNoteCombustivel)

	var notes []models.ServiceNote
	if err := q.Find(&notes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]CostEntry, 0, len(notes))
	for i := range notes {
		entries = append(entries, costEntryFromFuel(&notes[i]))
	}
	return entries, nil
}

func (fuelSource) UpdateEstimate(tx *gorm.DB, tenantID, sourceID string, amount int64) (*CostEntry, error) {
	var note models.ServiceNote
	err := tx.Scopes(tenantScope(tenantID)).
		Where("id = ? AND kind = ?", sourceID, models.ServiceNoteCombustivel).
		First(&note).Error
	if err != nil {
		return nil, lookupError(err, apperrors.ErrServiceNoteNotFound)
	}
	if err := tx.Model(&note).Update("amount", amount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	note.Amount = amount
	entry := costEntryFromFuel(&note)
	return &entry, nil
}

func costEntryFromFuel(n *models.ServiceNote) CostEntry {
	e := newCostEntry(SourceKindFuel, n.ID, taxonomy.CostCombustivel, taxonomy.OriginPatio,
		n.Description, n.Amount, n.NoteDate, fleetStatusToCost(n.Status))
	e.VehicleID = strPtr(n.VehicleID)
	e.CustomerID = n.CustomerID
	return e
}
