package services

import (
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"frota/internal/cycle"
	apperrors "frota/internal/errors"
	"frota/internal/events"
	"frota/internal/metrics"
	"frota/internal/models"
	"frota/internal/pagination"
	"frota/internal/taxonomy"
)

// costService handles real costs and the merged ledger view.
type costService struct {
	db        *gorm.DB
	publisher events.Publisher
	sources   map[CostSourceKind]CostSource
	virtual   []CostSource
}

// NewCostService creates a new CostServicer.
func NewCostService(db *gorm.DB, publisher events.Publisher) CostServicer {
	virtual := []CostSource{fineSource{}, damageSource{}, fuelSource{}}
	sources := map[CostSourceKind]CostSource{SourceKindCost: realCostSource{}}
	for _, src := range virtual {
		sources[src.Kind()] = src
	}
	return &costService{
		db:        db,
		publisher: publisherOrNop(publisher),
		sources:   sources,
		virtual:   virtual,
	}
}

var sourceTables = map[CostSourceKind]string{
	SourceKindCost:   events.TableCosts,
	SourceKindFine:   events.TableFines,
	SourceKindDamage: events.TableInspectionDamages,
	SourceKindFuel:   events.TableServiceNotes,
}

// CreateCost records a real cost.
func (s *costService) CreateCost(tenantID string, input CostInput) (*models.Cost, error) {
	if !input.Category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is not an accepted cost category")
	}
	if input.Amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if input.Status == "" {
		input.Status = taxonomy.CostPendente
	}
	if !input.Status.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid cost status")
	}
	if input.Origin == "" {
		input.Origin = taxonomy.OriginUsuario
	}
	if !input.Origin.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid cost origin")
	}
	if input.CostDate.IsZero() {
		input.CostDate = time.Now()
	}

	cost := &models.Cost{
		TenantScoped: models.TenantScoped{TenantID: tenantID},
		Category:     input.Category,
		Description:  strings.TrimSpace(input.Description),
		Amount:       input.Amount,
		CostDate:     cycle.Day(input.CostDate),
		Status:       input.Status,
		Origin:       input.Origin,
		IsRecurring:  input.IsRecurring,
		DocumentRef:  input.DocumentRef,
		Observations: input.Observations,
		VehicleID:    input.VehicleID,
		CustomerID:   input.CustomerID,
		ContractID:   input.ContractID,
	}
	if input.IsRecurring {
		day := cost.CostDate.Day()
		if input.RecurrenceDay != nil {
			day = *input.RecurrenceDay
		}
		cost.RecurrenceType = taxonomy.RecurrenceMonthly
		cost.RecurrenceDay = &day
	}

	if err := s.db.Create(cost).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	metrics.CostsCreatedTotal.WithLabelValues(string(cost.Origin)).Inc()
	s.publisher.Publish(
		events.NewChange(tenantID, events.TableCosts, events.OpInsert, cost.ID),
		events.NewChange(tenantID, events.TableFinancialSummary, events.OpUpdate, ""),
	)
	return cost, nil
}

// GetCostByID returns a real cost. Virtual entry IDs are rejected.
func (s *costService) GetCostByID(tenantID, id string) (*models.Cost, error) {
	kind, sourceID, err := ParseEntryID(id)
	if err != nil {
		return nil, err
	}
	if kind != SourceKindCost {
		return nil, apperrors.ErrVirtualCostReadOnly
	}

	var cost models.Cost
	if err := s.db.Scopes(tenantScope(tenantID)).Where("id = ?", sourceID).First(&cost).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrCostNotFound)
	}
	return &cost, nil
}

// UpdateCost updates a real cost's fields.
func (s *costService) UpdateCost(tenantID, id string, update CostUpdate) (*models.Cost, error) {
	cost, err := s.GetCostByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Category != nil {
		if !update.Category.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is not an accepted cost category")
		}
		updates["category"] = *update.Category
	}
	if update.Description != nil {
		updates["description"] = strings.TrimSpace(*update.Description)
	}
	if update.Amount != nil {
		if *update.Amount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
		}
		updates["amount"] = *update.Amount
	}
	if update.CostDate != nil {
		updates["cost_date"] = cycle.Day(*update.CostDate)
	}
	if update.Status != nil {
		if !update.Status.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid cost status")
		}
		updates["status"] = *update.Status
	}
	if update.DocumentRef != nil {
		updates["document_ref"] = *update.DocumentRef
	}
	if update.Observations != nil {
		updates["observations"] = *update.Observations
	}

	if len(updates) > 0 {
		if err := s.db.Model(cost).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		s.publisher.Publish(
			events.NewChange(tenantID, events.TableCosts, events.OpUpdate, cost.ID),
			events.NewChange(tenantID, events.TableFinancialSummary, events.OpUpdate, ""),
		)
	}

	return cost, nil
}

// DeleteCost soft-deletes a real cost.
func (s *costService) DeleteCost(tenantID, id string) error {
	cost, err := s.GetCostByID(tenantID, id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(cost).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.publisher.Publish(
		events.NewChange(tenantID, events.TableCosts, events.OpDelete, cost.ID),
		events.NewChange(tenantID, events.TableFinancialSummary, events.OpUpdate, ""),
	)
	return nil
}

// MarkCostAsPaid pays a real cost and any payable synced from it.
func (s *costService) MarkCostAsPaid(tenantID, id string) (*models.Cost, error) {
	cost, err := s.GetCostByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if cost.Status == taxonomy.CostPago {
		return cost, nil
	}
	if cost.Status == taxonomy.CostCancelado {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidStatusTransition, "cannot pay a cancelled cost")
	}

	var payableIDs []string
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(cost).Update("status", taxonomy.CostPago).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		linked := tx.Model(&models.AccountsPayable{}).Scopes(tenantScope(tenantID)).
			Where("cost_id = ? AND status <> ?", cost.ID, taxonomy.PayablePago)
		if err := linked.Pluck("id", &payableIDs).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(payableIDs) == 0 {
			return nil
		}
		err := tx.Model(&models.AccountsPayable{}).Where("id IN ?", payableIDs).
			Updates(map[string]interface{}{"status": taxonomy.PayablePago, "paid_at": time.Now()}).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	cost.Status = taxonomy.CostPago

	changes := []events.Change{events.NewChange(tenantID, events.TableCosts, events.OpUpdate, cost.ID)}
	for _, pid := range payableIDs {
		changes = append(changes, events.NewChange(tenantID, events.TableAccountsPayable, events.OpUpdate, pid))
	}
	changes = append(changes, events.NewChange(tenantID, events.TableFinancialSummary, events.OpUpdate, ""))
	s.publisher.Publish(changes...)
	return cost, nil
}

// entries collects the ledger rows matching the filter, newest first.
func (s *costService) entries(tenantID string, filter CostFilter) ([]CostEntry, error) {
	sources := []CostSource{s.sources[SourceKindCost]}
	if filter.IncludeVirtual {
		sources = append(sources, s.virtual...)
	}

	var all []CostEntry
	for _, src := range sources {
		rows, err := src.Entries(s.db, tenantID, filter)
		if err != nil {
			return nil, err
		}
		for _, e := range rows {
			if matchesCostFilter(e, filter) {
				all = append(all, e)
			}
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].CostDate.Equal(all[j].CostDate) {
			return all[i].CostDate.After(all[j].CostDate)
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func matchesCostFilter(e CostEntry, filter CostFilter) bool {
	if filter.Category != nil && e.Category != *filter.Category {
		return false
	}
	if filter.Origin != nil && e.Origin != *filter.Origin {
		return false
	}
	if filter.Status != nil && e.Status != *filter.Status {
		return false
	}
	if filter.OnlyAmountToDefine && !e.AmountToDefine {
		return false
	}
	return true
}

// GetCosts returns the ledger page: real costs, plus virtual rows when requested.
func (s *costService) GetCosts(tenantID string, page pagination.PageRequest, filter CostFilter) (*pagination.PageResponse[CostEntry], error) {
	page.Defaults()

	all, err := s.entries(tenantID, filter)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResponse(pagination.Window(all, page), page.Page, page.PageSize, int64(len(all)))
	return &result, nil
}

// GetCostTotals sums the ledger by status. Amount-to-define rows are only counted.
func (s *costService) GetCostTotals(tenantID string, filter CostFilter) (*CostTotals, error) {
	all, err := s.entries(tenantID, filter)
	if err != nil {
		return nil, err
	}
	return sumCostEntries(all), nil
}

func sumCostEntries(entries []CostEntry) *CostTotals {
	totals := &CostTotals{}
	for _, e := range entries {
		totals.Count++
		if e.AmountToDefine {
			totals.AmountToDefineCount++
			continue
		}
		switch e.Status {
		case taxonomy.CostPago:
			totals.Paid += e.Amount
		case taxonomy.CostPendente:
			totals.Pending += e.Amount
		case taxonomy.CostCancelado:
			totals.Cancelled += e.Amount
		}
	}
	totals.Total = totals.Paid + totals.Pending
	return totals
}

// UpdateCostEstimate resolves an amount on whichever table produced the entry.
func (s *costService) UpdateCostEstimate(tenantID, entryID string, amount int64) (*CostEntry, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "estimate must be greater than zero")
	}

	kind, sourceID, err := ParseEntryID(entryID)
	if err != nil {
		return nil, err
	}
	src, ok := s.sources[kind]
	if !ok {
		return nil, apperrors.ErrUnknownCostSource
	}

	var entry *CostEntry
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		entry, err = src.UpdateEstimate(tx, tenantID, sourceID, amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(
		events.NewChange(tenantID, sourceTables[kind], events.OpUpdate, sourceID),
		events.NewChange(tenantID, events.TableFinancialSummary, events.OpUpdate, ""),
	)
	return entry, nil
}

// GetCostStatistics totals real costs between from and to by category, origin and month.
// Cancelled and amount-to-define costs are left out.
func (s *costService) GetCostStatistics(tenantID string, from, to time.Time) (*CostStatistics, error) {
	from, to = cycle.Day(from), cycle.Day(to)
	if to.Before(from) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end date must not be before start date")
	}

	var costs []models.Cost
	err := s.db.Scopes(tenantScope(tenantID)).
		Select("category", "origin", "amount", "cost_date").
		Where("cost_date >= ? AND cost_date <= ? AND status <> ? AND amount > 0", from, to, taxonomy.CostCancelado).
		Find(&costs).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats := &CostStatistics{From: from, To: to}
	byCategory := make(map[taxonomy.CostCategory]*CategoryTotal)
	byOrigin := make(map[taxonomy.Origin]*OriginTotal)
	byMonth := make(map[string]*MonthTotal)

	for _, c := range costs {
		stats.Total += c.Amount
		stats.Count++

		ct, ok := byCategory[c.Category]
		if !ok {
			ct = &CategoryTotal{Category: c.Category, Label: c.Category.Label()}
			byCategory[c.Category] = ct
		}
		ct.Total += c.Amount
		ct.Count++

		ot, ok := byOrigin[c.Origin]
		if !ok {
			ot = &OriginTotal{Origin: c.Origin, Label: c.Origin.Label()}
			byOrigin[c.Origin] = ot
		}
		ot.Total += c.Amount
		ot.Count++

		key := cycle.FormatMonth(c.CostDate)
		mt, ok := byMonth[key]
		if !ok {
			mt = &MonthTotal{Month: key}
			byMonth[key] = mt
		}
		mt.Total += c.Amount
		mt.Count++
	}

	for _, ct := range byCategory {
		stats.ByCategory = append(stats.ByCategory, *ct)
	}
	sort.Slice(stats.ByCategory, func(i, j int) bool {
		if stats.ByCategory[i].Total != stats.ByCategory[j].Total {
			return stats.ByCategory[i].Total > stats.ByCategory[j].Total
		}
		return stats.ByCategory[i].Category < stats.ByCategory[j].Category
	})

	for _, ot := range byOrigin {
		stats.ByOrigin = append(stats.ByOrigin, *ot)
	}
	sort.Slice(stats.ByOrigin, func(i, j int) bool {
		if stats.ByOrigin[i].Total != stats.ByOrigin[j].Total {
			return stats.ByOrigin[i].Total > stats.ByOrigin[j].Total
		}
		return stats.ByOrigin[i].Origin < stats.ByOrigin[j].Origin
	})

	for _, mt := range byMonth {
		stats.ByMonth = append(stats.ByMonth, *mt)
	}
	sort.Slice(stats.ByMonth, func(i, j int) bool { return stats.ByMonth[i].Month < stats.ByMonth[j].Month })

	return stats, nil
}
