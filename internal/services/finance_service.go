package services

import (
	"time"

	"gorm.io/gorm"

	"frota/internal/cycle"
	apperrors "frota/internal/errors"
	"frota/internal/events"
	"frota/internal/logger"
	"frota/internal/models"
	"frota/internal/taxonomy"
)

// financeService handles cross-entity finance queries and reconciliation.
type financeService struct {
	db        *gorm.DB
	publisher events.Publisher
	now       func() time.Time
}

// NewFinanceService creates a new FinanceServicer.
func NewFinanceService(db *gorm.DB, publisher events.Publisher) FinanceServicer {
	return &financeService{db: db, publisher: publisherOrNop(publisher), now: time.Now}
}

type statusRow struct {
	Status string
	Count  int64
	Amount int64
}

// GetSummary builds the finance dashboard for a month. Overdue covers every
// unpaid payable due before today, whatever its month.
func (s *financeService) GetSummary(tenantID string, month time.Time) (*FinancialSummary, error) {
	start := cycle.MonthStart(month)
	end := cycle.Day(cycle.MonthEnd(month))
	zero := newStatusTotal(0, 0)
	summary := &FinancialSummary{
		Month:    cycle.FormatMonth(start),
		Payables: PayablesSummary{Pending: zero, Authorized: zero, Paid: zero},
		Costs:    CostsSummary{Paid: zero, Pending: zero},
		Salaries: SalariesSummary{Pending: zero, Paid: zero},
	}

	var payables []statusRow
	err := s.db.Model(&models.AccountsPayable{}).Scopes(tenantScope(tenantID)).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Where("due_date >= ? AND due_date <= ?", start, end).
		Group("status").
		Scan(&payables).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, r := range payables {
		total := newStatusTotal(r.Count, r.Amount)
		switch taxonomy.PayableStatus(r.Status) {
		case taxonomy.PayablePendente:
			summary.Payables.Pending = total
		case taxonomy.PayableAutorizado:
			summary.Payables.Authorized = total
		case taxonomy.PayablePago:
			summary.Payables.Paid = total
		}
	}

	var overdue statusRow
	err = s.db.Model(&models.AccountsPayable{}).Scopes(tenantScope(tenantID)).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Where("status <> ? AND due_date < ?", taxonomy.PayablePago, cycle.Day(s.now())).
		Scan(&overdue).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary.Payables.Overdue = newStatusTotal(overdue.Count, overdue.Amount)

	var costs []statusRow
	err = s.db.Model(&models.Cost{}).Scopes(tenantScope(tenantID)).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Where("cost_date >= ? AND cost_date <= ? AND amount > 0", start, end).
		Group("status").
		Scan(&costs).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, r := range costs {
		total := newStatusTotal(r.Count, r.Amount)
		switch taxonomy.CostStatus(r.Status) {
		case taxonomy.CostPago:
			summary.Costs.Paid = total
		case taxonomy.CostPendente:
			summary.Costs.Pending = total
		}
	}

	err = s.db.Model(&models.Cost{}).Scopes(tenantScope(tenantID)).
		Where("cost_date >= ? AND cost_date <= ? AND amount = 0 AND status = ?", start, end, taxonomy.CostPendente).
		Count(&summary.Costs.AmountToDefineCount).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var salaries []statusRow
	err = s.db.Model(&models.Salary{}).Scopes(tenantScope(tenantID)).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Where("reference_month = ?", summary.Month).
		Group("status").
		Scan(&salaries).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, r := range salaries {
		total := newStatusTotal(r.Count, r.Amount)
		switch taxonomy.SalaryStatus(r.Status) {
		case taxonomy.SalaryPendente:
			summary.Salaries.Pending = total
		case taxonomy.SalaryPago:
			summary.Salaries.Paid = total
		}
	}

	return summary, nil
}

// SyncCostsToPayables opens a payable for every pending real cost with a
// known amount that no payable accounts for yet. Costs produced by payables
// or salaries are skipped since they already have one.
func (s *financeService) SyncCostsToPayables(tenantID string) ([]models.AccountsPayable, error) {
	var created []models.AccountsPayable

	err := s.db.Transaction(func(tx *gorm.DB) error {
		linked := tx.Model(&models.AccountsPayable{}).
			Select("cost_id").
			Where("tenant_id = ? AND cost_id IS NOT NULL", tenantID)

		var costs []models.Cost
		err := tx.Scopes(tenantScope(tenantID)).
			Where("status = ? AND amount > 0", taxonomy.CostPendente).
			Where("source_reference_type NOT IN ? OR source_reference_type IS NULL",
				[]string{taxonomy.SourceAccountsPayable, taxonomy.SourceSalary}).
			Where("id NOT IN (?)", linked).
			Order("cost_date ASC").
			Find(&costs).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		for i := range costs {
			c := &costs[i]
			description := c.Description
			if description == "" {
				description = c.Category.Label()
			}
			payable := models.AccountsPayable{
				TenantScoped:        models.TenantScoped{TenantID: tenantID},
				Description:         description,
				Amount:              c.Amount,
				DueDate:             cycle.Day(c.CostDate),
				Category:            string(c.Category),
				Status:              taxonomy.PayablePendente,
				CostID:              strPtr(c.ID),
				SourceReferenceID:   strPtr(c.ID),
				SourceReferenceType: taxonomy.SourceCost,
			}
			if err := tx.Create(&payable).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			created = append(created, payable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(created) > 0 {
		changes := make([]events.Change, 0, len(created)+1)
		for _, p := range created {
			changes = append(changes, events.NewChange(tenantID, events.TableAccountsPayable, events.OpInsert, p.ID))
		}
		changes = append(changes, events.NewChange(tenantID, events.TableFinancialSummary, events.OpUpdate, ""))
		s.publisher.Publish(changes...)
	}

	logger.Get().Infow("costs synced to accounts payable", "tenant_id", tenantID, "created", len(created))
	return created, nil
}
