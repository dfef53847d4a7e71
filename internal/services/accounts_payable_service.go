package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"frota/internal/cycle"
	apperrors "frota/internal/errors"
	"frota/internal/events"
	"frota/internal/logger"
	"frota/internal/metrics"
	"frota/internal/models"
	"frota/internal/pagination"
	"frota/internal/taxonomy"
)

// accountsPayableService handles the accounts payable ledger.
type accountsPayableService struct {
	db        *gorm.DB
	publisher events.Publisher
	now       func() time.Time
}

// NewAccountsPayableService creates a new AccountsPayableServicer.
func NewAccountsPayableService(db *gorm.DB, publisher events.Publisher) AccountsPayableServicer {
	return &accountsPayableService{db: db, publisher: publisherOrNop(publisher), now: time.Now}
}

// CreatePayable records a manual payable.
func (s *accountsPayableService) CreatePayable(
	tenantID, description string,
	amount int64,
	dueDate time.Time,
	category, paymentMethod, notes string,
) (*models.AccountsPayable, error) {
	if err := requireText(description, "description"); err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if strings.TrimSpace(category) == "" {
		category = taxonomy.PayableAvulsa
	}

	payable := &models.AccountsPayable{
		TenantScoped:  models.TenantScoped{TenantID: tenantID},
		Description:   strings.TrimSpace(description),
		Amount:        amount,
		DueDate:       cycle.Day(dueDate),
		Category:      strings.TrimSpace(category),
		Status:        taxonomy.PayablePendente,
		PaymentMethod: paymentMethod,
		Notes:         notes,
	}

	if err := s.db.Create(payable).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.publisher.Publish(events.NewChange(tenantID, events.TableAccountsPayable, events.OpInsert, payable.ID))
	return payable, nil
}

// GetPayables returns a paginated list of payables ordered by due date.
func (s *accountsPayableService) GetPayables(
	tenantID string,
	page pagination.PageRequest,
	filter PayableFilter,
) (*pagination.PageResponse[models.AccountsPayable], error) {
	page.Defaults()

	base := s.db.Model(&models.AccountsPayable{}).Scopes(tenantScope(tenantID))
	if filter.Status != nil {
		base = base.Where("status = ?", *filter.Status)
	}
	if filter.Category != nil {
		base = base.Where("category = ?", *filter.Category)
	}
	if filter.FromDate != nil {
		base = base.Where("due_date >= ?", cycle.Day(*filter.FromDate))
	}
	if filter.ToDate != nil {
		base = base.Where("due_date <= ?", cycle.Day(*filter.ToDate))
	}
	if filter.RecurringExpenseID != nil {
		base = base.Where("recurring_expense_id = ?", *filter.RecurringExpenseID)
	}
	if filter.OverdueOnly {
		base = base.Where("status <> ? AND due_date < ?", taxonomy.PayablePago, cycle.Day(s.now()))
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var payables []models.AccountsPayable
	if err := base.Order("due_date ASC, created_at ASC").Scopes(pagination.Paginate(page)).Find(&payables).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(payables, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetPayableByID returns a payable if it belongs to the tenant.
func (s *accountsPayableService) GetPayableByID(tenantID, id string) (*models.AccountsPayable, error) {
	return findPayable(s.db, tenantID, id)
}

func findPayable(db *gorm.DB, tenantID, id string) (*models.AccountsPayable, error) {
	var payable models.AccountsPayable
	if err := db.Scopes(tenantScope(tenantID)).Where("id = ?", id).First(&payable).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrPayableNotFound)
	}
	return &payable, nil
}

// AuthorizePayable moves a pending payable to Autorizado.
func (s *accountsPayableService) AuthorizePayable(tenantID, id string) (*models.AccountsPayable, error) {
	payable, err := s.GetPayableByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if !taxonomy.CanTransition(payable.Status, taxonomy.PayableAutorizado) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidStatusTransition,
			"cannot authorize a payable with status "+string(payable.Status))
	}

	now := s.now()
	res := s.db.Model(&models.AccountsPayable{}).
		Where("id = ? AND tenant_id = ? AND status = ?", payable.ID, tenantID, taxonomy.PayablePendente).
		Updates(map[string]interface{}{"status": taxonomy.PayableAutorizado, "authorized_at": now})
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidStatusTransition, "payable changed status concurrently")
	}
	payable.Status = taxonomy.PayableAutorizado
	payable.AuthorizedAt = &now

	s.publisher.Publish(events.NewChange(tenantID, events.TableAccountsPayable, events.OpUpdate, payable.ID))
	return payable, nil
}

// MarkAsPaid settles a payable and records its cost, all in one transaction:
//
//  1. The payable flips to Pago through an update guarded on status <> Pago,
//     so of two concurrent calls only one performs the transition.
//  2. A cost already settling this payable (linked cost_id, the cost the
//     payable was synced from, or a cost sourced from this payable) is marked
//     Pago and linked. Otherwise a Financeiro cost is created.
//  3. Despesa Recorrente payables spawn the next cycle's payable.
//
// Paying an already paid payable returns the existing records and writes nothing new.
func (s *accountsPayableService) MarkAsPaid(tenantID, id string) (*PaymentResult, error) {
	result := &PaymentResult{}
	now := s.now()
	var costCreated bool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		payable, err := findPayable(tx, tenantID, id)
		if err != nil {
			return err
		}

		if payable.Status != taxonomy.PayablePago {
			res := tx.Model(&models.AccountsPayable{}).
				Where("id = ? AND tenant_id = ? AND status <> ?", payable.ID, tenantID, taxonomy.PayablePago).
				Updates(map[string]interface{}{"status": taxonomy.PayablePago, "paid_at": now})
			if res.Error != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
			}
			if res.RowsAffected == 0 {
				// Another payment committed first.
				if payable, err = findPayable(tx, tenantID, id); err != nil {
					return err
				}
				result.AlreadyPaid = true
			} else {
				payable.Status = taxonomy.PayablePago
				payable.PaidAt = &now
			}
		} else {
			result.AlreadyPaid = true
		}
		result.Payable = payable

		cost, err := settlingCost(tx, payable)
		if err != nil {
			return err
		}
		if cost != nil {
			if cost.Status != taxonomy.CostPago {
				if err := tx.Model(cost).Update("status", taxonomy.CostPago).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
				cost.Status = taxonomy.CostPago
			}
		} else {
			cost = costForPayable(payable)
			if err := tx.Create(cost).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			costCreated = true
		}
		result.Cost = cost

		if payable.CostID == nil || *payable.CostID != cost.ID {
			if err := tx.Model(payable).Update("cost_id", cost.ID).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			payable.CostID = strPtr(cost.ID)
		}

		if payable.SalaryID != nil {
			if err := settleSalary(tx, tenantID, *payable.SalaryID, now); err != nil {
				return err
			}
		}

		if result.AlreadyPaid {
			return nil
		}

		if taxonomy.IsRecurringExpense(payable.Category) {
			next, err := regenerateNext(tx, payable, now)
			if err != nil {
				return err
			}
			result.NextPayable = next
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	outcome := "paid"
	if result.AlreadyPaid {
		outcome = "already_paid"
	}
	metrics.PayablesPaidTotal.WithLabelValues(result.Payable.Category, outcome).Inc()
	if costCreated {
		metrics.CostsCreatedTotal.WithLabelValues(string(result.Cost.Origin)).Inc()
	}

	s.publishPayment(tenantID, result, costCreated)

	logger.Get().Infow("payable marked as paid",
		"tenant_id", tenantID,
		"payable_id", result.Payable.ID,
		"cost_id", result.Cost.ID,
		"already_paid", result.AlreadyPaid,
		"next_payable", result.NextPayable != nil,
	)
	return result, nil
}

// publishPayment notifies every view that depends on a payment, whatever branch ran.
func (s *accountsPayableService) publishPayment(tenantID string, result *PaymentResult, costCreated bool) {
	costOp := events.OpUpdate
	if costCreated {
		costOp = events.OpInsert
	}
	changes := []events.Change{
		events.NewChange(tenantID, events.TableAccountsPayable, events.OpUpdate, result.Payable.ID),
		events.NewChange(tenantID, events.TableCosts, costOp, result.Cost.ID),
	}
	if result.NextPayable != nil {
		changes = append(changes, events.NewChange(tenantID, events.TableAccountsPayable, events.OpInsert, result.NextPayable.ID))
	}
	if result.Payable.SalaryID != nil {
		changes = append(changes, events.NewChange(tenantID, events.TableSalaries, events.OpUpdate, *result.Payable.SalaryID))
	}
	changes = append(changes, events.NewChange(tenantID, events.TableFinancialSummary, events.OpUpdate, ""))
	s.publisher.Publish(changes...)
}

// settlingCost finds the cost that already accounts for this payable, if any.
func settlingCost(tx *gorm.DB, payable *models.AccountsPayable) (*models.Cost, error) {
	var ids []string
	if payable.CostID != nil {
		ids = append(ids, *payable.CostID)
	}
	if payable.SourceReferenceID != nil && payable.SourceReferenceType == taxonomy.SourceCost {
		ids = append(ids, *payable.SourceReferenceID)
	}

	for _, costID := range ids {
		var cost models.Cost
		err := tx.Scopes(tenantScope(payable.TenantID)).Where("id = ?", costID).Limit(1).Find(&cost).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if cost.ID != "" {
			return &cost, nil
		}
		logger.Get().Warnw("payable references a missing cost",
			"tenant_id", payable.TenantID,
			"payable_id", payable.ID,
			"cost_id", costID,
		)
	}

	var cost models.Cost
	err := tx.Scopes(tenantScope(payable.TenantID)).
		Where("source_reference_id = ? AND source_reference_type = ?", payable.ID, taxonomy.SourceAccountsPayable).
		Order("created_at ASC").Limit(1).Find(&cost).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if cost.ID != "" {
		return &cost, nil
	}
	return nil, nil
}

// costForPayable builds the cost recorded when a payable is paid. Recurring
// categories produce a monthly cost on the due date's day.
func costForPayable(payable *models.AccountsPayable) *models.Cost {
	cost := &models.Cost{
		TenantScoped:        models.TenantScoped{TenantID: payable.TenantID},
		Category:            taxonomy.CostCategoryFor(payable.Category),
		Description:         payable.Description,
		Amount:              payable.Amount,
		CostDate:            cycle.Day(payable.DueDate),
		Status:              taxonomy.CostPago,
		Origin:              taxonomy.OriginFinanceiro,
		SourceReferenceID:   strPtr(payable.ID),
		SourceReferenceType: taxonomy.SourceAccountsPayable,
	}
	if taxonomy.IsRecurringCategory(payable.Category) {
		day := payable.DueDate.Day()
		cost.IsRecurring = true
		cost.RecurrenceType = taxonomy.RecurrenceMonthly
		cost.RecurrenceDay = &day
	}
	return cost
}

// settleSalary marks a salary paid when its payable is paid through the ledger.
func settleSalary(tx *gorm.DB, tenantID, salaryID string, now time.Time) error {
	err := tx.Model(&models.Salary{}).
		Where("id = ? AND tenant_id = ? AND status <> ?", salaryID, tenantID, taxonomy.SalaryPago).
		Updates(map[string]interface{}{"status": taxonomy.SalaryPago, "paid_at": now}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
