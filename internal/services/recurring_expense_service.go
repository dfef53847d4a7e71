package services

import (
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"frota/internal/cycle"
	apperrors "frota/internal/errors"
	"frota/internal/events"
	"frota/internal/logger"
	"frota/internal/metrics"
	"frota/internal/models"
	"frota/internal/pagination"
	"frota/internal/taxonomy"
)

// recurringExpenseService handles recurring expense templates.
type recurringExpenseService struct {
	db        *gorm.DB
	publisher events.Publisher
}

// NewRecurringExpenseService creates a new RecurringExpenseServicer.
func NewRecurringExpenseService(db *gorm.DB, publisher events.Publisher) RecurringExpenseServicer {
	return &recurringExpenseService{db: db, publisher: publisherOrNop(publisher)}
}

func validDueDay(day int) bool {
	return day >= 1 && day <= 31
}

// CreateRecurringExpense persists an active template.
func (s *recurringExpenseService) CreateRecurringExpense(
	tenantID, description string,
	amount int64,
	dueDay int,
	category, paymentMethod string,
) (*models.RecurringExpense, error) {
	if err := requireText(description, "description"); err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if !validDueDay(dueDay) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due_day must be between 1 and 31")
	}
	if strings.TrimSpace(category) == "" {
		category = taxonomy.PayableDespesaRecorrente
	}

	tmpl := &models.RecurringExpense{
		TenantScoped:  models.TenantScoped{TenantID: tenantID},
		Description:   strings.TrimSpace(description),
		Amount:        amount,
		DueDay:        dueDay,
		Category:      strings.TrimSpace(category),
		PaymentMethod: paymentMethod,
		IsActive:      true,
	}

	if err := s.db.Create(tmpl).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.publisher.Publish(events.NewChange(tenantID, events.TableRecurringExpenses, events.OpInsert, tmpl.ID))
	return tmpl, nil
}

// GetRecurringExpenses returns a paginated list of templates ordered by due day.
func (s *recurringExpenseService) GetRecurringExpenses(
	tenantID string,
	page pagination.PageRequest,
	isActive *bool,
) (*pagination.PageResponse[models.RecurringExpense], error) {
	page.Defaults()

	base := s.db.Model(&models.RecurringExpense{}).Scopes(tenantScope(tenantID))
	if isActive != nil {
		base = base.Where("is_active = ?", *isActive)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var templates []models.RecurringExpense
	if err := base.Order("due_day ASC, description ASC").Scopes(pagination.Paginate(page)).Find(&templates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(templates, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetRecurringExpenseByID returns a template if it belongs to the tenant.
func (s *recurringExpenseService) GetRecurringExpenseByID(tenantID, id string) (*models.RecurringExpense, error) {
	var tmpl models.RecurringExpense
	if err := s.db.Scopes(tenantScope(tenantID)).Where("id = ?", id).First(&tmpl).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrRecurringExpenseNotFound)
	}
	return &tmpl, nil
}

// UpdateRecurringExpense updates a template. Payables already generated keep
// their values; only future cycles see the change.
func (s *recurringExpenseService) UpdateRecurringExpense(tenantID, id string, update RecurringExpenseUpdate) (*models.RecurringExpense, error) {
	tmpl, err := s.GetRecurringExpenseByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Description != nil {
		if err := requireText(*update.Description, "description"); err != nil {
			return nil, err
		}
		updates["description"] = strings.TrimSpace(*update.Description)
	}
	if update.Amount != nil {
		if *update.Amount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
		}
		updates["amount"] = *update.Amount
	}
	if update.DueDay != nil {
		if !validDueDay(*update.DueDay) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due_day must be between 1 and 31")
		}
		updates["due_day"] = *update.DueDay
	}
	if update.Category != nil && strings.TrimSpace(*update.Category) != "" {
		updates["category"] = strings.TrimSpace(*update.Category)
	}
	if update.PaymentMethod != nil {
		updates["payment_method"] = *update.PaymentMethod
	}

	if len(updates) > 0 {
		if err := s.db.Model(tmpl).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		s.publisher.Publish(events.NewChange(tenantID, events.TableRecurringExpenses, events.OpUpdate, tmpl.ID))
	}

	return tmpl, nil
}

// SetRecurringExpenseActive activates or deactivates a template. Generated
// payables are left untouched.
func (s *recurringExpenseService) SetRecurringExpenseActive(tenantID, id string, active bool) (*models.RecurringExpense, error) {
	tmpl, err := s.GetRecurringExpenseByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(tmpl).Update("is_active", active).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	tmpl.IsActive = active

	s.publisher.Publish(events.NewChange(tenantID, events.TableRecurringExpenses, events.OpUpdate, tmpl.ID))
	return tmpl, nil
}

// DeleteRecurringExpense soft-deletes a template.
func (s *recurringExpenseService) DeleteRecurringExpense(tenantID, id string) error {
	tmpl, err := s.GetRecurringExpenseByID(tenantID, id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(tmpl).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.publisher.Publish(events.NewChange(tenantID, events.TableRecurringExpenses, events.OpDelete, tmpl.ID))
	return nil
}

// GenerateForMonth ensures one pending payable per active template for the
// month. Templates that already have a payable on that due date are skipped,
// so running it twice creates nothing new. It returns the payables created.
func (s *recurringExpenseService) GenerateForMonth(tenantID string, month time.Time) ([]models.AccountsPayable, error) {
	month = cycle.MonthStart(month)
	var created []models.AccountsPayable

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var templates []models.RecurringExpense
		if err := tx.Scopes(tenantScope(tenantID)).Where("is_active = ?", true).Order("due_day ASC").Find(&templates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		for i := range templates {
			tmpl := &templates[i]
			due := cycle.DueDateInMonth(month, tmpl.DueDay)

			payable, isNew, err := ensurePayableForTemplate(tx, tmpl, due)
			if err != nil {
				return err
			}
			if isNew {
				created = append(created, *payable)
			}
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
		changes = append(changes, events.NewChange(tenantID, events.TableRecurringExpenses, events.OpUpdate, ""))
		s.publisher.Publish(changes...)
		metrics.PayablesGeneratedTotal.WithLabelValues("recurring_expense").Add(float64(len(created)))
	}

	logger.Get().Infow("recurring expenses generated",
		"tenant_id", tenantID,
		"month", cycle.FormatMonth(month),
		"created", len(created),
	)
	return created, nil
}

// ensurePayableForTemplate returns the template's payable due on the given
// date, creating it when missing. The template's last_generated_date moves
// forward when a payable is created.
func ensurePayableForTemplate(tx *gorm.DB, tmpl *models.RecurringExpense, due time.Time) (*models.AccountsPayable, bool, error) {
	var existing models.AccountsPayable
	err := tx.Scopes(tenantScope(tmpl.TenantID)).
		Where("recurring_expense_id = ? AND due_date = ?", tmpl.ID, due).
		Limit(1).Find(&existing).Error
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if existing.ID != "" {
		return &existing, false, nil
	}

	category := tmpl.Category
	if category == "" {
		category = taxonomy.PayableDespesaRecorrente
	}

	payable := &models.AccountsPayable{
		TenantScoped:       models.TenantScoped{TenantID: tmpl.TenantID},
		Description:        tmpl.Description,
		Amount:             tmpl.Amount,
		DueDate:            due,
		Category:           category,
		Status:             taxonomy.PayablePendente,
		PaymentMethod:      tmpl.PaymentMethod,
		RecurringExpenseID: strPtr(tmpl.ID),
	}
	payable, created, err := insertCyclePayable(tx, payable)
	if err != nil || !created {
		return payable, false, err
	}

	if tmpl.LastGeneratedDate == nil || due.After(*tmpl.LastGeneratedDate) {
		if err := tx.Model(tmpl).Update("last_generated_date", due).Error; err != nil {
			return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		tmpl.LastGeneratedDate = &due
	}

	return payable, true, nil
}

// insertCyclePayable inserts a template's payable for one cycle. When another
// transaction already committed that cycle, the unique index turns the insert
// into a no-op and the committed row is returned instead.
func insertCyclePayable(tx *gorm.DB, payable *models.AccountsPayable) (*models.AccountsPayable, bool, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(payable)
	if res.Error != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected > 0 {
		return payable, true, nil
	}

	var existing models.AccountsPayable
	err := tx.Scopes(tenantScope(payable.TenantID)).
		Where("recurring_expense_id = ? AND due_date = ?", *payable.RecurringExpenseID, payable.DueDate).
		First(&existing).Error
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	logger.Named("recurring").Infow("cycle payable created concurrently; reusing it",
		"recurring_expense_id", *payable.RecurringExpenseID,
		"payable_id", existing.ID,
		"due_date", payable.DueDate.Format(cycle.DateLayout),
	)
	return &existing, false, nil
}
