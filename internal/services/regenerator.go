package services

import (
	"time"

	"gorm.io/gorm"

	"frota/internal/cycle"
	apperrors "frota/internal/errors"
	"frota/internal/logger"
	"frota/internal/metrics"
	"frota/internal/models"
)

// regenerateNext creates the next cycle's payable for a paid recurring
// expense. A missing or inactive template is not an error: it is logged and
// no payable is created. When the next payable already exists it is returned.
// A next due date that already lies before today rolls into the following month.
func regenerateNext(tx *gorm.DB, paid *models.AccountsPayable, today time.Time) (*models.AccountsPayable, error) {
	log := logger.Named("regenerator")

	tmpl, err := templateFor(tx, paid)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		log.Warnw("no recurring expense template matches paid payable; next cycle not generated",
			"tenant_id", paid.TenantID,
			"payable_id", paid.ID,
			"description", paid.Description,
			"amount", paid.Amount,
		)
		metrics.RecurringRegenerationsTotal.WithLabelValues(metrics.RegenerationNoTemplate).Inc()
		return nil, nil
	}
	if !tmpl.IsActive {
		log.Warnw("recurring expense template is inactive; next cycle not generated",
			"tenant_id", paid.TenantID,
			"payable_id", paid.ID,
			"recurring_expense_id", tmpl.ID,
		)
		metrics.RecurringRegenerationsTotal.WithLabelValues(metrics.RegenerationInactive).Inc()
		return nil, nil
	}

	due := cycle.DueDateOnOrAfter(cycle.NextDueDate(paid.DueDate, tmpl.DueDay), today, tmpl.DueDay)
	next, created, err := ensurePayableForTemplate(tx, tmpl, due)
	if err != nil {
		return nil, err
	}

	if created {
		metrics.RecurringRegenerationsTotal.WithLabelValues(metrics.RegenerationCreated).Inc()
	} else {
		metrics.RecurringRegenerationsTotal.WithLabelValues(metrics.RegenerationExisting).Inc()
	}
	log.Debugw("next cycle payable ready",
		"recurring_expense_id", tmpl.ID,
		"due_date", due.Format(cycle.DateLayout),
		"created", created,
	)
	return next, nil
}

// templateFor resolves the template that generated a payable. Payables
// carrying recurring_expense_id use it. Rows created before that column
// existed are matched on description, amount, category and active flag.
func templateFor(tx *gorm.DB, paid *models.AccountsPayable) (*models.RecurringExpense, error) {
	var tmpl models.RecurringExpense
	q := tx.Scopes(tenantScope(paid.TenantID))
	if paid.RecurringExpenseID != nil {
		q = q.Where("id = ?", *paid.RecurringExpenseID)
	} else {
		q = q.Where("description = ? AND amount = ? AND category = ? AND is_active = ?",
			paid.Description, paid.Amount, paid.Category, true)
	}

	if err := q.Order("created_at ASC").Limit(1).Find(&tmpl).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if tmpl.ID == "" {
		return nil, nil
	}
	return &tmpl, nil
}
