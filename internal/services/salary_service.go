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

// salaryService handles salaries and their cost/payable pair.
type salaryService struct {
	db        *gorm.DB
	publisher events.Publisher
}

// NewSalaryService creates a new SalaryServicer.
func NewSalaryService(db *gorm.DB, publisher events.Publisher) SalaryServicer {
	return &salaryService{db: db, publisher: publisherOrNop(publisher)}
}

// CreateSalary records a salary together with its recurring cost and its
// Salário payable, in one transaction.
func (s *salaryService) CreateSalary(
	tenantID, employeeName, role string,
	amount int64,
	paymentDay int,
	referenceMonth time.Time,
) (*models.Salary, error) {
	if err := requireText(employeeName, "employee_name"); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !validDueDay(paymentDay) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment_day must be between 1 and 31")
	}

	var salary *models.Salary
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		salary, err = createSalaryTx(tx, tenantID, strings.TrimSpace(employeeName), role, amount, paymentDay, cycle.MonthStart(referenceMonth))
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.CostsCreatedTotal.WithLabelValues(string(taxonomy.OriginFinanceiro)).Inc()
	s.publishCreated(tenantID, salary)
	return salary, nil
}

func (s *salaryService) publishCreated(tenantID string, salaries ...*models.Salary) {
	var changes []events.Change
	for _, sal := range salaries {
		changes = append(changes, events.NewChange(tenantID, events.TableSalaries, events.OpInsert, sal.ID))
		if sal.CostID != nil {
			changes = append(changes, events.NewChange(tenantID, events.TableCosts, events.OpInsert, *sal.CostID))
		}
		if sal.AccountsPayableID != nil {
			changes = append(changes, events.NewChange(tenantID, events.TableAccountsPayable, events.OpInsert, *sal.AccountsPayableID))
		}
	}
	if len(changes) == 0 {
		return
	}
	changes = append(changes, events.NewChange(tenantID, events.TableFinancialSummary, events.OpUpdate, ""))
	s.publisher.Publish(changes...)
}

func createSalaryTx(tx *gorm.DB, tenantID, employeeName, role string, amount int64, paymentDay int, month time.Time) (*models.Salary, error) {
	refMonth := cycle.FormatMonth(month)

	var count int64
	err := tx.Model(&models.Salary{}).Scopes(tenantScope(tenantID)).
		Where("employee_name = ? AND reference_month = ?", employeeName, refMonth).
		Count(&count).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateSalary
	}

	paymentDate := cycle.DueDateInMonth(month, paymentDay)
	salary := &models.Salary{
		TenantScoped:   models.TenantScoped{TenantID: tenantID},
		EmployeeName:   employeeName,
		Role:           role,
		Amount:         amount,
		PaymentDay:     paymentDay,
		ReferenceMonth: refMonth,
		PaymentDate:    paymentDate,
		Status:         taxonomy.SalaryPendente,
	}
	if err := tx.Create(salary).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	description := "Salário " + employeeName + " " + refMonth
	day := paymentDay
	cost := &models.Cost{
		TenantScoped:        models.TenantScoped{TenantID: tenantID},
		Category:            taxonomy.CostCategoryFor(taxonomy.PayableSalario),
		Description:         description,
		Amount:              amount,
		CostDate:            paymentDate,
		Status:              taxonomy.CostPendente,
		Origin:              taxonomy.OriginFinanceiro,
		IsRecurring:         true,
		RecurrenceType:      taxonomy.RecurrenceMonthly,
		RecurrenceDay:       &day,
		SourceReferenceID:   strPtr(salary.ID),
		SourceReferenceType: taxonomy.SourceSalary,
	}
	if err := tx.Create(cost).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	payable := &models.AccountsPayable{
		TenantScoped:        models.TenantScoped{TenantID: tenantID},
		Description:         description,
		Amount:              amount,
		DueDate:             paymentDate,
		Category:            taxonomy.PayableSalario,
		Status:              taxonomy.PayablePendente,
		CostID:              strPtr(cost.ID),
		SalaryID:            strPtr(salary.ID),
		SourceReferenceID:   strPtr(salary.ID),
		SourceReferenceType: taxonomy.SourceSalary,
	}
	if err := tx.Create(payable).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	links := map[string]interface{}{"cost_id": cost.ID, "accounts_payable_id": payable.ID}
	if err := tx.Model(salary).Updates(links).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	salary.CostID = strPtr(cost.ID)
	salary.AccountsPayableID = strPtr(payable.ID)

	return salary, nil
}

// GetSalaries returns a paginated list of salaries.
func (s *salaryService) GetSalaries(
	tenantID string,
	page pagination.PageRequest,
	referenceMonth *string,
	status *taxonomy.SalaryStatus,
) (*pagination.PageResponse[models.Salary], error) {
	page.Defaults()

	base := s.db.Model(&models.Salary{}).Scopes(tenantScope(tenantID))
	if referenceMonth != nil {
		base = base.Where("reference_month = ?", *referenceMonth)
	}
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var salaries []models.Salary
	if err := base.Order("reference_month DESC, employee_name ASC").Scopes(pagination.Paginate(page)).Find(&salaries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(salaries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetSalaryByID returns a salary if it belongs to the tenant.
func (s *salaryService) GetSalaryByID(tenantID, id string) (*models.Salary, error) {
	var salary models.Salary
	if err := s.db.Scopes(tenantScope(tenantID)).Where("id = ?", id).First(&salary).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrSalaryNotFound)
	}
	return &salary, nil
}

// MarkSalaryAsPaid sets the salary, its cost and its payable to Pago. It does
// not go through the payables ledger, so no new cost is created.
func (s *salaryService) MarkSalaryAsPaid(tenantID, id string) (*models.Salary, error) {
	salary, err := s.GetSalaryByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if salary.Status == taxonomy.SalaryPago {
		return salary, nil
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := settleSalary(tx, tenantID, salary.ID, now); err != nil {
			return err
		}
		if salary.CostID != nil {
			err := tx.Model(&models.Cost{}).Scopes(tenantScope(tenantID)).
				Where("id = ?", *salary.CostID).
				Update("status", taxonomy.CostPago).Error
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if salary.AccountsPayableID != nil {
			err := tx.Model(&models.AccountsPayable{}).Scopes(tenantScope(tenantID)).
				Where("id = ? AND status <> ?", *salary.AccountsPayableID, taxonomy.PayablePago).
				Updates(map[string]interface{}{"status": taxonomy.PayablePago, "paid_at": now}).Error
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	salary.Status = taxonomy.SalaryPago
	salary.PaidAt = &now

	changes := []events.Change{events.NewChange(tenantID, events.TableSalaries, events.OpUpdate, salary.ID)}
	if salary.CostID != nil {
		changes = append(changes, events.NewChange(tenantID, events.TableCosts, events.OpUpdate, *salary.CostID))
	}
	if salary.AccountsPayableID != nil {
		changes = append(changes, events.NewChange(tenantID, events.TableAccountsPayable, events.OpUpdate, *salary.AccountsPayableID))
	}
	changes = append(changes, events.NewChange(tenantID, events.TableFinancialSummary, events.OpUpdate, ""))
	s.publisher.Publish(changes...)

	return salary, nil
}

// GenerateForMonth creates the month's salaries for everyone paid the month
// before. Employees that already have a salary for the month are skipped.
func (s *salaryService) GenerateForMonth(tenantID string, month time.Time) ([]models.Salary, error) {
	month = cycle.MonthStart(month)
	previous := cycle.FormatMonth(cycle.PreviousMonth(month))
	target := cycle.FormatMonth(month)

	var created []models.Salary
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var last []models.Salary
		err := tx.Scopes(tenantScope(tenantID)).
			Where("reference_month = ?", previous).
			Order("employee_name ASC").
			Find(&last).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var existing []string
		err = tx.Model(&models.Salary{}).Scopes(tenantScope(tenantID)).
			Where("reference_month = ?", target).
			Pluck("employee_name", &existing).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		have := make(map[string]bool, len(existing))
		for _, name := range existing {
			have[name] = true
		}

		for _, prev := range last {
			if have[prev.EmployeeName] {
				continue
			}
			sal, err := createSalaryTx(tx, tenantID, prev.EmployeeName, prev.Role, prev.Amount, prev.PaymentDay, month)
			if err != nil {
				return err
			}
			have[prev.EmployeeName] = true
			created = append(created, *sal)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(created) > 0 {
		ptrs := make([]*models.Salary, len(created))
		for i := range created {
			ptrs[i] = &created[i]
		}
		s.publishCreated(tenantID, ptrs...)
		metrics.PayablesGeneratedTotal.WithLabelValues("salary").Add(float64(len(created)))
	}

	logger.Get().Infow("salaries generated",
		"tenant_id", tenantID,
		"month", target,
		"created", len(created),
	)
	return created, nil
}
