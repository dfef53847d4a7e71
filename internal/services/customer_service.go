package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "frota/internal/errors"
	"frota/internal/events"
	"frota/internal/models"
	"frota/internal/pagination"
	"frota/internal/taxonomy"
)

// customerService handles rental customers.
type customerService struct {
	db        *gorm.DB
	publisher events.Publisher
}

// NewCustomerService creates a new CustomerServicer.
func NewCustomerService(db *gorm.DB, publisher events.Publisher) CustomerServicer {
	return &customerService{db: db, publisher: publisherOrNop(publisher)}
}

// CreateCustomer adds a customer.
func (s *customerService) CreateCustomer(tenantID, name, document, email, phone, notes string) (*models.Customer, error) {
	if err := requireText(name, "name"); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		TenantScoped: models.TenantScoped{TenantID: tenantID},
		Name:         strings.TrimSpace(name),
		Document:     strings.TrimSpace(document),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Phone:        phone,
		Notes:        notes,
	}
	if err := s.db.Create(customer).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.publisher.Publish(events.NewChange(tenantID, events.TableCustomers, events.OpInsert, customer.ID))
	return customer, nil
}

// GetCustomers returns a paginated list of customers, optionally filtered by
// a name or document fragment.
func (s *customerService) GetCustomers(tenantID string, page pagination.PageRequest, search string) (*pagination.PageResponse[models.Customer], error) {
	page.Defaults()

	base := s.db.Model(&models.Customer{}).Scopes(tenantScope(tenantID))
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		base = base.Where("LOWER(name) LIKE ? OR document LIKE ?", like, like)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var customers []models.Customer
	if err := base.Order("name ASC").Scopes(pagination.Paginate(page)).Find(&customers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(customers, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCustomerByID returns a customer if it belongs to the tenant.
func (s *customerService) GetCustomerByID(tenantID, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Scopes(tenantScope(tenantID)).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrCustomerNotFound)
	}
	return &customer, nil
}

// UpdateCustomer updates a customer's fields.
func (s *customerService) UpdateCustomer(tenantID, id string, update CustomerUpdate) (*models.Customer, error) {
	customer, err := s.GetCustomerByID(tenantID, id)
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
	if update.Document != nil {
		updates["document"] = strings.TrimSpace(*update.Document)
	}
	if update.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*update.Email))
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.Notes != nil {
		updates["notes"] = *update.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(customer).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		s.publisher.Publish(events.NewChange(tenantID, events.TableCustomers, events.OpUpdate, customer.ID))
	}

	return customer, nil
}

// DeleteCustomer soft-deletes a customer.
func (s *customerService) DeleteCustomer(tenantID, id string) error {
	customer, err := s.GetCustomerByID(tenantID, id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(customer).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.publisher.Publish(events.NewChange(tenantID, events.TableCustomers, events.OpDelete, customer.ID))
	return nil
}

// GetCustomerHistory lists costs, fines and damages charged to a customer.
// TotalCharged sums everything not cancelled; TotalPending what is still open.
func (s *customerService) GetCustomerHistory(tenantID, id string) (*CustomerHistory, error) {
	customer, err := s.GetCustomerByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	history := &CustomerHistory{Customer: customer}

	var costs []models.Cost
	if err := s.db.Scopes(tenantScope(tenantID)).Where("customer_id = ?", id).Find(&costs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, c := range costs {
		history.Events = append(history.Events, HistoryEvent{
			Date: c.CostDate, Kind: "cost", ReferenceID: c.ID,
			Description: c.Description, Amount: c.Amount, Status: string(c.Status),
		})
	}

	fleet, err := fleetHistory(s.db, tenantID, "customer_id", id)
	if err != nil {
		return nil, err
	}
	history.Events = append(history.Events, fleet...)

	for _, e := range history.Events {
		switch e.Status {
		case string(taxonomy.CostCancelado):
			continue
		case string(taxonomy.CostPendente), string(models.FleetEventCobrado):
			history.TotalPending += e.Amount
		}
		history.TotalCharged += e.Amount
	}

	sortHistory(history.Events)
	return history, nil
}
