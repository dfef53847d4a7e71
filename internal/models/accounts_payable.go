package models

import (
	"time"

	"frota/internal/taxonomy"
)

// AccountsPayable is one dated obligation: generated from a recurring expense,
// seeded by a salary, synced from a cost, or entered by hand.
type AccountsPayable struct {
	Base
	TenantScoped
	Description   string                 `gorm:"not null" json:"description"`
	Amount        int64                  `gorm:"type:bigint;not null" json:"amount"`
	DueDate       time.Time              `gorm:"not null;index" json:"due_date"`
	Category      string                 `gorm:"not null;index" json:"category"`
	Status        taxonomy.PayableStatus `gorm:"not null;index" json:"status"`
	PaymentMethod string                 `json:"payment_method,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	AuthorizedAt  *time.Time             `json:"authorized_at,omitempty"`
	PaidAt        *time.Time             `json:"paid_at,omitempty"`

	CostID             *string `gorm:"type:uuid;index" json:"cost_id,omitempty"`
	RecurringExpenseID *string `gorm:"type:uuid;index" json:"recurring_expense_id,omitempty"`
	SalaryID           *string `gorm:"type:uuid;index" json:"salary_id,omitempty"`

	// Loose pointer to the record that caused this entry (e.g. a synced cost).
	SourceReferenceID   *string `gorm:"type:uuid;index" json:"source_reference_id,omitempty"`
	SourceReferenceType string  `json:"source_reference_type,omitempty"`
}

// TableName overrides GORM's pluralized default.
func (AccountsPayable) TableName() string { return "accounts_payable" }

// IsOverdue reports whether the entry is unpaid past its due date.
func (p *AccountsPayable) IsOverdue(today time.Time) bool {
	return p.Status != taxonomy.PayablePago && p.DueDate.Before(today)
}
