package models

import (
	"time"

	"frota/internal/taxonomy"
)

// Cost is the ledger-of-record financial transaction.
type Cost struct {
	Base
	TenantScoped
	Category       taxonomy.CostCategory `gorm:"not null;index" json:"category"`
	Description    string                `json:"description"`
	Amount         int64                 `gorm:"type:bigint;not null" json:"amount"`
	CostDate       time.Time             `gorm:"not null;index" json:"cost_date"`
	Status         taxonomy.CostStatus   `gorm:"not null;index" json:"status"`
	Origin         taxonomy.Origin       `gorm:"not null;index" json:"origin"`
	IsRecurring    bool                  `gorm:"default:false" json:"is_recurring"`
	RecurrenceType string                `json:"recurrence_type,omitempty"`
	RecurrenceDay  *int                  `json:"recurrence_day,omitempty"`
	DocumentRef    string                `json:"document_ref,omitempty"`
	Observations   string                `json:"observations,omitempty"`

	SourceReferenceID   *string `gorm:"type:uuid;index" json:"source_reference_id,omitempty"`
	SourceReferenceType string  `json:"source_reference_type,omitempty"`

	CustomerID *string `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	VehicleID  *string `gorm:"type:uuid;index" json:"vehicle_id,omitempty"`
	ContractID *string `gorm:"type:uuid" json:"contract_id,omitempty"`
}

// IsAmountToDefine reports whether the cost is a zero-amount placeholder
// still waiting for an estimate.
func (c *Cost) IsAmountToDefine() bool {
	return c.Amount == 0 && c.Status == taxonomy.CostPendente
}
