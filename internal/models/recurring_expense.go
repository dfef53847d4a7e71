package models

import "time"

// RecurringExpense is a template for a monthly financial obligation. Each cycle
// it spawns one AccountsPayable due on DueDay.
type RecurringExpense struct {
	Base
	TenantScoped
	Description       string     `gorm:"not null" json:"description"`
	Amount            int64      `gorm:"type:bigint;not null" json:"amount"`
	DueDay            int        `gorm:"not null" json:"due_day"`
	Category          string     `gorm:"not null" json:"category"`
	PaymentMethod     string     `json:"payment_method,omitempty"`
	IsActive          bool       `gorm:"default:true" json:"is_active"`
	LastGeneratedDate *time.Time `json:"last_generated_date,omitempty"`
}
