package models

import (
	"time"

	"frota/internal/taxonomy"
)

// Salary is one monthly payment to an employee.
type Salary struct {
	Base
	TenantScoped
	EmployeeName      string                `gorm:"not null;index" json:"employee_name"`
	Role              string                `json:"role,omitempty"`
	Amount            int64                 `gorm:"type:bigint;not null" json:"amount"`
	PaymentDay        int                   `gorm:"not null" json:"payment_day"`
	ReferenceMonth    string                `gorm:"size:7;not null;index" json:"reference_month"`
	PaymentDate       time.Time             `gorm:"not null" json:"payment_date"`
	Status            taxonomy.SalaryStatus `gorm:"not null" json:"status"`
	PaidAt            *time.Time            `json:"paid_at,omitempty"`
	CostID            *string               `gorm:"type:uuid" json:"cost_id,omitempty"`
	AccountsPayableID *string               `gorm:"type:uuid" json:"accounts_payable_id,omitempty"`
}
