package models

// Customer is a rental customer.
type Customer struct {
	Base
	TenantScoped
	Name     string `gorm:"not null;index" json:"name"`
	Document string `gorm:"index" json:"document,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Notes    string `json:"notes,omitempty"`
}
