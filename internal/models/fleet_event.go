package models

import "time"

// FleetEventStatus is shared by fines, inspection damages and service notes.
type FleetEventStatus string

const (
	FleetEventPendente  FleetEventStatus = "Pendente"
	FleetEventCobrado   FleetEventStatus = "Cobrado"
	FleetEventPago      FleetEventStatus = "Pago"
	FleetEventCancelado FleetEventStatus = "Cancelado"
)

// Fine is a traffic fine (multa) received for a fleet vehicle.
type Fine struct {
	Base
	TenantScoped
	VehicleID      string           `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	CustomerID     *string          `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	DriverID       *string          `gorm:"type:uuid" json:"driver_id,omitempty"`
	InfractionDate time.Time        `gorm:"not null" json:"infraction_date"`
	InfractionCode string           `json:"infraction_code,omitempty"`
	Description    string           `json:"description"`
	Amount         int64            `gorm:"type:bigint;not null;default:0" json:"amount"`
	Status         FleetEventStatus `gorm:"not null" json:"status"`
}

// InspectionDamage is a damage found during a check-in/check-out inspection.
type InspectionDamage struct {
	Base
	TenantScoped
	VehicleID       string           `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	CustomerID      *string          `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	InspectionDate  time.Time        `gorm:"not null" json:"inspection_date"`
	Location        string           `json:"location,omitempty"`
	Description     string           `json:"description"`
	EstimatedAmount int64            `gorm:"type:bigint;not null;default:0" json:"estimated_amount"`
	Status          FleetEventStatus `gorm:"not null" json:"status"`
}

// ServiceNoteKind distinguishes fuel records from other service notes.
type ServiceNoteKind string

const (
	ServiceNoteCombustivel ServiceNoteKind = "Combustivel"
	ServiceNoteManutencao  ServiceNoteKind = "Manutencao"
)

// ServiceNote is a fuel or maintenance note recorded at the yard.
type ServiceNote struct {
	Base
	TenantScoped
	VehicleID   string           `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	CustomerID  *string          `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Kind        ServiceNoteKind  `gorm:"not null" json:"kind"`
	NoteDate    time.Time        `gorm:"not null" json:"note_date"`
	Description string           `json:"description"`
	Liters      float64          `json:"liters,omitempty"`
	Amount      int64            `gorm:"type:bigint;not null;default:0" json:"amount"`
	Status      FleetEventStatus `gorm:"not null" json:"status"`
}
