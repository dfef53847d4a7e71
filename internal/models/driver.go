package models

import "time"

// Driver is a person allowed to drive fleet vehicles.
type Driver struct {
	Base
	TenantScoped
	Name             string  `gorm:"not null" json:"name"`
	LicenseNumber    string  `gorm:"index" json:"license_number,omitempty"`
	Phone            string  `json:"phone,omitempty"`
	Email            string  `json:"email,omitempty"`
	IsActive         bool    `gorm:"default:true" json:"is_active"`
	CurrentVehicleID *string `gorm:"type:uuid" json:"current_vehicle_id,omitempty"`

	CurrentVehicle *Vehicle `gorm:"foreignKey:CurrentVehicleID" json:"current_vehicle,omitempty"`
}

// DriverAssignment records a period during which a driver had a vehicle.
// An open assignment has no EndedAt.
type DriverAssignment struct {
	Base
	TenantScoped
	DriverID  string     `gorm:"type:uuid;not null;index" json:"driver_id"`
	VehicleID string     `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	StartedAt time.Time  `gorm:"not null" json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Notes     string     `json:"notes,omitempty"`

	Driver  *Driver  `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}
