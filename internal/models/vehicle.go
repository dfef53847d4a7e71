package models

// VehicleStatus is the operational state of a fleet vehicle.
type VehicleStatus string

const (
	VehicleDisponivel VehicleStatus = "Disponivel"
	VehicleAlugado    VehicleStatus = "Alugado"
	VehicleManutencao VehicleStatus = "Manutencao"
	VehicleInativo    VehicleStatus = "Inativo"
)

// Vehicle is a car in the rental fleet.
type Vehicle struct {
	Base
	TenantScoped
	Plate   string        `gorm:"not null;index" json:"plate"`
	Model   string        `gorm:"not null" json:"model"`
	Year    int           `json:"year,omitempty"`
	Color   string        `json:"color,omitempty"`
	Status  VehicleStatus `gorm:"not null;default:Disponivel" json:"status"`
	Mileage int64         `json:"mileage"`
}
