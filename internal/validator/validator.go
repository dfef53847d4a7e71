// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"frota/internal/cycle"
	"frota/internal/models"
	"frota/internal/taxonomy"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cost_category", validateCostCategory)
		_ = v.RegisterValidation("payable_category", validatePayableCategory)
		_ = v.RegisterValidation("cost_origin", validateCostOrigin)
		_ = v.RegisterValidation("cost_status", validateCostStatus)
		_ = v.RegisterValidation("payable_status", validatePayableStatus)
		_ = v.RegisterValidation("salary_status", validateSalaryStatus)
		_ = v.RegisterValidation("fleet_status", validateFleetStatus)
		_ = v.RegisterValidation("vehicle_status", validateVehicleStatus)
		_ = v.RegisterValidation("due_day", validateDueDay)
		_ = v.RegisterValidation("month", validateMonth)
	}
}

func validateCostCategory(fl validator.FieldLevel) bool {
	return taxonomy.CostCategory(fl.Field().String()).Valid()
}

// Payable categories are open text; only blank values are refused.
func validatePayableCategory(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	return s != "" && len(s) <= 100
}

func validateCostOrigin(fl validator.FieldLevel) bool {
	return taxonomy.Origin(fl.Field().String()).Valid()
}

func validateCostStatus(fl validator.FieldLevel) bool {
	return taxonomy.CostStatus(fl.Field().String()).Valid()
}

func validatePayableStatus(fl validator.FieldLevel) bool {
	return taxonomy.PayableStatus(fl.Field().String()).Valid()
}

func validateSalaryStatus(fl validator.FieldLevel) bool {
	switch taxonomy.SalaryStatus(fl.Field().String()) {
	case taxonomy.SalaryPendente, taxonomy.SalaryPago:
		return true
	}
	return false
}

func validateFleetStatus(fl validator.FieldLevel) bool {
	switch models.FleetEventStatus(fl.Field().String()) {
	case models.FleetEventPendente, models.FleetEventCobrado, models.FleetEventPago, models.FleetEventCancelado:
		return true
	}
	return false
}

func validateVehicleStatus(fl validator.FieldLevel) bool {
	switch models.VehicleStatus(fl.Field().String()) {
	case models.VehicleDisponivel, models.VehicleAlugado, models.VehicleManutencao, models.VehicleInativo:
		return true
	}
	return false
}

func validateDueDay(fl validator.FieldLevel) bool {
	d := fl.Field().Int()
	return d >= 1 && d <= 31
}

func validateMonth(fl validator.FieldLevel) bool {
	_, err := cycle.ParseMonth(fl.Field().String())
	return err == nil
}
