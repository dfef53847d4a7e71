package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type payload struct {
	Category string `binding:"omitempty,cost_category"`
	Origin   string `binding:"omitempty,cost_origin"`
	Status   string `binding:"omitempty,payable_status"`
	Fleet    string `binding:"omitempty,fleet_status"`
	DueDay   int    `binding:"omitempty,due_day"`
	Month    string `binding:"omitempty,month"`
	Payable  string `binding:"omitempty,payable_category"`
}

func TestRegister(t *testing.T) {
	Register()

	tests := []struct {
		name  string
		in    payload
		valid bool
	}{
		{"empty", payload{}, true},
		{"known cost category", payload{Category: "Combustível"}, true},
		{"unknown cost category", payload{Category: "Lanche"}, false},
		{"known origin", payload{Origin: "Financeiro"}, true},
		{"unknown origin", payload{Origin: "Banco"}, false},
		{"payable status", payload{Status: "Autorizado"}, true},
		{"lowercase payable status", payload{Status: "pago"}, false},
		{"fleet status", payload{Fleet: "Cobrado"}, true},
		{"due day 31", payload{DueDay: 31}, true},
		{"due day 32", payload{DueDay: 32}, false},
		{"month", payload{Month: "2025-03"}, true},
		{"bad month", payload{Month: "2025-13"}, false},
		{"free payable category", payload{Payable: "Internet"}, true},
		{"blank payable category", payload{Payable: "   "}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.in)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
