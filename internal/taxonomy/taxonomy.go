// Package taxonomy is the single source of truth for the category, status and
// origin vocabularies shared by costs, accounts payable and salaries.
//
// The values are the Portuguese strings stored in the database and shown to
// back-office users, so they are kept verbatim (accents included).
package taxonomy

import "strings"

// CostCategory is a category accepted on a Cost row.
type CostCategory string

const (
	CostMulta       CostCategory = "Multa"
	CostFunilaria   CostCategory = "Funilaria"
	CostSeguro      CostCategory = "Seguro"
	CostAvulsa      CostCategory = "Avulsa"
	CostCompra      CostCategory = "Compra"
	CostExcessoKm   CostCategory = "Excesso Km"
	CostDiariaExtra CostCategory = "Diária Extra"
	CostCombustivel CostCategory = "Combustível"
	CostAvaria      CostCategory = "Avaria"
	CostDespesas    CostCategory = "Despesas"
)

// CostCategories is the allow-list of cost categories, in display order.
var CostCategories = []CostCategory{
	CostMulta,
	CostFunilaria,
	CostSeguro,
	CostAvulsa,
	CostCompra,
	CostExcessoKm,
	CostDiariaExtra,
	CostCombustivel,
	CostAvaria,
	CostDespesas,
}

// CategoryLabels maps each cost category to its display label.
var CategoryLabels = map[CostCategory]string{
	CostMulta:       "Multa de trânsito",
	CostFunilaria:   "Funilaria e pintura",
	CostSeguro:      "Seguro",
	CostAvulsa:      "Despesa avulsa",
	CostCompra:      "Compra",
	CostExcessoKm:   "Excesso de quilometragem",
	CostDiariaExtra: "Diária extra",
	CostCombustivel: "Combustível",
	CostAvaria:      "Avaria",
	CostDespesas:    "Despesas gerais",
}

// Valid reports whether c is in the allow-list.
func (c CostCategory) Valid() bool {
	for _, known := range CostCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the display label of the category, or the raw value.
func (c CostCategory) Label() string {
	if l, ok := CategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func lookupCostCategory(s string) (CostCategory, bool) {
	s = strings.TrimSpace(s)
	for _, c := range CostCategories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// Accounts payable categories. Payables accept free text, these are the
// values the system itself produces or gives special treatment to.
const (
	PayableSalario           = "Salário"
	PayableDespesaRecorrente = "Despesa Recorrente"
	PayableSeguro            = "Seguro"
	PayableAvulsa            = "Avulsa"
	PayableDespesas          = "Despesas"
)

// PayableCategories lists the categories offered when entering a payable.
var PayableCategories = []string{
	PayableSalario,
	PayableDespesaRecorrente,
	PayableSeguro,
	PayableAvulsa,
	PayableDespesas,
}

// recurringCategories produce recurring costs when paid.
var recurringCategories = []string{
	PayableSalario,
	PayableDespesaRecorrente,
	PayableSeguro,
	PayableDespesas,
}

// CostCategoryFor translates a payable category into the cost allow-list.
// It is total: unrecognized categories fall back to Despesas.
func CostCategoryFor(payableCategory string) CostCategory {
	switch {
	case equal(payableCategory, PayableSalario), equal(payableCategory, PayableDespesaRecorrente):
		return CostDespesas
	}
	if c, ok := lookupCostCategory(payableCategory); ok {
		return c
	}
	return CostDespesas
}

// IsRecurringCategory reports whether paying a payable of this category
// produces a recurring cost.
func IsRecurringCategory(payableCategory string) bool {
	for _, c := range recurringCategories {
		if equal(payableCategory, c) {
			return true
		}
	}
	return false
}

// IsRecurringExpense reports whether the category is the one that drives the
// next-cycle regeneration of recurring expense templates.
func IsRecurringExpense(payableCategory string) bool {
	return equal(payableCategory, PayableDespesaRecorrente)
}

func equal(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), b)
}

// Origin tags which subsystem produced a cost.
type Origin string

const (
	OriginUsuario    Origin = "Usuario"
	OriginPatio      Origin = "Patio"
	OriginManutencao Origin = "Manutencao"
	OriginSistema    Origin = "Sistema"
	OriginCompras    Origin = "Compras"
	OriginFinanceiro Origin = "Financeiro"
)

// OriginLabels maps each origin to its display label.
var OriginLabels = map[Origin]string{
	OriginUsuario:    "Lançamento manual",
	OriginPatio:      "Controle de pátio",
	OriginManutencao: "Manutenção",
	OriginSistema:    "Sistema",
	OriginCompras:    "Compras",
	OriginFinanceiro: "Financeiro",
}

// Valid reports whether o is a known origin.
func (o Origin) Valid() bool {
	_, ok := OriginLabels[o]
	return ok
}

// Label returns the display label of the origin, or the raw value.
func (o Origin) Label() string {
	if l, ok := OriginLabels[o]; ok {
		return l
	}
	return string(o)
}

// CostStatus is the lifecycle status of a cost.
type CostStatus string

const (
	CostPendente  CostStatus = "Pendente"
	CostPago      CostStatus = "Pago"
	CostCancelado CostStatus = "Cancelado"
)

// Valid reports whether s is a known cost status.
func (s CostStatus) Valid() bool {
	switch s {
	case CostPendente, CostPago, CostCancelado:
		return true
	}
	return false
}

// PayableStatus is the lifecycle status of an accounts payable entry.
type PayableStatus string

const (
	PayablePendente   PayableStatus = "Pendente"
	PayableAutorizado PayableStatus = "Autorizado"
	PayablePago       PayableStatus = "Pago"
)

// Valid reports whether s is a known payable status.
func (s PayableStatus) Valid() bool {
	switch s {
	case PayablePendente, PayableAutorizado, PayablePago:
		return true
	}
	return false
}

// CanTransition reports whether a payable may move from one status to another.
// Pendente → Autorizado → Pago, Autorizado may be skipped, Pago is terminal.
func CanTransition(from, to PayableStatus) bool {
	switch from {
	case PayablePendente:
		return to == PayableAutorizado || to == PayablePago
	case PayableAutorizado:
		return to == PayablePago
	}
	return false
}

// SalaryStatus is the payment status of a salary.
type SalaryStatus string

const (
	SalaryPendente SalaryStatus = "Pendente"
	SalaryPago     SalaryStatus = "Pago"
)

// RecurrenceMonthly is the only recurrence type the system produces.
const RecurrenceMonthly = "monthly"

// Source reference types stored on costs and payables.
const (
	SourceAccountsPayable = "accounts_payable"
	SourceCost            = "cost"
	SourceSalary          = "salary"
	SourceFine            = "fine"
	SourceDamage          = "inspection_damage"
	SourceServiceNote     = "service_note"
)
