package entities

import (
	"fmt"
	"time"
)

// ExpenseOrigin tells who owns an expense record.
//
//   - "manual"  -> created and edited by the user
//   - "servico" -> projection of a service's cost fields, fully owned and
//     regenerated by the synchronization engine; never edited directly

type ExpenseOrigin string

const (
	ExpenseOriginServico ExpenseOrigin = "servico"
	ExpenseOriginManual  ExpenseOrigin = "manual"
)

// ExpenseType is the category tag of an expense.

type ExpenseType string

const (
	ExpenseTypeTinta      ExpenseType = "Tinta"
	ExpenseTypeMassa      ExpenseType = "Massa"
	ExpenseTypeLixa       ExpenseType = "Lixa"
	ExpenseTypeVerniz     ExpenseType = "Verniz"
	ExpenseTypeEquipa     ExpenseType = "Compressor/Equipamentos"
	ExpenseTypeEPI        ExpenseType = "EPI (máscara, luva, etc.)"
	ExpenseTypeLuzAgua    ExpenseType = "Luz/Água"
	ExpenseTypeAluguel    ExpenseType = "Aluguel"
	ExpenseTypeTransporte ExpenseType = "Transporte"
	ExpenseTypeOutros     ExpenseType = "Outros"
	ExpenseTypeMateriais  ExpenseType = "Materiais"
	ExpenseTypeTerceiros  ExpenseType = "Terceiros"
)

// ExpensePaymentStatus applies to manual expenses only.

type ExpensePaymentStatus string

const (
	ExpensePaymentStatusPago     ExpensePaymentStatus = "pago"
	ExpensePaymentStatusPendente ExpensePaymentStatus = "pendente"
)

// Expense is one monetary outflow.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (servico_id-index): servico_id
//
// ServiceID is non-empty iff Origin == servico. Derived expenses carry
// deterministic ids (see MaterialsExpenseID and friends) so regeneration
// overwrites instead of duplicating.

type Expense struct {
	ID            string               `json:"id"`
	ExpenseDate   time.Time            `json:"data_despesa"`
	Type          ExpenseType          `json:"tipo_despesa"`
	Description   string               `json:"descricao"`
	Amount        float64              `json:"valor"`
	Origin        ExpenseOrigin        `json:"origem"`
	ServiceID     string               `json:"servico_id,omitempty"`
	PaymentMethod PaymentMethod        `json:"forma_pagamento,omitempty"`
	PaymentStatus ExpensePaymentStatus `json:"status_pagamento,omitempty"`
	Notes         string               `json:"observacoes"`
	CreatedAt     time.Time            `json:"created_at,omitempty"`
}

// Deterministic ids for service-derived expenses, one per cost component.

func MaterialsExpenseID(serviceID string) string  { return "dsp-mat-" + serviceID }
func ThirdPartyExpenseID(serviceID string) string { return "dsp-ter-" + serviceID }
func OtherExpenseID(serviceID string) string      { return "dsp-out-" + serviceID }

// DerivedExpenses builds the projection of a service's cost breakdown: one
// expense per strictly positive cost component. A service with all costs at
// zero projects to an empty set.
func DerivedExpenses(s Service) []Expense {
	vehicle := fmt.Sprintf("%s (%s %s)", s.ClientName, s.CarMake, s.CarModel)

	var out []Expense
	if s.MaterialsCost > 0 {
		out = append(out, Expense{
			ID:            MaterialsExpenseID(s.ID),
			ExpenseDate:   s.ServiceDate,
			Type:          ExpenseTypeMateriais,
			Description:   "Materiais - " + vehicle,
			Amount:        s.MaterialsCost,
			Origin:        ExpenseOriginServico,
			ServiceID:     s.ID,
			PaymentMethod: s.PaymentMethod,
			Notes:         "Custo de materiais do serviço: " + s.Description,
		})
	}
	if s.ThirdPartyCost > 0 {
		out = append(out, Expense{
			ID:            ThirdPartyExpenseID(s.ID),
			ExpenseDate:   s.ServiceDate,
			Type:          ExpenseTypeTerceiros,
			Description:   "Terceiros - " + vehicle,
			Amount:        s.ThirdPartyCost,
			Origin:        ExpenseOriginServico,
			ServiceID:     s.ID,
			PaymentMethod: s.PaymentMethod,
			Notes:         "Custo de terceiros do serviço: " + s.Description,
		})
	}
	if s.OtherLinkedCosts > 0 {
		out = append(out, Expense{
			ID:            OtherExpenseID(s.ID),
			ExpenseDate:   s.ServiceDate,
			Type:          ExpenseTypeOutros,
			Description:   "Outras despesas - " + vehicle,
			Amount:        s.OtherLinkedCosts,
			Origin:        ExpenseOriginServico,
			ServiceID:     s.ID,
			PaymentMethod: s.PaymentMethod,
			Notes:         "Outras despesas do serviço: " + s.Description,
		})
	}
	return out
}

// TotalExpenses sums the amounts of a filtered expense collection.
func TotalExpenses(expenses []Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}
