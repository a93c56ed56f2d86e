package entities

import "time"

// ServiceStatus represents the lifecycle of a paint job (serviço).
//
// Domain notes:
//   - The ledger is the source of truth for service state.
//   - "Finalizado" and "Pago" are the only statuses that count as revenue.

type ServiceStatus string

const (
	ServiceStatusOrcamento   ServiceStatus = "Orçamento"
	ServiceStatusEmAndamento ServiceStatus = "Em andamento"
	ServiceStatusFinalizado  ServiceStatus = "Finalizado"
	ServiceStatusPago        ServiceStatus = "Pago"
)

// PaymentStatus is the derived settlement state of a service.

type PaymentStatus string

const (
	PaymentStatusPendente  PaymentStatus = "pendente"
	PaymentStatusResolvido PaymentStatus = "resolvido"
)

// EntryType classifies a service as a revenue or expense entry.

type EntryType string

const (
	EntryTypeReceita EntryType = "receita"
	EntryTypeDespesa EntryType = "despesa"
)

// PaymentMethod mirrors the forms of payment accepted by the shop.

type PaymentMethod string

const (
	PaymentMethodDinheiro      PaymentMethod = "Dinheiro"
	PaymentMethodPix           PaymentMethod = "Pix"
	PaymentMethodCartaoCredito PaymentMethod = "Cartão crédito"
	PaymentMethodCartaoDebito  PaymentMethod = "Cartão débito"
	PaymentMethodTransferencia PaymentMethod = "Transferência"
	PaymentMethodOutro         PaymentMethod = "Outro"
)

// Service is one paint job, the unit of revenue.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - NetProfit is derived and must always satisfy
//     NetProfit == AmountCharged - (MaterialsCost + ThirdPartyCost + OtherLinkedCosts).
//     It is recomputed on every write that touches any of those fields.

type Service struct {
	ID            string        `json:"id"`
	ServiceDate   time.Time     `json:"data_servico"`
	Status        ServiceStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"status_pagamento,omitempty"`
	EntryType     EntryType     `json:"tipo_lancamento,omitempty"`

	VehicleName   string `json:"nome_veiculo"`
	ClientName    string `json:"cliente_nome"`
	ClientPhone   string `json:"telefone_cliente"`
	CarMake       string `json:"carro_marca"`
	CarModel      string `json:"carro_modelo"`
	CarYear       int    `json:"carro_ano"`
	CarPlate      string `json:"carro_placa"`
	OriginalColor string `json:"cor_original"`
	Description   string `json:"servico_descricao"`
	CategoryID    string `json:"categoria_id,omitempty"`

	AmountCharged    float64 `json:"valor_cobrado"`
	MaterialsCost    float64 `json:"custo_materiais"`
	ThirdPartyCost   float64 `json:"custo_terceiros"`
	OtherLinkedCosts float64 `json:"outras_despesas_vinculadas"`
	NetProfit        float64 `json:"lucro_liquido"`

	PaymentMethod   PaymentMethod `json:"forma_pagamento"`
	Notes           string        `json:"observacoes"`
	RecurringClient bool          `json:"cliente_recorrente,omitempty"`
	Photos          []string      `json:"fotos,omitempty"`
	ProfilePhotoURL string        `json:"foto_perfil_url,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// CalculateNetProfit returns the charged amount minus all linked cost
// components. Always defined, may be negative.
func CalculateNetProfit(charged, materials, thirdParty, other float64) float64 {
	return charged - (materials + thirdParty + other)
}

// Recalculate refreshes the derived NetProfit from the current cost fields.
func (s *Service) Recalculate() {
	s.NetProfit = CalculateNetProfit(s.AmountCharged, s.MaterialsCost, s.ThirdPartyCost, s.OtherLinkedCosts)
}

// ResolvePaymentStatus returns the stored payment status when present,
// otherwise derives it from the lifecycle status: resolvido iff the service
// is Finalizado or Pago.
func ResolvePaymentStatus(s Service) PaymentStatus {
	if s.PaymentStatus != "" {
		return s.PaymentStatus
	}
	return DerivePaymentStatus(s.Status)
}

// DerivePaymentStatus is the authoritative status -> payment status mapping.
// It is applied at write time so the stored field is never ambiguous on read.
func DerivePaymentStatus(status ServiceStatus) PaymentStatus {
	if status == ServiceStatusPago || status == ServiceStatusFinalizado {
		return PaymentStatusResolvido
	}
	return PaymentStatusPendente
}

// ResolveEntryType returns the stored entry type, defaulting to receita.
func ResolveEntryType(s Service) EntryType {
	if s.EntryType != "" {
		return s.EntryType
	}
	return EntryTypeReceita
}
