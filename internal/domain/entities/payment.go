package entities

import (
	"encoding/json"
	"time"
)

// SettlementStatus represents the payment processing outcome for a service
// settled through the payment gateway.

type SettlementStatus string

const (
	SettlementStatusPendente SettlementStatus = "pendente"
	SettlementStatusAprovado SettlementStatus = "aprovado"
	SettlementStatusNegado   SettlementStatus = "negado"
)

// Payment is a gateway settlement of a service's charged amount.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (servico_id-index): servico_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability.
//   - ProviderPayload is an optional parsed representation.

type Payment struct {
	ID        string           `json:"id"`
	ServiceID string           `json:"servico_id"`
	Date      time.Time        `json:"date"`
	Status    SettlementStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
