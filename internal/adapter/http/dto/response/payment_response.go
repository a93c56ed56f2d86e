package response

import (
	"time"

	"pintura_pro/internal/domain/entities"
)

type PaymentResponse struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"servico_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		ServiceID:       p.ServiceID,
		Date:            p.Date,
		Status:          string(p.Status),
		ProviderPayload: p.ProviderPayload,
	}
}
