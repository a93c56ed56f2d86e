package response

import (
	"time"

	"pintura_pro/internal/domain/entities"
	"pintura_pro/pkg"
)

type ServiceResponse struct {
	ID            string    `json:"id"`
	ServiceDate   time.Time `json:"data_servico"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"status_pagamento"`
	EntryType     string    `json:"tipo_lancamento"`

	VehicleName   string `json:"nome_veiculo"`
	ClientName    string `json:"cliente_nome"`
	ClientPhone   string `json:"telefone_cliente,omitempty"`
	CarMake       string `json:"carro_marca,omitempty"`
	CarModel      string `json:"carro_modelo,omitempty"`
	CarYear       int    `json:"carro_ano,omitempty"`
	CarPlate      string `json:"carro_placa,omitempty"`
	OriginalColor string `json:"cor_original,omitempty"`
	Description   string `json:"servico_descricao,omitempty"`
	CategoryID    string `json:"categoria_id,omitempty"`

	AmountCharged    float64 `json:"valor_cobrado"`
	MaterialsCost    float64 `json:"custo_materiais"`
	ThirdPartyCost   float64 `json:"custo_terceiros"`
	OtherLinkedCosts float64 `json:"outras_despesas_vinculadas"`
	NetProfit        float64 `json:"lucro_liquido"`

	AmountChargedFmt string `json:"valor_cobrado_formatado"`
	NetProfitFmt     string `json:"lucro_liquido_formatado"`

	PaymentMethod   string   `json:"forma_pagamento,omitempty"`
	Notes           string   `json:"observacoes,omitempty"`
	RecurringClient bool     `json:"cliente_recorrente"`
	Photos          []string `json:"fotos,omitempty"`
	ProfilePhotoURL string   `json:"foto_perfil_url,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:               s.ID,
		ServiceDate:      s.ServiceDate,
		Status:           string(s.Status),
		PaymentStatus:    string(entities.ResolvePaymentStatus(s)),
		EntryType:        string(entities.ResolveEntryType(s)),
		VehicleName:      s.VehicleName,
		ClientName:       s.ClientName,
		ClientPhone:      s.ClientPhone,
		CarMake:          s.CarMake,
		CarModel:         s.CarModel,
		CarYear:          s.CarYear,
		CarPlate:         s.CarPlate,
		OriginalColor:    s.OriginalColor,
		Description:      s.Description,
		CategoryID:       s.CategoryID,
		AmountCharged:    s.AmountCharged,
		MaterialsCost:    s.MaterialsCost,
		ThirdPartyCost:   s.ThirdPartyCost,
		OtherLinkedCosts: s.OtherLinkedCosts,
		NetProfit:        s.NetProfit,
		AmountChargedFmt: pkg.FormatBRL(s.AmountCharged),
		NetProfitFmt:     pkg.FormatBRL(s.NetProfit),
		PaymentMethod:    string(s.PaymentMethod),
		Notes:            s.Notes,
		RecurringClient:  s.RecurringClient,
		Photos:           s.Photos,
		ProfilePhotoURL:  s.ProfilePhotoURL,
		CreatedAt:        s.CreatedAt,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
