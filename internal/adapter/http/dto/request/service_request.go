package request

import (
	"errors"
	"time"

	"pintura_pro/internal/domain/entities"
	"pintura_pro/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date")

// dateLayouts accepts the formats the legacy front-end produced: plain
// calendar dates and full ISO timestamps.
var dateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ServiceCreateRequest is the payload for registering a paint job.
//
// ValorServico and OutrasDespesas are legacy aliases kept for compatibility
// with older clients; they are resolved into the canonical fields here and
// nowhere else.
type ServiceCreateRequest struct {
	ServiceDate   string `json:"data_servico" binding:"required"`
	Status        string `json:"status" binding:"required"`
	PaymentStatus string `json:"status_pagamento"`
	EntryType     string `json:"tipo_lancamento"`

	VehicleName   string `json:"nome_veiculo"`
	ClientName    string `json:"cliente_nome" binding:"required"`
	ClientPhone   string `json:"telefone_cliente"`
	CarMake       string `json:"carro_marca"`
	CarModel      string `json:"carro_modelo"`
	CarYear       int    `json:"carro_ano"`
	CarPlate      string `json:"carro_placa"`
	OriginalColor string `json:"cor_original"`
	Description   string `json:"servico_descricao"`
	CategoryID    string `json:"categoria_id"`

	AmountCharged    *float64 `json:"valor_cobrado"`
	ValorServico     *float64 `json:"valor_servico"`
	MaterialsCost    float64  `json:"custo_materiais"`
	ThirdPartyCost   float64  `json:"custo_terceiros"`
	OtherLinkedCosts *float64 `json:"outras_despesas_vinculadas"`
	OutrasDespesas   *float64 `json:"outras_despesas"`

	PaymentMethod   string   `json:"forma_pagamento"`
	Notes           string   `json:"observacoes"`
	RecurringClient bool     `json:"cliente_recorrente"`
	Photos          []string `json:"fotos"`
	ProfilePhotoURL string   `json:"foto_perfil_url"`
}

func (r ServiceCreateRequest) ResolveAmountCharged() float64 {
	if r.AmountCharged != nil {
		return *r.AmountCharged
	}
	if r.ValorServico != nil {
		return *r.ValorServico
	}
	return 0
}

func (r ServiceCreateRequest) ResolveOtherLinkedCosts() float64 {
	if r.OtherLinkedCosts != nil {
		return *r.OtherLinkedCosts
	}
	if r.OutrasDespesas != nil {
		return *r.OutrasDespesas
	}
	return 0
}

// ToEntity maps the request to the domain service. Derived fields (id, net
// profit, payment status) are filled by the usecase.
func (r ServiceCreateRequest) ToEntity() (entities.Service, error) {
	date, err := parseDate(r.ServiceDate)
	if err != nil {
		return entities.Service{}, err
	}

	return entities.Service{
		ServiceDate:      date,
		Status:           entities.ServiceStatus(r.Status),
		PaymentStatus:    entities.PaymentStatus(r.PaymentStatus),
		EntryType:        entities.EntryType(r.EntryType),
		VehicleName:      r.VehicleName,
		ClientName:       r.ClientName,
		ClientPhone:      r.ClientPhone,
		CarMake:          r.CarMake,
		CarModel:         r.CarModel,
		CarYear:          r.CarYear,
		CarPlate:         r.CarPlate,
		OriginalColor:    r.OriginalColor,
		Description:      r.Description,
		CategoryID:       r.CategoryID,
		AmountCharged:    r.ResolveAmountCharged(),
		MaterialsCost:    r.MaterialsCost,
		ThirdPartyCost:   r.ThirdPartyCost,
		OtherLinkedCosts: r.ResolveOtherLinkedCosts(),
		PaymentMethod:    entities.PaymentMethod(r.PaymentMethod),
		Notes:            r.Notes,
		RecurringClient:  r.RecurringClient,
		Photos:           r.Photos,
		ProfilePhotoURL:  r.ProfilePhotoURL,
	}, nil
}

// ServiceUpdateRequest patches a subset of fields; absent fields stay
// untouched. The same legacy aliases are accepted as on create.
type ServiceUpdateRequest struct {
	ServiceDate   *string `json:"data_servico"`
	Status        *string `json:"status"`
	PaymentStatus *string `json:"status_pagamento"`
	EntryType     *string `json:"tipo_lancamento"`

	VehicleName   *string `json:"nome_veiculo"`
	ClientName    *string `json:"cliente_nome"`
	ClientPhone   *string `json:"telefone_cliente"`
	CarMake       *string `json:"carro_marca"`
	CarModel      *string `json:"carro_modelo"`
	CarYear       *int    `json:"carro_ano"`
	CarPlate      *string `json:"carro_placa"`
	OriginalColor *string `json:"cor_original"`
	Description   *string `json:"servico_descricao"`
	CategoryID    *string `json:"categoria_id"`

	AmountCharged    *float64 `json:"valor_cobrado"`
	ValorServico     *float64 `json:"valor_servico"`
	MaterialsCost    *float64 `json:"custo_materiais"`
	ThirdPartyCost   *float64 `json:"custo_terceiros"`
	OtherLinkedCosts *float64 `json:"outras_despesas_vinculadas"`
	OutrasDespesas   *float64 `json:"outras_despesas"`

	PaymentMethod   *string   `json:"forma_pagamento"`
	Notes           *string   `json:"observacoes"`
	RecurringClient *bool     `json:"cliente_recorrente"`
	Photos          *[]string `json:"fotos"`
	ProfilePhotoURL *string   `json:"foto_perfil_url"`
}

func (r ServiceUpdateRequest) ToPatch() (usecase.ServiceUpdate, error) {
	var patch usecase.ServiceUpdate

	if r.ServiceDate != nil {
		date, err := parseDate(*r.ServiceDate)
		if err != nil {
			return usecase.ServiceUpdate{}, err
		}
		patch.ServiceDate = &date
	}
	if r.Status != nil {
		status := entities.ServiceStatus(*r.Status)
		patch.Status = &status
	}
	if r.PaymentStatus != nil {
		ps := entities.PaymentStatus(*r.PaymentStatus)
		patch.PaymentStatus = &ps
	}
	if r.EntryType != nil {
		et := entities.EntryType(*r.EntryType)
		patch.EntryType = &et
	}
	if r.PaymentMethod != nil {
		pm := entities.PaymentMethod(*r.PaymentMethod)
		patch.PaymentMethod = &pm
	}

	patch.VehicleName = r.VehicleName
	patch.ClientName = r.ClientName
	patch.ClientPhone = r.ClientPhone
	patch.CarMake = r.CarMake
	patch.CarModel = r.CarModel
	patch.CarYear = r.CarYear
	patch.CarPlate = r.CarPlate
	patch.OriginalColor = r.OriginalColor
	patch.Description = r.Description
	patch.CategoryID = r.CategoryID
	patch.Notes = r.Notes
	patch.RecurringClient = r.RecurringClient
	patch.Photos = r.Photos
	patch.ProfilePhotoURL = r.ProfilePhotoURL

	patch.AmountCharged = r.AmountCharged
	if patch.AmountCharged == nil {
		patch.AmountCharged = r.ValorServico
	}
	patch.MaterialsCost = r.MaterialsCost
	patch.ThirdPartyCost = r.ThirdPartyCost
	patch.OtherLinkedCosts = r.OtherLinkedCosts
	if patch.OtherLinkedCosts == nil {
		patch.OtherLinkedCosts = r.OutrasDespesas
	}

	return patch, nil
}
