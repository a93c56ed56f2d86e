package request

import (
	"pintura_pro/internal/domain/entities"
	"pintura_pro/internal/usecase"
)

// ExpenseCreateRequest is the payload for a manual expense. Origin is never
// accepted from the client; every expense created here is "manual".
type ExpenseCreateRequest struct {
	ExpenseDate   string  `json:"data_despesa" binding:"required"`
	Type          string  `json:"tipo_despesa" binding:"required"`
	Description   string  `json:"descricao" binding:"required"`
	Amount        float64 `json:"valor" binding:"required"`
	PaymentMethod string  `json:"forma_pagamento"`
	PaymentStatus string  `json:"status_pagamento"`
	Notes         string  `json:"observacoes"`
}

func (r ExpenseCreateRequest) ToEntity() (entities.Expense, error) {
	date, err := parseDate(r.ExpenseDate)
	if err != nil {
		return entities.Expense{}, err
	}

	return entities.Expense{
		ExpenseDate:   date,
		Type:          entities.ExpenseType(r.Type),
		Description:   r.Description,
		Amount:        r.Amount,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		PaymentStatus: entities.ExpensePaymentStatus(r.PaymentStatus),
		Notes:         r.Notes,
	}, nil
}

type ExpenseUpdateRequest struct {
	ExpenseDate   *string  `json:"data_despesa"`
	Type          *string  `json:"tipo_despesa"`
	Description   *string  `json:"descricao"`
	Amount        *float64 `json:"valor"`
	PaymentMethod *string  `json:"forma_pagamento"`
	PaymentStatus *string  `json:"status_pagamento"`
	Notes         *string  `json:"observacoes"`
}

func (r ExpenseUpdateRequest) ToPatch() (usecase.ExpenseUpdate, error) {
	var patch usecase.ExpenseUpdate

	if r.ExpenseDate != nil {
		date, err := parseDate(*r.ExpenseDate)
		if err != nil {
			return usecase.ExpenseUpdate{}, err
		}
		patch.ExpenseDate = &date
	}
	if r.Type != nil {
		t := entities.ExpenseType(*r.Type)
		patch.Type = &t
	}
	if r.PaymentMethod != nil {
		pm := entities.PaymentMethod(*r.PaymentMethod)
		patch.PaymentMethod = &pm
	}
	if r.PaymentStatus != nil {
		ps := entities.ExpensePaymentStatus(*r.PaymentStatus)
		patch.PaymentStatus = &ps
	}

	patch.Description = r.Description
	patch.Amount = r.Amount
	patch.Notes = r.Notes

	return patch, nil
}

// CategoryCreateRequest is the payload for adding a job category.
type CategoryCreateRequest struct {
	Name string `json:"nome_categoria" binding:"required"`
}
