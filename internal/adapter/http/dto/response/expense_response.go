package response

import (
	"time"

	"pintura_pro/internal/domain/entities"
	"pintura_pro/pkg"
)

type ExpenseResponse struct {
	ID            string    `json:"id"`
	ExpenseDate   time.Time `json:"data_despesa"`
	Type          string    `json:"tipo_despesa"`
	Description   string    `json:"descricao"`
	Amount        float64   `json:"valor"`
	AmountFmt     string    `json:"valor_formatado"`
	Origin        string    `json:"origem"`
	ServiceID     string    `json:"servico_id,omitempty"`
	PaymentMethod string    `json:"forma_pagamento,omitempty"`
	PaymentStatus string    `json:"status_pagamento,omitempty"`
	Notes         string    `json:"observacoes,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		ExpenseDate:   e.ExpenseDate,
		Type:          string(e.Type),
		Description:   e.Description,
		Amount:        e.Amount,
		AmountFmt:     pkg.FormatBRL(e.Amount),
		Origin:        string(e.Origin),
		ServiceID:     e.ServiceID,
		PaymentMethod: string(e.PaymentMethod),
		PaymentStatus: string(e.PaymentStatus),
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
	}
}

func FromExpenses(expenses []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}
