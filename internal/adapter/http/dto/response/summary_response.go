package response

import (
	"pintura_pro/internal/domain/entities"
	"pintura_pro/pkg"
)

type SummaryResponse struct {
	Revenue       float64 `json:"faturamento"`
	Expenses      float64 `json:"despesas"`
	NetProfit     float64 `json:"lucro_liquido"`
	ServiceCount  int     `json:"numero_servicos"`
	AverageTicket float64 `json:"ticket_medio"`

	RevenueFmt       string `json:"faturamento_formatado"`
	ExpensesFmt      string `json:"despesas_formatado"`
	NetProfitFmt     string `json:"lucro_liquido_formatado"`
	AverageTicketFmt string `json:"ticket_medio_formatado"`
}

func FromSummary(s entities.Summary) SummaryResponse {
	return SummaryResponse{
		Revenue:          s.Revenue,
		Expenses:         s.Expenses,
		NetProfit:        s.NetProfit,
		ServiceCount:     s.ServiceCount,
		AverageTicket:    s.AverageTicket,
		RevenueFmt:       pkg.FormatBRL(s.Revenue),
		ExpensesFmt:      pkg.FormatBRL(s.Expenses),
		NetProfitFmt:     pkg.FormatBRL(s.NetProfit),
		AverageTicketFmt: pkg.FormatBRL(s.AverageTicket),
	}
}
