package entities

// Summary is the financial overview of a period.

type Summary struct {
	Revenue       float64 `json:"faturamento"`
	Expenses      float64 `json:"despesas"`
	NetProfit     float64 `json:"lucro_liquido"`
	ServiceCount  int     `json:"numero_servicos"`
	AverageTicket float64 `json:"ticket_medio"`
}

// CalculateSummary aggregates a period-filtered service collection against a
// pre-computed expense total for the same period.
//
// Revenue counts only services that are Finalizado or Pago. The expense input
// comes from the expense collection (manual and derived alike), deliberately
// independent of the services' own cost fields.
func CalculateSummary(services []Service, periodExpenseTotal float64) Summary {
	revenue := 0.0
	count := 0
	for _, s := range services {
		if s.Status == ServiceStatusFinalizado || s.Status == ServiceStatusPago {
			revenue += s.AmountCharged
			count++
		}
	}

	avg := 0.0
	if count > 0 {
		avg = revenue / float64(count)
	}

	return Summary{
		Revenue:       revenue,
		Expenses:      periodExpenseTotal,
		NetProfit:     revenue - periodExpenseTotal,
		ServiceCount:  count,
		AverageTicket: avg,
	}
}
