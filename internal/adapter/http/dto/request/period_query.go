package request

import (
	"pintura_pro/internal/domain/period"
)

// PeriodQuery is the query-string form of a period filter, shared by the
// list and report endpoints. An empty Periodo means "no period filter".
type PeriodQuery struct {
	Periodo    string `form:"periodo"`
	DataInicio string `form:"data_inicio"`
	DataFim    string `form:"data_fim"`
}

// ToFilter converts the query into a domain period filter. A nil result means
// the caller asked for no period narrowing at all.
func (q PeriodQuery) ToFilter() (*period.Filter, error) {
	if q.Periodo == "" && q.DataInicio == "" && q.DataFim == "" {
		return nil, nil
	}

	f := period.Filter{Type: period.Type(q.Periodo)}
	if f.Type == "" {
		f.Type = period.Custom
	}

	if q.DataInicio != "" {
		start, err := parseDate(q.DataInicio)
		if err != nil {
			return nil, err
		}
		f.StartDate = &start
	}
	if q.DataFim != "" {
		end, err := parseDate(q.DataFim)
		if err != nil {
			return nil, err
		}
		f.EndDate = &end
	}
	return &f, nil
}
