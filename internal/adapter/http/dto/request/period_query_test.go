package request

import (
	"testing"

	"pintura_pro/internal/domain/period"
)

func TestPeriodQuery_ToFilter(t *testing.T) {
	t.Run("empty query means no filter", func(t *testing.T) {
		f, err := PeriodQuery{}.ToFilter()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f != nil {
			t.Fatalf("expected nil filter, got %+v", f)
		}
	})

	t.Run("named window", func(t *testing.T) {
		f, err := PeriodQuery{Periodo: "mes_anterior"}.ToFilter()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f == nil || f.Type != period.PreviousMonth {
			t.Fatalf("unexpected filter: %+v", f)
		}
	})

	t.Run("bare dates imply personalizado", func(t *testing.T) {
		f, err := PeriodQuery{DataInicio: "2024-01-05", DataFim: "2024-02-10"}.ToFilter()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f == nil || f.Type != period.Custom {
			t.Fatalf("unexpected filter: %+v", f)
		}
		if f.StartDate == nil || f.EndDate == nil {
			t.Fatalf("expected both bounds, got %+v", f)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		if _, err := (PeriodQuery{DataInicio: "05/01/2024"}).ToFilter(); err == nil {
			t.Fatalf("expected date error")
		}
	})
}
