package request

import (
	"testing"
	"time"

	"pintura_pro/internal/domain/entities"
)

func TestServiceCreateRequest_LegacyAliases(t *testing.T) {
	amount := 1000.0
	legacyAmount := 800.0
	other := 50.0

	t.Run("canonical fields win", func(t *testing.T) {
		r := ServiceCreateRequest{AmountCharged: &amount, ValorServico: &legacyAmount, OtherLinkedCosts: &other}
		if got := r.ResolveAmountCharged(); got != 1000 {
			t.Fatalf("expected 1000, got %v", got)
		}
		if got := r.ResolveOtherLinkedCosts(); got != 50 {
			t.Fatalf("expected 50, got %v", got)
		}
	})

	t.Run("legacy aliases fill the gap", func(t *testing.T) {
		r := ServiceCreateRequest{ValorServico: &legacyAmount, OutrasDespesas: &other}
		if got := r.ResolveAmountCharged(); got != 800 {
			t.Fatalf("expected 800, got %v", got)
		}
		if got := r.ResolveOtherLinkedCosts(); got != 50 {
			t.Fatalf("expected 50, got %v", got)
		}
	})

	t.Run("absent means zero", func(t *testing.T) {
		r := ServiceCreateRequest{}
		if r.ResolveAmountCharged() != 0 || r.ResolveOtherLinkedCosts() != 0 {
			t.Fatalf("expected zeros")
		}
	})
}

func TestServiceCreateRequest_ToEntity(t *testing.T) {
	t.Run("plain calendar date", func(t *testing.T) {
		r := ServiceCreateRequest{
			ServiceDate: "2024-03-10",
			Status:      "Em andamento",
			ClientName:  "João",
		}
		s, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
		if !s.ServiceDate.Equal(want) {
			t.Fatalf("expected %v, got %v", want, s.ServiceDate)
		}
		if s.Status != entities.ServiceStatusEmAndamento {
			t.Fatalf("unexpected status: %s", s.Status)
		}
	})

	t.Run("iso timestamp", func(t *testing.T) {
		r := ServiceCreateRequest{ServiceDate: "2024-03-10T14:30:00Z", Status: "Pago", ClientName: "João"}
		if _, err := r.ToEntity(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("garbage date", func(t *testing.T) {
		r := ServiceCreateRequest{ServiceDate: "10/03/2024", Status: "Pago", ClientName: "João"}
		if _, err := r.ToEntity(); err == nil {
			t.Fatalf("expected date error")
		}
	})
}

func TestServiceUpdateRequest_ToPatch(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		patch, err := ServiceUpdateRequest{}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.ServiceDate != nil || patch.Status != nil || patch.AmountCharged != nil {
			t.Fatalf("expected empty patch, got %+v", patch)
		}
	})

	t.Run("legacy amount alias", func(t *testing.T) {
		legacy := 750.0
		patch, err := ServiceUpdateRequest{ValorServico: &legacy}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.AmountCharged == nil || *patch.AmountCharged != 750 {
			t.Fatalf("expected aliased amount, got %+v", patch.AmountCharged)
		}
	})

	t.Run("typed fields convert", func(t *testing.T) {
		status := "Finalizado"
		date := "2024-04-01"
		patch, err := ServiceUpdateRequest{Status: &status, ServiceDate: &date}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.Status == nil || *patch.Status != entities.ServiceStatusFinalizado {
			t.Fatalf("unexpected status patch: %+v", patch.Status)
		}
		if patch.ServiceDate == nil || patch.ServiceDate.Day() != 1 {
			t.Fatalf("unexpected date patch: %+v", patch.ServiceDate)
		}
	})
}
