package entities

import (
	"testing"
	"time"
)

func TestCalculateNetProfit(t *testing.T) {
	cases := []struct {
		name                                  string
		charged, materials, thirdParty, other float64
		want                                  float64
	}{
		{name: "typical job", charged: 1000, materials: 200, thirdParty: 0, other: 50, want: 750},
		{name: "all zero", want: 0},
		{name: "costs exceed charge", charged: 100, materials: 150, want: -50},
		{name: "no costs", charged: 300, want: 300},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateNetProfit(tc.charged, tc.materials, tc.thirdParty, tc.other)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestServiceRecalculate(t *testing.T) {
	s := Service{
		AmountCharged:    1000,
		MaterialsCost:    200,
		OtherLinkedCosts: 50,
		NetProfit:        -1, // stale
	}
	s.Recalculate()
	if s.NetProfit != 750 {
		t.Fatalf("expected 750, got %v", s.NetProfit)
	}
}

func TestDerivePaymentStatus(t *testing.T) {
	cases := []struct {
		status ServiceStatus
		want   PaymentStatus
	}{
		{ServiceStatusPago, PaymentStatusResolvido},
		{ServiceStatusFinalizado, PaymentStatusResolvido},
		{ServiceStatusOrcamento, PaymentStatusPendente},
		{ServiceStatusEmAndamento, PaymentStatusPendente},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			if got := DerivePaymentStatus(tc.status); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestResolvePaymentStatus(t *testing.T) {
	t.Run("stored value wins", func(t *testing.T) {
		s := Service{Status: ServiceStatusPago, PaymentStatus: PaymentStatusPendente}
		if got := ResolvePaymentStatus(s); got != PaymentStatusPendente {
			t.Fatalf("expected stored pendente, got %s", got)
		}
	})

	t.Run("derived when empty", func(t *testing.T) {
		s := Service{Status: ServiceStatusFinalizado}
		if got := ResolvePaymentStatus(s); got != PaymentStatusResolvido {
			t.Fatalf("expected resolvido, got %s", got)
		}
	})
}

func TestResolveEntryType(t *testing.T) {
	t.Run("defaults to receita", func(t *testing.T) {
		if got := ResolveEntryType(Service{}); got != EntryTypeReceita {
			t.Fatalf("expected receita, got %s", got)
		}
	})

	t.Run("stored value wins", func(t *testing.T) {
		if got := ResolveEntryType(Service{EntryType: EntryTypeDespesa}); got != EntryTypeDespesa {
			t.Fatalf("expected despesa, got %s", got)
		}
	})
}

func TestServiceDateIsPlainTime(t *testing.T) {
	// Derived expenses must inherit the exact service date.
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	s := Service{ID: "srv-1", ServiceDate: date, MaterialsCost: 10}
	derived := DerivedExpenses(s)
	if len(derived) != 1 || !derived[0].ExpenseDate.Equal(date) {
		t.Fatalf("expected derived expense on %v, got %+v", date, derived)
	}
}
