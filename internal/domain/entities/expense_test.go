package entities

import (
	"testing"
	"time"
)

func paintJob() Service {
	return Service{
		ID:            "srv-1",
		ServiceDate:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		ClientName:    "João",
		CarMake:       "Fiat",
		CarModel:      "Uno",
		Description:   "Pintura completa",
		PaymentMethod: PaymentMethodPix,
	}
}

func TestDerivedExpenses_AllComponents(t *testing.T) {
	s := paintJob()
	s.MaterialsCost = 200
	s.ThirdPartyCost = 80
	s.OtherLinkedCosts = 50

	derived := DerivedExpenses(s)
	if len(derived) != 3 {
		t.Fatalf("expected 3 derived expenses, got %d", len(derived))
	}

	mat := derived[0]
	if mat.ID != "dsp-mat-srv-1" {
		t.Fatalf("unexpected materials id: %s", mat.ID)
	}
	if mat.Type != ExpenseTypeMateriais || mat.Amount != 200 {
		t.Fatalf("unexpected materials expense: %+v", mat)
	}
	if mat.Description != "Materiais - João (Fiat Uno)" {
		t.Fatalf("unexpected description: %s", mat.Description)
	}
	if mat.Notes != "Custo de materiais do serviço: Pintura completa" {
		t.Fatalf("unexpected notes: %s", mat.Notes)
	}
	if mat.Origin != ExpenseOriginServico || mat.ServiceID != "srv-1" {
		t.Fatalf("expected servico origin linked to srv-1: %+v", mat)
	}
	if mat.PaymentMethod != PaymentMethodPix {
		t.Fatalf("expected inherited payment method, got %s", mat.PaymentMethod)
	}

	if derived[1].ID != "dsp-ter-srv-1" || derived[1].Type != ExpenseTypeTerceiros || derived[1].Amount != 80 {
		t.Fatalf("unexpected third-party expense: %+v", derived[1])
	}
	if derived[2].ID != "dsp-out-srv-1" || derived[2].Type != ExpenseTypeOutros || derived[2].Amount != 50 {
		t.Fatalf("unexpected other expense: %+v", derived[2])
	}
}

func TestDerivedExpenses_OnlyPositiveComponents(t *testing.T) {
	s := paintJob()
	s.ThirdPartyCost = 120

	derived := DerivedExpenses(s)
	if len(derived) != 1 {
		t.Fatalf("expected 1 derived expense, got %d", len(derived))
	}
	if derived[0].ID != ThirdPartyExpenseID(s.ID) {
		t.Fatalf("unexpected id: %s", derived[0].ID)
	}
}

func TestDerivedExpenses_ZeroCostsProjectToNothing(t *testing.T) {
	if derived := DerivedExpenses(paintJob()); len(derived) != 0 {
		t.Fatalf("expected no derived expenses, got %+v", derived)
	}
}

func TestDerivedExpenseIDs(t *testing.T) {
	if MaterialsExpenseID("x") != "dsp-mat-x" {
		t.Fatalf("unexpected materials id")
	}
	if ThirdPartyExpenseID("x") != "dsp-ter-x" {
		t.Fatalf("unexpected third-party id")
	}
	if OtherExpenseID("x") != "dsp-out-x" {
		t.Fatalf("unexpected other id")
	}
}

func TestTotalExpenses(t *testing.T) {
	expenses := []Expense{{Amount: 10.5}, {Amount: 20}, {Amount: 0.5}}
	if got := TotalExpenses(expenses); got != 31 {
		t.Fatalf("expected 31, got %v", got)
	}
	if got := TotalExpenses(nil); got != 0 {
		t.Fatalf("expected 0 for empty, got %v", got)
	}
}
