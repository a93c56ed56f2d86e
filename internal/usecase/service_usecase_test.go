package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pintura_pro/internal/domain/entities"
	"pintura_pro/internal/domain/period"
	mock_interfaces "pintura_pro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

// serviceFixture wires a ServiceUseCase against mocked repositories and a real
// sync engine, so the derived-expense behaviour is exercised end to end.
func serviceFixture(t *testing.T) (*ServiceUseCase, *mock_interfaces.MockIServiceRepository, *mock_interfaces.MockIExpenseRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
	expenseRepo := mock_interfaces.NewMockIExpenseRepository(ctrl)
	sync := NewSyncUseCase(expenseRepo, serviceRepo, nil)

	uc := NewServiceUseCase(serviceRepo, expenseRepo, sync)
	uc.now = func() time.Time { return testNow }
	return uc, serviceRepo, expenseRepo
}

func newServiceInput() entities.Service {
	return entities.Service{
		ServiceDate:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Status:        entities.ServiceStatusEmAndamento,
		ClientName:    "João",
		CarMake:       "Fiat",
		CarModel:      "Uno",
		AmountCharged: 1000,
		MaterialsCost: 200,
	}
}

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("missing date", func(t *testing.T) {
		uc, _, _ := serviceFixture(t)
		s := newServiceInput()
		s.ServiceDate = time.Time{}
		_, err := uc.Create(context.Background(), s)
		if !errors.Is(err, ErrInvalidServiceDate) {
			t.Fatalf("expected ErrInvalidServiceDate, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		uc, _, _ := serviceFixture(t)
		s := newServiceInput()
		s.MaterialsCost = -1
		_, err := uc.Create(context.Background(), s)
		if !errors.Is(err, ErrInvalidServiceAmount) {
			t.Fatalf("expected ErrInvalidServiceAmount, got %v", err)
		}
	})

	t.Run("profile photo must be one of the photos", func(t *testing.T) {
		uc, _, _ := serviceFixture(t)
		s := newServiceInput()
		s.Photos = []string{"a.jpg"}
		s.ProfilePhotoURL = "b.jpg"
		_, err := uc.Create(context.Background(), s)
		if !errors.Is(err, ErrInvalidProfilePhoto) {
			t.Fatalf("expected ErrInvalidProfilePhoto, got %v", err)
		}
	})

	t.Run("success derives fields and syncs expenses", func(t *testing.T) {
		uc, serviceRepo, expenseRepo := serviceFixture(t)

		var createdID string
		serviceRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if !strings.HasPrefix(s.ID, "srv-") {
					t.Fatalf("expected srv- prefixed id, got %s", s.ID)
				}
				if s.NetProfit != 800 {
					t.Fatalf("expected net profit 800, got %v", s.NetProfit)
				}
				if s.PaymentStatus != entities.PaymentStatusPendente {
					t.Fatalf("expected derived pendente, got %s", s.PaymentStatus)
				}
				if s.EntryType != entities.EntryTypeReceita {
					t.Fatalf("expected receita, got %s", s.EntryType)
				}
				if !s.CreatedAt.Equal(testNow) {
					t.Fatalf("expected fixed created at, got %v", s.CreatedAt)
				}
				createdID = s.ID
				return s, nil
			},
		)
		expenseRepo.EXPECT().DeleteByServiceID(gomock.Any(), gomock.Any()).Return(nil)
		expenseRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Expense{})).DoAndReturn(
			func(_ context.Context, e entities.Expense) (entities.Expense, error) {
				if e.ID != "dsp-mat-"+createdID {
					t.Fatalf("unexpected derived expense id: %s", e.ID)
				}
				return e, nil
			},
		)

		res, err := uc.Create(context.Background(), newServiceInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != createdID {
			t.Fatalf("expected %s, got %s", createdID, res.ID)
		}
	})

	t.Run("explicit payment status is kept", func(t *testing.T) {
		uc, serviceRepo, expenseRepo := serviceFixture(t)

		s := newServiceInput()
		s.Status = entities.ServiceStatusPago
		s.PaymentStatus = entities.PaymentStatusPendente

		serviceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.Service) (entities.Service, error) {
				if saved.PaymentStatus != entities.PaymentStatusPendente {
					t.Fatalf("expected explicit pendente, got %s", saved.PaymentStatus)
				}
				return saved, nil
			},
		)
		expenseRepo.EXPECT().DeleteByServiceID(gomock.Any(), gomock.Any()).Return(nil)
		expenseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Expense{}, nil)

		if _, err := uc.Create(context.Background(), s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_Update(t *testing.T) {
	stored := func() entities.Service {
		s := newServiceInput()
		s.ID = "srv-1"
		s.Recalculate()
		s.PaymentStatus = entities.PaymentStatusPendente
		return s
	}

	t.Run("invalid id", func(t *testing.T) {
		uc, _, _ := serviceFixture(t)
		_, err := uc.Update(context.Background(), "  ", ServiceUpdate{})
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, serviceRepo, _ := serviceFixture(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "srv-1").Return(entities.Service{}, nil)

		_, err := uc.Update(context.Background(), "srv-1", ServiceUpdate{})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("cost change recomputes profit and resyncs", func(t *testing.T) {
		uc, serviceRepo, expenseRepo := serviceFixture(t)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "srv-1").Return(stored(), nil)
		newMaterials := 300.0
		serviceRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.MaterialsCost != 300 || s.NetProfit != 700 {
					t.Fatalf("expected recomputed profit 700, got %+v", s)
				}
				return s, nil
			},
		)
		expenseRepo.EXPECT().DeleteByServiceID(gomock.Any(), "srv-1").Return(nil)
		expenseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Expense) (entities.Expense, error) {
				if e.Amount != 300 {
					t.Fatalf("expected resynced amount 300, got %v", e.Amount)
				}
				return e, nil
			},
		)

		if _, err := uc.Update(context.Background(), "srv-1", ServiceUpdate{MaterialsCost: &newMaterials}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("status change re-derives payment status", func(t *testing.T) {
		uc, serviceRepo, expenseRepo := serviceFixture(t)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "srv-1").Return(stored(), nil)
		finalizado := entities.ServiceStatusFinalizado
		serviceRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.PaymentStatus != entities.PaymentStatusResolvido {
					t.Fatalf("expected resolvido, got %s", s.PaymentStatus)
				}
				return s, nil
			},
		)
		expenseRepo.EXPECT().DeleteByServiceID(gomock.Any(), "srv-1").Return(nil)
		expenseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Expense{}, nil)

		if _, err := uc.Update(context.Background(), "srv-1", ServiceUpdate{Status: &finalizado}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("explicit payment status wins over derivation", func(t *testing.T) {
		uc, serviceRepo, expenseRepo := serviceFixture(t)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "srv-1").Return(stored(), nil)
		pago := entities.ServiceStatusPago
		pendente := entities.PaymentStatusPendente
		serviceRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.PaymentStatus != entities.PaymentStatusPendente {
					t.Fatalf("expected explicit pendente, got %s", s.PaymentStatus)
				}
				return s, nil
			},
		)
		expenseRepo.EXPECT().DeleteByServiceID(gomock.Any(), "srv-1").Return(nil)
		expenseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Expense{}, nil)

		if _, err := uc.Update(context.Background(), "srv-1", ServiceUpdate{Status: &pago, PaymentStatus: &pendente}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _, _ := serviceFixture(t)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, serviceRepo, _ := serviceFixture(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "srv-1").Return(entities.Service{}, nil)
		if err := uc.Delete(context.Background(), "srv-1"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("removes derived expenses before the service", func(t *testing.T) {
		uc, serviceRepo, expenseRepo := serviceFixture(t)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "srv-1").Return(entities.Service{ID: "srv-1"}, nil)
		purge := expenseRepo.EXPECT().DeleteByServiceID(gomock.Any(), "srv-1").Return(nil)
		serviceRepo.EXPECT().Delete(gomock.Any(), "srv-1").Return(nil).After(purge)

		if err := uc.Delete(context.Background(), "srv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("expense purge failure keeps the service", func(t *testing.T) {
		uc, serviceRepo, expenseRepo := serviceFixture(t)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "srv-1").Return(entities.Service{ID: "srv-1"}, nil)
		expenseRepo.EXPECT().DeleteByServiceID(gomock.Any(), "srv-1").Return(errors.New("db"))

		err := uc.Delete(context.Background(), "srv-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestServiceUseCase_Filter(t *testing.T) {
	services := []entities.Service{
		{ID: "a", ServiceDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), Status: entities.ServiceStatusPago, ClientName: "João Silva", CarPlate: "ABC1D23", CategoryID: "1"},
		{ID: "b", ServiceDate: time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC), Status: entities.ServiceStatusOrcamento, ClientName: "Maria", CarPlate: "XYZ9Z99", CategoryID: "2"},
		{ID: "c", ServiceDate: time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), Status: entities.ServiceStatusPago, ClientName: "joana", CarPlate: "DEF4G56", CategoryID: "1"},
	}

	t.Run("period filter", func(t *testing.T) {
		uc, serviceRepo, _ := serviceFixture(t)
		serviceRepo.EXPECT().List(gomock.Any()).Return(services, nil)

		got, err := uc.Filter(context.Background(), ServiceFilters{Period: &period.Filter{Type: period.CurrentMonth}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "a" {
			t.Fatalf("expected only service a, got %+v", got)
		}
	})

	t.Run("status Todos disables the status filter", func(t *testing.T) {
		uc, serviceRepo, _ := serviceFixture(t)
		serviceRepo.EXPECT().List(gomock.Any()).Return(services, nil)

		got, err := uc.Filter(context.Background(), ServiceFilters{Status: StatusTodos})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected all services, got %d", len(got))
		}
	})

	t.Run("client match is case insensitive substring", func(t *testing.T) {
		uc, serviceRepo, _ := serviceFixture(t)
		serviceRepo.EXPECT().List(gomock.Any()).Return(services, nil)

		got, err := uc.Filter(context.Background(), ServiceFilters{Client: "JO"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected João Silva and joana, got %+v", got)
		}
	})

	t.Run("client match folds case but not accents", func(t *testing.T) {
		uc, serviceRepo, _ := serviceFixture(t)
		serviceRepo.EXPECT().List(gomock.Any()).Return(services, nil)

		// "JOA" must not match "João": 'ã' is a distinct rune.
		got, err := uc.Filter(context.Background(), ServiceFilters{Client: "JOA"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ClientName != "joana" {
			t.Fatalf("expected only joana, got %+v", got)
		}
	})

	t.Run("combined filters", func(t *testing.T) {
		uc, serviceRepo, _ := serviceFixture(t)
		serviceRepo.EXPECT().List(gomock.Any()).Return(services, nil)

		got, err := uc.Filter(context.Background(), ServiceFilters{Status: string(entities.ServiceStatusPago), CategoryID: "1", Plate: "abc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "a" {
			t.Fatalf("expected only service a, got %+v", got)
		}
	})
}

func TestServiceUseCase_Summary(t *testing.T) {
	uc, serviceRepo, expenseRepo := serviceFixture(t)

	services := []entities.Service{
		{ID: "a", ServiceDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), Status: entities.ServiceStatusPago, AmountCharged: 1000},
		{ID: "b", ServiceDate: time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC), Status: entities.ServiceStatusOrcamento, AmountCharged: 500},
		{ID: "c", ServiceDate: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), Status: entities.ServiceStatusFinalizado, AmountCharged: 900},
	}
	expenses := []entities.Expense{
		{ID: "dsp-1", ExpenseDate: time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC), Amount: 200},
		{ID: "dsp-2", ExpenseDate: time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC), Amount: 50},
		{ID: "dsp-3", ExpenseDate: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), Amount: 999},
	}

	serviceRepo.EXPECT().List(gomock.Any()).Return(services, nil)
	expenseRepo.EXPECT().List(gomock.Any()).Return(expenses, nil)

	got, err := uc.Summary(context.Background(), period.Filter{Type: period.CurrentMonth})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only service a is Pago/Finalizado inside March; expenses dsp-1 and
	// dsp-2 fall inside the window.
	if got.Revenue != 1000 {
		t.Fatalf("expected revenue 1000, got %v", got.Revenue)
	}
	if got.Expenses != 250 {
		t.Fatalf("expected expenses 250, got %v", got.Expenses)
	}
	if got.NetProfit != 750 {
		t.Fatalf("expected net profit 750, got %v", got.NetProfit)
	}
	if got.ServiceCount != 1 || got.AverageTicket != 1000 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestServiceUseCase_SyncUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
	expenseRepo := mock_interfaces.NewMockIExpenseRepository(ctrl)
	uc := NewServiceUseCase(serviceRepo, expenseRepo, nil)

	t.Run("create", func(t *testing.T) {
		_, err := uc.Create(context.Background(), newServiceInput())
		if !errors.Is(err, ErrServiceSyncUnavailable) {
			t.Fatalf("expected ErrServiceSyncUnavailable, got %v", err)
		}
	})

	t.Run("update", func(t *testing.T) {
		_, err := uc.Update(context.Background(), "srv-1", ServiceUpdate{})
		if !errors.Is(err, ErrServiceSyncUnavailable) {
			t.Fatalf("expected ErrServiceSyncUnavailable, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		err := uc.Delete(context.Background(), "srv-1")
		if !errors.Is(err, ErrServiceSyncUnavailable) {
			t.Fatalf("expected ErrServiceSyncUnavailable, got %v", err)
		}
	})
}
