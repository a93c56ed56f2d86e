package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pintura_pro/internal/domain/entities"
	"pintura_pro/internal/domain/period"
	"pintura_pro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrExpenseNotFound         = errors.New("expense not found")
	ErrInvalidExpenseID        = errors.New("invalid expense id")
	ErrInvalidExpenseAmount    = errors.New("invalid expense amount")
	ErrEmptyExpenseDescription = errors.New("empty expense description")
	ErrInvalidExpenseDate      = errors.New("invalid expense date")
	ErrExpenseOwnedByService   = errors.New("expense is owned by a service")
)

// ExpenseFilters narrows the expense list for display and reporting.

type ExpenseFilters struct {
	Period    *period.Filter
	Type      entities.ExpenseType
	MinAmount *float64
	MaxAmount *float64
}

// ExpenseUpdate is a partial patch; nil fields are left unchanged.

type ExpenseUpdate struct {
	ExpenseDate   *time.Time
	Type          *entities.ExpenseType
	Description   *string
	Amount        *float64
	PaymentMethod *entities.PaymentMethod
	PaymentStatus *entities.ExpensePaymentStatus
	Notes         *string
}

// IExpenseUseCase exposes the manual-expense façade.
//
// Records with origem "servico" are a projection owned by the sync engine;
// any direct mutation of them is rejected with ErrExpenseOwnedByService.

type IExpenseUseCase interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Update(ctx context.Context, id string, patch ExpenseUpdate) (entities.Expense, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	Filter(ctx context.Context, filters ExpenseFilters) ([]entities.Expense, error)
	Total(ctx context.Context, filters ExpenseFilters) (float64, error)
}

type ExpenseUseCase struct {
	repo interfaces.IExpenseRepository
	now  func() time.Time
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(repo interfaces.IExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, now: time.Now}
}

func (u *ExpenseUseCase) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	if strings.TrimSpace(e.Description) == "" {
		return entities.Expense{}, ErrEmptyExpenseDescription
	}
	if e.Amount <= 0 {
		return entities.Expense{}, ErrInvalidExpenseAmount
	}
	if e.ExpenseDate.IsZero() {
		return entities.Expense{}, ErrInvalidExpenseDate
	}

	e.ID = "dsp-" + uuid.NewString()
	e.Origin = entities.ExpenseOriginManual
	e.ServiceID = ""
	e.CreatedAt = u.now().UTC()
	if e.PaymentStatus == "" {
		e.PaymentStatus = entities.ExpensePaymentStatusPendente
	}
	return u.repo.Create(ctx, e)
}

func (u *ExpenseUseCase) Update(ctx context.Context, id string, patch ExpenseUpdate) (entities.Expense, error) {
	current, err := u.getManual(ctx, id)
	if err != nil {
		return entities.Expense{}, err
	}

	if patch.ExpenseDate != nil {
		current.ExpenseDate = *patch.ExpenseDate
	}
	if patch.Type != nil {
		current.Type = *patch.Type
	}
	if patch.Description != nil {
		current.Description = *patch.Description
	}
	if patch.Amount != nil {
		current.Amount = *patch.Amount
	}
	if patch.PaymentMethod != nil {
		current.PaymentMethod = *patch.PaymentMethod
	}
	if patch.PaymentStatus != nil {
		current.PaymentStatus = *patch.PaymentStatus
	}
	if patch.Notes != nil {
		current.Notes = *patch.Notes
	}

	if strings.TrimSpace(current.Description) == "" {
		return entities.Expense{}, ErrEmptyExpenseDescription
	}
	if current.Amount <= 0 {
		return entities.Expense{}, ErrInvalidExpenseAmount
	}

	return u.repo.Update(ctx, current)
}

func (u *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.getManual(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *ExpenseUseCase) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Expense{}, ErrInvalidExpenseID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Expense{}, err
	}
	if e.ID == "" {
		return entities.Expense{}, ErrExpenseNotFound
	}
	return e, nil
}

func (u *ExpenseUseCase) Filter(ctx context.Context, filters ExpenseFilters) ([]entities.Expense, error) {
	expenses, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var interval period.Range
	if filters.Period != nil {
		interval = period.Resolve(*filters.Period, u.now())
	}

	out := make([]entities.Expense, 0, len(expenses))
	for _, e := range expenses {
		if filters.Period != nil && !interval.Contains(e.ExpenseDate) {
			continue
		}
		if filters.Type != "" && e.Type != filters.Type {
			continue
		}
		if filters.MinAmount != nil && e.Amount < *filters.MinAmount {
			continue
		}
		if filters.MaxAmount != nil && e.Amount > *filters.MaxAmount {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (u *ExpenseUseCase) Total(ctx context.Context, filters ExpenseFilters) (float64, error) {
	expenses, err := u.Filter(ctx, filters)
	if err != nil {
		return 0, err
	}
	return entities.TotalExpenses(expenses), nil
}

// getManual loads an expense and refuses servico-origin records, which only
// the synchronization engine may touch.
func (u *ExpenseUseCase) getManual(ctx context.Context, id string) (entities.Expense, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Expense{}, err
	}
	if e.Origin == entities.ExpenseOriginServico {
		return entities.Expense{}, ErrExpenseOwnedByService
	}
	return e, nil
}
