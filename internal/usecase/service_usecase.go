package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"pintura_pro/internal/domain/entities"
	"pintura_pro/internal/domain/period"
	"pintura_pro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound        = errors.New("service not found")
	ErrInvalidServiceID       = errors.New("invalid service id")
	ErrInvalidServiceDate     = errors.New("invalid service date")
	ErrInvalidServiceAmount   = errors.New("invalid service amount")
	ErrInvalidProfilePhoto    = errors.New("profile photo is not one of the service photos")
	ErrServiceSyncUnavailable = errors.New("expense sync not configured")
)

// ServiceFilters narrows the service list for display and reporting.
//
// StatusTodos ("Todos") disables the status filter, matching the UI selector.
const StatusTodos = "Todos"

type ServiceFilters struct {
	Period     *period.Filter
	Status     string
	CategoryID string
	Client     string
	Plate      string
}

// ServiceUpdate is a partial patch; nil fields are left unchanged. When any
// of the four money fields is present the net profit is recomputed, and a
// status change without an explicit payment status re-derives it.

type ServiceUpdate struct {
	ServiceDate   *time.Time
	Status        *entities.ServiceStatus
	PaymentStatus *entities.PaymentStatus
	EntryType     *entities.EntryType

	VehicleName   *string
	ClientName    *string
	ClientPhone   *string
	CarMake       *string
	CarModel      *string
	CarYear       *int
	CarPlate      *string
	OriginalColor *string
	Description   *string
	CategoryID    *string

	AmountCharged    *float64
	MaterialsCost    *float64
	ThirdPartyCost   *float64
	OtherLinkedCosts *float64

	PaymentMethod   *entities.PaymentMethod
	Notes           *string
	RecurringClient *bool
	Photos          *[]string
	ProfilePhotoURL *string
}

func (p ServiceUpdate) touchesMoney() bool {
	return p.AmountCharged != nil || p.MaterialsCost != nil || p.ThirdPartyCost != nil || p.OtherLinkedCosts != nil
}

// IServiceUseCase exposes the service façade. Every mutation that can change
// the cost breakdown runs the synchronization engine before returning, so the
// derived-expense invariant holds at the end of each call.

type IServiceUseCase interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	Update(ctx context.Context, id string, patch ServiceUpdate) (entities.Service, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Filter(ctx context.Context, filters ServiceFilters) ([]entities.Service, error)
	Summary(ctx context.Context, f period.Filter) (entities.Summary, error)
}

type ServiceUseCase struct {
	repo        interfaces.IServiceRepository
	expenseRepo interfaces.IExpenseRepository
	sync        ISyncUseCase
	now         func() time.Time
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, expenseRepo interfaces.IExpenseRepository, sync ISyncUseCase) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, expenseRepo: expenseRepo, sync: sync, now: time.Now}
}

func (u *ServiceUseCase) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if s.ServiceDate.IsZero() {
		return entities.Service{}, ErrInvalidServiceDate
	}
	if s.AmountCharged < 0 || s.MaterialsCost < 0 || s.ThirdPartyCost < 0 || s.OtherLinkedCosts < 0 {
		return entities.Service{}, ErrInvalidServiceAmount
	}
	if err := validateProfilePhoto(s); err != nil {
		return entities.Service{}, err
	}
	if u.sync == nil {
		return entities.Service{}, ErrServiceSyncUnavailable
	}

	s.ID = "srv-" + uuid.NewString()
	s.CreatedAt = u.now().UTC()
	s.Recalculate()
	if s.PaymentStatus == "" {
		s.PaymentStatus = entities.DerivePaymentStatus(s.Status)
	}
	s.EntryType = entities.ResolveEntryType(s)

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	if err := u.sync.SyncServiceExpenses(ctx, created); err != nil {
		return entities.Service{}, err
	}
	return created, nil
}

func (u *ServiceUseCase) Update(ctx context.Context, id string, patch ServiceUpdate) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	if u.sync == nil {
		return entities.Service{}, ErrServiceSyncUnavailable
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if current.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	updated := applyServiceUpdate(current, patch)
	if updated.AmountCharged < 0 || updated.MaterialsCost < 0 || updated.ThirdPartyCost < 0 || updated.OtherLinkedCosts < 0 {
		return entities.Service{}, ErrInvalidServiceAmount
	}
	if err := validateProfilePhoto(updated); err != nil {
		return entities.Service{}, err
	}

	saved, err := u.repo.Update(ctx, updated)
	if err != nil {
		return entities.Service{}, err
	}
	if err := u.sync.SyncServiceExpenses(ctx, saved); err != nil {
		return entities.Service{}, err
	}
	return saved, nil
}

// Delete removes the service's derived expenses first so no expense is ever
// left pointing at a missing service.
func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	if u.sync == nil {
		return ErrServiceSyncUnavailable
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrServiceNotFound
	}

	if err := u.sync.RemoveServiceExpenses(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) Filter(ctx context.Context, filters ServiceFilters) ([]entities.Service, error) {
	services, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var interval period.Range
	if filters.Period != nil {
		interval = period.Resolve(*filters.Period, u.now())
	}

	out := make([]entities.Service, 0, len(services))
	for _, s := range services {
		if filters.Period != nil && !interval.Contains(s.ServiceDate) {
			continue
		}
		if filters.Status != "" && filters.Status != StatusTodos && string(s.Status) != filters.Status {
			continue
		}
		if filters.CategoryID != "" && s.CategoryID != filters.CategoryID {
			continue
		}
		if filters.Client != "" && !containsFold(s.ClientName, filters.Client) {
			continue
		}
		if filters.Plate != "" && !containsFold(s.CarPlate, filters.Plate) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// Summary filters both collections with the same resolved interval; the
// expense side of the summary is the full period expense total, independent
// of the services' own cost fields.
func (u *ServiceUseCase) Summary(ctx context.Context, f period.Filter) (entities.Summary, error) {
	interval := period.Resolve(f, u.now())

	services, err := u.repo.List(ctx)
	if err != nil {
		return entities.Summary{}, err
	}
	inPeriod := make([]entities.Service, 0, len(services))
	for _, s := range services {
		if interval.Contains(s.ServiceDate) {
			inPeriod = append(inPeriod, s)
		}
	}

	expenses, err := u.expenseRepo.List(ctx)
	if err != nil {
		return entities.Summary{}, err
	}
	expenseTotal := 0.0
	for _, e := range expenses {
		if interval.Contains(e.ExpenseDate) {
			expenseTotal += e.Amount
		}
	}

	return entities.CalculateSummary(inPeriod, expenseTotal), nil
}

func applyServiceUpdate(s entities.Service, patch ServiceUpdate) entities.Service {
	if patch.ServiceDate != nil {
		s.ServiceDate = *patch.ServiceDate
	}
	if patch.Status != nil {
		s.Status = *patch.Status
		if patch.PaymentStatus == nil {
			s.PaymentStatus = entities.DerivePaymentStatus(*patch.Status)
		}
	}
	if patch.PaymentStatus != nil {
		s.PaymentStatus = *patch.PaymentStatus
	}
	if patch.EntryType != nil {
		s.EntryType = *patch.EntryType
	}
	if patch.VehicleName != nil {
		s.VehicleName = *patch.VehicleName
	}
	if patch.ClientName != nil {
		s.ClientName = *patch.ClientName
	}
	if patch.ClientPhone != nil {
		s.ClientPhone = *patch.ClientPhone
	}
	if patch.CarMake != nil {
		s.CarMake = *patch.CarMake
	}
	if patch.CarModel != nil {
		s.CarModel = *patch.CarModel
	}
	if patch.CarYear != nil {
		s.CarYear = *patch.CarYear
	}
	if patch.CarPlate != nil {
		s.CarPlate = *patch.CarPlate
	}
	if patch.OriginalColor != nil {
		s.OriginalColor = *patch.OriginalColor
	}
	if patch.Description != nil {
		s.Description = *patch.Description
	}
	if patch.CategoryID != nil {
		s.CategoryID = *patch.CategoryID
	}
	if patch.AmountCharged != nil {
		s.AmountCharged = *patch.AmountCharged
	}
	if patch.MaterialsCost != nil {
		s.MaterialsCost = *patch.MaterialsCost
	}
	if patch.ThirdPartyCost != nil {
		s.ThirdPartyCost = *patch.ThirdPartyCost
	}
	if patch.OtherLinkedCosts != nil {
		s.OtherLinkedCosts = *patch.OtherLinkedCosts
	}
	if patch.PaymentMethod != nil {
		s.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Notes != nil {
		s.Notes = *patch.Notes
	}
	if patch.RecurringClient != nil {
		s.RecurringClient = *patch.RecurringClient
	}
	if patch.Photos != nil {
		s.Photos = *patch.Photos
	}
	if patch.ProfilePhotoURL != nil {
		s.ProfilePhotoURL = *patch.ProfilePhotoURL
	}
	if patch.touchesMoney() {
		s.Recalculate()
	}
	return s
}

func validateProfilePhoto(s entities.Service) error {
	if s.ProfilePhotoURL == "" {
		return nil
	}
	if !slices.Contains(s.Photos, s.ProfilePhotoURL) {
		return ErrInvalidProfilePhoto
	}
	return nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
