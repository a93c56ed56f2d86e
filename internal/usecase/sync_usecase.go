package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"pintura_pro/internal/domain/entities"
	"pintura_pro/internal/usecase/interfaces"
)

// expenseSyncMigration gates the one-time retrofit of the derived-expense
// invariant onto services created before the sync engine existed.
const expenseSyncMigration = "expense_sync_v1"

var ErrInvalidSyncServiceID = errors.New("invalid service id")

// ISyncUseCase keeps the expense collection consistent with each service's
// cost breakdown.
//
// Contract: after SyncServiceExpenses the store holds exactly one derived
// expense per strictly positive cost component of the service, and no others
// for that service. Manual expenses and other services' derived expenses are
// untouched. The operation is idempotent because derived ids are
// deterministic per (service, cost kind).

type ISyncUseCase interface {
	SyncServiceExpenses(ctx context.Context, s entities.Service) error
	RemoveServiceExpenses(ctx context.Context, serviceID string) error
	MigrateExistingServices(ctx context.Context) error
}

type SyncUseCase struct {
	expenseRepo   interfaces.IExpenseRepository
	serviceRepo   interfaces.IServiceRepository
	migrationRepo interfaces.IMigrationRepository
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(expenseRepo interfaces.IExpenseRepository, serviceRepo interfaces.IServiceRepository, migrationRepo interfaces.IMigrationRepository) *SyncUseCase {
	return &SyncUseCase{expenseRepo: expenseRepo, serviceRepo: serviceRepo, migrationRepo: migrationRepo}
}

func (u *SyncUseCase) SyncServiceExpenses(ctx context.Context, s entities.Service) error {
	if strings.TrimSpace(s.ID) == "" {
		return ErrInvalidSyncServiceID
	}

	// Discard the previous derived state, then recreate from the current
	// cost fields. With every cost at zero this leaves zero records.
	if err := u.expenseRepo.DeleteByServiceID(ctx, s.ID); err != nil {
		return err
	}

	for _, e := range entities.DerivedExpenses(s) {
		if _, err := u.expenseRepo.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (u *SyncUseCase) RemoveServiceExpenses(ctx context.Context, serviceID string) error {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return ErrInvalidSyncServiceID
	}
	return u.expenseRepo.DeleteByServiceID(ctx, serviceID)
}

// MigrateExistingServices runs the bulk sync once per deployment, gated by a
// persisted flag. Safe against an empty service collection.
func (u *SyncUseCase) MigrateExistingServices(ctx context.Context) error {
	done, err := u.migrationRepo.IsDone(ctx, expenseSyncMigration)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	services, err := u.serviceRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(services) > 0 {
		log.Printf("[sync][usecase] migrating %d existing services", len(services))
		for _, s := range services {
			if err := u.SyncServiceExpenses(ctx, s); err != nil {
				return err
			}
		}
	}

	return u.migrationRepo.MarkDone(ctx, expenseSyncMigration)
}
