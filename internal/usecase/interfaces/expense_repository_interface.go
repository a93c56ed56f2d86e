package interfaces

import (
	"context"
	"pintura_pro/internal/domain/entities"
)

// IExpenseRepository abstracts DynamoDB persistence for Expense.
//
// ListByServiceID/DeleteByServiceID run against the servico_id-index GSI and
// exist for the synchronization engine: regeneration of a service's derived
// expenses is delete-by-service then create-nonzero.

type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	List(ctx context.Context) ([]entities.Expense, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.Expense, error)
	Update(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Delete(ctx context.Context, id string) error
	DeleteByServiceID(ctx context.Context, serviceID string) error
}
