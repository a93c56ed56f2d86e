package interfaces

import (
	"context"
	"pintura_pro/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for Service.
//
// The ledger must be able to:
//   - create a service when the shop registers a paint job
//   - patch any subset of fields (the usecase sends the full updated record)
//   - list everything for period/status filtering and reports

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
