package interfaces

import (
	"context"
	"pintura_pro/internal/domain/entities"
)

// ICategoryRepository abstracts DynamoDB persistence for Category.
//
// List returns the seeded defaults when the table is empty.

type ICategoryRepository interface {
	List(ctx context.Context) ([]entities.Category, error)
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
}
