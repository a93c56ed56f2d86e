package usecase

import (
	"context"
	"errors"
	"strings"

	"pintura_pro/internal/domain/entities"
	"pintura_pro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrEmptyCategoryName = errors.New("empty category name")

// ICategoryUseCase lists and creates service categories.

type ICategoryUseCase interface {
	List(ctx context.Context) ([]entities.Category, error)
	Create(ctx context.Context, name string) (entities.Category, error)
}

type CategoryUseCase struct {
	repo interfaces.ICategoryRepository
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(repo interfaces.ICategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (u *CategoryUseCase) List(ctx context.Context) ([]entities.Category, error) {
	return u.repo.List(ctx)
}

func (u *CategoryUseCase) Create(ctx context.Context, name string) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, ErrEmptyCategoryName
	}
	return u.repo.Create(ctx, entities.Category{ID: uuid.NewString(), Name: name})
}
