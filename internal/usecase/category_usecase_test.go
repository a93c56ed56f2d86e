package usecase

import (
	"context"
	"errors"
	"testing"

	"pintura_pro/internal/domain/entities"
	mock_interfaces "pintura_pro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCategoryUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICategoryRepository(ctrl)
	uc := NewCategoryUseCase(repo)

	expected := entities.DefaultCategories()
	repo.EXPECT().List(gomock.Any()).Return(expected, nil)

	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("expected %d categories, got %d", len(expected), len(got))
	}
}

func TestCategoryUseCase_Create(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewCategoryUseCase(nil)
		_, err := uc.Create(context.Background(), "   ")
		if !errors.Is(err, ErrEmptyCategoryName) {
			t.Fatalf("expected ErrEmptyCategoryName, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Category{})).DoAndReturn(
			func(_ context.Context, c entities.Category) (entities.Category, error) {
				if c.ID == "" || c.Name != "Funilaria" {
					t.Fatalf("unexpected category: %+v", c)
				}
				return c, nil
			},
		)

		got, err := uc.Create(context.Background(), " Funilaria ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Funilaria" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
