package handlers

import (
	"errors"
	request "pintura_pro/internal/adapter/http/dto/request"
	response "pintura_pro/internal/adapter/http/dto/response"
	"pintura_pro/internal/usecase"
	"pintura_pro/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CategoryHandler lists and creates service categories.

type CategoryHandler struct {
	usecase usecase.ICategoryUseCase
}

func NewCategoryHandler(uc usecase.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{usecase: uc}
}

// ListCategories returns all categories, seeding the defaults on first use.
//
//	@Summary  List categories
//	@Tags     categorias
//	@Produce  json
//	@Success  200 {array} response.CategoryResponse
//	@Router   /categorias [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategories(categories))
}

// CreateCategory adds a category.
//
//	@Summary  Create a category
//	@Tags     categorias
//	@Accept   json
//	@Produce  json
//	@Success  201 {object} response.CategoryResponse
//	@Router   /categorias [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var payload request.CategoryCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CATEGORY_INPUT", "Invalid category payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.Name)
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCategory(created))
}

func mapCategoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCategoryName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
