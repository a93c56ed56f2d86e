package handlers

import (
	"errors"
	request "pintura_pro/internal/adapter/http/dto/request"
	response "pintura_pro/internal/adapter/http/dto/response"
	"pintura_pro/internal/domain/entities"
	"pintura_pro/internal/usecase"
	"pintura_pro/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidExpensePayload = pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Invalid expense payload", http.StatusBadRequest)
)

// ExpenseHandler handles HTTP requests for manual expenses. Service-derived
// expenses show up in listings but reject direct mutation.

type ExpenseHandler struct {
	usecase usecase.IExpenseUseCase
}

func NewExpenseHandler(uc usecase.IExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{usecase: uc}
}

// CreateExpense registers a manual expense.
//
//	@Summary  Create an expense
//	@Tags     despesas
//	@Accept   json
//	@Produce  json
//	@Success  201 {object} response.ExpenseResponse
//	@Router   /despesas [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var payload request.ExpenseCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	expense, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), expense)
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromExpense(created))
}

// UpdateExpense patches a manual expense.
//
//	@Summary  Update an expense
//	@Tags     despesas
//	@Accept   json
//	@Produce  json
//	@Param    id path string true "expense id"
//	@Success  200 {object} response.ExpenseResponse
//	@Router   /despesas/{id} [patch]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var payload request.ExpenseUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpense(updated))
}

// DeleteExpense removes a manual expense.
//
//	@Summary  Delete an expense
//	@Tags     despesas
//	@Param    id path string true "expense id"
//	@Success  204
//	@Router   /despesas/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetExpense returns a single expense, manual or derived.
//
//	@Summary  Get an expense
//	@Tags     despesas
//	@Produce  json
//	@Param    id path string true "expense id"
//	@Success  200 {object} response.ExpenseResponse
//	@Router   /despesas/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expense, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExpense(expense))
}

// ListExpenses returns expenses filtered by period, type and amount range.
//
//	@Summary  List expenses
//	@Tags     despesas
//	@Produce  json
//	@Success  200 {array} response.ExpenseResponse
//	@Router   /despesas [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	filters, ok := h.bindExpenseFilters(c)
	if !ok {
		return
	}

	expenses, err := h.usecase.Filter(c.Request.Context(), filters)
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpenses(expenses))
}

func (h *ExpenseHandler) bindExpenseFilters(c *gin.Context) (usecase.ExpenseFilters, bool) {
	var q request.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return usecase.ExpenseFilters{}, false
	}
	periodFilter, err := q.ToFilter()
	if err != nil {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return usecase.ExpenseFilters{}, false
	}

	filters := usecase.ExpenseFilters{
		Period: periodFilter,
		Type:   entities.ExpenseType(c.Query("tipo_despesa")),
	}
	if raw := c.Query("valor_min"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
			return usecase.ExpenseFilters{}, false
		}
		filters.MinAmount = &v
	}
	if raw := c.Query("valor_max"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
			return usecase.ExpenseFilters{}, false
		}
		filters.MaxAmount = &v
	}
	return filters, true
}

func mapExpenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidExpenseID),
		errors.Is(err, usecase.ErrInvalidExpenseAmount),
		errors.Is(err, usecase.ErrInvalidExpenseDate),
		errors.Is(err, usecase.ErrEmptyExpenseDescription):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExpenseOwnedByService):
		return pkg.NewDomainErrorSimple("EXPENSE_OWNED_BY_SERVICE", "Expense is managed by its service and cannot be edited directly", http.StatusConflict)
	case errors.Is(err, usecase.ErrExpenseNotFound):
		return pkg.NewDomainErrorSimple("EXPENSE_NOT_FOUND", "Expense not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
