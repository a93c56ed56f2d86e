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

var (
	errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
	errInvalidPeriodQuery    = pkg.NewDomainErrorSimple("INVALID_PERIOD", "Invalid period query", http.StatusBadRequest)
)

// ServiceHandler handles HTTP requests for paint jobs (serviços).

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// CreateService registers a paint job and regenerates its derived expenses.
//
//	@Summary  Create a service
//	@Tags     servicos
//	@Accept   json
//	@Produce  json
//	@Success  201 {object} response.ServiceResponse
//	@Router   /servicos [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	svc, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), svc)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(created))
}

// UpdateService patches a paint job; absent fields keep their stored value.
//
//	@Summary  Update a service
//	@Tags     servicos
//	@Accept   json
//	@Produce  json
//	@Param    id path string true "service id"
//	@Success  200 {object} response.ServiceResponse
//	@Router   /servicos/{id} [patch]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(updated))
}

// DeleteService removes a paint job together with its derived expenses.
//
//	@Summary  Delete a service
//	@Tags     servicos
//	@Param    id path string true "service id"
//	@Success  204
//	@Router   /servicos/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetService returns a single paint job.
//
//	@Summary  Get a service
//	@Tags     servicos
//	@Produce  json
//	@Param    id path string true "service id"
//	@Success  200 {object} response.ServiceResponse
//	@Router   /servicos/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

// ListServices returns paint jobs filtered by period, status, category,
// client name and plate.
//
//	@Summary  List services
//	@Tags     servicos
//	@Produce  json
//	@Success  200 {array} response.ServiceResponse
//	@Router   /servicos [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	var q request.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return
	}
	periodFilter, err := q.ToFilter()
	if err != nil {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return
	}

	filters := usecase.ServiceFilters{
		Period:     periodFilter,
		Status:     c.Query("status"),
		CategoryID: c.Query("categoria_id"),
		Client:     c.Query("cliente"),
		Plate:      c.Query("placa"),
	}

	services, err := h.usecase.Filter(c.Request.Context(), filters)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidServiceDate),
		errors.Is(err, usecase.ErrInvalidServiceAmount),
		errors.Is(err, usecase.ErrInvalidProfilePhoto):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
