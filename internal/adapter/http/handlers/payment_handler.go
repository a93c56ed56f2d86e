package handlers

import (
	"encoding/json"
	"errors"
	"log"
	response "pintura_pro/internal/adapter/http/dto/response"
	"pintura_pro/internal/usecase"
	"pintura_pro/pkg"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// PaymentHandler settles service charges through the payment gateway.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentByServiceID creates/approves a payment using servico_id in path.
//
//	@Summary  Settle a service
//	@Tags     pagamentos
//	@Accept   json
//	@Produce  json
//	@Param    servico_id path string true "service id"
//	@Success  200 {object} response.PaymentResponse
//	@Router   /pagamentos/{servico_id} [post]
func (h *PaymentHandler) CreatePaymentByServiceID(c *gin.Context) {
	serviceID := c.Param("servico_id")
	log.Printf("[payment][handler] create start servico_id=%s", serviceID)
	mockMode := isPaymentGatewayMockEnabled()
	payload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload servico_id=%s err=%v", serviceID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload servico_id=%s err=%v", serviceID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), serviceID, payload)
	if err != nil {
		log.Printf("[payment][handler] create failed servico_id=%s err=%v", serviceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success servico_id=%s payment_id=%s status=%s", serviceID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// GetPaymentByServiceID returns the latest payment for a service.
//
//	@Summary  Get the latest payment of a service
//	@Tags     pagamentos
//	@Produce  json
//	@Param    servico_id path string true "service id"
//	@Success  200 {object} response.PaymentResponse
//	@Router   /pagamentos/{servico_id} [get]
func (h *PaymentHandler) GetPaymentByServiceID(c *gin.Context) {
	serviceID := c.Param("servico_id")
	log.Printf("[payment][handler] get-by-service start servico_id=%s", serviceID)

	payments, err := h.usecase.ListByServiceID(c.Request.Context(), serviceID)
	if err != nil {
		log.Printf("[payment][handler] get-by-service failed servico_id=%s err=%v", serviceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] get-by-service not-found servico_id=%s", serviceID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-service success servico_id=%s payment_id=%s status=%s", serviceID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromPayment(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentServiceID),
		errors.Is(err, usecase.ErrInvalidPaymentPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("SERVICE_ALREADY_PAID", "Service already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceHasNoCharge):
		return pkg.NewDomainErrorSimple("SERVICE_HAS_NO_CHARGE", "Service has no charged amount", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
