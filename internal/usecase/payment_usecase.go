package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"pintura_pro/internal/domain/entities"
	"pintura_pro/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentServiceID    = errors.New("invalid servico_id")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrServiceAlreadyPaid         = errors.New("service already paid")
	ErrServiceHasNoCharge         = errors.New("service has no charged amount")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase settles a service's charged amount through the payment
// gateway.
//
// On approval the payment is persisted with the raw provider payload and the
// service moves to Pago/resolvido. The database price is the source of truth
// for the transaction amount.

type IPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, serviceID string, payload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo        interfaces.IPaymentRepository
	serviceRepo interfaces.IServiceRepository
	gateway     interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, serviceRepo interfaces.IServiceRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, serviceRepo: serviceRepo, gateway: gateway}
}

func (u *PaymentUseCase) CreateAndApprove(ctx context.Context, serviceID string, payload json.RawMessage) (entities.Payment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_servico_id=%q payload_len=%d", serviceID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Payment{}, ErrInvalidPaymentServiceID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload servico_id=%s", serviceID)
			return entities.Payment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	svc, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading service servico_id=%s err=%v", serviceID, err)
		return entities.Payment{}, err
	}
	if svc.ID == "" {
		return entities.Payment{}, ErrServiceNotFound
	}
	if svc.Status == entities.ServiceStatusPago {
		return entities.Payment{}, ErrServiceAlreadyPaid
	}
	if svc.AmountCharged <= 0 {
		return entities.Payment{}, ErrServiceHasNoCharge
	}
	log.Printf("[payment][usecase] service loaded servico_id=%s status=%s valor=%.2f", serviceID, svc.Status, svc.AmountCharged)

	// Link the charge back to the service; external_reference helps the
	// provider reconcile events. The amount always comes from the DB.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = serviceID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Serviço %s - %s", serviceID, svc.VehicleName)
		}
		reqMap["transaction_amount"] = svc.AmountCharged
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway servico_id=%s", serviceID)
		providerPaymentID, providerStatus, providerResp = mockProviderResponse(serviceID, svc.AmountCharged, payload)
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed servico_id=%s err=%v", serviceID, err)
			if isGatewayUnauthorized(err) {
				return entities.Payment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.Payment{}, ErrPaymentGatewayBadRequest
			}
			return entities.Payment{}, err
		}
	}
	log.Printf("[payment][usecase] payment gateway success servico_id=%s provider_payment_id=%s provider_status=%s", serviceID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed servico_id=%s err=%v", serviceID, err)
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		ServiceID:          serviceID,
		Date:               time.Now().UTC(),
		Status:             entities.SettlementStatusAprovado,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed servico_id=%s payment_id=%s err=%v", serviceID, p.ID, err)
		return entities.Payment{}, err
	}

	// Settled services are Pago, which also resolves the payment status.
	svc.Status = entities.ServiceStatusPago
	svc.PaymentStatus = entities.DerivePaymentStatus(svc.Status)
	if _, err := u.serviceRepo.Update(ctx, svc); err != nil {
		log.Printf("[payment][usecase] service status update failed servico_id=%s err=%v", serviceID, err)
		return entities.Payment{}, err
	}

	log.Printf("[payment][usecase] create-and-approve success servico_id=%s payment_id=%s status=%s", serviceID, created.ID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByServiceID(ctx context.Context, serviceID string) ([]entities.Payment, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidPaymentServiceID
	}
	return u.repo.ListByServiceID(ctx, serviceID)
}

func mockProviderResponse(serviceID string, amount float64, payload json.RawMessage) (string, string, json.RawMessage) {
	resp := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &resp)
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = serviceID
	}
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = amount
	}

	b, err := json.Marshal(resp)
	if err != nil {
		b = json.RawMessage("{}")
	}
	return id, "approved", b
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
