package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/companieshouse/chs.go/log"
	"github.com/demoshop/checkout.web/config"
	"github.com/demoshop/checkout.web/mappers"
	"github.com/demoshop/checkout.web/models"
	"github.com/google/uuid"
	"github.com/plutov/paypal/v4"
)

// Backend API paths, relative to the configured base URL.
const (
	PaymentCreatePath  = "/api/payment/create"
	PaymentCapturePath = "/api/payment/capture"
	PaymentStatusPath  = "/api/payment/status/"
	RegisterPath       = "/api/auth/register"
)

const requestIDHeader = "X-Request-ID"

// APIClient makes calls to the shop backend
type APIClient struct {
	Config *config.Config
	Client *http.Client
}

// NewAPIClient returns a client for the configured backend. Without a
// configured timeout the shared default client is used.
func NewAPIClient(cfg *config.Config) (*APIClient, error) {
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}

	client := http.DefaultClient
	if timeout > 0 {
		client = &http.Client{Timeout: timeout}
	}

	return &APIClient{Config: cfg, Client: client}, nil
}

type apiResponse struct {
	StatusCode int
	Text       string
}

// send issues a single request and reads the whole body as text. Transport
// and read failures are returned as Network errors.
func (c *APIClient) send(ctx context.Context, method, path, token string, payload interface{}) (*apiResponse, error) {
	var body io.Reader
	if payload != nil {
		requestBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error reading API request: [%w]", err)
		}
		body = bytes.NewBuffer(requestBody)
	}

	requestURL := c.Config.BaseURL() + path
	request, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("error generating request for API: [%w]", err)
	}

	requestID := uuid.NewString()
	request.Header.Add("accept", "application/json")
	if payload != nil {
		request.Header.Add("content-type", "application/json")
	}
	if token != "" {
		request.Header.Add("authorization", "Bearer "+token)
	}
	request.Header.Add(requestIDHeader, requestID)

	log.Debug("sending request to API", log.Data{"method": method, "url": requestURL, "request_id": requestID})

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(request)
	if err != nil {
		return nil, newCheckoutError(Network, 0, fmt.Sprintf("error sending request to API: [%s]", err), err)
	}

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newCheckoutError(Network, resp.StatusCode, fmt.Sprintf("error reading response from API: [%s]", err), err)
	}

	log.Debug("received response from API", log.Data{
		"status":     resp.StatusCode,
		"length":     len(raw),
		"request_id": requestID,
	})

	return &apiResponse{StatusCode: resp.StatusCode, Text: string(raw)}, nil
}

// CreatePayment posts a payment-creation request. Only a 200 carrying
// orderId, paypalOrderId and approvalUrl is a success.
func (c *APIClient) CreatePayment(ctx context.Context, token string, request *models.PaymentCreationRequest) (*models.PaymentCreation, error) {
	resp, err := c.send(ctx, http.MethodPost, PaymentCreatePath, token, request)
	if err != nil {
		return nil, err
	}

	body, received, err := ParseResponseBody(resp.StatusCode, resp.Text)
	if err != nil {
		log.Error(fmt.Errorf("error parsing payment creation response: [%w]", err), log.Data{"status": resp.StatusCode})
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		message := ResolveErrorMessage(resp.StatusCode, body)
		log.Error(fmt.Errorf("error status [%d] back from payment creation", resp.StatusCode), log.Data{"body": received, "message": message})
		return nil, newCheckoutError(HTTPStatus, resp.StatusCode, message, nil)
	}

	log.Debug("payment creation response", log.Data{
		"has_order_id":        body.Has(models.FieldOrderID),
		"has_paypal_order_id": body.Has(models.FieldPayPalOrderID),
		"has_approval_url":    body.Has(models.FieldApprovalURL),
	})

	if missing := models.MissingSuccessFields(body); len(missing) > 0 {
		log.Error(fmt.Errorf("payment creation response missing fields"), log.Data{"missing": missing})
		return nil, newCheckoutError(IncompleteResponse, resp.StatusCode, "Server returned success but missing data. Received: "+received, nil)
	}

	creation := models.NewPaymentCreation(body)
	if creation.Status != "" && creation.Status != paypal.OrderStatusCreated {
		log.Debug(fmt.Sprintf("paypal order response status: %s", creation.Status), log.Data{"order_id": creation.OrderID})
	}

	return creation, nil
}

// CapturePayment captures an approved payment for the given order.
func (c *APIClient) CapturePayment(ctx context.Context, token string, request *models.CaptureRequest) (*models.CaptureResult, error) {
	resp, err := c.send(ctx, http.MethodPost, PaymentCapturePath, token, request)
	if err != nil {
		return nil, err
	}

	body, received, err := ParseResponseBody(resp.StatusCode, resp.Text)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		message := ResolveMessage(FollowUpMessageRules, "Payment capture failed", resp.StatusCode, body)
		return nil, newCheckoutError(HTTPStatus, resp.StatusCode, message, nil)
	}

	if !body.Has("success") {
		return nil, newCheckoutError(IncompleteResponse, resp.StatusCode, "Server returned success but missing data. Received: "+received, nil)
	}

	return mappers.MapToCaptureResult(body, request), nil
}

// GetPaymentStatus looks up the provider status of a PayPal order.
func (c *APIClient) GetPaymentStatus(ctx context.Context, token, paypalOrderID string) (*models.PaymentStatus, error) {
	resp, err := c.send(ctx, http.MethodGet, PaymentStatusPath+url.PathEscape(paypalOrderID), token, nil)
	if err != nil {
		return nil, err
	}

	body, received, err := ParseResponseBody(resp.StatusCode, resp.Text)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		message := ResolveMessage(FollowUpMessageRules, "Payment status lookup failed", resp.StatusCode, body)
		return nil, newCheckoutError(HTTPStatus, resp.StatusCode, message, nil)
	}

	status := body.Text(models.FieldStatus)
	if status == "" {
		return nil, newCheckoutError(IncompleteResponse, resp.StatusCode, "Server returned success but missing data. Received: "+received, nil)
	}

	return mappers.MapToPaymentStatus(paypalOrderID, status), nil
}

// Register creates a user account. Any status outside 2xx is returned as a
// *ResponseError carrying the raw body.
func (c *APIClient) Register(ctx context.Context, request *models.RegisterRequest) (*models.RegisterResponse, error) {
	resp, err := c.send(ctx, http.MethodPost, RegisterPath, "", request)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ResponseError{StatusCode: resp.StatusCode, Body: resp.Text}
	}

	registerResponse := &models.RegisterResponse{Raw: resp.Text}
	if len(bytes.TrimSpace([]byte(resp.Text))) == 0 {
		return registerResponse, nil
	}

	decoder := json.NewDecoder(bytes.NewBufferString(resp.Text))
	decoder.UseNumber()
	if err := decoder.Decode(registerResponse); err != nil {
		return nil, fmt.Errorf("error reading registration response: [%w]", err)
	}

	return registerResponse, nil
}
