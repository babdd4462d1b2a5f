package mappers

import (
	"strings"

	"github.com/demoshop/checkout.web/models"
	"github.com/plutov/paypal/v4"
	"github.com/shopspring/decimal"
)

// Payment states shown for a provider order status
const (
	StatePaid    = "paid"
	StatePending = "pending"
	StateFailed  = "failed"
	StateUnknown = "unknown"
)

// MapToCaptureResult maps a successful capture body onto the result shown to
// the buyer.
func MapToCaptureResult(body models.ResponseBody, request *models.CaptureRequest) *models.CaptureResult {
	order := body.Object("order")
	return &models.CaptureResult{
		Success:       true,
		Message:       body.Text(models.FieldMessage),
		OrderID:       request.OrderID,
		PayPalOrderID: request.PayPalOrderID,
		PaymentStatus: order.Text("paymentStatus"),
		OrderStatus:   order.Text("orderStatus"),
		TotalAmount:   FormatAmount(order.Text("totalAmount")),
	}
}

func MapToPaymentStatus(paypalOrderID, status string) *models.PaymentStatus {
	return &models.PaymentStatus{
		PayPalOrderID: paypalOrderID,
		Status:        status,
		State:         ProviderState(status),
	}
}

// ProviderState maps a PayPal order status onto a payment state.
func ProviderState(status string) string {
	switch strings.ToUpper(status) {
	case paypal.OrderStatusCompleted:
		return StatePaid
	case paypal.OrderStatusCreated, paypal.OrderStatusSaved, paypal.OrderStatusApproved:
		return StatePending
	case paypal.OrderStatusVoided:
		return StateFailed
	default:
		return StateUnknown
	}
}

// FormatAmount renders a monetary amount with two decimal places. Values that
// are not numbers are returned unchanged.
func FormatAmount(amount string) string {
	if amount == "" {
		return ""
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return amount
	}
	return d.StringFixed(2)
}
