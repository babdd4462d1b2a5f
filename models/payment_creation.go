package models

import "github.com/shopspring/decimal"

// Fields the payment-creation endpoint must return on success.
const (
	FieldOrderID       = "orderId"
	FieldPayPalOrderID = "paypalOrderId"
	FieldApprovalURL   = "approvalUrl"
	FieldOrderTotal    = "orderTotal"
	FieldCurrency      = "currency"
	FieldStatus        = "status"
	FieldMessage       = "message"
	FieldError         = "error"
	FieldDetails       = "details"
)

// PaymentCreation is a successful payment-creation response. Only the first
// three fields are guaranteed to be present.
type PaymentCreation struct {
	OrderID       string
	PayPalOrderID string
	ApprovalURL   string
	OrderTotal    decimal.NullDecimal
	Currency      string
	Status        string
	Message       string
}

// MissingSuccessFields returns the required success fields that are absent or
// empty in the body.
func MissingSuccessFields(body ResponseBody) []string {
	var missing []string
	for _, field := range []string{FieldOrderID, FieldPayPalOrderID, FieldApprovalURL} {
		if !body.Has(field) {
			missing = append(missing, field)
		}
	}
	return missing
}

// NewPaymentCreation reads a payment creation from a body that has already
// been checked with MissingSuccessFields. An orderTotal that is not a number
// is left invalid.
func NewPaymentCreation(body ResponseBody) *PaymentCreation {
	creation := &PaymentCreation{
		OrderID:       body.Text(FieldOrderID),
		PayPalOrderID: body.Text(FieldPayPalOrderID),
		ApprovalURL:   body.Text(FieldApprovalURL),
		Currency:      body.Text(FieldCurrency),
		Status:        body.Text(FieldStatus),
		Message:       body.Text(FieldMessage),
	}

	if total := body.Text(FieldOrderTotal); total != "" {
		if d, err := decimal.NewFromString(total); err == nil {
			creation.OrderTotal = decimal.NullDecimal{Decimal: d, Valid: true}
		}
	}

	return creation
}
