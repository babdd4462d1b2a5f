package models

// Currency is the only currency the checkout submits.
const Currency = "USD"

// DefaultCountry is the country pre-filled on a new shipping address.
const DefaultCountry = "USA"

// Session storage keys written after a payment has been created.
const (
	SessionKeyOrderID       = "orderId"
	SessionKeyPayPalOrderID = "paypalOrderId"
)

// CredentialKey is the client storage key holding the bearer credential.
const CredentialKey = "token"

// ShippingAddress is the address entered on the checkout form
type ShippingAddress struct {
	Street      string `json:"street"      validate:"required"`
	City        string `json:"city"        validate:"required"`
	State       string `json:"state"       validate:"required"`
	ZipCode     string `json:"zipCode"     validate:"required"`
	Country     string `json:"country"`
	PhoneNumber string `json:"phoneNumber"`
}

// NewShippingAddress returns an empty address with the default country set.
func NewShippingAddress() ShippingAddress {
	return ShippingAddress{Country: DefaultCountry}
}

// PaymentCreationRequest is the body posted to the payment-creation endpoint
type PaymentCreationRequest struct {
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Currency        string          `json:"currency"`
	ReturnURL       string          `json:"returnUrl"`
	CancelURL       string          `json:"cancelUrl"`
}

// NewPaymentCreationRequest builds the request for a single submission. The
// return and cancel URLs point back at the given origin.
func NewPaymentCreationRequest(address ShippingAddress, origin string) *PaymentCreationRequest {
	return &PaymentCreationRequest{
		ShippingAddress: address,
		Currency:        Currency,
		ReturnURL:       origin + "/payment/success",
		CancelURL:       origin + "/payment/cancel",
	}
}
