package models

// CaptureRequest is posted once the buyer has approved the payment
type CaptureRequest struct {
	OrderID       string `json:"orderId"`
	PayPalOrderID string `json:"paypalOrderId"`
}

// CaptureResult is the outcome of a capture as shown on the return page
type CaptureResult struct {
	Success       bool
	Message       string
	OrderID       string
	PayPalOrderID string
	PaymentStatus string
	OrderStatus   string
	TotalAmount   string
}

// PaymentStatus is the provider status of a PayPal order
type PaymentStatus struct {
	PayPalOrderID string `json:"paypalOrderId"`
	Status        string `json:"status"`
	State         string `json:"state"`
}
