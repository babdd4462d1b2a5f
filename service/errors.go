package service

import "fmt"

// Fixed user-facing messages.
const (
	LoginRequiredMessage = "Please login first. No authentication token found."
	DefaultErrorMessage  = "Payment creation failed"
	UnauthorizedMessage  = "Unauthorized: Your session has expired. Please login again."
	ForbiddenMessage     = "Forbidden: Access denied. Please login again."
	BadRequestPrefix     = "Bad Request: "
	BadRequestFallback   = "Check if cart has items and all fields are filled"
	ServerErrorMessage   = "Server Error: Please check backend logs and try again."
)

// CheckoutError is a classified failure of a checkout submission. Message is
// already suitable for display; Err holds the underlying cause, if any.
type CheckoutError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *CheckoutError) Error() string {
	return e.Message
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

func newCheckoutError(kind ErrorKind, statusCode int, message string, err error) *CheckoutError {
	return &CheckoutError{Kind: kind, StatusCode: statusCode, Message: message, Err: err}
}

// ResponseError is returned for a non-success response that carried a body.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("error status [%d] back from API: [%s]", e.StatusCode, e.Body)
}
