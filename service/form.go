package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/demoshop/checkout.web/models"
	"github.com/go-playground/validator/v10"
)

// CredentialStore is the client-persisted storage holding the bearer token
type CredentialStore interface {
	Token() string
}

// SessionStore is page-lifetime storage for identifiers used after the buyer
// returns from the provider
type SessionStore interface {
	SetItem(key, value string)
}

// Navigator moves the browser to another page
type Navigator interface {
	Navigate(url string)
}

// PaymentCreator creates a payment for the current cart
type PaymentCreator interface {
	CreatePayment(ctx context.Context, token string, request *models.PaymentCreationRequest) (*models.PaymentCreation, error)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Form is the state of the checkout form. Loading and Error are reset at the
// start of every submission.
type Form struct {
	Address models.ShippingAddress
	Loading bool
	Error   string

	// Origin is used to build the return and cancel URLs.
	Origin string

	Payments    PaymentCreator
	Credentials CredentialStore
	Session     SessionStore
	Navigator   Navigator
}

// NewForm returns a form with an empty address and the default country.
func NewForm(origin string, payments PaymentCreator, credentials CredentialStore, session SessionStore, navigator Navigator) *Form {
	return &Form{
		Address:     models.NewShippingAddress(),
		Origin:      origin,
		Payments:    payments,
		Credentials: credentials,
		Session:     session,
		Navigator:   navigator,
	}
}

// Submit runs one checkout submission. On success both identifiers are
// stored, the navigator is sent to the approval URL and Loading stays true.
// On failure Error holds the message to display, Loading is cleared and the
// underlying error is returned.
func (f *Form) Submit(ctx context.Context) error {
	f.Loading = true
	f.Error = ""

	err := f.submit(ctx)
	if err != nil {
		f.Error = ClassifyError(err)
		f.Loading = false

		log.Error(fmt.Errorf("checkout submission failed: [%w]", err), log.Data{"kind": errorKind(err)})
		return err
	}

	return nil
}

func (f *Form) submit(ctx context.Context) error {
	if err := ValidateAddress(f.Address); err != nil {
		return err
	}

	token := f.Credentials.Token()
	logCredential(token)

	if token == "" {
		return newCheckoutError(MissingCredential, 0, LoginRequiredMessage, nil)
	}

	request := models.NewPaymentCreationRequest(f.Address, f.Origin)
	log.Info("creating payment", log.Data{"currency": request.Currency, "return_url": request.ReturnURL, "cancel_url": request.CancelURL})

	creation, err := f.Payments.CreatePayment(ctx, token, request)
	if err != nil {
		return err
	}

	f.Session.SetItem(models.SessionKeyOrderID, creation.OrderID)
	f.Session.SetItem(models.SessionKeyPayPalOrderID, creation.PayPalOrderID)

	log.Info("redirecting to payment approval", log.Data{
		"order_id":        creation.OrderID,
		"paypal_order_id": creation.PayPalOrderID,
		"approval_url":    creation.ApprovalURL,
	})

	f.Navigator.Navigate(creation.ApprovalURL)
	return nil
}

// ValidateAddress checks that street, city, state and zipCode are present.
func ValidateAddress(address models.ShippingAddress) error {
	err := validate.Struct(address)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("error validating shipping address: [%w]", err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fieldErr.Field())
	}

	message := "Please fill in the required fields: " + strings.Join(fields, ", ")
	return newCheckoutError(InvalidAddress, 0, message, err)
}

func errorKind(err error) string {
	var checkoutErr *CheckoutError
	if errors.As(err, &checkoutErr) {
		return checkoutErr.Kind.String()
	}
	return "unclassified"
}
