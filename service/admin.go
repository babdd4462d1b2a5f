package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/demoshop/checkout.web/models"
	"github.com/lib/pq"
)

// Registrar registers user accounts
type Registrar interface {
	Register(ctx context.Context, request *models.RegisterRequest) (*models.RegisterResponse, error)
}

// AdminAccount is the account created by the bootstrap procedure.
var AdminAccount = models.RegisterRequest{
	Username:    "admin",
	Email:       "admin@gmail.com",
	Password:    "admin123",
	PhoneNumber: "1234567890",
}

// AdminBootstrapper registers the admin account once and prints the SQL that
// promotes it. A second run fails at registration.
type AdminBootstrapper struct {
	Registrar Registrar
	Out       io.Writer
	Err       io.Writer
}

// Run performs the bootstrap. Failures are printed to Err and returned.
func (a *AdminBootstrapper) Run(ctx context.Context) error {
	fmt.Fprintln(a.Out, "Registering admin user...")

	request := AdminAccount
	registered, err := a.Registrar.Register(ctx, &request)
	if err != nil {
		a.printError(err)
		return err
	}

	fmt.Fprintf(a.Out, "User registered successfully: %s\n", registered.Raw)

	statement, err := PromotionStatement(registered.User.ID)
	if err != nil {
		a.printError(err)
		return err
	}

	fmt.Fprintf(a.Out, "User ID: %v\n", registered.User.ID)
	fmt.Fprintln(a.Out, "\nNow run this SQL command to make the user an admin:")
	fmt.Fprintln(a.Out, statement)

	return nil
}

func (a *AdminBootstrapper) printError(err error) {
	var responseErr *ResponseError
	if errors.As(err, &responseErr) && responseErr.Body != "" {
		fmt.Fprintf(a.Err, "Error: %s\n", responseErr.Body)
		return
	}
	fmt.Fprintf(a.Err, "Error: %s\n", err.Error())
}

// PromotionStatement returns the UPDATE that gives user id the admin role.
// Numeric ids are written bare, string ids as quoted literals.
func PromotionStatement(id interface{}) (string, error) {
	var literal string

	switch v := id.(type) {
	case json.Number:
		literal = v.String()
	case string:
		if v == "" {
			return "", fmt.Errorf("registration response has an empty user id")
		}
		literal = pq.QuoteLiteral(v)
	case nil:
		return "", fmt.Errorf("registration response did not include a user id")
	default:
		return "", fmt.Errorf("unsupported user id type [%T]", id)
	}

	return fmt.Sprintf("UPDATE users SET role = %s WHERE id = %s;", pq.QuoteLiteral(models.AdminRole), literal), nil
}
