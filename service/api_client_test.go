package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/demoshop/checkout.web/config"
	"github.com/demoshop/checkout.web/fixtures"
	"github.com/demoshop/checkout.web/mappers"
	"github.com/demoshop/checkout.web/models"
	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	createURL   = "http://localhost:8082/api/payment/create"
	captureURL  = "http://localhost:8082/api/payment/capture"
	statusURL   = "http://localhost:8082/api/payment/status/5O190127TN364715T"
	registerURL = "http://localhost:8082/api/auth/register"
)

func createMockAPIClient() *APIClient {
	return &APIClient{Config: config.DefaultConfig(), Client: http.DefaultClient}
}

func TestUnitNewAPIClient(t *testing.T) {

	Convey("Default client without a timeout", t, func() {
		client, err := NewAPIClient(config.DefaultConfig())
		So(err, ShouldBeNil)
		So(client.Client, ShouldEqual, http.DefaultClient)
	})

	Convey("Dedicated client with a timeout", t, func() {
		cfg := config.DefaultConfig()
		cfg.APITimeout = "5"
		client, err := NewAPIClient(cfg)
		So(err, ShouldBeNil)
		So(client.Client, ShouldNotEqual, http.DefaultClient)
		So(client.Client.Timeout, ShouldEqual, 5*time.Second)
	})

	Convey("Invalid timeout", t, func() {
		cfg := config.DefaultConfig()
		cfg.APITimeout = "x"
		_, err := NewAPIClient(cfg)
		So(err, ShouldNotBeNil)
	})
}

func TestUnitCreatePayment(t *testing.T) {
	client := createMockAPIClient()
	request := models.NewPaymentCreationRequest(fixtures.GetShippingAddress(), "http://localhost:3000")

	Convey("Request carries the bearer token and JSON body", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		var received models.PaymentCreationRequest
		var authorization, contentType, requestID string
		httpmock.RegisterResponder("POST", createURL, func(req *http.Request) (*http.Response, error) {
			authorization = req.Header.Get("Authorization")
			contentType = req.Header.Get("Content-Type")
			requestID = req.Header.Get("X-Request-ID")
			if err := json.NewDecoder(req.Body).Decode(&received); err != nil {
				return nil, err
			}
			return httpmock.NewJsonResponse(http.StatusOK, fixtures.GetPaymentCreationResponse())
		})

		creation, err := client.CreatePayment(context.Background(), fixtures.TestToken, request)
		So(err, ShouldBeNil)
		So(authorization, ShouldEqual, "Bearer "+fixtures.TestToken)
		So(contentType, ShouldEqual, "application/json")
		So(requestID, ShouldNotBeEmpty)
		So(received.Currency, ShouldEqual, "USD")
		So(received.ReturnURL, ShouldEqual, "http://localhost:3000/payment/success")
		So(received.CancelURL, ShouldEqual, "http://localhost:3000/payment/cancel")
		So(received.ShippingAddress, ShouldResemble, fixtures.GetShippingAddress())

		So(creation.OrderID, ShouldEqual, "17")
		So(creation.PayPalOrderID, ShouldEqual, "5O190127TN364715T")
		So(creation.ApprovalURL, ShouldEqual, "https://www.sandbox.paypal.com/checkoutnow?token=5O190127TN364715T")
		So(creation.OrderTotal.Valid, ShouldBeTrue)
		So(creation.OrderTotal.Decimal.StringFixed(2), ShouldEqual, "59.90")
		So(creation.Status, ShouldEqual, "CREATED")
	})

	Convey("Error sending request", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", createURL, httpmock.NewErrorResponder(errors.New("connection refused")))

		creation, err := client.CreatePayment(context.Background(), fixtures.TestToken, request)
		So(creation, ShouldBeNil)

		var checkoutErr *CheckoutError
		So(errors.As(err, &checkoutErr), ShouldBeTrue)
		So(checkoutErr.Kind, ShouldEqual, Network)
	})

	Convey("Success status with incomplete body", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		body := fixtures.GetPaymentCreationResponse()
		delete(body, "paypalOrderId")
		responder, _ := httpmock.NewJsonResponder(http.StatusOK, body)
		httpmock.RegisterResponder("POST", createURL, responder)

		creation, err := client.CreatePayment(context.Background(), fixtures.TestToken, request)
		So(creation, ShouldBeNil)
		So(err.Error(), ShouldStartWith, "Server returned success but missing data. Received: {")
		So(err.Error(), ShouldContainSubstring, `"approvalUrl"`)
	})

	Convey("Success status with empty body", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", createURL, httpmock.NewStringResponder(http.StatusOK, ""))

		_, err := client.CreatePayment(context.Background(), fixtures.TestToken, request)
		So(err.Error(), ShouldEqual, "Server returned success but missing data. Received: {}")
	})

	Convey("201 is not a success", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		responder, _ := httpmock.NewJsonResponder(http.StatusCreated, fixtures.GetPaymentCreationResponse())
		httpmock.RegisterResponder("POST", createURL, responder)

		_, err := client.CreatePayment(context.Background(), fixtures.TestToken, request)
		var checkoutErr *CheckoutError
		So(errors.As(err, &checkoutErr), ShouldBeTrue)
		So(checkoutErr.Kind, ShouldEqual, HTTPStatus)
		So(checkoutErr.Message, ShouldEqual, "Order created and PayPal payment initiated successfully")
	})

	Convey("Error statuses use the resolved message", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		responder, _ := httpmock.NewJsonResponder(http.StatusBadRequest, map[string]string{
			"error":   "Cart is empty",
			"details": "Failed to create order and payment.",
		})
		httpmock.RegisterResponder("POST", createURL, responder)

		_, err := client.CreatePayment(context.Background(), fixtures.TestToken, request)
		So(err.Error(), ShouldEqual, "Cart is empty")
	})

	Convey("JSON string error body still gets the status message", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", createURL, httpmock.NewStringResponder(http.StatusInternalServerError, `"Internal error"`))

		_, err := client.CreatePayment(context.Background(), fixtures.TestToken, request)
		var checkoutErr *CheckoutError
		So(errors.As(err, &checkoutErr), ShouldBeTrue)
		So(checkoutErr.Kind, ShouldEqual, HTTPStatus)
		So(err.Error(), ShouldEqual, ServerErrorMessage)
	})

	Convey("Success status with a JSON array body", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", createURL, httpmock.NewStringResponder(http.StatusOK, `["x"]`))

		_, err := client.CreatePayment(context.Background(), fixtures.TestToken, request)
		So(err.Error(), ShouldEqual, `Server returned success but missing data. Received: ["x"]`)
	})

	Convey("Trailing data after the body", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", createURL, httpmock.NewStringResponder(http.StatusOK, `{"orderId":"1"}}`))

		_, err := client.CreatePayment(context.Background(), fixtures.TestToken, request)
		So(err.Error(), ShouldEqual, `Server returned invalid JSON. Status: 200. Response: {"orderId":"1"}}`)
	})

	Convey("Non-JSON error body", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", createURL, httpmock.NewStringResponder(http.StatusForbidden, "Forbidden"))

		_, err := client.CreatePayment(context.Background(), fixtures.TestToken, request)
		So(err.Error(), ShouldEqual, "Server returned invalid JSON. Status: 403. Response: Forbidden")
	})
}

func TestUnitCapturePayment(t *testing.T) {
	client := createMockAPIClient()
	request := &models.CaptureRequest{OrderID: "17", PayPalOrderID: "5O190127TN364715T"}

	Convey("Successful capture", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		responder, _ := httpmock.NewJsonResponder(http.StatusOK, fixtures.GetCaptureResponse())
		httpmock.RegisterResponder("POST", captureURL, responder)

		result, err := client.CapturePayment(context.Background(), fixtures.TestToken, request)
		So(err, ShouldBeNil)
		So(result.Success, ShouldBeTrue)
		So(result.Message, ShouldEqual, "Payment captured successfully")
		So(result.PaymentStatus, ShouldEqual, "COMPLETED")
		So(result.TotalAmount, ShouldEqual, "59.90")
		So(result.OrderID, ShouldEqual, "17")
	})

	Convey("Capture rejected", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		responder, _ := httpmock.NewJsonResponder(http.StatusInternalServerError, map[string]string{
			"error":   "ORDER_NOT_APPROVED",
			"details": "Failed to capture PayPal payment",
		})
		httpmock.RegisterResponder("POST", captureURL, responder)

		result, err := client.CapturePayment(context.Background(), fixtures.TestToken, request)
		So(result, ShouldBeNil)
		So(err.Error(), ShouldEqual, "ORDER_NOT_APPROVED")
	})

	Convey("Success status without success flag", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", captureURL, httpmock.NewStringResponder(http.StatusOK, `{"success": false}`))

		_, err := client.CapturePayment(context.Background(), fixtures.TestToken, request)
		So(err.Error(), ShouldStartWith, "Server returned success but missing data.")
	})
}

func TestUnitGetPaymentStatus(t *testing.T) {
	client := createMockAPIClient()

	Convey("Completed order is paid", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET", statusURL, httpmock.NewStringResponder(http.StatusOK,
			`{"paypalOrderId": "5O190127TN364715T", "status": "COMPLETED"}`))

		status, err := client.GetPaymentStatus(context.Background(), fixtures.TestToken, "5O190127TN364715T")
		So(err, ShouldBeNil)
		So(status.Status, ShouldEqual, "COMPLETED")
		So(status.State, ShouldEqual, mappers.StatePaid)
	})

	Convey("Lookup failure", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET", statusURL, httpmock.NewStringResponder(http.StatusBadRequest,
			`{"error": "RESOURCE_NOT_FOUND"}`))

		_, err := client.GetPaymentStatus(context.Background(), fixtures.TestToken, "5O190127TN364715T")
		So(err.Error(), ShouldEqual, "RESOURCE_NOT_FOUND")
	})

	Convey("Missing status", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET", statusURL, httpmock.NewStringResponder(http.StatusOK, `{}`))

		_, err := client.GetPaymentStatus(context.Background(), fixtures.TestToken, "5O190127TN364715T")
		So(err, ShouldNotBeNil)
	})
}

func TestUnitRegister(t *testing.T) {
	client := createMockAPIClient()

	Convey("Registration succeeds", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		var authorization string
		httpmock.RegisterResponder("POST", registerURL, func(req *http.Request) (*http.Response, error) {
			authorization = req.Header.Get("Authorization")
			return httpmock.NewJsonResponse(http.StatusOK, fixtures.GetRegisterResponse(42))
		})

		request := AdminAccount
		resp, err := client.Register(context.Background(), &request)
		So(err, ShouldBeNil)
		So(authorization, ShouldBeEmpty)
		So(resp.User.ID, ShouldEqual, json.Number("42"))
		So(resp.User.Username, ShouldEqual, "admin")
		So(resp.Raw, ShouldContainSubstring, `"id":42`)
	})

	Convey("Registration rejected", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", registerURL, httpmock.NewStringResponder(http.StatusBadRequest, `{"error":"Email already exists"}`))

		request := AdminAccount
		_, err := client.Register(context.Background(), &request)

		var responseErr *ResponseError
		So(errors.As(err, &responseErr), ShouldBeTrue)
		So(responseErr.StatusCode, ShouldEqual, http.StatusBadRequest)
		So(responseErr.Body, ShouldEqual, `{"error":"Email already exists"}`)
	})

	Convey("Registration response is not JSON", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", registerURL, httpmock.NewStringResponder(http.StatusOK, "ok"))

		request := AdminAccount
		_, err := client.Register(context.Background(), &request)
		So(err.Error(), ShouldContainSubstring, "error reading registration response")
	})
}
