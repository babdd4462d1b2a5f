package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/demoshop/checkout.web/helpers"
	"github.com/demoshop/checkout.web/models"
	"github.com/demoshop/checkout.web/service"
	"github.com/demoshop/checkout.web/utils"
	"github.com/gorilla/mux"
)

const noPaymentInProgressMessage = "No payment in progress. Please start checkout again."

// HandlePaymentSuccess is the return URL given to the provider. It captures
// the payment identified by the session values written at checkout.
func HandlePaymentSuccess(w http.ResponseWriter, req *http.Request) {
	page := resultPage{Title: "Payment"}

	orderID := helpers.GetCookieValue(req, models.SessionKeyOrderID)
	paypalOrderID := helpers.GetCookieValue(req, models.SessionKeyPayPalOrderID)
	if orderID == "" || paypalOrderID == "" {
		log.ErrorR(req, fmt.Errorf("payment return without session identifiers"))
		page.Error = noPaymentInProgressMessage
		render(w, req, "result", page, http.StatusBadRequest)
		return
	}

	if providerToken := req.URL.Query().Get("token"); providerToken != "" && providerToken != paypalOrderID {
		log.InfoR(req, "provider token does not match session paypal order id", log.Data{"token": providerToken, "paypal_order_id": paypalOrderID})
	}

	token := helpers.GetToken(req)
	if token == "" {
		page.Error = service.LoginRequiredMessage
		render(w, req, "result", page, http.StatusUnauthorized)
		return
	}

	result, err := apiClient.CapturePayment(req.Context(), token, &models.CaptureRequest{
		OrderID:       orderID,
		PayPalOrderID: paypalOrderID,
	})
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error capturing payment: [%v]", err), log.Data{"order_id": orderID})
		page.Error = service.ClassifyError(err)
		render(w, req, "result", page, http.StatusBadGateway)
		return
	}

	clearPaymentSession(w)

	page.Title = "Payment Complete"
	page.Message = result.Message
	page.Capture = result
	log.InfoR(req, "Successful payment capture", log.Data{"order_id": orderID, "paypal_order_id": paypalOrderID})
	render(w, req, "result", page, http.StatusOK)
}

// HandlePaymentCancel is the cancel URL given to the provider
func HandlePaymentCancel(w http.ResponseWriter, req *http.Request) {
	clearPaymentSession(w)
	log.InfoR(req, "payment cancelled by buyer")
	render(w, req, "result", resultPage{
		Title:   "Payment Cancelled",
		Message: "Your payment was cancelled and you have not been charged.",
	}, http.StatusOK)
}

// HandleGetPaymentStatus returns the provider status of a PayPal order as JSON
func HandleGetPaymentStatus(w http.ResponseWriter, req *http.Request) {
	paypalOrderID := mux.Vars(req)["paypal_order_id"]
	if paypalOrderID == "" {
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("paypal order id is required"), http.StatusBadRequest)
		return
	}

	token, _ := req.Context().Value(helpers.ContextKeyToken).(string)

	status, err := apiClient.GetPaymentStatus(req.Context(), token, paypalOrderID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting payment status: [%v]", err), log.Data{"paypal_order_id": paypalOrderID})
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(service.ClassifyError(err)), statusFor(err))
		return
	}

	utils.WriteJSONWithStatus(w, req, status, http.StatusOK)
}

func clearPaymentSession(w http.ResponseWriter) {
	secure := handlerConfig.UseSecureCookies()
	helpers.ClearSessionValue(w, models.SessionKeyOrderID, secure)
	helpers.ClearSessionValue(w, models.SessionKeyPayPalOrderID, secure)
}

// statusFor passes backend error statuses through and reports anything that
// went wrong reaching or reading the backend as a bad gateway.
func statusFor(err error) int {
	var checkoutErr *service.CheckoutError
	if !errors.As(err, &checkoutErr) {
		return http.StatusInternalServerError
	}
	if checkoutErr.Kind == service.HTTPStatus && checkoutErr.StatusCode >= 400 {
		return checkoutErr.StatusCode
	}
	return http.StatusBadGateway
}
