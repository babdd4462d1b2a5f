package handlers

import (
	"net/http"

	"github.com/demoshop/checkout.web/config"
	"github.com/demoshop/checkout.web/interceptors"
	"github.com/demoshop/checkout.web/service"
	"github.com/gorilla/mux"
)

var handlerConfig *config.Config
var apiClient *service.APIClient
var paymentCreator service.PaymentCreator

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg *config.Config, client *service.APIClient) {
	handlerConfig = cfg
	apiClient = client
	paymentCreator = &service.SingleFlightCreator{Creator: client}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	mainRouter.HandleFunc("/checkout", HandleGetCheckout).Methods("GET").Name("get-checkout")
	mainRouter.HandleFunc("/checkout", HandlePostCheckout).Methods("POST").Name("submit-checkout")

	mainRouter.HandleFunc("/payment/success", HandlePaymentSuccess).Methods("GET").Name("payment-success")
	mainRouter.HandleFunc("/payment/cancel", HandlePaymentCancel).Methods("GET").Name("payment-cancel")

	// status lookups answer with JSON and need the token interceptor, so need their own subrouter
	statusRouter := mainRouter.PathPrefix("/payment/status/{paypal_order_id}").Subrouter()
	statusRouter.HandleFunc("", HandleGetPaymentStatus).Methods("GET").Name("get-payment-status")
	statusRouter.Use(interceptors.TokenInterceptor)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
