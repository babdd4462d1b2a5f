package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/demoshop/checkout.web/models"
	"github.com/demoshop/checkout.web/service"
)

// HandleGetCheckout renders an empty checkout form
func HandleGetCheckout(w http.ResponseWriter, req *http.Request) {
	render(w, req, "checkout", checkoutPage{Address: models.NewShippingAddress()}, http.StatusOK)
}

// HandlePostCheckout submits the checkout form. On success the browser is
// redirected to the provider's approval page; otherwise the form is shown
// again with the error and the values entered.
func HandlePostCheckout(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	navigator := &redirectNavigator{w: w, req: req}
	form := service.NewForm(
		handlerConfig.Origin(),
		paymentCreator,
		cookieCredentials{req: req},
		cookieSession{w: w, secure: handlerConfig.UseSecureCookies()},
		navigator,
	)
	form.Address = bindAddress(req)

	err := form.Submit(req.Context())
	if err == nil && navigator.navigated {
		log.InfoR(req, "Successful checkout submission, redirecting to approval page")
		return
	}

	log.InfoR(req, "checkout form shown again after failed submission", log.Data{"message": form.Error})
	render(w, req, "checkout", checkoutPage{Address: form.Address, Error: form.Error, Loading: form.Loading}, http.StatusOK)
}

// bindAddress copies the posted form fields into a shipping address. The
// country keeps its default only when the field was not posted at all.
func bindAddress(req *http.Request) models.ShippingAddress {
	address := models.NewShippingAddress()
	address.Street = strings.TrimSpace(req.PostFormValue("street"))
	address.City = strings.TrimSpace(req.PostFormValue("city"))
	address.State = strings.TrimSpace(req.PostFormValue("state"))
	address.ZipCode = strings.TrimSpace(req.PostFormValue("zipCode"))
	address.PhoneNumber = strings.TrimSpace(req.PostFormValue("phoneNumber"))
	if _, ok := req.PostForm["country"]; ok {
		address.Country = strings.TrimSpace(req.PostFormValue("country"))
	}
	return address
}
