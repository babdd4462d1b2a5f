package service

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ClassifyError turns any failure of a submission into the message shown on
// the form. Connectivity failures get troubleshooting text naming the backend
// that could not be reached; everything else shows its own message.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}

	var checkoutErr *CheckoutError
	if errors.As(err, &checkoutErr) && checkoutErr.Kind != Network {
		return checkoutErr.Message
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ConnectivityMessage(backendOrigin(urlErr.URL))
	}

	var netErr net.Error
	if errors.As(err, &netErr) || (checkoutErr != nil && checkoutErr.Kind == Network) {
		return ConnectivityMessage("")
	}

	return err.Error()
}

// ConnectivityMessage is shown when the backend at origin cannot be reached.
func ConnectivityMessage(origin string) string {
	if origin == "" {
		return "Cannot connect to backend server.\n\nPlease check:\n" +
			"• Is the backend running at the configured API_BASE_URL?\n" +
			"• Check the checkout server logs for the failed request"
	}
	return fmt.Sprintf("Cannot connect to backend server.\n\nPlease check:\n"+
		"• Is backend running on %s?\n"+
		"• Check the checkout server logs for the failed request\n"+
		"• Try accessing %s/api/products directly", origin, origin)
}

func backendOrigin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
