package handlers

import (
	"net/http"

	"github.com/demoshop/checkout.web/helpers"
)

// cookieCredentials reads the bearer token from the browser's token cookie.
type cookieCredentials struct {
	req *http.Request
}

func (c cookieCredentials) Token() string {
	return helpers.GetToken(c.req)
}

// cookieSession stores page-lifetime values in session cookies.
type cookieSession struct {
	w      http.ResponseWriter
	secure bool
}

func (s cookieSession) SetItem(key, value string) {
	helpers.SetSessionValue(s.w, key, value, s.secure)
}

// redirectNavigator answers the form post with a redirect.
type redirectNavigator struct {
	w         http.ResponseWriter
	req       *http.Request
	navigated bool
}

func (n *redirectNavigator) Navigate(url string) {
	n.navigated = true
	http.Redirect(n.w, n.req, url, http.StatusSeeOther)
}
