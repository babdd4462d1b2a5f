package helpers

import (
	"net/http"
	"net/url"

	"github.com/demoshop/checkout.web/models"
)

// GetToken returns the bearer credential the browser holds in its token
// cookie, or "" when there is none. The credential is opaque and is returned
// exactly as stored.
func GetToken(r *http.Request) string {
	cookie, err := r.Cookie(models.CredentialKey)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// GetCookieValue returns the unescaped value of a cookie written by
// SetSessionValue.
func GetCookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return ""
	}

	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return cookie.Value
	}
	return value
}

// SetSessionValue writes a cookie that lives as long as the browser session.
func SetSessionValue(w http.ResponseWriter, name, value string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(value),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionValue expires the named session cookie.
func ClearSessionValue(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
