package service

import (
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/golang-jwt/jwt/v5"
)

const tokenPreviewLength = 30

// TokenPreview returns the first characters of a bearer token for logging.
func TokenPreview(token string) string {
	if token == "" {
		return "null"
	}
	runes := []rune(token)
	if len(runes) > tokenPreviewLength {
		runes = runes[:tokenPreviewLength]
	}
	return string(runes) + "..."
}

// logCredential records whether a token was found and, when the token is a
// JWT, its expiry. The signature is not checked; the backend does that.
func logCredential(token string) {
	data := log.Data{"token_exists": token != "", "token_preview": TokenPreview(token)}

	if token != "" {
		claims := jwt.MapClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				data["token_expires_at"] = exp.Time.Format(time.RFC3339)
				data["token_expired"] = exp.Time.Before(time.Now())
			}
		}
	}

	log.Debug("checkout credential", data)
}
