package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/demoshop/checkout.web/helpers"
	"github.com/demoshop/checkout.web/service"
	"github.com/demoshop/checkout.web/utils"
)

// TokenInterceptor rejects requests from browsers without a token cookie and
// adds the token to the request context for the next handler.
func TokenInterceptor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := helpers.GetToken(r)
		if token == "" {
			log.ErrorR(r, fmt.Errorf("token interceptor unauthorised: no token cookie"))
			utils.WriteJSONWithStatus(w, r, utils.NewMessageResponse(service.LoginRequiredMessage), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyToken, token)

		// Call the next handler
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
