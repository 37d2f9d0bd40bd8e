package transport

import (
	"net/http"

	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/utils/errors"
)

// InternalMiddleware checks for the static service API key. An empty key
// disables the internal routes entirely.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || r.Header.Get("Authorization") != "Bearer "+apiKey {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
