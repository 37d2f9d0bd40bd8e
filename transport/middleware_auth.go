package transport

import (
	"net/http"
	"strings"

	"github.com/decomizer/storefront/application/user"
	"github.com/decomizer/storefront/constant"
	utilsContext "github.com/decomizer/storefront/utils/context"
	"github.com/decomizer/storefront/utils/errors"
	"github.com/gorilla/mux"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// Public endpoints, see isPublicPath, pass through without a token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithUserID(r.Context(), userID)))
		})
	}
}

// AdminMiddleware rejects authenticated users whose role is not admin.
func AdminMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utilsContext.GetUserID(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			u, err := userApp.GetUser(r.Context(), userID)
			if err != nil {
				if errors.Is(err, constant.ErrNotFound) {
					writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
					return
				}
				writeError(w, err)
				return
			}
			if u.Role != constant.RoleAdmin {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") || strings.HasPrefix(path, "/api/auth/") {
		return true
	}
	if path == "/api/visits" && method == http.MethodPost {
		return true
	}
	if method == http.MethodGet && (strings.HasPrefix(path, "/api/categories") || strings.HasPrefix(path, "/api/products")) {
		return true
	}
	return false
}
