package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-todo/internal/jwt"
	"github.com/sbilibin2017/gw-todo/internal/logger"
	"github.com/sbilibin2017/gw-todo/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AccountReader looks up the account named by a token subject
type AccountReader interface {
	Profile(ctx context.Context, username string) (*models.User, error)
}

// AuthErrorResponse is returned when a request carries no valid token
// swagger:model AuthErrorResponse
type AuthErrorResponse struct {
	// Error message
	// default: Not authenticated
	Error string `json:"error"`
}

// AuthMiddleware returns a middleware that validates the bearer token and
// stores its subject in the request context. The subject must still be an
// existing, active account.
func AuthMiddleware(tokener Tokener, accounts AccountReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.Validate(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			user, err := accounts.Profile(ctx, claims.Subject)
			if err != nil {
				logger.Log.Errorw("authorization failed", "username", claims.Subject, "err", err)
				unauthorized(w)
				return
			}
			if user.Disabled {
				logger.Log.Errorw("authorization failed: user is disabled", "username", claims.Subject)
				unauthorized(w)
				return
			}

			ctx = SetUsernameToContext(ctx, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(AuthErrorResponse{Error: "Not authenticated"})
}
