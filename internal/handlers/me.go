package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-todo/internal/errs"
	"github.com/sbilibin2017/gw-todo/internal/models"
)

//go:generate mockgen -source=me.go -destination=me_mock.go -package=handlers

// Profiler defines the interface that the service must implement.
type Profiler interface {
	Profile(ctx context.Context, username string) (*models.User, error)
}

// NewMeHandler returns the profile of the authenticated user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse "User profile"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(w, r)
		if !ok {
			return
		}

		user, err := svc.Profile(r.Context(), username)
		if err != nil {
			if errors.Is(err, errs.ErrUnauthorized) {
				writeUnauthorized(w, "Not authenticated")
				return
			}
			logError(r, "failed to load profile", "username", username, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}
