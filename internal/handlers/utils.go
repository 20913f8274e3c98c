package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-todo/internal/errs"
	"github.com/sbilibin2017/gw-todo/internal/logger"
	"github.com/sbilibin2017/gw-todo/internal/middlewares"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Todo not found
	Error string `json:"error"`
}

// MessageResponse carries a confirmation message
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// default: Todo deleted successfully
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, message)
}

// currentUser returns the username put into the context by the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := middlewares.GetUsernameFromContext(r.Context())
	if !ok {
		logger.Log.Error("no authenticated user in request context")
		writeUnauthorized(w, "Not authenticated")
	}
	return username, ok
}

// todoID parses the {id} path parameter.
func todoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		logger.Log.Warnw("invalid todo id", "id", chi.URLParam(r, "id"), "error", err)
		writeError(w, http.StatusBadRequest, "Invalid todo id")
		return 0, false
	}
	return id, true
}

// logError logs a failed request together with its request id.
func logError(r *http.Request, msg string, keysAndValues ...any) {
	keysAndValues = append(keysAndValues, "request_id", middlewares.GetRequestIDFromContext(r.Context()))
	logger.Log.Errorw(msg, keysAndValues...)
}

// writeTodoError maps todo service errors to HTTP responses.
func writeTodoError(w http.ResponseWriter, r *http.Request, err error, msg string, keysAndValues ...any) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		writeError(w, http.StatusNotFound, "Todo not found")
	case errors.Is(err, errs.ErrValidation):
		writeError(w, http.StatusBadRequest, "Title must not be empty")
	default:
		logError(r, msg, append(keysAndValues, "error", err)...)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
