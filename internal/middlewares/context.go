package middlewares

import "context"

// contextKey is an unexported type for keys in context
type contextKey int

const (
	usernameKey contextKey = iota
	requestIDKey
)

// SetUsernameToContext stores the authenticated username in the context
func SetUsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsernameFromContext retrieves the authenticated username. ok is false if absent.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok && username != ""
}

// GetRequestIDFromContext retrieves the request id set by LoggingMiddleware.
func GetRequestIDFromContext(ctx context.Context) string {
	reqID, _ := ctx.Value(requestIDKey).(string)
	return reqID
}
