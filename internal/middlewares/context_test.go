package middlewares

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsernameContext(t *testing.T) {
	_, ok := GetUsernameFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetUsernameFromContext(SetUsernameToContext(context.Background(), ""))
	assert.False(t, ok)

	username, ok := GetUsernameFromContext(SetUsernameToContext(context.Background(), "alice"))
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
