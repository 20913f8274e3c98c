package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestJWT_ValidUntilTTL(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	j := New(
		WithSecretKey("test-secret"),
		WithExpiration(15*time.Minute),
		WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	token, err := j.Generate(ctx, "alice")
	require.NoError(t, err)

	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr bool
	}{
		{"Immediately", 0, false},
		{"BeforeExpiry", 14 * time.Minute, false},
		{"AtExpiry", 15 * time.Minute, true},
		{"AfterExpiry", 16 * time.Minute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = start.Add(tt.elapsed)
			claims, err := j.Validate(ctx, token)
			if tt.wantErr {
				assert.ErrorIs(t, err, jwt.ErrTokenExpired)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "alice", claims.Subject)
			}
		})
	}
}

func TestJWT_ValidUntilTTL_SubSecondStart(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 900*int(time.Millisecond), time.UTC)
	now := start
	j := New(
		WithSecretKey("test-secret"),
		WithExpiration(15*time.Minute),
		WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	token, err := j.Generate(ctx, "alice")
	require.NoError(t, err)

	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr bool
	}{
		{"HalfSecondBeforeTTL", 15*time.Minute - 500*time.Millisecond, false},
		{"JustBeforeTTL", 15*time.Minute - time.Millisecond, false},
		{"WellAfterTTL", 15*time.Minute + time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = start.Add(tt.elapsed)
			claims, err := j.Validate(ctx, token)
			if tt.wantErr {
				assert.ErrorIs(t, err, jwt.ErrTokenExpired)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "alice", claims.Subject)
			}
		})
	}
}

func TestExpiresAt(t *testing.T) {
	exact := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, exact.Add(time.Minute), expiresAt(exact, time.Minute))
	assert.Equal(t, exact.Add(time.Minute+time.Second), expiresAt(exact.Add(time.Nanosecond), time.Minute))
	assert.Equal(t, exact.Add(time.Minute+time.Second), expiresAt(exact.Add(900*time.Millisecond), time.Minute))
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, "alice")
	require.NoError(t, err)

	claims, err := j.Validate(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))

	claims, err := j.Validate(context.Background(), "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, "alice")
	require.NoError(t, err)

	_, err = j2.Validate(ctx, token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWT_Validate_RejectsOtherAlgorithms(t *testing.T) {
	j := New(WithSecretKey("secret"))

	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = j.Validate(context.Background(), token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWT_Validate_RequiresExpiration(t *testing.T) {
	j := New(WithSecretKey("secret"))

	claims := jwt.RegisteredClaims{Subject: "alice"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = j.Validate(context.Background(), token)
	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
}

func TestJWT_Validate_RequiresSubject(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	token, err := j.Generate(ctx, "")
	require.NoError(t, err)

	_, err = j.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectedErr   error
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", nil},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", nil},
		{"NoHeader", "", "", ErrMissingAuthHeader},
		{"InvalidFormat", "Token mytoken123", "", ErrInvalidAuthHeader},
		{"TooManyParts", "Bearer a b c", "", ErrInvalidAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
