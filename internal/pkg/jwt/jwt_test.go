//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"token-storefront/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	token, err := svc.GenerateToken("u1", "buyer@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, "u1", claims.Subject)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	expired, err := jwt.NewService("secret", -time.Minute).GenerateToken("u1", "a@b.c")
	require.NoError(t, err)

	otherKey, err := jwt.NewService("other", time.Hour).GenerateToken("u1", "a@b.c")
	require.NoError(t, err)

	noUser, err := svc.GenerateToken("", "a@b.c")
	require.NoError(t, err)

	none, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"user_id": "u1"}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired, wantErr: jwt.ErrExpiredToken},
		{name: "wrong key", token: otherKey, wantErr: jwt.ErrInvalidToken},
		{name: "missing user id", token: noUser, wantErr: jwt.ErrInvalidToken},
		{name: "alg none", token: none, wantErr: jwt.ErrInvalidToken},
		{name: "garbage", token: "not-a-jwt", wantErr: jwt.ErrInvalidToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tc.token)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
