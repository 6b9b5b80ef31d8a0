package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
)

func TestGenerateAndValidate(t *testing.T) {
	signed, err := GenerateToken("s3cret", "install-1", "acct-1", time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToken(signed, "s3cret")
	require.NoError(t, err)
	require.Equal(t, "install-1", claims.InstallationID)
	require.Equal(t, "acct-1", claims.AccountID)
}

func TestValidateToken_Rejects(t *testing.T) {
	good, err := GenerateToken("s3cret", "install-1", "", time.Minute)
	require.NoError(t, err)

	expired, err := GenerateToken("s3cret", "install-1", "", -time.Minute)
	require.NoError(t, err)

	noInstall, err := GenerateToken("s3cret", "", "", time.Minute)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{InstallationID: "install-1"}).
		SignedString([]byte("s3cret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", good, "other"},
		{"expired", expired, "s3cret"},
		{"missing installation", noInstall, "s3cret"},
		{"missing expiry", noExpiry, "s3cret"},
		{"garbage", "not-a-jwt", "s3cret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(tt.token, tt.secret)
			require.ErrorIs(t, err, ErrInvalidToken)
			require.ErrorIs(t, err, apperrors.ErrUnauthorized)
		})
	}
}
