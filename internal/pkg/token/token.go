package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
)

var ErrInvalidToken = fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)

// Claims carried by the host when it calls the panel backend
type Claims struct {
	InstallationID string `json:"installationId"`
	AccountID      string `json:"accountId,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs a host token, used by tests and the local CLI
func GenerateToken(secret, installationID, accountID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		InstallationID: installationID,
		AccountID:      accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.InstallationID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
