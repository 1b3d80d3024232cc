package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/omashasarra/hasbani-backend/internal/models"
)

// TokenTTL is the fixed lifetime of a session token. Tokens are stateless,
// there is no server-side revocation.
const TokenTTL = 8 * time.Hour

type SessionClaims struct {
	AdminID uint        `json:"id"`
	Role    models.Role `json:"role"`
	jwt.RegisteredClaims
}

func Issue(secret []byte, adminID uint, role models.Role) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		AdminID: adminID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func Parse(tokenStr string, secret []byte) (*SessionClaims, error) {
	var claims SessionClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}
