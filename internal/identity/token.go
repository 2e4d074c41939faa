// Package identity verifies the session tokens minted by the dashboard's
// identity provider. Tokens are HS256 JWTs carrying the user id; the
// provider itself is an external collaborator.
package identity

//go:generate mockgen -destination=../mocks/mock_token_verifier.go -package=mocks github.com/CodeRohanDev/FastSubmit-sub004/internal/identity TokenVerifier

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type TokenVerifier interface {
	VerifySessionToken(tokenString string) (*SessionClaims, error)
}

type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type TokenService struct {
	secret string
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: secret}
}

// VerifySessionToken parses and validates the given session token string.
func (ts *TokenService) VerifySessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("token has no user id")
	}

	return claims, nil
}
