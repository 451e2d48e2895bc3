package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or shape checks
var ErrInvalidToken = errors.New("invalid session token")

// Claims represents the session token claims. Id is the session ID, Subject the user ID.
type Claims struct {
	jwt.StandardClaims
}

// TokenSigner issues and parses session tokens with an HMAC key
type TokenSigner struct {
	key []byte
}

// NewTokenSigner creates a TokenSigner for key
func NewTokenSigner(key []byte) *TokenSigner {
	return &TokenSigner{key: key}
}

// GenerateJWT signs a token binding sessionID to userID until expiresAt
func (s *TokenSigner) GenerateJWT(sessionID, userID string, expiresAt time.Time) (string, error) {
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        sessionID,
			Subject:   userID,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// ParseJWT validates tokenStr and returns its claims
func (s *TokenSigner) ParseJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.key, nil
	})
	if err != nil || !token.Valid || claims.Id == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
