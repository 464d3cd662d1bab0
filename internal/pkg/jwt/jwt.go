package jwt

import (
	"errors"

	"rentmarket/internal/pkg/identity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims mirrors what the external identity provider signs into its tokens.
// This service only validates; it never issues.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

type Validator struct {
	secretKey []byte
}

func NewValidator(secretKey string) *Validator {
	return &Validator{secretKey: []byte(secretKey)}
}

func (v *Validator) ValidateToken(tokenString string) (identity.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return identity.Actor{}, ErrExpiredToken
		}
		return identity.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return identity.Actor{}, ErrInvalidToken
	}

	role := identity.Role(claims.Role)
	if !role.IsValid() {
		return identity.Actor{}, ErrInvalidToken
	}

	return identity.Actor{UserID: claims.UserID, Role: role}, nil
}
