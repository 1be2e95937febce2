package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and validates session tokens with the configured secret.
// The secret comes in through configuration, never read from the environment
// here, so it is whatever the loaded config resolved to.
type JWTManager struct {
	key []byte
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{key: []byte(secret)}
}

func (m *JWTManager) CreateToken(userId uuid.UUID, role string) (string, error) {
	if len(m.key) == 0 {
		return "", errors.New("jwt secret is not configured")
	}

	claims := &Claims{
		UserID: userId.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 12)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	if len(m.key) == 0 {
		return nil, errors.New("jwt secret is not configured")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}
