package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/xw1nchester/stylequiz-backend/internal/config"
)

var ErrInvalidToken = errors.New("invalid token")

type manager struct {
	adminConfig config.Admin
}

func NewManager(adminConfig config.Admin) *manager {
	return &manager{
		adminConfig: adminConfig,
	}
}

type adminClaims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
}

func (m *manager) GenerateToken() (string, error) {
	claims := adminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.adminConfig.TokenTTL)),
		},
		IsAdmin: true,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(m.adminConfig.JWTSecret))
}

func (m *manager) GetTokenTTL() time.Duration {
	return m.adminConfig.TokenTTL
}

// ParseToken reports whether the token grants admin access.
func (m *manager) ParseToken(tokenStr string) (bool, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &adminClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(m.adminConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return false, ErrInvalidToken
	}

	claims, ok := token.Claims.(*adminClaims)
	if !ok {
		return false, ErrInvalidToken
	}

	return claims.IsAdmin, nil
}
