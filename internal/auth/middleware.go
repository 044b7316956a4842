package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const TokenCookieName = "admin_token"

//go:generate mockgen -source=middleware.go -destination=mocks/mock.go -package=mockauth
type TokenParser interface {
	ParseToken(tokenStr string) (bool, error)
}

// NewAdminMiddleware guards a route group behind the admin token, read from
// the session cookie or an Authorization bearer header.
func NewAdminMiddleware(logger *zap.Logger, tokenParser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractToken(r)
			if tokenStr == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			isAdmin, err := tokenParser.ParseToken(tokenStr)
			if err != nil {
				logger.Warn("error when parsing admin token", zap.Error(err))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if !isAdmin {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	headerParts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(headerParts) == 2 && headerParts[0] == "Bearer" {
		return headerParts[1]
	}

	return ""
}
