package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	mockauth "github.com/xw1nchester/stylequiz-backend/internal/auth/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestAdminMiddleware(t *testing.T) {
	type mockBehavior func(s *mockauth.MockTokenParser)

	testTable := []struct {
		name               string
		cookie             string
		authHeader         string
		mockBehavior       mockBehavior
		expectedStatusCode int
	}{
		{
			name:   "valid cookie",
			cookie: "token",
			mockBehavior: func(s *mockauth.MockTokenParser) {
				s.EXPECT().ParseToken("token").Return(true, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:       "valid bearer header",
			authHeader: "Bearer token",
			mockBehavior: func(s *mockauth.MockTokenParser) {
				s.EXPECT().ParseToken("token").Return(true, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:               "no credentials",
			mockBehavior:       func(s *mockauth.MockTokenParser) {},
			expectedStatusCode: 401,
		},
		{
			name:   "parse error",
			cookie: "token",
			mockBehavior: func(s *mockauth.MockTokenParser) {
				s.EXPECT().ParseToken("token").Return(false, errors.New("invalid token"))
			},
			expectedStatusCode: 401,
		},
		{
			name:   "not admin",
			cookie: "token",
			mockBehavior: func(s *mockauth.MockTokenParser) {
				s.EXPECT().ParseToken("token").Return(false, nil)
			},
			expectedStatusCode: 403,
		},
		{
			name:               "malformed header",
			authHeader:         "token",
			mockBehavior:       func(s *mockauth.MockTokenParser) {},
			expectedStatusCode: 401,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokenParser := mockauth.NewMockTokenParser(ctrl)
			tc.mockBehavior(tokenParser)

			middleware := NewAdminMiddleware(zap.NewNop(), tokenParser)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: tc.cookie})
			}
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			w := httptest.NewRecorder()
			middleware(next).ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
		})
	}
}

func TestExtractTokenPrefersCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "from-cookie"})
	req.Header.Set("Authorization", "Bearer from-header")

	assert.Equal(t, "from-cookie", extractToken(req))
}
