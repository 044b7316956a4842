package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSend(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := New(Config{Token: "bot-token", ChatID: "42"}, zap.NewNop())
	n.baseURL = server.URL

	err := n.Send(context.Background(), "New lead: Ann")

	require.NoError(t, err)
	assert.Equal(t, "/botbot-token/sendMessage", gotPath)
	assert.Equal(t, map[string]string{"chat_id": "42", "text": "New lead: Ann"}, gotBody)
}

func TestSendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	n := New(Config{Token: "bot-token", ChatID: "42"}, zap.NewNop())
	n.baseURL = server.URL

	assert.Error(t, n.Send(context.Background(), "text"))
}

func TestSendDisabledWithoutToken(t *testing.T) {
	n := New(Config{}, zap.NewNop())

	assert.NoError(t, n.Send(context.Background(), "text"))
}
