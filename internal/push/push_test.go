package push_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldedhq/folded/internal/push"
)

func TestClient_Send(t *testing.T) {
	var got map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "key=server-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := push.New(srv.URL, "server-key")

	err := client.Send(t.Context(), "device-token", "Hello!", "You've got a new message!")
	require.NoError(t, err)

	assert.Equal(t, "device-token", got["to"])

	n, ok := got["notification"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Hello!", n["title"])
	assert.Equal(t, "You've got a new message!", n["body"])
}

func TestClient_Send_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := push.New(srv.URL, "server-key")

	err := client.Send(t.Context(), "stale-token", "Hello!", "You've got a new message!")
	assert.Error(t, err)
}

func TestClient_Send_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := push.New(srv.URL, "server-key")

	err := client.Send(t.Context(), "device-token", "Hello!", "body")
	assert.Error(t, err)
}
