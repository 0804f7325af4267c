package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{APIKey: "gk-test", BaseURL: server.URL})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestGenerateContent(t *testing.T) {
	t.Run("joins candidate text parts", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
			assert.Equal(t, "gk-test", r.URL.Query().Get("key"))

			var payload map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			genCfg := payload["generationConfig"].(map[string]interface{})
			assert.Equal(t, float64(2048), genCfg["maxOutputTokens"])
			assert.Equal(t, float64(0), genCfg["temperature"])
			assert.Equal(t, "application/json", genCfg["responseMimeType"])

			_, _ = w.Write([]byte(`{
				"candidates":[{"content":{"parts":[{"text":"{\"contact"},{"text":"s\":[]}"}]}}]
			}`))
		})

		result, err := client.GenerateContent(context.Background(), "extract contacts")
		require.NoError(t, err)
		assert.Equal(t, `{"contacts":[]}`, result.Text)
		assert.Contains(t, result.Raw, "candidates")
	})

	t.Run("empty parts yield empty text with raw preserved", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		})

		result, err := client.GenerateContent(context.Background(), "p")
		require.NoError(t, err)
		assert.Empty(t, result.Text)
		assert.Contains(t, result.Raw, "candidates")
	})

	t.Run("non-2xx carries status and body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
		})

		_, err := client.GenerateContent(context.Background(), "p")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "quota exceeded")
	})
}

func TestFirstJSON(t *testing.T) {
	t.Run("object inside prose", func(t *testing.T) {
		raw, ok := FirstJSON("Sure, here you go:\n```json\n{\"a\":1}\n```")
		require.True(t, ok)
		assert.JSONEq(t, `{"a":1}`, string(raw))
	})

	t.Run("bare array", func(t *testing.T) {
		raw, ok := FirstJSON(`[{"name":"Acme"}]`)
		require.True(t, ok)
		assert.JSONEq(t, `[{"name":"Acme"}]`, string(raw))
	})

	t.Run("no json at all", func(t *testing.T) {
		_, ok := FirstJSON("I could not find any entities in the text.")
		assert.False(t, ok)
	})

	t.Run("invalid json block", func(t *testing.T) {
		_, ok := FirstJSON("{not valid}")
		assert.False(t, ok)
	})

	t.Run("empty text", func(t *testing.T) {
		_, ok := FirstJSON("")
		assert.False(t, ok)
	})
}
