package openai

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoBodyServer(t *testing.T) (*httptest.Server, *[]byte) {
	t.Helper()
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = io.ReadAll(r.Body)
		assert.Equal(t, int64(len(received)), r.ContentLength)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestSamplingTransport(t *testing.T) {
	t.Run("adds missing sampling fields", func(t *testing.T) {
		srv, received := echoBodyServer(t)
		client := withSamplingFields(srv.Client())

		resp, err := client.Post(srv.URL, "application/json",
			strings.NewReader(`{"model":"gpt-4o-mini","temperature":0.27,"max_completion_tokens":500}`))
		require.NoError(t, err)
		resp.Body.Close()

		var body map[string]any
		require.NoError(t, json.Unmarshal(*received, &body))
		assert.Equal(t, "gpt-4o-mini", body["model"])
		assert.InDelta(t, 0.27, body["temperature"], 1e-9)
		assert.InDelta(t, 500, body["max_completion_tokens"], 1e-9)
		assert.InDelta(t, 1.0, body["top_p"], 1e-9)
		assert.Equal(t, 0.0, body["frequency_penalty"])
		assert.Equal(t, 0.0, body["presence_penalty"])
	})

	t.Run("keeps fields already set", func(t *testing.T) {
		srv, received := echoBodyServer(t)
		client := withSamplingFields(srv.Client())

		resp, err := client.Post(srv.URL, "application/json", strings.NewReader(`{"top_p":0.5}`))
		require.NoError(t, err)
		resp.Body.Close()

		var body map[string]any
		require.NoError(t, json.Unmarshal(*received, &body))
		assert.InDelta(t, 0.5, body["top_p"], 1e-9)
	})

	t.Run("non-JSON bodies pass through", func(t *testing.T) {
		srv, received := echoBodyServer(t)
		client := withSamplingFields(srv.Client())

		resp, err := client.Post(srv.URL, "text/plain", strings.NewReader("hello"))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, "hello", string(*received))
	})

	t.Run("nil client gets the default transport", func(t *testing.T) {
		client := withSamplingFields(nil)
		st, ok := client.Transport.(*samplingTransport)
		require.True(t, ok)
		assert.Equal(t, http.DefaultTransport, st.next)
	})
}
