package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClient struct {
	baseURL string
	timeout time.Duration
}

func (c *testClient) GetBaseURL() string                      { return c.baseURL }
func (c *testClient) GetDefaultRequestTimeout() time.Duration { return c.timeout }
func (c *testClient) GetHttpClient() *http.Client             { return &http.Client{} }

type echoRequest struct {
	Value string `json:"value"`
}

type echoResponse struct {
	Value string `json:"value"`
}

func TestSendRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/echo", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "yes", r.Header.Get("X-Test"))
			w.Write([]byte(`{"value":"pong"}`)) //nolint:errcheck
		}))
		defer server.Close()

		opts := &HttpClientOptions{Path: "/echo", TemplatePath: "/echo", Headers: map[string]string{"X-Test": "yes"}}
		resp, err := SendRequest[echoRequest, echoResponse](ctx, &testClient{baseURL: server.URL}, http.MethodPost, opts, &echoRequest{Value: "ping"})
		require.NoError(t, err)
		assert.Equal(t, "pong", resp.Value)
	})
	t.Run("status error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("down")) //nolint:errcheck
		}))
		defer server.Close()

		_, err := SendRequest[echoRequest, echoResponse](ctx, &testClient{baseURL: server.URL}, http.MethodGet, &HttpClientOptions{}, nil)
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
		assert.Equal(t, "down", statusErr.Body)
	})
	t.Run("decode error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json")) //nolint:errcheck
		}))
		defer server.Close()

		_, err := SendRequest[echoRequest, echoResponse](ctx, &testClient{baseURL: server.URL}, http.MethodGet, &HttpClientOptions{}, nil)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
	})
	t.Run("transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := SendRequest[echoRequest, echoResponse](ctx, &testClient{baseURL: server.URL}, http.MethodGet, &HttpClientOptions{}, nil)
		require.ErrorIs(t, err, ErrRequestFailed)
	})
	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		opts := &HttpClientOptions{Timeout: 20 * time.Millisecond}
		_, err := SendRequest[echoRequest, echoResponse](ctx, &testClient{baseURL: server.URL}, http.MethodGet, opts, nil)
		require.ErrorIs(t, err, ErrRequestFailed)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
	t.Run("method not allowed", func(t *testing.T) {
		_, err := SendRequest[echoRequest, echoResponse](ctx, &testClient{baseURL: "http://localhost"}, http.MethodDelete, &HttpClientOptions{}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed")
	})
}
