package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Complete(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"#0EA5E9 Sky\n#F59E0B Amber"}}]}`))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL), WithAPIKey("sk-test"), WithModel("test-model"))
	reply, err := client.Complete(context.Background(), "a calm beach")
	require.NoError(t, err)

	assert.Equal(t, "#0EA5E9 Sky\n#F59E0B Amber", reply)
	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "a calm beach", got.Messages[1].Content)
}

func TestClient_CompleteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"slow down"}}`))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL), WithAPIKey("sk-test"))
	_, err := client.Complete(context.Background(), "x")
	require.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "slow down")
}

func TestClient_CompleteMissingContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL), WithAPIKey("sk-test"))
	_, err := client.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestClient_NotConfigured(t *testing.T) {
	_, err := NewClient().Complete(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL), WithAPIKey("k"), WithTimeout(20*time.Millisecond))
	_, err := client.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestNewClient_HTTPClientOptions(t *testing.T) {
	client := NewClient(WithHTTPClient(nil), WithTimeout(5*time.Second))
	require.NotNil(t, client.httpClient)
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)

	assert.Equal(t, DefaultTimeout, NewClient().httpClient.Timeout)

	shared := &http.Client{Timeout: time.Minute}
	client = NewClient(WithHTTPClient(shared), WithTimeout(2*time.Second))
	assert.Equal(t, time.Minute, shared.Timeout, "caller's client is left alone")
	assert.Equal(t, 2*time.Second, client.httpClient.Timeout)
	assert.NotSame(t, shared, client.httpClient)

	client = NewClient(WithHTTPClient(shared))
	assert.Same(t, shared, client.httpClient)
}
