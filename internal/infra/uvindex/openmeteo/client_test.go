package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCurrentIndex(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/forecast", r.URL.Path)
		require.Equal(t, "40.7", r.URL.Query().Get("latitude"))
		require.Equal(t, "-74", r.URL.Query().Get("longitude"))
		require.Equal(t, "uv_index", r.URL.Query().Get("current"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current":{"time":"2026-06-21T12:00","uv_index":8.65}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/v1/forecast", time.Second)
	uvIndex, err := client.CurrentIndex(context.Background(), 40.7, -74)
	require.NoError(t, err)
	require.Equal(t, 8.65, uvIndex)
}

func TestCurrentIndexMissingField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current":{"time":"2026-06-21T12:00"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/v1/forecast", time.Second)
	_, err := client.CurrentIndex(context.Background(), 1, 2)
	require.ErrorContains(t, err, "missing uv_index")
}

func TestCurrentIndexServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/v1/forecast", time.Second)
	_, err := client.CurrentIndex(context.Background(), 1, 2)
	require.ErrorContains(t, err, "status=429")
}

func TestCurrentIndexMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/v1/forecast", time.Second)
	_, err := client.CurrentIndex(context.Background(), 1, 2)
	require.ErrorContains(t, err, "decode forecast response")
}
