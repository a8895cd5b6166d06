package api_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipma-mcp/internal/api"
)

func TestClientGet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		fmt.Fprint(w, `{"owner":"IPMA"}`)
	}))
	defer ts.Close()

	client := api.NewClient(5 * time.Second)

	body, err := client.Get(context.Background(), ts.URL)

	require.NoError(t, err)
	assert.JSONEq(t, `{"owner":"IPMA"}`, string(body))
}

func TestClientGetNonOKStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"NotFound", http.StatusNotFound},
		{"ServerError", http.StatusInternalServerError},
		{"ServiceUnavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer ts.Close()

			client := api.NewClient(5 * time.Second)

			body, err := client.Get(context.Background(), ts.URL)

			require.Error(t, err)
			assert.Nil(t, body)
			assert.Contains(t, err.Error(), "non-OK status")
		})
	}
}

func TestClientGetNoRetry(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := api.NewClient(5 * time.Second)

	_, err := client.Get(context.Background(), ts.URL)

	require.Error(t, err)
	assert.Equal(t, 1, hits)
}

func TestClientGetContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer ts.Close()

	client := api.NewClient(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, ts.URL)

	require.Error(t, err)
}

func TestClientGetBadURL(t *testing.T) {
	client := api.NewClient(time.Second)

	_, err := client.Get(context.Background(), "http://127.0.0.1:0")

	require.Error(t, err)
}
