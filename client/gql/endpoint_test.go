package gql

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hammem/monarchmoney/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() (string, bool) { return string(s), s != "" }

func TestEndpoint_Query(t *testing.T) {
	var seen http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		require.Equal(t, GraphQLPath, r.URL.Path)
		w.Write([]byte(`{"data":{"accounts":[]}}`))
	}))
	defer srv.Close()

	endpoint := New(WithBaseURL(srv.URL), WithTokenProvider(staticToken("abc123")))
	response, err := endpoint.Query(context.Background(), schema.NewRequest("GetAccounts", "query GetAccounts { accounts { id } }", nil))
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Empty(t, response.Errors)

	assert.Equal(t, "Token abc123", seen.Get("Authorization"))
	assert.Equal(t, "application/json", seen.Get("Content-Type"))
	assert.Equal(t, "web", seen.Get("Client-Platform"))
	assert.NotEmpty(t, seen.Get("device-uuid"))
}

func TestEndpoint_Query_NoTokenHeaderWithoutSession(t *testing.T) {
	var seen http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	endpoint := New(WithBaseURL(srv.URL))
	_, err := endpoint.Query(context.Background(), schema.NewRequest("Ping", "query Ping { ping }", nil))
	require.NoError(t, err)
	assert.Empty(t, seen.Get("Authorization"))
}

func TestEndpoint_Query_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	endpoint := New(WithBaseURL(srv.URL))
	_, err := endpoint.Query(context.Background(), schema.NewRequest("GetAccounts", "query {}", nil))
	var status *schema.StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusUnauthorized, status.Code)
}

func TestEndpoint_Query_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	endpoint := New(WithBaseURL(srv.URL))
	_, err := endpoint.Query(context.Background(), schema.NewRequest("GetAccounts", "query {}", nil))
	var transport *schema.TransportError
	require.ErrorAs(t, err, &transport)
}

func TestEndpoint_Post_ConnectionError(t *testing.T) {
	endpoint := New(WithBaseURL("http://127.0.0.1:1"))
	_, _, err := endpoint.Post(context.Background(), LoginPath, map[string]any{})
	var transport *schema.TransportError
	require.ErrorAs(t, err, &transport)
	assert.NotNil(t, transport.Unwrap())
}
