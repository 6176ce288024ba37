package monarchmoney_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hammem/monarchmoney"
	"github.com/hammem/monarchmoney/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAPIServer emulates the two endpoints the assembled client talks to:
// token issuance at /auth/login/ and the GraphQL gateway at /graphql.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["username"] != "user@example.com" || body["password"] != "hunter2" {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"error_code":"invalid_credentials"}`)
			return
		}
		fmt.Fprint(w, `{"token":"tok-e2e"}`)
	})
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token tok-e2e" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var request schema.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		switch request.OperationName {
		case "GetAccounts":
			fmt.Fprint(w, `{"data":{"accounts":[{"id":"a1","displayName":"Checking","currentBalance":1250.75}],"householdPreferences":{"id":"hp1","accountGroupOrder":["a1"]}}}`)
		default:
			t.Errorf("unexpected operation %q", request.OperationName)
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func sessionURL(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("mem://localhost/monarchmoney/%s/%d/session.json", t.Name(), time.Now().UnixNano())
}

func TestLoginThenQuery(t *testing.T) {
	srv := newAPIServer(t)
	mm, err := monarchmoney.New(
		monarchmoney.WithBaseURL(srv.URL),
		monarchmoney.WithSessionURL(sessionURL(t)),
	)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = mm.Accounts(ctx)
	require.ErrorIs(t, err, schema.ErrLoginRequired)

	session, err := mm.Auth().Login(ctx, "user@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-e2e", session.Token)

	result, err := mm.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, result.Accounts, 1)
	assert.Equal(t, "Checking", result.Accounts[0].DisplayName)
	assert.Equal(t, "1250.75", result.Accounts[0].CurrentBalance.String())
}

func TestSessionSurvivesRestart(t *testing.T) {
	srv := newAPIServer(t)
	url := sessionURL(t)
	ctx := context.Background()

	first, err := monarchmoney.New(monarchmoney.WithBaseURL(srv.URL), monarchmoney.WithSessionURL(url))
	require.NoError(t, err)
	_, err = first.Auth().Login(ctx, "user@example.com", "hunter2")
	require.NoError(t, err)
	require.NoError(t, first.Auth().SaveSession(ctx))

	second, err := monarchmoney.New(monarchmoney.WithBaseURL(srv.URL), monarchmoney.WithSessionURL(url))
	require.NoError(t, err)
	require.NoError(t, second.Auth().LoadSession(ctx))

	result, err := second.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, result.Accounts, 1)
}

func TestTokenOption(t *testing.T) {
	srv := newAPIServer(t)
	mm, err := monarchmoney.New(
		monarchmoney.WithBaseURL(srv.URL),
		monarchmoney.WithSessionURL(sessionURL(t)),
		monarchmoney.WithToken("tok-e2e"),
	)
	require.NoError(t, err)

	result, err := mm.Accounts(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Accounts, 1)
}

func TestStaleSessionRejected(t *testing.T) {
	srv := newAPIServer(t)
	mm, err := monarchmoney.New(
		monarchmoney.WithBaseURL(srv.URL),
		monarchmoney.WithSessionURL(sessionURL(t)),
		monarchmoney.WithToken("tok-revoked"),
	)
	require.NoError(t, err)

	_, err = mm.Accounts(context.Background())
	require.ErrorIs(t, err, schema.ErrSessionExpired)
}
