package client

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/hammem/monarchmoney/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refreshStartedBody = `{"data":{"forceRefreshAccounts":{"success":true,"errors":null}}}`

func refreshStatusBody(inProgress bool) string {
	return fmt.Sprintf(`{"data":{"accounts":[{"id":"1","hasSyncInProgress":%v},{"id":"2","hasSyncInProgress":false}]}}`, inProgress)
}

func TestRequestAccountsRefresh(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.on("Common_ForceRefreshAccountsMutation", func(variables map[string]any) (string, int) {
		input := variables["input"].(map[string]any)
		assert.Equal(t, []any{"1", "2"}, input["accountIds"])
		return refreshStartedBody, http.StatusOK
	})

	require.NoError(t, newTestClient(srv).RequestAccountsRefresh(context.Background(), []string{"1", "2"}))
}

func TestRequestAccountsRefresh_NotStarted(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.respond("Common_ForceRefreshAccountsMutation",
		`{"data":{"forceRefreshAccounts":{"success":false,"errors":[{"message":"institution unavailable"}]}}}`)

	err := newTestClient(srv).RequestAccountsRefresh(context.Background(), []string{"1"})
	var operationErr *schema.OperationError
	require.ErrorAs(t, err, &operationErr)
	assert.Equal(t, "institution unavailable", operationErr.Message)
}

func TestIsAccountsRefreshComplete(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.respond("ForceRefreshAccountsQuery", refreshStatusBody(true))

	c := newTestClient(srv)
	complete, err := c.IsAccountsRefreshComplete(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, complete)

	// account 1 is still syncing but account 2 is done
	complete, err = c.IsAccountsRefreshComplete(context.Background(), []string{"2"})
	require.NoError(t, err)
	assert.True(t, complete)
}

func TestRequestAccountsRefreshAndWait(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.respond("Common_ForceRefreshAccountsMutation", refreshStartedBody)
	polls := 0
	handler.on("ForceRefreshAccountsQuery", func(map[string]any) (string, int) {
		polls++
		return refreshStatusBody(polls < 2), http.StatusOK
	})

	err := newTestClient(srv).RequestAccountsRefreshAndWait(context.Background(), []string{"1", "2"}, time.Millisecond, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, polls)
}

func TestRequestAccountsRefreshAndWait_Timeout(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.respond("Common_ForceRefreshAccountsMutation", refreshStartedBody)
	polls := 0
	handler.on("ForceRefreshAccountsQuery", func(map[string]any) (string, int) {
		polls++
		return refreshStatusBody(true), http.StatusOK
	})

	err := newTestClient(srv).RequestAccountsRefreshAndWait(context.Background(), []string{"1"}, time.Millisecond, 3)
	require.ErrorIs(t, err, schema.ErrRefreshTimeout)
	assert.Equal(t, 3, polls)
}

func TestRequestAccountsRefreshAndWait_ImplicitAccounts(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.respond("GetAccounts",
		`{"data":{"accounts":[{"id":"1"},{"id":"2"}],"householdPreferences":{"id":"hp1"}}}`)
	handler.on("Common_ForceRefreshAccountsMutation", func(variables map[string]any) (string, int) {
		input := variables["input"].(map[string]any)
		assert.Equal(t, []any{"1", "2"}, input["accountIds"])
		return refreshStartedBody, http.StatusOK
	})
	handler.respond("ForceRefreshAccountsQuery", refreshStatusBody(false))

	err := newTestClient(srv).RequestAccountsRefreshAndWait(context.Background(), nil, time.Millisecond, 3)
	require.NoError(t, err)
}

func TestRequestAccountsRefreshAndWait_Cancelled(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.respond("Common_ForceRefreshAccountsMutation", refreshStartedBody)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := newTestClient(srv).RequestAccountsRefreshAndWait(ctx, []string{"1"}, time.Minute, 3)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
