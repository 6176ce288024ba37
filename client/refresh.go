package client

import (
	"context"
	"time"

	"github.com/hammem/monarchmoney/schema"
)

const (
	// DefaultRefreshInterval is how long RequestAccountsRefreshAndWait waits
	// between status polls.
	DefaultRefreshInterval = 10 * time.Second
	// DefaultRefreshAttempts bounds the number of status polls.
	DefaultRefreshAttempts = 30
)

type forceRefreshResult struct {
	ForceRefreshAccounts struct {
		Success bool                  `json:"success"`
		Errors  []schema.PayloadError `json:"errors"`
	} `json:"forceRefreshAccounts"`
}

// RequestAccountsRefresh asks the service to re-sync the given accounts with
// their institutions. The refresh itself runs asynchronously on the remote.
func (c *Client) RequestAccountsRefresh(ctx context.Context, accountIDs []string) error {
	const operation = "Common_ForceRefreshAccountsMutation"
	variables := map[string]any{"input": map[string]any{"accountIds": accountIDs}}
	result, err := query[forceRefreshResult](ctx, c, operation, mutationForceRefreshAccounts, variables)
	if err != nil {
		return err
	}
	if !result.ForceRefreshAccounts.Success {
		if err = payloadError(operation, result.ForceRefreshAccounts.Errors); err != nil {
			return err
		}
		return schema.NewOperationError(operation, "refresh was not started")
	}
	return nil
}

type refreshStatusResult struct {
	Accounts []struct {
		ID                string `json:"id"`
		HasSyncInProgress bool   `json:"hasSyncInProgress"`
	} `json:"accounts"`
}

// IsAccountsRefreshComplete reports whether no sync is in progress for the
// given accounts; a nil accountIDs checks every account.
func (c *Client) IsAccountsRefreshComplete(ctx context.Context, accountIDs []string) (bool, error) {
	const operation = "ForceRefreshAccountsQuery"
	result, err := query[refreshStatusResult](ctx, c, operation, queryForceRefreshStatus, nil)
	if err != nil {
		return false, err
	}
	if len(result.Accounts) == 0 {
		return false, schema.NewOperationError(operation, "unable to request status of refresh")
	}
	requested := map[string]bool{}
	for _, id := range accountIDs {
		requested[id] = true
	}
	for _, account := range result.Accounts {
		if len(requested) > 0 && !requested[account.ID] {
			continue
		}
		if account.HasSyncInProgress {
			return false, nil
		}
	}
	return true, nil
}

// RequestAccountsRefreshAndWait triggers a refresh and polls its status at a
// fixed interval until completion or until maxAttempts polls have been spent,
// at which point it fails with schema.ErrRefreshTimeout. A nil accountIDs
// refreshes every account. Non-positive interval or maxAttempts select the
// defaults.
func (c *Client) RequestAccountsRefreshAndWait(ctx context.Context, accountIDs []string, interval time.Duration, maxAttempts int) error {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultRefreshAttempts
	}
	if len(accountIDs) == 0 {
		accounts, err := c.Accounts(ctx)
		if err != nil {
			return err
		}
		for _, account := range accounts.Accounts {
			accountIDs = append(accountIDs, account.ID)
		}
	}
	if err := c.RequestAccountsRefresh(ctx, accountIDs); err != nil {
		return err
	}
	timer := time.NewTimer(interval)
	defer timer.Stop()
	for attempt := 0; attempt < maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		complete, err := c.IsAccountsRefreshComplete(ctx, accountIDs)
		if err != nil {
			return err
		}
		if complete {
			return nil
		}
		timer.Reset(interval)
	}
	return schema.ErrRefreshTimeout
}
