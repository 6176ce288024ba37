package client

import (
	"context"

	"github.com/hammem/monarchmoney/schema"
	"github.com/shopspring/decimal"
)

// Accounts returns all accounts configured in the household, together with
// the preferred account group ordering.
func (c *Client) Accounts(ctx context.Context) (*schema.AccountsResult, error) {
	return query[schema.AccountsResult](ctx, c, "GetAccounts", queryGetAccounts, nil)
}

// AccountTypeOptions returns the account type/subtype combinations the
// service accepts for manual accounts.
func (c *Client) AccountTypeOptions(ctx context.Context) ([]schema.AccountTypeOption, error) {
	result, err := query[schema.AccountTypeOptionsResult](ctx, c, "GetAccountTypeOptions", queryGetAccountTypeOptions, nil)
	if err != nil {
		return nil, err
	}
	return result.AccountTypeOptions, nil
}

// RecentAccountBalances returns per-account daily balances since startDate.
// An empty startDate selects the last 31 days.
func (c *Client) RecentAccountBalances(ctx context.Context, startDate string) ([]schema.Account, error) {
	if startDate == "" {
		startDate = daysAgo(31)
	}
	result, err := query[schema.RecentBalancesResult](ctx, c, "GetAccountRecentBalances", queryGetAccountRecentBalances,
		map[string]any{"startDate": startDate})
	if err != nil {
		return nil, err
	}
	return result.Accounts, nil
}

// AccountSnapshotsByType returns monthly balance snapshots aggregated by
// account type. timeframe is a remote enum, e.g. "month" or "year".
func (c *Client) AccountSnapshotsByType(ctx context.Context, startDate, timeframe string) (*schema.SnapshotsByTypeResult, error) {
	return query[schema.SnapshotsByTypeResult](ctx, c, "GetSnapshotsByAccountType", queryGetSnapshotsByAccountType,
		map[string]any{"startDate": startDate, "timeframe": timeframe})
}

// AggregateSnapshots returns day-by-day aggregated balances, optionally
// bounded by dates and restricted to one account type.
func (c *Client) AggregateSnapshots(ctx context.Context, startDate, endDate, accountType string) ([]schema.AggregateSnapshot, error) {
	filters := map[string]any{}
	if startDate != "" {
		filters["startDate"] = startDate
	}
	if endDate != "" {
		filters["endDate"] = endDate
	}
	if accountType != "" {
		filters["accountType"] = accountType
	}
	result, err := query[schema.AggregateSnapshotsResult](ctx, c, "GetAggregateSnapshots", queryGetAggregateSnapshots,
		map[string]any{"filters": filters})
	if err != nil {
		return nil, err
	}
	return result.AggregateSnapshots, nil
}

// AccountHoldings returns the aggregated positions of a brokerage or similar
// investment account.
func (c *Client) AccountHoldings(ctx context.Context, accountID string) ([]schema.AggregateHolding, error) {
	result, err := query[schema.AccountHoldingsResult](ctx, c, "Web_GetHoldings", queryGetHoldings,
		map[string]any{"input": map[string]any{"accountIds": []string{accountID}}})
	if err != nil {
		return nil, err
	}
	holdings := make([]schema.AggregateHolding, 0, len(result.Portfolio.AggregateHoldings.Edges))
	for _, edge := range result.Portfolio.AggregateHoldings.Edges {
		holdings = append(holdings, edge.Node)
	}
	return holdings, nil
}

// AccountHistory returns the full balance history of one account.
func (c *Client) AccountHistory(ctx context.Context, accountID string) ([]schema.BalanceSnapshot, error) {
	result, err := query[schema.AccountHistoryResult](ctx, c, "AccountDetails_getAccount", queryGetAccountHistory,
		map[string]any{"id": accountID})
	if err != nil {
		return nil, err
	}
	return result.Snapshots, nil
}

// Institutions returns the linked institution credentials.
func (c *Client) Institutions(ctx context.Context) (*schema.InstitutionsResult, error) {
	return query[schema.InstitutionsResult](ctx, c, "Web_GetInstitutionSettings", queryGetInstitutions, nil)
}

// SubscriptionDetails returns the household billing state.
func (c *Client) SubscriptionDetails(ctx context.Context) (*schema.SubscriptionDetails, error) {
	result, err := query[schema.SubscriptionDetailsResult](ctx, c, "GetSubscriptionDetails", queryGetSubscriptionDetails, nil)
	if err != nil {
		return nil, err
	}
	return &result.Subscription, nil
}

// CreateManualAccountInput describes a manually tracked account.
type CreateManualAccountInput struct {
	Type              string
	Subtype           string
	DisplayName       string
	Balance           decimal.Decimal
	IncludeInNetWorth bool
}

type createManualAccountResult struct {
	CreateManualAccount struct {
		Account *struct {
			ID string `json:"id"`
		} `json:"account"`
		Errors []schema.PayloadError `json:"errors"`
	} `json:"createManualAccount"`
}

// CreateManualAccount creates a manually tracked account and returns its id.
func (c *Client) CreateManualAccount(ctx context.Context, input CreateManualAccountInput) (string, error) {
	const operation = "Web_CreateManualAccount"
	variables := map[string]any{
		"input": map[string]any{
			"type":              input.Type,
			"subtype":           input.Subtype,
			"includeInNetWorth": input.IncludeInNetWorth,
			"name":              input.DisplayName,
			"displayBalance":    number(input.Balance),
		},
	}
	result, err := query[createManualAccountResult](ctx, c, operation, mutationCreateManualAccount, variables)
	if err != nil {
		return "", err
	}
	if err = payloadError(operation, result.CreateManualAccount.Errors); err != nil {
		return "", err
	}
	if result.CreateManualAccount.Account == nil {
		return "", schema.NewOperationError(operation, "no account returned")
	}
	return result.CreateManualAccount.Account.ID, nil
}

// UpdateAccountInput carries the updatable account fields; nil fields are
// left untouched.
type UpdateAccountInput struct {
	AccountID                   string
	DisplayName                 *string
	Balance                     *decimal.Decimal
	TypeName                    *string
	SubtypeName                 *string
	IncludeInNetWorth           *bool
	HideFromSummaryList         *bool
	HideTransactionsFromReports *bool
}

type updateAccountResult struct {
	UpdateAccount struct {
		Account *struct {
			ID          string `json:"id"`
			DisplayName string `json:"displayName"`
		} `json:"account"`
		Errors []schema.PayloadError `json:"errors"`
	} `json:"updateAccount"`
}

// UpdateAccount updates the given account in place.
func (c *Client) UpdateAccount(ctx context.Context, input UpdateAccountInput) error {
	const operation = "Common_UpdateAccount"
	fields := map[string]any{"id": input.AccountID}
	if input.DisplayName != nil {
		fields["name"] = *input.DisplayName
	}
	if input.Balance != nil {
		fields["displayBalance"] = number(*input.Balance)
	}
	if input.TypeName != nil {
		fields["type"] = *input.TypeName
	}
	if input.SubtypeName != nil {
		fields["subtype"] = *input.SubtypeName
	}
	if input.IncludeInNetWorth != nil {
		fields["includeInNetWorth"] = *input.IncludeInNetWorth
	}
	if input.HideFromSummaryList != nil {
		fields["hideFromList"] = *input.HideFromSummaryList
	}
	if input.HideTransactionsFromReports != nil {
		fields["hideTransactionsFromReports"] = *input.HideTransactionsFromReports
	}
	result, err := query[updateAccountResult](ctx, c, operation, mutationUpdateAccount, map[string]any{"input": fields})
	if err != nil {
		return err
	}
	return payloadError(operation, result.UpdateAccount.Errors)
}

type deleteAccountResult struct {
	DeleteAccount struct {
		Deleted bool                  `json:"deleted"`
		Errors  []schema.PayloadError `json:"errors"`
	} `json:"deleteAccount"`
}

// DeleteAccount deletes the given account.
func (c *Client) DeleteAccount(ctx context.Context, accountID string) error {
	const operation = "Common_DeleteAccount"
	result, err := query[deleteAccountResult](ctx, c, operation, mutationDeleteAccount, map[string]any{"id": accountID})
	if err != nil {
		return err
	}
	if err = payloadError(operation, result.DeleteAccount.Errors); err != nil {
		return err
	}
	if !result.DeleteAccount.Deleted {
		return schema.NewOperationError(operation, "account was not deleted")
	}
	return nil
}
