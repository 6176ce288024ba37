package schema

import "github.com/shopspring/decimal"

// TypeRef is a name/display pair used for account types and subtypes.
type TypeRef struct {
	Name    string `json:"name"`
	Display string `json:"display"`
}

// Institution identifies the financial institution backing an account.
type Institution struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url,omitempty"`
	PrimaryColor string `json:"primaryColor,omitempty"`
	Status       string `json:"status,omitempty"`
}

// Account is the subset of Monarch account fields the client requests.
type Account struct {
	ID                   string            `json:"id"`
	DisplayName          string            `json:"displayName"`
	SyncDisabled         bool              `json:"syncDisabled"`
	DeactivatedAt        *string           `json:"deactivatedAt"`
	IsHidden             bool              `json:"isHidden"`
	IsAsset              bool              `json:"isAsset"`
	Mask                 string            `json:"mask"`
	CreatedAt            string            `json:"createdAt"`
	UpdatedAt            string            `json:"updatedAt"`
	DisplayLastUpdatedAt string            `json:"displayLastUpdatedAt"`
	CurrentBalance       decimal.Decimal   `json:"currentBalance"`
	DisplayBalance       decimal.Decimal   `json:"displayBalance"`
	IncludeInNetWorth    bool              `json:"includeInNetWorth"`
	HideFromList         bool              `json:"hideFromList"`
	DataProvider         string            `json:"dataProvider"`
	IsManual             bool              `json:"isManual"`
	TransactionsCount    int               `json:"transactionsCount"`
	HoldingsCount        int               `json:"holdingsCount"`
	Order                int               `json:"order"`
	HasSyncInProgress    bool              `json:"hasSyncInProgress"`
	Type                 TypeRef           `json:"type"`
	Subtype              TypeRef           `json:"subtype"`
	Institution          *Institution      `json:"institution"`
	RecentBalances       []decimal.Decimal `json:"recentBalances,omitempty"`
}

// AccountsResult is the GetAccounts payload.
type AccountsResult struct {
	Accounts             []Account `json:"accounts"`
	HouseholdPreferences struct {
		ID                string   `json:"id"`
		AccountGroupOrder []string `json:"accountGroupOrder"`
	} `json:"householdPreferences"`
}

// AccountTypeOption pairs an account type with one of its allowed subtypes.
type AccountTypeOption struct {
	Type struct {
		Name             string    `json:"name"`
		Display          string    `json:"display"`
		Group            string    `json:"group"`
		PossibleSubtypes []TypeRef `json:"possibleSubtypes"`
	} `json:"type"`
	Subtype TypeRef `json:"subtype"`
}

// AccountTypeOptionsResult is the GetAccountTypeOptions payload.
type AccountTypeOptionsResult struct {
	AccountTypeOptions []AccountTypeOption `json:"accountTypeOptions"`
}

// RecentBalancesResult is the GetAccountRecentBalances payload.
type RecentBalancesResult struct {
	Accounts []Account `json:"accounts"`
}

// AccountTypeSnapshot is one month of aggregated balance for an account type.
type AccountTypeSnapshot struct {
	AccountType string          `json:"accountType"`
	Month       string          `json:"month"`
	Balance     decimal.Decimal `json:"balance"`
}

// SnapshotsByTypeResult is the GetSnapshotsByAccountType payload.
type SnapshotsByTypeResult struct {
	SnapshotsByAccountType []AccountTypeSnapshot `json:"snapshotsByAccountType"`
	AccountTypes           []struct {
		Name  string `json:"name"`
		Group string `json:"group"`
	} `json:"accountTypes"`
}

// AggregateSnapshot is one day of aggregated balance across accounts.
type AggregateSnapshot struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// AggregateSnapshotsResult is the GetAggregateSnapshots payload.
type AggregateSnapshotsResult struct {
	AggregateSnapshots []AggregateSnapshot `json:"aggregateSnapshots"`
}

// Security identifies a traded security within a holding.
type Security struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Ticker       string          `json:"ticker"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
}

// AggregateHolding is one aggregated position in a brokerage account.
type AggregateHolding struct {
	ID         string          `json:"id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Basis      decimal.Decimal `json:"basis"`
	TotalValue decimal.Decimal `json:"totalValue"`
	Security   *Security       `json:"security"`
}

// AccountHoldingsResult is the Web_GetHoldings payload.
type AccountHoldingsResult struct {
	Portfolio struct {
		AggregateHoldings struct {
			Edges []struct {
				Node AggregateHolding `json:"node"`
			} `json:"edges"`
		} `json:"aggregateHoldings"`
	} `json:"portfolio"`
}

// BalanceSnapshot is one point of an account's balance history.
type BalanceSnapshot struct {
	Date          string          `json:"date"`
	SignedBalance decimal.Decimal `json:"signedBalance"`
	AccountID     string          `json:"accountId"`
	AccountName   string          `json:"accountName"`
}

// AccountHistoryResult is the AccountDetails_getAccount payload.
type AccountHistoryResult struct {
	Account struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		IsAsset     bool   `json:"isAsset"`
	} `json:"account"`
	Snapshots []BalanceSnapshot `json:"snapshots"`
}

// InstitutionsResult is the Web_GetInstitutionSettings payload.
type InstitutionsResult struct {
	Credentials []struct {
		ID          string       `json:"id"`
		DisplayName string       `json:"displayName"`
		Institution *Institution `json:"institution"`
	} `json:"credentials"`
}

// SubscriptionDetails describes the household billing state.
type SubscriptionDetails struct {
	ID                    string  `json:"id"`
	PaymentSource         string  `json:"paymentSource"`
	ReferralCode          string  `json:"referralCode"`
	IsOnFreeTrial         bool    `json:"isOnFreeTrial"`
	HasPremiumEntitlement bool    `json:"hasPremiumEntitlement"`
	TrialEndsAt           *string `json:"trialEndsAt"`
}

// SubscriptionDetailsResult is the GetSubscriptionDetails payload.
type SubscriptionDetailsResult struct {
	Subscription SubscriptionDetails `json:"subscription"`
}
