package schema

import "github.com/shopspring/decimal"

// Category is a transaction category.
type Category struct {
	ID               string         `json:"id"`
	Order            int            `json:"order"`
	Name             string         `json:"name"`
	SystemCategory   *string        `json:"systemCategory"`
	IsSystemCategory bool           `json:"isSystemCategory"`
	IsDisabled       bool           `json:"isDisabled"`
	Group            *CategoryGroup `json:"group,omitempty"`
}

// CategoryGroup groups categories into income/expense/transfer sets.
type CategoryGroup struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order,omitempty"`
	Type  string `json:"type"`
}

// Tag is a user-defined transaction tag.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

// Merchant identifies the counterparty of a transaction.
type Merchant struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	LogoURL           string `json:"logoUrl,omitempty"`
	TransactionsCount int    `json:"transactionsCount,omitempty"`
}

// AccountRef is the minimal account reference embedded in transactions.
type AccountRef struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Transaction is the overview shape returned by transaction listings.
type Transaction struct {
	ID                 string          `json:"id"`
	Amount             decimal.Decimal `json:"amount"`
	Pending            bool            `json:"pending"`
	Date               string          `json:"date"`
	HideFromReports    bool            `json:"hideFromReports"`
	PlaidName          string          `json:"plaidName"`
	Notes              string          `json:"notes"`
	IsRecurring        bool            `json:"isRecurring"`
	ReviewStatus       string          `json:"reviewStatus"`
	NeedsReview        bool            `json:"needsReview"`
	IsSplitTransaction bool            `json:"isSplitTransaction"`
	CreatedAt          string          `json:"createdAt"`
	UpdatedAt          string          `json:"updatedAt"`
	Category           *Category       `json:"category"`
	Merchant           *Merchant       `json:"merchant"`
	Account            *AccountRef     `json:"account"`
	Tags               []Tag           `json:"tags"`
}

// TransactionsResult is the GetTransactionsList payload.
type TransactionsResult struct {
	AllTransactions struct {
		TotalCount int           `json:"totalCount"`
		Results    []Transaction `json:"results"`
	} `json:"allTransactions"`
}

// TransactionDetailsResult is the GetTransactionDrawer payload.
type TransactionDetailsResult struct {
	GetTransaction Transaction `json:"getTransaction"`
}

// TransactionsSummary aggregates the whole transaction history.
type TransactionsSummary struct {
	Avg        decimal.Decimal `json:"avg"`
	Count      int             `json:"count"`
	Max        decimal.Decimal `json:"max"`
	MaxExpense decimal.Decimal `json:"maxExpense"`
	Sum        decimal.Decimal `json:"sum"`
	SumIncome  decimal.Decimal `json:"sumIncome"`
	SumExpense decimal.Decimal `json:"sumExpense"`
	First      string          `json:"first"`
	Last       string          `json:"last"`
}

// TransactionsSummaryResult is the GetTransactionsPage summary payload.
type TransactionsSummaryResult struct {
	Aggregates []struct {
		Summary TransactionsSummary `json:"summary"`
	} `json:"aggregates"`
}

// CategoriesResult is the GetCategories payload.
type CategoriesResult struct {
	Categories []Category `json:"categories"`
}

// CategoryGroupsResult is the ManageGetCategoryGroups payload.
type CategoryGroupsResult struct {
	CategoryGroups []CategoryGroup `json:"categoryGroups"`
}

// TagsResult is the GetHouseholdTransactionTags payload.
type TagsResult struct {
	HouseholdTransactionTags []Tag `json:"householdTransactionTags"`
}

// TransactionSplit is one leg of a split transaction.
type TransactionSplit struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes"`
	Category *Category       `json:"category"`
	Merchant *Merchant       `json:"merchant"`
}

// TransactionSplitsResult is the TransactionSplitQuery payload.
type TransactionSplitsResult struct {
	GetTransaction struct {
		ID                string             `json:"id"`
		Amount            decimal.Decimal    `json:"amount"`
		SplitTransactions []TransactionSplit `json:"splitTransactions"`
	} `json:"getTransaction"`
}

// SplitInput is one requested leg when updating transaction splits.
type SplitInput struct {
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   string          `json:"categoryId"`
	MerchantName string          `json:"merchantName"`
	Notes        string          `json:"notes,omitempty"`
}

// RecurringStream describes the recurring series a forecast item belongs to.
type RecurringStream struct {
	ID            string          `json:"id"`
	Frequency     string          `json:"frequency"`
	Amount        decimal.Decimal `json:"amount"`
	IsApproximate bool            `json:"isApproximate"`
	Merchant      *Merchant       `json:"merchant"`
}

// RecurringTransactionItem is one forecast occurrence of a recurring stream.
type RecurringTransactionItem struct {
	Stream        RecurringStream `json:"stream"`
	Date          string          `json:"date"`
	IsPast        bool            `json:"isPast"`
	TransactionID *string         `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Account       *AccountRef     `json:"account"`
}

// RecurringTransactionsResult is the Web_GetUpcomingRecurringTransactionItems payload.
type RecurringTransactionsResult struct {
	RecurringTransactionItems []RecurringTransactionItem `json:"recurringTransactionItems"`
}
