package client

import (
	"context"
	"fmt"

	"github.com/hammem/monarchmoney/schema"
	"github.com/shopspring/decimal"
)

// DefaultRecordLimit caps transaction listings unless the filter says otherwise.
const DefaultRecordLimit = 100

// TransactionFilter narrows a transaction listing. Nil booleans leave the
// corresponding remote filter unset.
type TransactionFilter struct {
	Limit                 int
	Offset                int
	StartDate             string
	EndDate               string
	Search                string
	CategoryIDs           []string
	AccountIDs            []string
	TagIDs                []string
	HasAttachments        *bool
	HasNotes              *bool
	HiddenFromReports     *bool
	IsSplit               *bool
	IsRecurring           *bool
	ImportedFromMint      *bool
	SyncedFromInstitution *bool
}

func (f *TransactionFilter) variables() (map[string]any, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultRecordLimit
	}
	filters := map[string]any{
		"search":     f.Search,
		"categories": emptyIfNil(f.CategoryIDs),
		"accounts":   emptyIfNil(f.AccountIDs),
		"tags":       emptyIfNil(f.TagIDs),
	}
	if (f.StartDate == "") != (f.EndDate == "") {
		return nil, fmt.Errorf("start date and end date must be provided together")
	}
	if f.StartDate != "" {
		filters["startDate"] = f.StartDate
		filters["endDate"] = f.EndDate
	}
	setIfPresent := func(key string, value *bool) {
		if value != nil {
			filters[key] = *value
		}
	}
	setIfPresent("hasAttachments", f.HasAttachments)
	setIfPresent("hasNotes", f.HasNotes)
	setIfPresent("hideFromReports", f.HiddenFromReports)
	setIfPresent("isSplit", f.IsSplit)
	setIfPresent("isRecurring", f.IsRecurring)
	setIfPresent("importedFromMint", f.ImportedFromMint)
	setIfPresent("syncedFromInstitution", f.SyncedFromInstitution)
	return map[string]any{
		"offset":  f.Offset,
		"limit":   limit,
		"orderBy": "date",
		"filters": filters,
	}, nil
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// Transactions lists transactions matching the filter, newest first. A nil
// filter lists the most recent DefaultRecordLimit transactions.
func (c *Client) Transactions(ctx context.Context, filter *TransactionFilter) (*schema.TransactionsResult, error) {
	if filter == nil {
		filter = &TransactionFilter{}
	}
	variables, err := filter.variables()
	if err != nil {
		return nil, err
	}
	return query[schema.TransactionsResult](ctx, c, "GetTransactionsList", queryGetTransactionsList, variables)
}

// TransactionDetails returns the full drawer view of one transaction.
func (c *Client) TransactionDetails(ctx context.Context, transactionID string) (*schema.Transaction, error) {
	result, err := query[schema.TransactionDetailsResult](ctx, c, "GetTransactionDrawer", queryGetTransactionDrawer,
		map[string]any{"id": transactionID})
	if err != nil {
		return nil, err
	}
	return &result.GetTransaction, nil
}

// TransactionsSummary aggregates the whole transaction history.
func (c *Client) TransactionsSummary(ctx context.Context) (*schema.TransactionsSummary, error) {
	result, err := query[schema.TransactionsSummaryResult](ctx, c, "GetTransactionsPage", queryGetTransactionsSummary,
		map[string]any{"filters": map[string]any{"search": "", "categories": []string{}, "accounts": []string{}, "tags": []string{}}})
	if err != nil {
		return nil, err
	}
	if len(result.Aggregates) == 0 {
		return nil, schema.NewOperationError("GetTransactionsPage", "no summary returned")
	}
	return &result.Aggregates[0].Summary, nil
}

// CreateTransactionInput describes a manually entered transaction.
type CreateTransactionInput struct {
	Date          string
	AccountID     string
	Amount        decimal.Decimal
	MerchantName  string
	CategoryID    string
	Notes         string
	UpdateBalance bool
}

type createTransactionResult struct {
	CreateTransaction struct {
		Transaction *struct {
			ID string `json:"id"`
		} `json:"transaction"`
		Errors []schema.PayloadError `json:"errors"`
	} `json:"createTransaction"`
}

// CreateTransaction creates a transaction and returns its id.
func (c *Client) CreateTransaction(ctx context.Context, input CreateTransactionInput) (string, error) {
	const operation = "Common_CreateTransactionMutation"
	variables := map[string]any{
		"input": map[string]any{
			"date":                input.Date,
			"accountId":           input.AccountID,
			"amount":              number(input.Amount.Round(2)),
			"merchantName":        input.MerchantName,
			"categoryId":          input.CategoryID,
			"notes":               input.Notes,
			"shouldUpdateBalance": input.UpdateBalance,
		},
	}
	result, err := query[createTransactionResult](ctx, c, operation, mutationCreateTransaction, variables)
	if err != nil {
		return "", err
	}
	if err = payloadError(operation, result.CreateTransaction.Errors); err != nil {
		return "", err
	}
	if result.CreateTransaction.Transaction == nil {
		return "", schema.NewOperationError(operation, "no transaction returned")
	}
	return result.CreateTransaction.Transaction.ID, nil
}

// UpdateTransactionInput carries updatable transaction fields; nil fields
// are left untouched.
type UpdateTransactionInput struct {
	TransactionID   string
	CategoryID      *string
	MerchantName    *string
	Amount          *decimal.Decimal
	Date            *string
	Notes           *string
	HideFromReports *bool
	NeedsReview     *bool
}

type updateTransactionResult struct {
	UpdateTransaction struct {
		Transaction *schema.Transaction   `json:"transaction"`
		Errors      []schema.PayloadError `json:"errors"`
	} `json:"updateTransaction"`
}

// UpdateTransaction updates the given transaction in place.
func (c *Client) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) error {
	const operation = "Web_TransactionDrawerUpdateTransaction"
	fields := map[string]any{"id": input.TransactionID}
	if input.CategoryID != nil {
		fields["category"] = *input.CategoryID
	}
	if input.MerchantName != nil {
		fields["name"] = *input.MerchantName
	}
	if input.Amount != nil {
		fields["amount"] = number(input.Amount.Round(2))
	}
	if input.Date != nil {
		fields["date"] = *input.Date
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}
	if input.HideFromReports != nil {
		fields["hideFromReports"] = *input.HideFromReports
	}
	if input.NeedsReview != nil {
		fields["needsReview"] = *input.NeedsReview
	}
	result, err := query[updateTransactionResult](ctx, c, operation, mutationUpdateTransaction, map[string]any{"input": fields})
	if err != nil {
		return err
	}
	return payloadError(operation, result.UpdateTransaction.Errors)
}

type deleteTransactionResult struct {
	DeleteTransaction struct {
		Deleted bool                  `json:"deleted"`
		Errors  []schema.PayloadError `json:"errors"`
	} `json:"deleteTransaction"`
}

// DeleteTransaction deletes the given transaction.
func (c *Client) DeleteTransaction(ctx context.Context, transactionID string) error {
	const operation = "Common_DeleteTransactionMutation"
	variables := map[string]any{"input": map[string]any{"transactionId": transactionID}}
	result, err := query[deleteTransactionResult](ctx, c, operation, mutationDeleteTransaction, variables)
	if err != nil {
		return err
	}
	if err = payloadError(operation, result.DeleteTransaction.Errors); err != nil {
		return err
	}
	if !result.DeleteTransaction.Deleted {
		return schema.NewOperationError(operation, "transaction was not deleted")
	}
	return nil
}

// TransactionSplits returns the split legs of one transaction, if any.
func (c *Client) TransactionSplits(ctx context.Context, transactionID string) ([]schema.TransactionSplit, error) {
	result, err := query[schema.TransactionSplitsResult](ctx, c, "TransactionSplitQuery", queryTransactionSplits,
		map[string]any{"id": transactionID})
	if err != nil {
		return nil, err
	}
	return result.GetTransaction.SplitTransactions, nil
}

type updateSplitsResult struct {
	UpdateTransactionSplit struct {
		Errors []schema.PayloadError `json:"errors"`
	} `json:"updateTransactionSplit"`
}

// UpdateTransactionSplits replaces the split legs of a transaction. An empty
// splits slice unsplits the transaction.
func (c *Client) UpdateTransactionSplits(ctx context.Context, transactionID string, splits []schema.SplitInput) error {
	const operation = "Common_SplitTransactionMutation"
	splitData := make([]map[string]any, 0, len(splits))
	for _, split := range splits {
		leg := map[string]any{
			"amount":       number(split.Amount),
			"categoryId":   split.CategoryID,
			"merchantName": split.MerchantName,
		}
		if split.Notes != "" {
			leg["notes"] = split.Notes
		}
		splitData = append(splitData, leg)
	}
	variables := map[string]any{
		"input": map[string]any{
			"transactionId": transactionID,
			"splitData":     splitData,
		},
	}
	result, err := query[updateSplitsResult](ctx, c, operation, mutationUpdateTransactionSplits, variables)
	if err != nil {
		return err
	}
	return payloadError(operation, result.UpdateTransactionSplit.Errors)
}

// RecurringTransactions returns forecast occurrences of recurring streams
// within the date window; empty dates select the current month.
func (c *Client) RecurringTransactions(ctx context.Context, startDate, endDate string) ([]schema.RecurringTransactionItem, error) {
	if (startDate == "") != (endDate == "") {
		return nil, fmt.Errorf("start date and end date must be provided together")
	}
	if startDate == "" {
		startDate = startOfCurrentMonth()
		endDate = endOfCurrentMonth()
	}
	result, err := query[schema.RecurringTransactionsResult](ctx, c, "Web_GetUpcomingRecurringTransactionItems",
		queryGetRecurringTransactions, map[string]any{"startDate": startDate, "endDate": endDate, "filters": map[string]any{}})
	if err != nil {
		return nil, err
	}
	return result.RecurringTransactionItems, nil
}
