package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/hammem/monarchmoney/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactions(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.on("GetTransactionsList", func(variables map[string]any) (string, int) {
		assert.EqualValues(t, 25, variables["limit"])
		filters := variables["filters"].(map[string]any)
		assert.Equal(t, "coffee", filters["search"])
		assert.Equal(t, "2024-01-01", filters["startDate"])
		assert.Equal(t, "2024-01-31", filters["endDate"])
		assert.Equal(t, true, filters["isRecurring"])
		_, hasNotesSet := filters["hasNotes"]
		assert.False(t, hasNotesSet)
		return `{"data":{"allTransactions":{"totalCount":1,"results":[
			{"id":"t1","amount":-4.50,"date":"2024-01-15","pending":false,
			 "merchant":{"id":"m1","name":"Corner Cafe"},
			 "category":{"id":"c1","name":"Coffee Shops"},
			 "account":{"id":"1","displayName":"Checking"},
			 "tags":[{"id":"g1","name":"work","color":"#ff0000","order":0}]}
		]}}}`, http.StatusOK
	})

	isRecurring := true
	result, err := newTestClient(srv).Transactions(context.Background(), &TransactionFilter{
		Limit:       25,
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
		Search:      "coffee",
		IsRecurring: &isRecurring,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.AllTransactions.TotalCount)
	transaction := result.AllTransactions.Results[0]
	assert.Equal(t, "-4.5", transaction.Amount.String())
	assert.Equal(t, "Corner Cafe", transaction.Merchant.Name)
	assert.Equal(t, "work", transaction.Tags[0].Name)
}

func TestTransactions_LopsidedDateRange(t *testing.T) {
	_, srv := newGraphQLServer(t)
	_, err := newTestClient(srv).Transactions(context.Background(), &TransactionFilter{StartDate: "2024-01-01"})
	require.Error(t, err)
}

func TestCreateTransaction(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.on("Common_CreateTransactionMutation", func(variables map[string]any) (string, int) {
		input := variables["input"].(map[string]any)
		assert.Equal(t, "2024-02-01", input["date"])
		assert.EqualValues(t, -12.34, input["amount"])
		return `{"data":{"createTransaction":{"transaction":{"id":"t-new"},"errors":null}}}`, http.StatusOK
	})

	id, err := newTestClient(srv).CreateTransaction(context.Background(), CreateTransactionInput{
		Date:         "2024-02-01",
		AccountID:    "1",
		Amount:       decimal.RequireFromString("-12.335"),
		MerchantName: "Store",
		CategoryID:   "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, "t-new", id)
}

func TestCreateTransaction_InvalidCategory(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.respond("Common_CreateTransactionMutation",
		`{"data":{"createTransaction":{"transaction":null,"errors":[
			{"fieldErrors":[{"field":"category_id","messages":["Invalid category id"]}],"message":"","code":""}
		]}}}`)

	_, err := newTestClient(srv).CreateTransaction(context.Background(), CreateTransactionInput{
		Date: "2024-02-01", AccountID: "1", MerchantName: "Store", CategoryID: "bogus",
	})
	var operationErr *schema.OperationError
	require.ErrorAs(t, err, &operationErr)
	assert.Contains(t, operationErr.Message, "Invalid category id")
}

func TestDeleteTransaction(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.respond("Common_DeleteTransactionMutation",
		`{"data":{"deleteTransaction":{"deleted":true,"errors":null}}}`)

	require.NoError(t, newTestClient(srv).DeleteTransaction(context.Background(), "t1"))
}

func TestUpdateTransaction(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.on("Web_TransactionDrawerUpdateTransaction", func(variables map[string]any) (string, int) {
		input := variables["input"].(map[string]any)
		assert.Equal(t, "t1", input["id"])
		assert.Equal(t, "groceries note", input["notes"])
		_, dateSet := input["date"]
		assert.False(t, dateSet)
		return `{"data":{"updateTransaction":{"transaction":{"id":"t1"},"errors":null}}}`, http.StatusOK
	})

	notes := "groceries note"
	err := newTestClient(srv).UpdateTransaction(context.Background(), UpdateTransactionInput{
		TransactionID: "t1",
		Notes:         &notes,
	})
	require.NoError(t, err)
}

func TestTransactionSplits(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.respond("TransactionSplitQuery", `{"data":{"getTransaction":{
		"id":"t1","amount":-100,
		"splitTransactions":[
			{"id":"s1","amount":-40,"category":{"id":"c1","name":"Groceries"}},
			{"id":"s2","amount":-60,"category":{"id":"c2","name":"Household"}}
		]}}}`)

	splits, err := newTestClient(srv).TransactionSplits(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, splits, 2)
	assert.Equal(t, "Groceries", splits[0].Category.Name)
}

func TestUpdateTransactionSplits(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.on("Common_SplitTransactionMutation", func(variables map[string]any) (string, int) {
		input := variables["input"].(map[string]any)
		assert.Equal(t, "t1", input["transactionId"])
		assert.Len(t, input["splitData"], 2)
		return `{"data":{"updateTransactionSplit":{"errors":null,"transaction":{"id":"t1","hasSplitTransactions":true}}}}`, http.StatusOK
	})

	err := newTestClient(srv).UpdateTransactionSplits(context.Background(), "t1", []schema.SplitInput{
		{Amount: decimal.NewFromInt(-40), CategoryID: "c1", MerchantName: "Market"},
		{Amount: decimal.NewFromInt(-60), CategoryID: "c2", MerchantName: "Market"},
	})
	require.NoError(t, err)
}

func TestTransactionsSummary(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.respond("GetTransactionsPage",
		`{"data":{"aggregates":[{"summary":{"count":1200,"sum":-5400.25,"first":"2020-03-01","last":"2024-02-01"}}]}}`)

	summary, err := newTestClient(srv).TransactionsSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1200, summary.Count)
	assert.Equal(t, "2020-03-01", summary.First)
}

func TestSetTransactionTags_Clears(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.on("Web_SetTransactionTags", func(variables map[string]any) (string, int) {
		input := variables["input"].(map[string]any)
		assert.Equal(t, []any{}, input["tagIds"])
		return `{"data":{"setTransactionTags":{"errors":null,"transaction":{"id":"t1"}}}}`, http.StatusOK
	})

	require.NoError(t, newTestClient(srv).SetTransactionTags(context.Background(), "t1", nil))
}

func TestRecurringTransactions(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.on("Web_GetUpcomingRecurringTransactionItems", func(variables map[string]any) (string, int) {
		assert.NotEmpty(t, variables["startDate"])
		assert.NotEmpty(t, variables["endDate"])
		return `{"data":{"recurringTransactionItems":[
			{"date":"2024-02-15","isPast":false,"amount":-15.99,
			 "stream":{"id":"r1","frequency":"monthly","amount":-15.99,"merchant":{"id":"m9","name":"Streaming Co"}},
			 "account":{"id":"2","displayName":"Visa"}}
		]}}`, http.StatusOK
	})

	items, err := newTestClient(srv).RecurringTransactions(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "monthly", items[0].Stream.Frequency)
}
