package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashflow_DefaultWindow(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.on("Web_GetCashFlowPage", func(variables map[string]any) (string, int) {
		assert.Equal(t, float64(DefaultRecordLimit), variables["limit"])
		filters := variables["filters"].(map[string]any)
		assert.Equal(t, startOfCurrentMonth(), filters["startDate"])
		assert.Equal(t, endOfCurrentMonth(), filters["endDate"])
		return `{"data":{"byCategory":[{"groupBy":{"category":{"id":"c1","name":"Groceries"}},"summary":{"sum":-820.14}}],"byCategoryGroup":[],"byMerchant":[],"summary":[{"summary":{"sumIncome":5000,"sumExpense":-3200,"savings":1800,"savingsRate":0.36}}]}}`, 200
	})

	result, err := newTestClient(srv).Cashflow(context.Background(), 0, "", "")
	require.NoError(t, err)
	require.Len(t, result.ByCategory, 1)
	assert.Equal(t, "Groceries", result.ByCategory[0].GroupBy.Category.Name)
	assert.Equal(t, "-820.14", result.ByCategory[0].Summary.Sum.String())
	require.Len(t, result.Summary, 1)
	assert.Equal(t, "0.36", result.Summary[0].Summary.SavingsRate.String())
}

func TestCashflowSummary(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.respond("Web_GetCashFlowSummary",
		`{"data":{"summary":[{"summary":{"sumIncome":5000,"sumExpense":-3200,"savings":1800,"savingsRate":0.36}}]}}`)

	summary, err := newTestClient(srv).CashflowSummary(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "1800", summary.Savings.String())
}

func TestCashflowSummary_Empty(t *testing.T) {
	handler, srv := newGraphQLServer(t)
	handler.respond("Web_GetCashFlowSummary", `{"data":{"summary":[]}}`)

	_, err := newTestClient(srv).CashflowSummary(context.Background(), "", "")
	require.Error(t, err)
}

func TestCashflow_LopsidedDateRange(t *testing.T) {
	_, srv := newGraphQLServer(t)
	_, err := newTestClient(srv).Cashflow(context.Background(), 0, "", "2024-01-31")
	require.Error(t, err)
}
