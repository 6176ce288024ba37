package schema

import "github.com/shopspring/decimal"

// AggregateSummary is the summed figure attached to a cashflow grouping.
type AggregateSummary struct {
	Sum         decimal.Decimal `json:"sum"`
	SumIncome   decimal.Decimal `json:"sumIncome"`
	SumExpense  decimal.Decimal `json:"sumExpense"`
	Savings     decimal.Decimal `json:"savings"`
	SavingsRate decimal.Decimal `json:"savingsRate"`
}

// CashflowGroup is one aggregates entry grouped by category, group or merchant.
type CashflowGroup struct {
	GroupBy struct {
		Category      *Category      `json:"category"`
		CategoryGroup *CategoryGroup `json:"categoryGroup"`
		Merchant      *Merchant      `json:"merchant"`
	} `json:"groupBy"`
	Summary AggregateSummary `json:"summary"`
}

// CashflowResult is the Web_GetCashFlowPage payload.
type CashflowResult struct {
	ByCategory      []CashflowGroup `json:"byCategory"`
	ByCategoryGroup []CashflowGroup `json:"byCategoryGroup"`
	ByMerchant      []CashflowGroup `json:"byMerchant"`
	Summary         []struct {
		Summary AggregateSummary `json:"summary"`
	} `json:"summary"`
}

// CashflowSummaryResult is the Web_GetCashFlowSummary payload.
type CashflowSummaryResult struct {
	Summary []struct {
		Summary AggregateSummary `json:"summary"`
	} `json:"summary"`
}
