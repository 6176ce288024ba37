package client

import (
	"context"
	"fmt"

	"github.com/hammem/monarchmoney/schema"
)

func cashflowVariables(limit int, startDate, endDate string) (map[string]any, error) {
	if (startDate == "") != (endDate == "") {
		return nil, fmt.Errorf("start date and end date must be provided together")
	}
	if startDate == "" {
		startDate = startOfCurrentMonth()
		endDate = endOfCurrentMonth()
	}
	if limit <= 0 {
		limit = DefaultRecordLimit
	}
	return map[string]any{
		"limit": limit,
		"filters": map[string]any{
			"search":     "",
			"categories": []string{},
			"accounts":   []string{},
			"tags":       []string{},
			"startDate":  startDate,
			"endDate":    endDate,
		},
	}, nil
}

// Cashflow returns income and expense aggregates grouped by category,
// category group and merchant for the date window; empty dates select the
// current month.
func (c *Client) Cashflow(ctx context.Context, limit int, startDate, endDate string) (*schema.CashflowResult, error) {
	variables, err := cashflowVariables(limit, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return query[schema.CashflowResult](ctx, c, "Web_GetCashFlowPage", queryGetCashFlowPage, variables)
}

// CashflowSummary returns the overall income, expense and savings figures
// for the date window; empty dates select the current month.
func (c *Client) CashflowSummary(ctx context.Context, startDate, endDate string) (*schema.AggregateSummary, error) {
	variables, err := cashflowVariables(0, startDate, endDate)
	if err != nil {
		return nil, err
	}
	result, err := query[schema.CashflowSummaryResult](ctx, c, "Web_GetCashFlowSummary", queryGetCashFlowSummary, variables)
	if err != nil {
		return nil, err
	}
	if len(result.Summary) == 0 {
		return nil, schema.NewOperationError("Web_GetCashFlowSummary", "no summary returned")
	}
	return &result.Summary[0].Summary, nil
}
