package client

import (
	"context"
	"fmt"

	"github.com/hammem/monarchmoney/schema"
	"github.com/shopspring/decimal"
)

// Budgets returns planned versus actual budget figures for the month window.
// Empty dates select last month through next month.
func (c *Client) Budgets(ctx context.Context, startDate, endDate string) (*schema.BudgetsResult, error) {
	if (startDate == "") != (endDate == "") {
		return nil, fmt.Errorf("start date and end date must be provided together")
	}
	if startDate == "" {
		startDate = monthsFromNow(-1)
		endDate = monthsFromNow(1)
	}
	return query[schema.BudgetsResult](ctx, c, "Common_GetJointPlanningData", queryGetJointPlanningData,
		map[string]any{"startDate": startDate, "endDate": endDate})
}

// SetBudgetAmountInput addresses one budget item. Exactly one of CategoryID
// and CategoryGroupID must be set; a zero Amount clears the budget.
type SetBudgetAmountInput struct {
	Amount          decimal.Decimal
	CategoryID      string
	CategoryGroupID string
	Timeframe       string
	StartDate       string
	ApplyToFuture   bool
}

// SetBudgetAmount updates the budgeted amount for a category or category
// group. StartDate defaults to the start of the current month, Timeframe to
// "month".
func (c *Client) SetBudgetAmount(ctx context.Context, input SetBudgetAmountInput) (*schema.BudgetItem, error) {
	const operation = "Common_UpdateBudgetItem"
	if (input.CategoryID == "") == (input.CategoryGroupID == "") {
		return nil, fmt.Errorf("exactly one of category id and category group id must be set")
	}
	timeframe := input.Timeframe
	if timeframe == "" {
		timeframe = "month"
	}
	startDate := input.StartDate
	if startDate == "" {
		startDate = startOfCurrentMonth()
	}
	fields := map[string]any{
		"amount":        number(input.Amount),
		"timeframe":     timeframe,
		"startDate":     startDate,
		"applyToFuture": input.ApplyToFuture,
	}
	if input.CategoryID != "" {
		fields["categoryId"] = input.CategoryID
	} else {
		fields["categoryGroupId"] = input.CategoryGroupID
	}
	result, err := query[schema.SetBudgetAmountResult](ctx, c, operation, mutationUpdateBudgetItem,
		map[string]any{"input": fields})
	if err != nil {
		return nil, err
	}
	if result.UpdateOrCreateBudgetItem.BudgetItem == nil {
		return nil, schema.NewOperationError(operation, "no budget item returned")
	}
	return result.UpdateOrCreateBudgetItem.BudgetItem, nil
}
