package schema

import "github.com/shopspring/decimal"

// BudgetMonthlyAmounts is one month of planned versus actual budget figures.
type BudgetMonthlyAmounts struct {
	Month                       string          `json:"month"`
	PlannedCashFlowAmount       decimal.Decimal `json:"plannedCashFlowAmount"`
	PlannedSetAsideAmount       decimal.Decimal `json:"plannedSetAsideAmount"`
	ActualAmount                decimal.Decimal `json:"actualAmount"`
	RemainingAmount             decimal.Decimal `json:"remainingAmount"`
	PreviousMonthRolloverAmount decimal.Decimal `json:"previousMonthRolloverAmount"`
	RolloverType                string          `json:"rolloverType"`
}

// BudgetCategoryMonthlyAmounts ties monthly amounts to a category.
type BudgetCategoryMonthlyAmounts struct {
	Category struct {
		ID string `json:"id"`
	} `json:"category"`
	MonthlyAmounts []BudgetMonthlyAmounts `json:"monthlyAmounts"`
}

// BudgetCategoryGroupMonthlyAmounts ties monthly amounts to a category group.
type BudgetCategoryGroupMonthlyAmounts struct {
	CategoryGroup struct {
		ID string `json:"id"`
	} `json:"categoryGroup"`
	MonthlyAmounts []BudgetMonthlyAmounts `json:"monthlyAmounts"`
}

// BudgetTotals is a planned/actual/remaining triple for one month bucket.
type BudgetTotals struct {
	ActualAmount                decimal.Decimal `json:"actualAmount"`
	PlannedAmount               decimal.Decimal `json:"plannedAmount"`
	PreviousMonthRolloverAmount decimal.Decimal `json:"previousMonthRolloverAmount"`
	RemainingAmount             decimal.Decimal `json:"remainingAmount"`
}

// BudgetMonthTotals aggregates a month across income and expense classes.
type BudgetMonthTotals struct {
	Month                   string       `json:"month"`
	TotalIncome             BudgetTotals `json:"totalIncome"`
	TotalExpenses           BudgetTotals `json:"totalExpenses"`
	TotalFixedExpenses      BudgetTotals `json:"totalFixedExpenses"`
	TotalFlexibleExpenses   BudgetTotals `json:"totalFlexibleExpenses"`
	TotalNonMonthlyExpenses BudgetTotals `json:"totalNonMonthlyExpenses"`
}

// BudgetData is the planning payload for a month window.
type BudgetData struct {
	MonthlyAmountsByCategory      []BudgetCategoryMonthlyAmounts      `json:"monthlyAmountsByCategory"`
	MonthlyAmountsByCategoryGroup []BudgetCategoryGroupMonthlyAmounts `json:"monthlyAmountsByCategoryGroup"`
	TotalsByMonth                 []BudgetMonthTotals                 `json:"totalsByMonth"`
}

// BudgetsResult is the Common_GetJointPlanningData payload.
type BudgetsResult struct {
	BudgetSystem   string          `json:"budgetSystem"`
	BudgetData     BudgetData      `json:"budgetData"`
	CategoryGroups []CategoryGroup `json:"categoryGroups"`
}

// BudgetItem is the updated item echoed back by Common_UpdateBudgetItem.
type BudgetItem struct {
	ID           string          `json:"id"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
}

// SetBudgetAmountResult is the Common_UpdateBudgetItem payload.
type SetBudgetAmountResult struct {
	UpdateOrCreateBudgetItem struct {
		BudgetItem *BudgetItem `json:"budgetItem"`
	} `json:"updateOrCreateBudgetItem"`
}
