package category

// BudgetCategory is the API response model for a budget category.
type BudgetCategory struct {
	ID             string `json:"id" doc:"Category UUID"`
	UserID         string `json:"userID" doc:"User UUID"`
	Name           string `json:"name" doc:"Display name"`
	Type           string `json:"type" doc:"Category type"`
	BudgetedAmount string `json:"budgetedAmount" doc:"Decimal budgeted amount"`
	ActualAmount   string `json:"actualAmount" doc:"Decimal actual spend, maintained by transaction writes"`
	Color          string `json:"color,omitempty" doc:"Display color"`
	Icon           string `json:"icon,omitempty" doc:"Display icon"`
}
