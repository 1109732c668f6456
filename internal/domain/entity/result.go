package entity

// BudgetStatus natija byudjetga sig'dimi
type BudgetStatus string

const (
	WithinBudget BudgetStatus = "within_budget"
	OverBudget   BudgetStatus = "over_budget"
)

// BudgetAllocation sub-budget per required category (yen)
type BudgetAllocation map[Category]int

// Sum jami ajratilgan byudjet
func (a BudgetAllocation) Sum() int {
	total := 0
	for _, v := range a {
		total += v
	}
	return total
}

// Clone copy of the allocation
func (a BudgetAllocation) Clone() BudgetAllocation {
	out := make(BudgetAllocation, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Result recommendation natijasi
type Result struct {
	ID              string           `json:"id"`
	Recommendations Configuration    `json:"recommendations"`
	TotalPrice      int              `json:"totalPrice"`
	GrandTotal      int              `json:"grandTotal"`
	Budget          int              `json:"budget"`
	RemainingBudget int              `json:"remainingBudget"`
	BudgetStatus    BudgetStatus     `json:"budgetStatus"`
	Overage         int              `json:"overage,omitempty"`
	Usage           string           `json:"usage"`
	MinimalMode     bool             `json:"minimalMode,omitempty"`
	Allocation      BudgetAllocation `json:"allocation,omitempty"`
	Warnings        []string         `json:"warnings,omitempty"`
}
