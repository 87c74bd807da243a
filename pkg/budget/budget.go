package budget

import (
	"errors"
	"time"

	"github.com/spendwell/spendwell/pkg/money"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
	ErrInvalidBudget  = errors.New("invalid budget")
)

// Period is the recurring window a budget applies to.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func (p Period) IsValid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Start returns the first day (UTC midnight) of the period containing the
// given moment. Weeks start on Monday.
func (p Period) Start(now time.Time) time.Time {
	now = now.UTC()
	switch p {
	case PeriodWeekly:
		offset := (int(now.Weekday()) + 6) % 7
		day := now.AddDate(0, 0, -offset)
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	case PeriodYearly:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

// Budget is a per-category spending cap. Each user has at most one budget
// per category.
type Budget struct {
	Id         int
	CategoryId int
	// CategoryName is resolved from the category reference when loading.
	CategoryName string
	Amount       money.Amount
	Period       Period
	Active       bool
}

// BudgetStatus is a budget together with the spending accumulated in the
// current period. Derived, never persisted.
type BudgetStatus struct {
	Budget    Budget
	Spent     money.Amount
	Remaining money.Amount
	// Utilization is Spent as a percentage of the budget amount.
	Utilization float64
}

// StatusOf computes the current-period status of a budget.
func StatusOf(budget Budget, spent money.Amount) BudgetStatus {
	var utilization float64
	if budget.Amount > 0 {
		utilization = float64(spent) / float64(budget.Amount) * 100
	}
	return BudgetStatus{
		Budget:      budget,
		Spent:       spent,
		Remaining:   budget.Amount - spent,
		Utilization: utilization,
	}
}
