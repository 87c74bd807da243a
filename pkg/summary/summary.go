package summary

import (
	"errors"
	"fmt"

	"github.com/spendwell/spendwell/pkg/expense"
	"github.com/spendwell/spendwell/pkg/money"
)

// ErrInvalidInput indicates a malformed expense record reached the
// aggregation: a negative amount, a missing date, or a missing category.
// The whole computation fails rather than silently excluding the record.
var ErrInvalidInput = errors.New("invalid expense record")

// MonthKeyFormat is the year-month bucket key used in MonthlyBreakdown.
const MonthKeyFormat = "2006-01"

// Summary is the derived aggregate over a set of expenses. It is never
// persisted; every request computes it fresh.
type Summary struct {
	TotalAmount money.Amount
	TotalCount  int
	// AveragePerExpense is kept unrounded; rounding to currency precision
	// happens only at presentation time.
	AveragePerExpense float64
	// CategoryBreakdown maps category name to the summed amount. Categories
	// with no expenses are omitted, not zero-filled.
	CategoryBreakdown map[string]money.Amount
	// MonthlyBreakdown maps "YYYY-MM" to the summed amount for that month.
	MonthlyBreakdown map[string]money.Amount
}

// Compute aggregates the given expenses into a Summary. It is a pure
// function: no side effects, safe to call repeatedly and concurrently.
func Compute(expenses []expense.Expense) (Summary, error) {
	categoryBreakdown := make(map[string]money.Amount)
	monthlyBreakdown := make(map[string]money.Amount)
	var total money.Amount

	for _, e := range expenses {
		if e.Amount < 0 {
			return Summary{}, fmt.Errorf("%w: expense %d has a negative amount", ErrInvalidInput, e.Id)
		}
		if e.Date.IsZero() {
			return Summary{}, fmt.Errorf("%w: expense %d has no date", ErrInvalidInput, e.Id)
		}
		if e.CategoryName == "" {
			return Summary{}, fmt.Errorf("%w: expense %d has no category", ErrInvalidInput, e.Id)
		}
		total += e.Amount
		categoryBreakdown[e.CategoryName] += e.Amount
		monthlyBreakdown[e.Date.Format(MonthKeyFormat)] += e.Amount
	}

	var average float64
	if len(expenses) > 0 {
		average = total.Float64() / float64(len(expenses))
	}

	return Summary{
		TotalAmount:       total,
		TotalCount:        len(expenses),
		AveragePerExpense: average,
		CategoryBreakdown: categoryBreakdown,
		MonthlyBreakdown:  monthlyBreakdown,
	}, nil
}

// Filter returns the subsequence of expenses matching the filter, preserving
// the original relative order. All predicates are conjunctive and the date
// bounds are inclusive on both ends. An empty filter returns the input
// unchanged.
func Filter(expenses []expense.Expense, filter expense.Filter) []expense.Expense {
	if filter.IsEmpty() {
		return expenses
	}
	filtered := make([]expense.Expense, 0, len(expenses))
	for _, e := range expenses {
		if filter.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
