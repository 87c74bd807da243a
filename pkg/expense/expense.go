package expense

import (
	"errors"
	"time"

	"github.com/spendwell/spendwell/pkg/money"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidExpense  = errors.New("invalid expense")
)

// Expense is a single recorded spending event. Expenses are never updated in
// place; the owner creates and deletes them.
type Expense struct {
	Id          int
	Description string
	Amount      money.Amount
	CategoryId  int
	// CategoryName is resolved from the category reference when loading.
	CategoryName string
	// Date is the calendar day of the spending, without a time component.
	Date      time.Time
	CreatedAt time.Time
}

// Filter restricts an expense query. Zero values mean no constraint on that
// dimension; date bounds are inclusive on both ends.
type Filter struct {
	CategoryId int
	StartDate  time.Time
	EndDate    time.Time
	// Limit caps the number of returned records; 0 means no limit.
	Limit int
}

// IsEmpty reports whether the filter applies no constraints at all.
func (f Filter) IsEmpty() bool {
	return f.CategoryId == 0 && f.StartDate.IsZero() && f.EndDate.IsZero() && f.Limit == 0
}

// Matches reports whether the expense satisfies all filter predicates
// (conjunctively). The limit is not part of the predicate.
func (f Filter) Matches(e Expense) bool {
	if f.CategoryId != 0 && e.CategoryId != f.CategoryId {
		return false
	}
	if !f.StartDate.IsZero() && e.Date.Before(f.StartDate) {
		return false
	}
	if !f.EndDate.IsZero() && e.Date.After(f.EndDate) {
		return false
	}
	return true
}
