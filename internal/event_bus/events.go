package event_bus

import (
	"time"

	"github.com/spendwell/spendwell/pkg/money"
)

const (
	ExpenseCreatedEvent EventType = "expense.created"
	ExpenseDeletedEvent EventType = "expense.deleted"
)

// ExpenseCreated is published after a new expense has been stored.
type ExpenseCreated struct {
	ExpenseId  int
	CategoryId int
	Amount     money.Amount
	Date       time.Time
}

// ExpenseDeleted is published after an expense has been removed by its owner.
type ExpenseDeleted struct {
	ExpenseId int
}
