package summary

import (
	"context"
	"fmt"

	"github.com/spendwell/spendwell/pkg/expense"
	"github.com/spendwell/spendwell/pkg/user"
)

type Service interface {
	// GetSummary aggregates the current user's expenses matching the filter.
	GetSummary(ctx context.Context, filter expense.Filter) (Summary, error)
}

type ServiceImpl struct {
	expenseRepo expense.Repo
}

func NewService(expenseRepo expense.Repo) *ServiceImpl {
	return &ServiceImpl{expenseRepo: expenseRepo}
}

func (s *ServiceImpl) GetSummary(ctx context.Context, filter expense.Filter) (Summary, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to get current user: %w", err)
	}
	expenses, err := s.expenseRepo.Find(ctx, userId, expense.Filter{})
	if err != nil {
		return Summary{}, err
	}
	return Compute(Filter(expenses, filter))
}
