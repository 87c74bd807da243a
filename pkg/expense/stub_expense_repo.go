package expense

import (
	"context"
	"sort"

	"github.com/spendwell/spendwell/pkg/money"
)

type stored struct {
	userId  int
	expense Expense
}

type StubExpenseRepo struct {
	nextId   int
	expenses []stored
}

func NewStubExpenseRepo() *StubExpenseRepo {
	return &StubExpenseRepo{}
}

func (s *StubExpenseRepo) Store(ctx context.Context, userId int, expense Expense) (int, error) {
	s.nextId++
	expense.Id = s.nextId
	s.expenses = append(s.expenses, stored{userId: userId, expense: expense})
	return expense.Id, nil
}

func (s *StubExpenseRepo) Find(ctx context.Context, userId int, filter Filter) ([]Expense, error) {
	var expenses []Expense
	for _, record := range s.expenses {
		if record.userId != userId {
			continue
		}
		if !filter.Matches(record.expense) {
			continue
		}
		expenses = append(expenses, record.expense)
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		if expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Id > expenses[j].Id
		}
		return expenses[i].Date.After(expenses[j].Date)
	})
	if filter.Limit > 0 && len(expenses) > filter.Limit {
		expenses = expenses[:filter.Limit]
	}
	return expenses, nil
}

func (s *StubExpenseRepo) Delete(ctx context.Context, userId int, expenseId int) (bool, error) {
	for i, record := range s.expenses {
		if record.userId == userId && record.expense.Id == expenseId {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubExpenseRepo) Total(ctx context.Context, userId int, filter Filter) (money.Amount, error) {
	var total money.Amount
	for _, record := range s.expenses {
		if record.userId != userId {
			continue
		}
		if !filter.Matches(record.expense) {
			continue
		}
		total += record.expense.Amount
	}
	return total, nil
}

func (s *StubExpenseRepo) Cleanup() {
	s.expenses = nil
	s.nextId = 0
}
