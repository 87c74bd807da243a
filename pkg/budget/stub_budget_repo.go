package budget

import (
	"context"
	"sort"
)

type storedBudget struct {
	userId int
	budget Budget
}

type StubBudgetRepo struct {
	nextId  int
	budgets []storedBudget
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{}
}

func (s *StubBudgetRepo) Upsert(ctx context.Context, userId int, budget Budget) (int, error) {
	for i, record := range s.budgets {
		if record.userId == userId && record.budget.CategoryId == budget.CategoryId {
			budget.Id = record.budget.Id
			s.budgets[i].budget = budget
			return budget.Id, nil
		}
	}
	s.nextId++
	budget.Id = s.nextId
	s.budgets = append(s.budgets, storedBudget{userId: userId, budget: budget})
	return budget.Id, nil
}

func (s *StubBudgetRepo) GetAll(ctx context.Context, userId int) ([]Budget, error) {
	var budgets []Budget
	for _, record := range s.budgets {
		if record.userId == userId {
			budgets = append(budgets, record.budget)
		}
	}
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].CategoryName < budgets[j].CategoryName
	})
	return budgets, nil
}

func (s *StubBudgetRepo) GetByCategory(ctx context.Context, userId int, categoryId int) (Budget, error) {
	for _, record := range s.budgets {
		if record.userId == userId && record.budget.CategoryId == categoryId {
			return record.budget, nil
		}
	}
	return Budget{}, ErrBudgetNotFound
}

func (s *StubBudgetRepo) Delete(ctx context.Context, userId int, budgetId int) (bool, error) {
	for i, record := range s.budgets {
		if record.userId == userId && record.budget.Id == budgetId {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubBudgetRepo) Cleanup() {
	s.budgets = nil
	s.nextId = 0
}
