package budget

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/event_bus"
	"github.com/spendwell/spendwell/internal/utils"
	"github.com/spendwell/spendwell/pkg/category"
	"github.com/spendwell/spendwell/pkg/expense"
	"github.com/spendwell/spendwell/pkg/money"
	"github.com/spendwell/spendwell/pkg/user"
)

type Service interface {
	// List returns the current user's budgets with their current-period
	// spending.
	List(ctx context.Context) ([]BudgetStatus, error)
	Upsert(ctx context.Context, budget Budget) (Budget, error)
	Delete(ctx context.Context, budgetId int) error
}

type BudgetServiceImpl struct {
	repo            Repo
	expenseRepo     expense.Repo
	categoryService category.Service
	clock           utils.Clock
}

func NewBudgetService(
	repo Repo,
	expenseRepo expense.Repo,
	categoryService category.Service,
	clock utils.Clock,
) *BudgetServiceImpl {
	return &BudgetServiceImpl{
		repo:            repo,
		expenseRepo:     expenseRepo,
		categoryService: categoryService,
		clock:           clock,
	}
}

func (s *BudgetServiceImpl) List(ctx context.Context) ([]BudgetStatus, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	budgets, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return nil, err
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := s.currentPeriodSpending(ctx, userId, budget)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, StatusOf(budget, spent))
	}
	return statuses, nil
}

func (s *BudgetServiceImpl) Upsert(ctx context.Context, budget Budget) (Budget, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Budget{}, fmt.Errorf("failed to get current user: %w", err)
	}

	if budget.Amount <= 0 {
		return Budget{}, fmt.Errorf("%w: amount must be positive", ErrInvalidBudget)
	}
	if budget.Period == "" {
		budget.Period = PeriodMonthly
	}
	if !budget.Period.IsValid() {
		return Budget{}, fmt.Errorf("%w: unknown period %q", ErrInvalidBudget, budget.Period)
	}
	cat, err := s.categoryService.Get(ctx, budget.CategoryId)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return Budget{}, fmt.Errorf("%w: category %d does not exist", ErrInvalidBudget, budget.CategoryId)
		}
		return Budget{}, err
	}

	id, err := s.repo.Upsert(ctx, userId, budget)
	if err != nil {
		return Budget{}, err
	}
	budget.Id = id
	budget.CategoryName = cat.Name
	return budget, nil
}

func (s *BudgetServiceImpl) Delete(ctx context.Context, budgetId int) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	deleted, err := s.repo.Delete(ctx, userId, budgetId)
	if err != nil {
		return err
	}
	if !deleted {
		log.Warnf("budget not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", budgetId, userId)
		return ErrBudgetNotFound
	}
	return nil
}

// RegisterEventHandlers subscribes the service to expense events so that
// overspending is reported as soon as it happens.
func (s *BudgetServiceImpl) RegisterEventHandlers(bus *event_bus.EventBus) {
	bus.Subscribe(event_bus.ExpenseCreatedEvent, s.onExpenseCreated)
}

func (s *BudgetServiceImpl) onExpenseCreated(e event_bus.Event) error {
	created, ok := e.Data.(event_bus.ExpenseCreated)
	if !ok {
		return fmt.Errorf("unexpected event payload %T for %s", e.Data, e.Type)
	}
	ctx := e.Context()
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	budget, err := s.repo.GetByCategory(ctx, userId, created.CategoryId)
	if errors.Is(err, ErrBudgetNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !budget.Active {
		return nil
	}

	spent, err := s.currentPeriodSpending(ctx, userId, budget)
	if err != nil {
		return err
	}
	if status := StatusOf(budget, spent); status.Utilization > 100 {
		log.Warnf("user %d exceeded the %s budget for %q: spent %s of %s (%.0f%%)",
			userId, budget.Period, budget.CategoryName, spent, budget.Amount, status.Utilization)
	}
	return nil
}

func (s *BudgetServiceImpl) currentPeriodSpending(ctx context.Context, userId int, budget Budget) (money.Amount, error) {
	return s.expenseRepo.Total(ctx, userId, expense.Filter{
		CategoryId: budget.CategoryId,
		StartDate:  budget.Period.Start(s.clock.Now()),
	})
}
