package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/event_bus"
	"github.com/spendwell/spendwell/internal/utils"
	"github.com/spendwell/spendwell/pkg/category"
	"github.com/spendwell/spendwell/pkg/user"
)

type Service interface {
	Create(ctx context.Context, expense Expense) (Expense, error)
	List(ctx context.Context, filter Filter) ([]Expense, error)
	Delete(ctx context.Context, expenseId int) error
}

type ExpenseServiceImpl struct {
	repo            Repo
	categoryService category.Service
	bus             *event_bus.EventBus
	clock           utils.Clock
}

func NewExpenseService(
	repo Repo,
	categoryService category.Service,
	bus *event_bus.EventBus,
	clock utils.Clock,
) *ExpenseServiceImpl {
	return &ExpenseServiceImpl{
		repo:            repo,
		categoryService: categoryService,
		bus:             bus,
		clock:           clock,
	}
}

func (s *ExpenseServiceImpl) Create(ctx context.Context, expense Expense) (Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}

	expense.Description = strings.TrimSpace(expense.Description)
	if expense.Description == "" {
		return Expense{}, fmt.Errorf("%w: description is required", ErrInvalidExpense)
	}
	if expense.Amount <= 0 {
		return Expense{}, fmt.Errorf("%w: amount must be positive", ErrInvalidExpense)
	}

	cat, err := s.categoryService.Get(ctx, expense.CategoryId)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return Expense{}, fmt.Errorf("%w: unknown category %d", ErrInvalidExpense, expense.CategoryId)
		}
		return Expense{}, err
	}
	expense.CategoryName = cat.Name

	if expense.Date.IsZero() {
		expense.Date = DateOf(s.clock.Now())
	}
	expense.CreatedAt = s.clock.Now().UTC()

	id, err := s.repo.Store(ctx, userId, expense)
	if err != nil {
		return Expense{}, err
	}
	expense.Id = id

	log.Infof("expense added: %s - %s", expense.Description, expense.Amount)
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.ExpenseCreatedEvent, event_bus.ExpenseCreated{
		ExpenseId:  expense.Id,
		CategoryId: expense.CategoryId,
		Amount:     expense.Amount,
		Date:       expense.Date,
	})); err != nil {
		log.Warnf("expense created event handling failed: %v", err)
	}

	return expense, nil
}

func (s *ExpenseServiceImpl) List(ctx context.Context, filter Filter) ([]Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Find(ctx, userId, filter)
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, expenseId int) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, userId, expenseId)
	if err != nil {
		return err
	}
	if !deleted {
		log.Warnf("expense not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", expenseId, userId)
		return ErrExpenseNotFound
	}

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.ExpenseDeletedEvent, event_bus.ExpenseDeleted{
		ExpenseId: expenseId,
	})); err != nil {
		log.Warnf("expense deleted event handling failed: %v", err)
	}
	return nil
}

// DateOf truncates a point in time to its calendar day in UTC.
func DateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
