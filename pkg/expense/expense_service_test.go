package expense

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/spendwell/spendwell/internal/event_bus"
	"github.com/spendwell/spendwell/internal/utils"
	"github.com/spendwell/spendwell/pkg/category"
	"github.com/spendwell/spendwell/pkg/money"
	"github.com/spendwell/spendwell/pkg/user"
)

var ctx = user.WithUser(context.Background(), user.User{Id: 1})

var expenseRepoStub = NewStubExpenseRepo()
var categoryRepoStub = category.NewStubCategoryRepo()

var clock = &utils.MockClock{FixedNow: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)}

var service Service
var foodCategory category.Category

func setup(t *testing.T) func() {
	categoryService := category.NewCategoryService(categoryRepoStub)
	var err error
	foodCategory, err = categoryService.Create(context.Background(), category.Category{Name: "Food"})
	if err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	service = NewExpenseService(expenseRepoStub, categoryService, event_bus.NewEventBus(), clock)
	return func() {
		t.Log("Teardown after test")
		expenseRepoStub.Cleanup()
		categoryRepoStub.Cleanup()
	}
}

func TestExpenseServiceImpl_Create(t *testing.T) {
	t.Run("should create an expense successfully", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, Expense{
			Description: "Lunch",
			Amount:      money.Amount(1250),
			CategoryId:  foodCategory.Id,
			Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		})

		// then
		assert.NoError(t, err)
		assert.NotZero(t, created.Id)
		assert.Equal(t, "Food", created.CategoryName)
	})

	t.Run("should default the date to today", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, Expense{
			Description: "Coffee",
			Amount:      money.Amount(300),
			CategoryId:  foodCategory.Id,
		})

		// then
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), created.Date)
	})

	t.Run("should reject missing description", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Expense{
			Description: "   ",
			Amount:      money.Amount(100),
			CategoryId:  foodCategory.Id,
		})

		// then
		assert.ErrorIs(t, err, ErrInvalidExpense)
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Expense{
			Description: "Free lunch",
			Amount:      0,
			CategoryId:  foodCategory.Id,
		})

		// then
		assert.ErrorIs(t, err, ErrInvalidExpense)
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Expense{
			Description: "Mystery",
			Amount:      money.Amount(100),
			CategoryId:  999,
		})

		// then
		assert.ErrorIs(t, err, ErrInvalidExpense)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(context.Background(), Expense{
			Description: "Lunch",
			Amount:      money.Amount(100),
			CategoryId:  foodCategory.Id,
		})

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get current user")
	})
}

func TestExpenseServiceImpl_List(t *testing.T) {
	t.Run("should list own expenses newest first", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, Expense{
			Description: "Older", Amount: 100, CategoryId: foodCategory.Id,
			Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		_, err = service.Create(ctx, Expense{
			Description: "Newer", Amount: 200, CategoryId: foodCategory.Id,
			Date: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		// when
		expenses, err := service.List(ctx, Filter{})

		// then
		assert.NoError(t, err)
		require.Len(t, expenses, 2)
		assert.Equal(t, "Newer", expenses[0].Description)
		assert.Equal(t, "Older", expenses[1].Description)
	})

	t.Run("should not return other users' expenses", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		otherCtx := user.WithUser(context.Background(), user.User{Id: 2})
		_, err := service.Create(otherCtx, Expense{
			Description: "Not mine", Amount: 100, CategoryId: foodCategory.Id,
		})
		require.NoError(t, err)

		// when
		expenses, err := service.List(ctx, Filter{})

		// then
		assert.NoError(t, err)
		assert.Empty(t, expenses)
	})
}

func TestExpenseServiceImpl_Delete(t *testing.T) {
	t.Run("should delete own expense", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, Expense{
			Description: "Lunch", Amount: 100, CategoryId: foodCategory.Id,
		})
		require.NoError(t, err)

		// when
		err = service.Delete(ctx, created.Id)

		// then
		assert.NoError(t, err)
		expenses, _ := service.List(ctx, Filter{})
		assert.Empty(t, expenses)
	})

	t.Run("should fail when deleting somebody else's expense", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		otherCtx := user.WithUser(context.Background(), user.User{Id: 2})
		created, err := service.Create(otherCtx, Expense{
			Description: "Not mine", Amount: 100, CategoryId: foodCategory.Id,
		})
		require.NoError(t, err)

		// when
		err = service.Delete(ctx, created.Id)

		// then
		assert.ErrorIs(t, err, ErrExpenseNotFound)
	})
}
