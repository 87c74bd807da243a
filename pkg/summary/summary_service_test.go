package summary

import (
	"context"
	"testing"

	"github.com/spendwell/spendwell/pkg/expense"
	"github.com/spendwell/spendwell/pkg/money"
	"github.com/spendwell/spendwell/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stubExpenseRepo = expense.NewStubExpenseRepo()

func setup(t *testing.T) (context.Context, *ServiceImpl, func()) {
	ctx := user.WithUser(context.Background(), user.User{Id: 1, Username: "test_user"})
	service := NewService(stubExpenseRepo)
	return ctx, service, func() {
		stubExpenseRepo.Cleanup()
	}
}

func TestServiceImpl_GetSummary(t *testing.T) {
	t.Run("should aggregate the current user's expenses", func(t *testing.T) {
		// given
		ctx, service, teardown := setup(t)
		defer teardown()
		for _, e := range sampleExpenses() {
			_, err := stubExpenseRepo.Store(ctx, 1, e)
			require.NoError(t, err)
		}

		// when
		result, err := service.GetSummary(ctx, expense.Filter{})

		// then
		require.NoError(t, err)
		assert.Equal(t, money.Amount(3500), result.TotalAmount)
		assert.Equal(t, 3, result.TotalCount)
	})

	t.Run("should apply the filter before aggregating", func(t *testing.T) {
		// given
		ctx, service, teardown := setup(t)
		defer teardown()
		for _, e := range sampleExpenses() {
			_, err := stubExpenseRepo.Store(ctx, 1, e)
			require.NoError(t, err)
		}

		// when
		result, err := service.GetSummary(ctx, expense.Filter{CategoryId: 1})

		// then
		require.NoError(t, err)
		assert.Equal(t, money.Amount(3000), result.TotalAmount)
		assert.Equal(t, 2, result.TotalCount)
		assert.NotContains(t, result.CategoryBreakdown, "Transport")
	})

	t.Run("should not include other users' expenses", func(t *testing.T) {
		// given
		ctx, service, teardown := setup(t)
		defer teardown()
		_, err := stubExpenseRepo.Store(ctx, 2, expense.Expense{
			Description:  "Not mine",
			Amount:       9900,
			CategoryName: "Food",
			Date:         date("2024-01-10"),
		})
		require.NoError(t, err)

		// when
		result, err := service.GetSummary(ctx, expense.Filter{})

		// then
		require.NoError(t, err)
		assert.Equal(t, 0, result.TotalCount)
	})

	t.Run("should fail without an authenticated user", func(t *testing.T) {
		// given
		_, service, teardown := setup(t)
		defer teardown()

		// when
		_, err := service.GetSummary(context.Background(), expense.Filter{})

		// then
		assert.ErrorIs(t, err, user.ErrNoUser)
	})
}
