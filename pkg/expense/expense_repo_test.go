package expense

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/spendwell/spendwell/internal/test_utils"
	"github.com/spendwell/spendwell/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) (context.Context, *sql.DB, *ExpenseRepoImpl, int) {
	ctx := context.Background()
	db := test_utils.SetupTestDB(t)
	repo := NewExpenseRepo(db)
	userId := test_utils.CreateTestUser(t, db, "repo_test_user")
	return ctx, db, repo, userId
}

func date(value string) time.Time {
	d, err := time.Parse(DateFormat, value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExpenseRepoImpl_Store(t *testing.T) {
	// given
	ctx, _, repo, userId := setupTestRepository(t)
	expense := Expense{
		Description: "Groceries",
		Amount:      money.Amount(2550),
		CategoryId:  1,
		Date:        date("2024-03-10"),
		CreatedAt:   time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	// when
	id, err := repo.Store(ctx, userId, expense)

	// then
	require.NoError(t, err)
	assert.Greater(t, id, 0)

	stored, err := repo.Find(ctx, userId, Filter{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, id, stored[0].Id)
	assert.Equal(t, "Groceries", stored[0].Description)
	assert.Equal(t, money.Amount(2550), stored[0].Amount)
	assert.Equal(t, 1, stored[0].CategoryId)
	assert.Equal(t, "Food & Dining", stored[0].CategoryName)
	assert.Equal(t, date("2024-03-10"), stored[0].Date)
}

func TestExpenseRepoImpl_Find(t *testing.T) {
	ctx, db, repo, userId := setupTestRepository(t)

	mustStore := func(description string, cents int64, categoryId int, day string) int {
		t.Helper()
		id, err := repo.Store(ctx, userId, Expense{
			Description: description,
			Amount:      money.Amount(cents),
			CategoryId:  categoryId,
			Date:        date(day),
			CreatedAt:   time.Now().UTC(),
		})
		require.NoError(t, err)
		return id
	}

	mustStore("Lunch", 1200, 1, "2024-03-01")
	mustStore("Bus ticket", 250, 2, "2024-03-05")
	mustStore("Dinner", 3400, 1, "2024-03-05")
	mustStore("Cinema", 1500, 4, "2024-04-01")

	t.Run("should return expenses newest first", func(t *testing.T) {
		// when
		expenses, err := repo.Find(ctx, userId, Filter{})

		// then
		require.NoError(t, err)
		require.Len(t, expenses, 4)
		assert.Equal(t, "Cinema", expenses[0].Description)
		// same date, the later insert wins the tie
		assert.Equal(t, "Dinner", expenses[1].Description)
		assert.Equal(t, "Bus ticket", expenses[2].Description)
		assert.Equal(t, "Lunch", expenses[3].Description)
	})

	t.Run("should filter by category", func(t *testing.T) {
		// when
		expenses, err := repo.Find(ctx, userId, Filter{CategoryId: 1})

		// then
		require.NoError(t, err)
		require.Len(t, expenses, 2)
		assert.Equal(t, "Dinner", expenses[0].Description)
		assert.Equal(t, "Lunch", expenses[1].Description)
	})

	t.Run("should treat date bounds as inclusive", func(t *testing.T) {
		// when
		expenses, err := repo.Find(ctx, userId, Filter{
			StartDate: date("2024-03-05"),
			EndDate:   date("2024-04-01"),
		})

		// then
		require.NoError(t, err)
		require.Len(t, expenses, 3)
		for _, expense := range expenses {
			assert.False(t, expense.Date.Before(date("2024-03-05")))
			assert.False(t, expense.Date.After(date("2024-04-01")))
		}
	})

	t.Run("should apply the limit after ordering", func(t *testing.T) {
		// when
		expenses, err := repo.Find(ctx, userId, Filter{Limit: 2})

		// then
		require.NoError(t, err)
		require.Len(t, expenses, 2)
		assert.Equal(t, "Cinema", expenses[0].Description)
		assert.Equal(t, "Dinner", expenses[1].Description)
	})

	t.Run("should not return other users' expenses", func(t *testing.T) {
		// given
		otherUserId := test_utils.CreateTestUser(t, db, "other_repo_user")
		_, err := repo.Store(ctx, otherUserId, Expense{
			Description: "Not mine",
			Amount:      money.Amount(9900),
			CategoryId:  1,
			Date:        date("2024-03-02"),
			CreatedAt:   time.Now().UTC(),
		})
		require.NoError(t, err)

		// when
		expenses, err := repo.Find(ctx, userId, Filter{})

		// then
		require.NoError(t, err)
		for _, expense := range expenses {
			assert.NotEqual(t, "Not mine", expense.Description)
		}
	})
}

func TestExpenseRepoImpl_Delete(t *testing.T) {
	// given
	ctx, db, repo, userId := setupTestRepository(t)
	id, err := repo.Store(ctx, userId, Expense{
		Description: "Coffee",
		Amount:      money.Amount(350),
		CategoryId:  1,
		Date:        date("2024-03-10"),
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)

	t.Run("should not delete an expense of another user", func(t *testing.T) {
		// given
		otherUserId := test_utils.CreateTestUser(t, db, "delete_other_user")

		// when
		deleted, err := repo.Delete(ctx, otherUserId, id)

		// then
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("should delete the user's own expense", func(t *testing.T) {
		// when
		deleted, err := repo.Delete(ctx, userId, id)

		// then
		require.NoError(t, err)
		assert.True(t, deleted)

		expenses, err := repo.Find(ctx, userId, Filter{})
		require.NoError(t, err)
		assert.Empty(t, expenses)
	})

	t.Run("should report false for an unknown expense", func(t *testing.T) {
		// when
		deleted, err := repo.Delete(ctx, userId, 99999)

		// then
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestExpenseRepoImpl_Total(t *testing.T) {
	// given
	ctx, _, repo, userId := setupTestRepository(t)
	for _, e := range []Expense{
		{Description: "Lunch", Amount: 1250, CategoryId: 1, Date: date("2024-03-01")},
		{Description: "Dinner", Amount: 4575, CategoryId: 1, Date: date("2024-03-15")},
		{Description: "Taxi", Amount: 2000, CategoryId: 2, Date: date("2024-03-20")},
	} {
		e.CreatedAt = time.Now().UTC()
		_, err := repo.Store(ctx, userId, e)
		require.NoError(t, err)
	}

	t.Run("should sum all expenses without a filter", func(t *testing.T) {
		// when
		total, err := repo.Total(ctx, userId, Filter{})

		// then
		require.NoError(t, err)
		assert.Equal(t, money.Amount(7825), total)
	})

	t.Run("should sum only the filtered category", func(t *testing.T) {
		// when
		total, err := repo.Total(ctx, userId, Filter{CategoryId: 2})

		// then
		require.NoError(t, err)
		assert.Equal(t, money.Amount(2000), total)
	})

	t.Run("should return zero when nothing matches", func(t *testing.T) {
		// when
		total, err := repo.Total(ctx, userId, Filter{CategoryId: 10})

		// then
		require.NoError(t, err)
		assert.Equal(t, money.Amount(0), total)
	})
}
