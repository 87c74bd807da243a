package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var categoryRepoStub = NewStubCategoryRepo()

var service Service

func setup(t *testing.T) func() {
	service = NewCategoryService(categoryRepoStub)
	return func() {
		t.Log("Teardown after test")
		categoryRepoStub.Cleanup()
	}
}

func TestCategoryServiceImpl_Create(t *testing.T) {
	t.Run("should create a category successfully", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(context.Background(), Category{Name: " Groceries ", Color: "#112233"})

		// then
		assert.NoError(t, err)
		assert.Equal(t, "Groceries", created.Name)
		assert.NotZero(t, created.Id)
	})

	t.Run("should reject duplicate name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(context.Background(), Category{Name: "Pets"})
		require.NoError(t, err)

		// when
		_, err = service.Create(context.Background(), Category{Name: "Pets"})

		// then
		assert.ErrorIs(t, err, ErrCategoryNameTaken)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(context.Background(), Category{Name: "   "})

		// then
		assert.Error(t, err)
	})
}

func TestCategoryServiceImpl_List(t *testing.T) {
	t.Run("should list all categories", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(context.Background(), Category{Name: "Cat A"})
		require.NoError(t, err)
		_, err = service.Create(context.Background(), Category{Name: "Cat B"})
		require.NoError(t, err)

		// when
		categories, err := service.List(context.Background())

		// then
		assert.NoError(t, err)
		assert.Len(t, categories, 2)
	})
}
