package category

import (
	"context"
)

type StubCategoryRepo struct {
	nextId     int
	categories map[int]Category
}

func NewStubCategoryRepo() *StubCategoryRepo {
	return &StubCategoryRepo{categories: map[int]Category{}}
}

func (s *StubCategoryRepo) GetAll(ctx context.Context) ([]Category, error) {
	categories := make([]Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (s *StubCategoryRepo) Get(ctx context.Context, id int) (Category, error) {
	if category, exists := s.categories[id]; exists {
		return category, nil
	}
	return Category{}, ErrCategoryNotFound
}

func (s *StubCategoryRepo) GetByName(ctx context.Context, name string) (Category, error) {
	for _, category := range s.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return Category{}, ErrCategoryNotFound
}

func (s *StubCategoryRepo) Store(ctx context.Context, category Category) (int, error) {
	s.nextId++
	category.Id = s.nextId
	s.categories[category.Id] = category
	return category.Id, nil
}

func (s *StubCategoryRepo) Cleanup() {
	s.categories = map[int]Category{}
	s.nextId = 0
}
