package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Service interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int) (Category, error)
	Create(ctx context.Context, category Category) (Category, error)
}

type CategoryServiceImpl struct {
	repo Repo
}

func NewCategoryService(repo Repo) *CategoryServiceImpl {
	return &CategoryServiceImpl{repo: repo}
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *CategoryServiceImpl) Get(ctx context.Context, id int) (Category, error) {
	return s.repo.Get(ctx, id)
}

func (s *CategoryServiceImpl) Create(ctx context.Context, category Category) (Category, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return Category{}, fmt.Errorf("category name is required")
	}

	_, err := s.repo.GetByName(ctx, category.Name)
	if err == nil {
		return Category{}, ErrCategoryNameTaken
	}
	if !errors.Is(err, ErrCategoryNotFound) {
		return Category{}, err
	}

	id, err := s.repo.Store(ctx, category)
	if err != nil {
		return Category{}, err
	}
	category.Id = id
	return category, nil
}
