package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	GetAll(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int) (Category, error)
	GetByName(ctx context.Context, name string) (Category, error)
	Store(ctx context.Context, category Category) (int, error)
}

type CategoryRepoImpl struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepoImpl {
	return &CategoryRepoImpl{db: db}
}

func (c *CategoryRepoImpl) GetAll(ctx context.Context) ([]Category, error) {
	query := `SELECT id, name, color, icon, is_default FROM categories ORDER BY name`
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query categories: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var category Category
		if err := rows.Scan(
			&category.Id,
			&category.Name,
			&category.Color,
			&category.Icon,
			&category.IsDefault,
		); err != nil {
			err := fmt.Errorf("could not scan category: %w", err)
			log.Error(err)
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return categories, nil
}

func (c *CategoryRepoImpl) Get(ctx context.Context, id int) (Category, error) {
	query := `SELECT id, name, color, icon, is_default FROM categories WHERE id = $1`
	return c.scanCategory(c.db.QueryRowContext(ctx, query, id))
}

func (c *CategoryRepoImpl) GetByName(ctx context.Context, name string) (Category, error) {
	query := `SELECT id, name, color, icon, is_default FROM categories WHERE name = $1`
	return c.scanCategory(c.db.QueryRowContext(ctx, query, name))
}

func (c *CategoryRepoImpl) scanCategory(row *sql.Row) (Category, error) {
	var category Category
	err := row.Scan(
		&category.Id,
		&category.Name,
		&category.Color,
		&category.Icon,
		&category.IsDefault,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, ErrCategoryNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not scan category: %w", err)
		log.Error(err)
		return Category{}, err
	}
	return category, nil
}

func (c *CategoryRepoImpl) Store(ctx context.Context, category Category) (int, error) {
	query := `INSERT INTO categories (name, color, icon, is_default) VALUES ($1, $2, $3, $4) RETURNING id`
	var id int
	err := c.db.QueryRowContext(ctx, query,
		category.Name,
		category.Color,
		category.Icon,
		category.IsDefault,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store category: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}
