package category

import "errors"

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("category name already taken")
)

// Category is a global grouping label for expenses. Categories are shared by
// all users; the default set is seeded by migration.
type Category struct {
	Id        int
	Name      string
	Color     string
	Icon      string
	IsDefault bool
}
