package budget

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/pkg/money"
)

type Repo interface {
	// Upsert inserts the budget or replaces the user's existing budget for
	// the same category. Returns the budget id.
	Upsert(ctx context.Context, userId int, budget Budget) (int, error)
	GetAll(ctx context.Context, userId int) ([]Budget, error)
	GetByCategory(ctx context.Context, userId int, categoryId int) (Budget, error)
	Delete(ctx context.Context, userId int, budgetId int) (bool, error)
}

type BudgetRepoImpl struct {
	db *sql.DB
}

func NewBudgetRepo(db *sql.DB) *BudgetRepoImpl {
	return &BudgetRepoImpl{db: db}
}

func (b *BudgetRepoImpl) Upsert(ctx context.Context, userId int, budget Budget) (int, error) {
	query := `INSERT INTO budgets (user_id, category_id, amount_cents, period, active)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (user_id, category_id)
				DO UPDATE SET amount_cents = excluded.amount_cents, period = excluded.period, active = excluded.active
				RETURNING id`
	var id int
	err := b.db.QueryRowContext(ctx, query,
		userId,
		budget.CategoryId,
		int64(budget.Amount),
		string(budget.Period),
		budget.Active,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not upsert budget: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (b *BudgetRepoImpl) GetAll(ctx context.Context, userId int) ([]Budget, error) {
	query := `SELECT b.id, b.category_id, c.name, b.amount_cents, b.period, b.active
				FROM budgets b JOIN categories c ON c.id = b.category_id
				WHERE b.user_id = $1 ORDER BY c.name`
	rows, err := b.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query budgets: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var budgets []Budget
	for rows.Next() {
		budget, err := scanBudget(rows.Scan)
		if err != nil {
			err := fmt.Errorf("could not scan budget: %w", err)
			log.Error(err)
			return nil, err
		}
		budgets = append(budgets, budget)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return budgets, nil
}

func (b *BudgetRepoImpl) GetByCategory(ctx context.Context, userId int, categoryId int) (Budget, error) {
	query := `SELECT b.id, b.category_id, c.name, b.amount_cents, b.period, b.active
				FROM budgets b JOIN categories c ON c.id = b.category_id
				WHERE b.user_id = $1 AND b.category_id = $2`
	row := b.db.QueryRowContext(ctx, query, userId, categoryId)
	budget, err := scanBudget(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Budget{}, ErrBudgetNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not scan budget: %w", err)
		log.Error(err)
		return Budget{}, err
	}
	return budget, nil
}

func (b *BudgetRepoImpl) Delete(ctx context.Context, userId int, budgetId int) (bool, error) {
	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`
	result, err := b.db.ExecContext(ctx, query, budgetId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete budget: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func scanBudget(scan func(dest ...any) error) (Budget, error) {
	var budget Budget
	var amountCents int64
	var period string
	err := scan(
		&budget.Id,
		&budget.CategoryId,
		&budget.CategoryName,
		&amountCents,
		&period,
		&budget.Active,
	)
	if err != nil {
		return Budget{}, err
	}
	budget.Amount = money.Amount(amountCents)
	budget.Period = Period(period)
	return budget, nil
}
