package expense

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/pkg/money"
)

type Repo interface {
	Store(ctx context.Context, userId int, expense Expense) (int, error)
	// Find returns the user's expenses matching the filter, newest first.
	Find(ctx context.Context, userId int, filter Filter) ([]Expense, error)
	Delete(ctx context.Context, userId int, expenseId int) (bool, error)
	// Total sums the amounts of the user's expenses matching the filter.
	Total(ctx context.Context, userId int, filter Filter) (money.Amount, error)
}

type ExpenseRepoImpl struct {
	db *sql.DB
}

func NewExpenseRepo(db *sql.DB) *ExpenseRepoImpl {
	return &ExpenseRepoImpl{db: db}
}

func (e *ExpenseRepoImpl) Store(ctx context.Context, userId int, expense Expense) (int, error) {
	query := `INSERT INTO expenses (user_id, category_id, description, amount_cents, expense_date, created_at)
				VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int
	err := e.db.QueryRowContext(ctx, query,
		userId,
		expense.CategoryId,
		expense.Description,
		int64(expense.Amount),
		expense.Date.Format(DateFormat),
		expense.CreatedAt.Format(time.RFC3339),
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store expense: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (e *ExpenseRepoImpl) Find(ctx context.Context, userId int, filter Filter) ([]Expense, error) {
	conditions, args := filterConditions(userId, filter)
	query := fmt.Sprintf(
		`SELECT e.id, e.description, e.amount_cents, e.category_id, c.name, e.expense_date, e.created_at
				FROM expenses e JOIN categories c ON c.id = e.category_id
				WHERE %s ORDER BY e.expense_date DESC, e.id DESC`,
		strings.Join(conditions, " AND "),
	)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var expense Expense
		var amountCents int64
		var dateString, createdAtString string
		if err := rows.Scan(
			&expense.Id,
			&expense.Description,
			&amountCents,
			&expense.CategoryId,
			&expense.CategoryName,
			&dateString,
			&createdAtString,
		); err != nil {
			err := fmt.Errorf("could not scan expense: %w", err)
			log.Error(err)
			return nil, err
		}
		expense.Amount = money.Amount(amountCents)
		expense.Date, err = time.Parse(DateFormat, dateString)
		if err != nil {
			err := fmt.Errorf("could not parse expense date: %w", err)
			log.Error(err)
			return nil, err
		}
		expense.CreatedAt, err = time.Parse(time.RFC3339, createdAtString)
		if err != nil {
			err := fmt.Errorf("could not parse expense created_at: %w", err)
			log.Error(err)
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return expenses, nil
}

func (e *ExpenseRepoImpl) Delete(ctx context.Context, userId int, expenseId int) (bool, error) {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	result, err := e.db.ExecContext(ctx, query, expenseId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete expense: %w", err)
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

func (e *ExpenseRepoImpl) Total(ctx context.Context, userId int, filter Filter) (money.Amount, error) {
	conditions, args := filterConditions(userId, filter)
	query := fmt.Sprintf(
		`SELECT COALESCE(SUM(e.amount_cents), 0) FROM expenses e WHERE %s`,
		strings.Join(conditions, " AND "),
	)
	var totalCents int64
	if err := e.db.QueryRowContext(ctx, query, args...).Scan(&totalCents); err != nil {
		err := fmt.Errorf("could not sum expenses: %w", err)
		log.Error(err)
		return 0, err
	}
	return money.Amount(totalCents), nil
}

// filterConditions builds the WHERE clauses and arguments shared by Find and
// Total. Date bounds are inclusive on both ends.
func filterConditions(userId int, filter Filter) ([]string, []any) {
	conditions := []string{"e.user_id = $1"}
	args := []any{userId}

	if filter.CategoryId != 0 {
		args = append(args, filter.CategoryId)
		conditions = append(conditions, fmt.Sprintf("e.category_id = $%d", len(args)))
	}
	if !filter.StartDate.IsZero() {
		args = append(args, filter.StartDate.Format(DateFormat))
		conditions = append(conditions, fmt.Sprintf("e.expense_date >= $%d", len(args)))
	}
	if !filter.EndDate.IsZero() {
		args = append(args, filter.EndDate.Format(DateFormat))
		conditions = append(conditions, fmt.Sprintf("e.expense_date <= $%d", len(args)))
	}
	return conditions, args
}
