package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	CreateUser(ctx context.Context, user User) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

type UserRepoImpl struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepoImpl {
	return &UserRepoImpl{db: db}
}

func (u *UserRepoImpl) CreateUser(ctx context.Context, user User) (int, error) {
	query := `INSERT INTO users (uid, username, password_hash, display_name, created_at)
				VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int
	err := u.db.QueryRowContext(ctx, query,
		user.Uid,
		user.Username,
		user.PasswordHash,
		user.DisplayName,
		user.CreatedAt.Format(time.RFC3339),
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not create user: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (u *UserRepoImpl) GetUser(ctx context.Context, id int) (User, error) {
	query := `SELECT id, uid, username, password_hash, display_name, created_at FROM users WHERE id = $1`
	return u.scanUser(u.db.QueryRowContext(ctx, query, id))
}

func (u *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (User, error) {
	query := `SELECT id, uid, username, password_hash, display_name, created_at FROM users WHERE username = $1`
	return u.scanUser(u.db.QueryRowContext(ctx, query, username))
}

func (u *UserRepoImpl) scanUser(row *sql.Row) (User, error) {
	var user User
	var createdAtString string
	err := row.Scan(
		&user.Id,
		&user.Uid,
		&user.Username,
		&user.PasswordHash,
		&user.DisplayName,
		&createdAtString,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not scan user: %w", err)
		log.Error(err)
		return User{}, err
	}
	user.CreatedAt, err = time.Parse(time.RFC3339, createdAtString)
	if err != nil {
		err := fmt.Errorf("could not parse user created_at: %w", err)
		log.Error(err)
		return User{}, err
	}
	return user, nil
}

func (u *UserRepoImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	query := `SELECT COUNT(1) FROM users WHERE username = $1`
	var count int
	if err := u.db.QueryRowContext(ctx, query, username).Scan(&count); err != nil {
		err := fmt.Errorf("could not check username availability: %w", err)
		log.Error(err)
		return false, err
	}
	return count == 0, nil
}
