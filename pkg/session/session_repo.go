package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	Store(ctx context.Context, session Session) error
	Find(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}

type SessionRepoImpl struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepoImpl {
	return &SessionRepoImpl{db: db}
}

func (s *SessionRepoImpl) Store(ctx context.Context, session Session) error {
	query := `INSERT INTO sessions (token, user_id, created_at, expires_at) VALUES ($1, $2, $3, $4)`
	_, err := s.db.ExecContext(ctx, query,
		session.Token,
		session.UserId,
		session.CreatedAt.Format(time.RFC3339),
		session.ExpiresAt.Format(time.RFC3339),
	)
	if err != nil {
		err := fmt.Errorf("could not store session: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (s *SessionRepoImpl) Find(ctx context.Context, token string) (Session, error) {
	query := `SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = $1`
	var session Session
	var createdAtString, expiresAtString string
	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&session.Token,
		&session.UserId,
		&createdAtString,
		&expiresAtString,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not scan session: %w", err)
		log.Error(err)
		return Session{}, err
	}
	session.CreatedAt, err = time.Parse(time.RFC3339, createdAtString)
	if err != nil {
		err := fmt.Errorf("could not parse session created_at: %w", err)
		log.Error(err)
		return Session{}, err
	}
	session.ExpiresAt, err = time.Parse(time.RFC3339, expiresAtString)
	if err != nil {
		err := fmt.Errorf("could not parse session expires_at: %w", err)
		log.Error(err)
		return Session{}, err
	}
	return session, nil
}

func (s *SessionRepoImpl) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`
	if _, err := s.db.ExecContext(ctx, query, token); err != nil {
		err := fmt.Errorf("could not delete session: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
