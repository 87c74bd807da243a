package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/utils"
)

type Service interface {
	Start(ctx context.Context, userId int) (Session, error)
	// Resolve returns the session for the given token. Expired sessions are
	// purged and reported as ErrSessionExpired.
	Resolve(ctx context.Context, token string) (Session, error)
	End(ctx context.Context, token string) error
}

type SessionServiceImpl struct {
	repo  Repo
	ttl   time.Duration
	clock utils.Clock
}

func NewSessionService(repo Repo, ttl time.Duration, clock utils.Clock) *SessionServiceImpl {
	return &SessionServiceImpl{repo: repo, ttl: ttl, clock: clock}
}

func (s *SessionServiceImpl) Start(ctx context.Context, userId int) (Session, error) {
	now := s.clock.Now().UTC()
	session := Session{
		Token:     uuid.New().String(),
		UserId:    userId,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Store(ctx, session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (s *SessionServiceImpl) Resolve(ctx context.Context, token string) (Session, error) {
	session, err := s.repo.Find(ctx, token)
	if err != nil {
		return Session{}, err
	}
	if s.clock.Now().After(session.ExpiresAt) {
		log.Debugf("session expired for user %d", session.UserId)
		if err := s.repo.Delete(ctx, token); err != nil {
			log.Warnf("failed to purge expired session: %v", err)
		}
		return Session{}, ErrSessionExpired
	}
	return session, nil
}

func (s *SessionServiceImpl) End(ctx context.Context, token string) error {
	return s.repo.Delete(ctx, token)
}
