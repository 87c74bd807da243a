package session

import (
	"context"
)

type StubSessionRepo struct {
	sessions map[string]Session
}

func NewStubSessionRepo() *StubSessionRepo {
	return &StubSessionRepo{sessions: map[string]Session{}}
}

func (s *StubSessionRepo) Store(ctx context.Context, session Session) error {
	s.sessions[session.Token] = session
	return nil
}

func (s *StubSessionRepo) Find(ctx context.Context, token string) (Session, error) {
	if session, exists := s.sessions[token]; exists {
		return session, nil
	}
	return Session{}, ErrSessionNotFound
}

func (s *StubSessionRepo) Delete(ctx context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *StubSessionRepo) Cleanup() {
	s.sessions = map[string]Session{}
}
