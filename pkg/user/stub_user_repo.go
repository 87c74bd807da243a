package user

import (
	"context"
)

type StubUserRepo struct {
	nextId int
	users  map[int]User
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{users: map[int]User{}}
}

func (s *StubUserRepo) CreateUser(ctx context.Context, user User) (int, error) {
	s.nextId++
	user.Id = s.nextId
	s.users[user.Id] = user
	return user.Id, nil
}

func (s *StubUserRepo) GetUser(ctx context.Context, id int) (User, error) {
	if u, exists := s.users[id]; exists {
		return u, nil
	}
	return User{}, ErrUserNotFound
}

func (s *StubUserRepo) GetUserByUsername(ctx context.Context, username string) (User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubUserRepo) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	for _, u := range s.users {
		if u.Username == username {
			return false, nil
		}
	}
	return true, nil
}

func (s *StubUserRepo) Cleanup() {
	s.users = map[int]User{}
	s.nextId = 0
}
