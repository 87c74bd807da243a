package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Registration struct {
	Username    string
	Password    string
	DisplayName string
}

type Service interface {
	Register(ctx context.Context, registration Registration) (User, error)
	Authenticate(ctx context.Context, username, password string) (User, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetCurrentUser(ctx context.Context) (User, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

type UserServiceImpl struct {
	repo Repo
}

func NewUserService(repo Repo) *UserServiceImpl {
	return &UserServiceImpl{repo: repo}
}

func (u *UserServiceImpl) Register(ctx context.Context, registration Registration) (User, error) {
	username := NormalizeUsername(registration.Username)
	if username == "" || registration.Password == "" {
		return User{}, fmt.Errorf("%w: username and password are required", ErrInvalidCredentials)
	}

	available, err := u.repo.IsUsernameAvailable(ctx, username)
	if err != nil {
		return User{}, err
	}
	if !available {
		return User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("could not hash password: %w", err)
	}

	user := User{
		Uid:          uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		DisplayName:  registration.DisplayName,
		CreatedAt:    time.Now().UTC(),
	}
	id, err := u.repo.CreateUser(ctx, user)
	if err != nil {
		return User{}, err
	}
	user.Id = id

	log.Infof("new user registered: %s", username)
	return user, nil
}

func (u *UserServiceImpl) Authenticate(ctx context.Context, username, password string) (User, error) {
	user, err := u.repo.GetUserByUsername(ctx, NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (u *UserServiceImpl) GetUser(ctx context.Context, id int) (User, error) {
	return u.repo.GetUser(ctx, id)
}

func (u *UserServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return u.repo.GetUser(ctx, userId)
}

func (u *UserServiceImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	return u.repo.IsUsernameAvailable(ctx, NormalizeUsername(username))
}

// NormalizeUsername lowercases and trims a username so lookups are
// case-insensitive.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
