package user

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	Id           int
	Uid          string
	Username     string
	PasswordHash string
	DisplayName  string
	CreatedAt    time.Time
}
