package service

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/errors"
	"github.com/itchan-dev/forum-api/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type Jwt interface {
	NewToken(userId, username string) (string, error)
}

// Auth resolves caller identities for the forum: it registers users and issues access tokens.
type Auth struct {
	users domain.UserRepository
	jwt   Jwt
	cost  int
}

func NewAuth(users domain.UserRepository, jwt Jwt) *Auth {
	return &Auth{users: users, jwt: jwt, cost: bcrypt.DefaultCost}
}

// Register validates the new user, makes sure the username is free and stores a bcrypt hash
// of the password.
func (a *Auth) Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
	newUser, err := domain.NewNewUser(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	if err := a.users.VerifyAvailableUsername(ctx, newUser.Username()); err != nil {
		return domain.RegisteredUser{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newUser.Password()), a.cost)
	if err != nil {
		return domain.RegisteredUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	registered, err := a.users.AddUser(ctx, newUser.WithPassword(string(hash)))
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	logger.For("service.auth").Info("user registered", "user_id", registered.Id())
	return registered, nil
}

// Login checks credentials and returns a signed access token carrying the user id.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	hash, err := a.users.GetPasswordByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", errors.Unauthorized("wrong credentials")
	}

	id, err := a.users.GetIdByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	return a.jwt.NewToken(id, username)
}
