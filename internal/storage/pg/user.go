package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum-api/internal/domain"
	internal_errors "github.com/itchan-dev/forum-api/internal/errors"
)

func (s *Storage) AddUser(ctx context.Context, user domain.NewUser) (domain.RegisteredUser, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var registered domain.RegisteredUser
	err := WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		registered, err = s.addUser(ctx, tx, user)
		return err
	})
	return registered, err
}

func (s *Storage) addUser(ctx context.Context, q Querier, user domain.NewUser) (domain.RegisteredUser, error) {
	id := domain.UserIdPrefix + s.idGenerator()
	var username, fullname string
	err := q.QueryRowContext(ctx, `
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, fullname
    `, id, user.Username(), user.Password(), user.Fullname()).Scan(&id, &username, &fullname)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.RegisteredUser{}, internal_errors.Invariant("username not available")
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return domain.NewRegisteredUser(domain.Payload{"id": id, "username": username, "fullname": fullname})
}

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return internal_errors.Invariant("username not available")
	}
	return nil
}

func (s *Storage) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	return s.userColumn(ctx, "password", username)
}

func (s *Storage) GetIdByUsername(ctx context.Context, username string) (string, error) {
	return s.userColumn(ctx, "id", username)
}

// column is one of a fixed set of names, never user input.
func (s *Storage) userColumn(ctx context.Context, column, username string) (string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var value string
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, column), username).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", internal_errors.Invariant("username not found")
		}
		return "", fmt.Errorf("failed to fetch user %s: %w", column, err)
	}
	return value, nil
}

var (
	_ domain.ThreadRepository  = (*Storage)(nil)
	_ domain.CommentRepository = (*Storage)(nil)
	_ domain.UserRepository    = (*Storage)(nil)
)
