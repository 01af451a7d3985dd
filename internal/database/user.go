// internal/database/user.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openuno/uno-service/internal/auth"
	"github.com/openuno/uno-service/internal/engine"
	"github.com/openuno/uno-service/internal/models"
)

// UserStore is the pgx adapter behind engine.PlayerStore, plus the account
// plumbing the handlers use directly.
type UserStore struct {
	Pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{Pool: pool}
}

func (s *UserStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	hash, err := auth.CreateHash(user.Password, auth.Params)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hash

	q := `INSERT INTO users (id, email, password, username) VALUES ($1, $2, $3, $4)`
	err = pgx.BeginTxFunc(ctx, s.Pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, execErr := tx.Exec(ctx, q, user.ID, user.Email, user.Password, user.Username)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	q := `SELECT id, email, password, username FROM users WHERE email=$1`
	err := s.Pool.QueryRow(ctx, q, email).Scan(&u.ID, &u.Email, &u.Password, &u.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, engine.ErrNoRow
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetPlayer implements engine.PlayerStore. The password hash is not loaded.
func (s *UserStore) GetPlayer(ctx context.Context, playerID uuid.UUID) (*models.User, error) {
	var u models.User
	q := `SELECT id, email, username FROM users WHERE id=$1`
	err := s.Pool.QueryRow(ctx, q, playerID).Scan(&u.ID, &u.Email, &u.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, engine.ErrNoRow
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// AuthenticateUser verifies credentials and mints a JWT.
func (s *UserStore) AuthenticateUser(ctx context.Context, email, password string) (string, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("user not found or db error: %w", err)
	}

	match, err := auth.ComparePasswordAndHash(password, user.Password)
	if err != nil || !match {
		return "", fmt.Errorf("invalid credentials")
	}

	token, err := auth.CreateJWT(user.ID.String())
	if err != nil {
		return "", fmt.Errorf("failed to create jwt: %w", err)
	}

	return token, nil
}
