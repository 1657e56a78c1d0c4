// internal/repository/postgres/users_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mikus2604/miniblog-backend/internal/models"
	"github.com/mikus2604/miniblog-backend/internal/repository"
)

type usersRepo struct{ pool *pgxpool.Pool }

func NewUsers(pool *pgxpool.Pool) repository.Users {
	return &usersRepo{pool: pool}
}

// Create inserts and reads back the row in one statement, so the uniqueness
// check and the write cannot race.
func (r *usersRepo) Create(ctx context.Context, username, email, hash string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users(id, username, email, password_hash)
		 VALUES($1,$2,$3,$4)
		 RETURNING id, username, email, password_hash, created_at, updated_at`,
		uuid.NewString(), username, email, hash,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, storeError(err)
	}
	return u, nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE username=$1`, username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, repository.ErrNotFound
		}
		return models.User{}, storeError(err)
	}
	return u, nil
}

// storeError maps driver failures onto the repository error kinds.
// Constraint violations become DuplicateError, elapsed deadlines become
// ErrTimeout, other server-reported errors pass through, and anything
// left (dial/reset failures) counts as ErrUnavailable.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return &repository.DuplicateError{Field: fieldFromConstraint(pgErr.ConstraintName)}
		}
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return repository.ErrTimeout
	}
	return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
}

func fieldFromConstraint(name string) string {
	switch {
	case strings.Contains(name, "username"):
		return "username"
	case strings.Contains(name, "email"):
		return "email"
	}
	return "user"
}
