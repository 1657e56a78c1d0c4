package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikus2604/miniblog-backend/internal/repository"
)

func TestStoreErrorDuplicates(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantField  string
	}{
		{"username constraint", "users_username_key", "username"},
		{"email constraint", "users_email_key", "email"},
		{"unknown constraint", "users_pkey", "user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &pgconn.PgError{Code: "23505", ConstraintName: tt.constraint}
			err := storeError(in)

			var dup *repository.DuplicateError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, tt.wantField, dup.Field)
			assert.Equal(t, tt.wantField+" already exists", dup.Error())
		})
	}
}

func TestStoreErrorTimeout(t *testing.T) {
	assert.ErrorIs(t, storeError(context.DeadlineExceeded), repository.ErrTimeout)
	// pgx wraps the context error when a query deadline fires
	wrapped := fmt.Errorf("timeout: %w", context.DeadlineExceeded)
	assert.ErrorIs(t, storeError(wrapped), repository.ErrTimeout)
}

func TestStoreErrorPassesThroughServerErrors(t *testing.T) {
	in := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
	err := storeError(in)

	assert.NotErrorIs(t, err, repository.ErrUnavailable)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "42P01", pgErr.Code)
}

func TestStoreErrorUnavailable(t *testing.T) {
	err := storeError(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))
	assert.ErrorIs(t, err, repository.ErrUnavailable)
}

func TestStoreErrorNil(t *testing.T) {
	assert.NoError(t, storeError(nil))
}
