package repository

import (
	"context"

	"github.com/mikus2604/miniblog-backend/internal/models"
)

type Users interface {
	// Create inserts one user row; uniqueness of username and email is
	// enforced by the store, not by a prior lookup.
	Create(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
}
