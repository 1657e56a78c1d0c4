package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/mikus2604/miniblog-backend/internal/repository"
)

type Repositories struct {
	Users repo.Users
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users: NewUsers(pool),
	}
}
