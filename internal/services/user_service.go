package services

import (
	"context"
	"strings"
	"time"

	"github.com/mikus2604/miniblog-backend/internal/api/validate"
	"github.com/mikus2604/miniblog-backend/internal/auth"
	"github.com/mikus2604/miniblog-backend/internal/config"
	"github.com/mikus2604/miniblog-backend/internal/models"
	repo "github.com/mikus2604/miniblog-backend/internal/repository"
	"github.com/mikus2604/miniblog-backend/internal/worker"
)

type UserService struct {
	r            repo.Users
	wp           *worker.Pool
	storeTimeout time.Duration
}

func NewUserService(r repo.Users, wp *worker.Pool, cfg config.Config) *UserService {
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = 3 * time.Second
	}
	return &UserService{r: r, wp: wp, storeTimeout: cfg.StoreTimeout}
}

// Register hashes the credential and writes exactly one row; empty fields are
// rejected before any hashing happens. Duplicates surface as the store's
// DuplicateError, untouched.
func (s *UserService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if errs := validate.Collect(
		validate.Required("username", username),
		validate.Required("email", email),
		validate.Required("password", password),
	); len(errs) > 0 {
		return models.User{}, errs
	}

	hash, err := s.hashPassword(ctx, password)
	if err != nil {
		return models.User{}, err
	}

	cctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.r.Create(cctx, username, email, hash)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (models.User, error) {
	cctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.r.GetByUsername(cctx, username)
}

// hashPassword runs bcrypt on the worker pool; the caller's context bounds
// the wait.
func (s *UserService) hashPassword(ctx context.Context, password string) (string, error) {
	type result struct {
		hash string
		err  error
	}
	ch := make(chan result, 1)
	s.wp.Submit(func() {
		h, err := auth.HashPassword(password)
		ch <- result{hash: h, err: err}
	})
	select {
	case res := <-ch:
		return res.hash, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
