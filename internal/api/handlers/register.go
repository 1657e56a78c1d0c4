// internal/api/handlers/register.go
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mikus2604/miniblog-backend/internal/api/httpx"
	"github.com/mikus2604/miniblog-backend/internal/api/validate"
	"github.com/mikus2604/miniblog-backend/internal/metrics"
	"github.com/mikus2604/miniblog-backend/internal/middleware"
	"github.com/mikus2604/miniblog-backend/internal/models"
	"github.com/mikus2604/miniblog-backend/internal/repository"
)

type UserRegistrar interface {
	Register(ctx context.Context, username, email, password string) (models.User, error)
}

type UserHandler struct {
	svc UserRegistrar
}

func NewUserHandler(svc UserRegistrar) *UserHandler {
	return &UserHandler{svc: svc}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	u, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.writeRegisterError(w, r, err)
		return
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	httpx.WriteJSON(w, http.StatusCreated, u)
}

// writeRegisterError picks the status per error kind: validation and
// duplicates are the client's fault, storage trouble is ours and never leaks
// its message to the response.
func (h *UserHandler) writeRegisterError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validate.Errs
	var dup *repository.DuplicateError
	switch {
	case errors.As(err, &verrs):
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "invalid registration request", verrs)
	case errors.As(err, &dup):
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		httpx.WriteError(w, http.StatusBadRequest, "duplicate_"+dup.Field, dup.Error(), nil)
	case errors.Is(err, repository.ErrTimeout):
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		slog.Error("register store timeout", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteError(w, http.StatusServiceUnavailable, "storage_timeout", "storage timeout", nil)
	case errors.Is(err, repository.ErrUnavailable):
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		slog.Error("register store unavailable", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteError(w, http.StatusServiceUnavailable, "storage_unavailable", "storage unavailable", nil)
	default:
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		slog.Error("register failed", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
