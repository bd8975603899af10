// Package apply реализует HTTP-обработчик отправки отклика на вакансию.
//
// Каждый отклик немедленно получает статус "rejected" со случайной причиной
// отказа. Повторный отклик на ту же вакансию запрещён.
package apply

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/abandonment-garden/internal/http/middlewarectx"
	"github.com/magabrotheeeer/abandonment-garden/internal/http/response"
	"github.com/magabrotheeeer/abandonment-garden/internal/lib/sl"
	"github.com/magabrotheeeer/abandonment-garden/internal/models"
	"github.com/magabrotheeeer/abandonment-garden/internal/services/ledger"
)

// Service описывает интерфейс бизнес-логики откликов.
type Service interface {
	Apply(ctx context.Context, userID, jobID string) (*models.Application, error)
}

// Handler обрабатывает запросы на отправку отклика.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на отправку отклика.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.application.apply"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || userID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("user identification missing"))
		return
	}

	jobID := chi.URLParam(r, "id")

	application, err := h.service.Apply(r.Context(), userID, jobID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrNotAuthenticated):
			log.Error("account not found", slog.String("userid", userID))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
		case errors.Is(err, ledger.ErrAlreadyApplied):
			log.Error("already applied", slog.String("jobid", jobID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("you have already applied to this job"))
		case errors.Is(err, ledger.ErrJobNotFound):
			log.Error("job not found", slog.String("jobid", jobID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("job not found"))
		default:
			log.Error("failed to apply", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not submit application"))
		}
		return
	}

	log.Info("application submitted",
		slog.String("jobid", jobID),
		slog.String("status", application.Status))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"application": application,
	}))
}
