// Package savedlist реализует HTTP-обработчик получения сохранённых вакансий.
//
// Вакансии, исчезнувшие из каталога после сохранения, в список не попадают.
package savedlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/abandonment-garden/internal/http/middlewarectx"
	"github.com/magabrotheeeer/abandonment-garden/internal/http/response"
	"github.com/magabrotheeeer/abandonment-garden/internal/lib/sl"
	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

// Service описывает интерфейс бизнес-логики сохранённых вакансий.
type Service interface {
	SavedJobs(ctx context.Context, userID string) ([]models.Job, error)
}

// Handler обрабатывает запросы на получение сохранённых вакансий.
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

// ServeHTTP обрабатывает HTTP-запрос на получение сохранённых вакансий.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.job.savedlist"

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

	jobs, err := h.service.SavedJobs(r.Context(), userID)
	if err != nil {
		log.Error("failed to list saved jobs", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list saved jobs"))
		return
	}

	log.Info("saved jobs listed", slog.Int("count", len(jobs)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"jobs": jobs,
	}))
}
