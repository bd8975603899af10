// Package unsave реализует HTTP-обработчик удаления вакансии из сохранённых.
//
// Удаление несохранённой вакансии не считается ошибкой: обработчик
// возвращает removed=false.
package unsave

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/abandonment-garden/internal/http/middlewarectx"
	"github.com/magabrotheeeer/abandonment-garden/internal/http/response"
	"github.com/magabrotheeeer/abandonment-garden/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики сохранённых вакансий.
type Service interface {
	UnsaveJob(ctx context.Context, userID, jobID string) (bool, error)
}

// Handler обрабатывает запросы на удаление вакансии из сохранённых.
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

// ServeHTTP обрабатывает HTTP-запрос на удаление вакансии из сохранённых.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.job.unsave"

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

	removed, err := h.service.UnsaveJob(r.Context(), userID, jobID)
	if err != nil {
		log.Error("failed to unsave job", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not unsave job"))
		return
	}

	log.Info("job unsaved", slog.String("jobid", jobID), slog.Bool("removed", removed))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"removed": removed,
	}))
}
