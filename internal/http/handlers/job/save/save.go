// Package save реализует HTTP-обработчик добавления вакансии в сохранённые.
//
// Повторное сохранение той же вакансии не дублирует запись: обработчик
// возвращает 409.
package save

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

// Service описывает интерфейс бизнес-логики сохранения вакансий.
type Service interface {
	SaveJob(ctx context.Context, userID, jobID string) (bool, error)
}

// Handler обрабатывает запросы на сохранение вакансии.
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

// ServeHTTP обрабатывает HTTP-запрос на сохранение вакансии.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.job.save"

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

	saved, err := h.service.SaveJob(r.Context(), userID, jobID)
	if err != nil {
		log.Error("failed to save job", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save job"))
		return
	}
	if !saved {
		log.Info("job already saved", slog.String("jobid", jobID))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("job already saved"))
		return
	}

	log.Info("job saved", slog.String("jobid", jobID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"saved": true,
	}))
}
