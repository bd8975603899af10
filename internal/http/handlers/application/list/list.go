// Package list реализует HTTP-обработчик получения истории откликов пользователя.
package list

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

// Service описывает интерфейс бизнес-логики откликов.
type Service interface {
	Applications(ctx context.Context, userID string) ([]models.Application, error)
}

// Handler обрабатывает запросы на получение истории откликов.
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

// ServeHTTP обрабатывает HTTP-запрос на получение истории откликов.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.application.list"

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

	applications, err := h.service.Applications(r.Context(), userID)
	if err != nil {
		log.Error("failed to list applications", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list applications"))
		return
	}

	log.Info("applications listed", slog.Int("count", len(applications)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"applications": applications,
	}))
}
