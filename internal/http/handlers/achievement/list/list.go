// Package list реализует HTTP-обработчик получения достижений пользователя.
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

// Service описывает интерфейс бизнес-логики достижений.
type Service interface {
	Achievements(ctx context.Context, userID string) ([]models.Achievement, error)
}

// Handler обрабатывает запросы на получение достижений.
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

// ServeHTTP обрабатывает HTTP-запрос на получение достижений.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.achievement.list"

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

	achievements, err := h.service.Achievements(r.Context(), userID)
	if err != nil {
		log.Error("failed to list achievements", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list achievements"))
		return
	}

	log.Info("achievements listed", slog.Int("count", len(achievements)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"achievements": achievements,
	}))
}
