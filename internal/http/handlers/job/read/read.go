// Package read реализует HTTP-обработчик получения конкретной вакансии по ID.
//
// Handler извлекает ID из URL-параметров и возвращает данные вакансии
// в JSON-формате. Если вакансия не найдена, возвращает 404.
package read

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/abandonment-garden/internal/http/response"
	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

// Service описывает интерфейс каталога вакансий.
type Service interface {
	Ready() bool
	GetByID(id string) *models.Job
}

// Handler обрабатывает запросы на получение вакансии по идентификатору.
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

// ServeHTTP обрабатывает HTTP-запрос на получение вакансии по ID.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.job.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if !h.service.Ready() {
		log.Error("job catalog is not ready")
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("job catalog is not ready"))
		return
	}

	id := chi.URLParam(r, "id")
	job := h.service.GetByID(id)
	if job == nil {
		log.Error("job not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("job not found"))
		return
	}

	log.Info("job read", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"job": job,
	}))
}
