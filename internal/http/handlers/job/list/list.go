// Package list реализует HTTP-обработчик получения списка вакансий.
//
// Handler поддерживает параметры запроса q (поиск), category (фильтр)
// и sort (сортировка). Поиск и фильтр не комбинируются: применяется
// последний заданный предикат, всегда поверх полного каталога.
// Пока каталог не загружен, обработчик отвечает 503.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/abandonment-garden/internal/http/response"
	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

// Service описывает интерфейс каталога вакансий.
type Service interface {
	Ready() bool
	Filtered() []models.Job
	Search(query string) []models.Job
	FilterByCategory(category string) []models.Job
	Sort(key string) []models.Job
}

// Handler обрабатывает запросы на получение списка вакансий.
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

// ServeHTTP обрабатывает HTTP-запрос на получение списка вакансий.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.job.list"

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

	query := r.URL.Query()

	var jobs []models.Job
	switch {
	case query.Has("q"):
		jobs = h.service.Search(query.Get("q"))
	case query.Has("category"):
		jobs = h.service.FilterByCategory(query.Get("category"))
	default:
		jobs = h.service.Filtered()
	}

	if sortKey := query.Get("sort"); sortKey != "" {
		jobs = h.service.Sort(sortKey)
	}

	log.Info("jobs listed", slog.Int("count", len(jobs)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"jobs": jobs,
	}))
}
