// Package read реализует HTTP-обработчик получения текущей темы оформления.
//
// Если тема ещё не сохранялась, возвращается тема по умолчанию.
package read

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/abandonment-garden/internal/http/response"
	"github.com/magabrotheeeer/abandonment-garden/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики темы оформления.
type Service interface {
	Get() (string, error)
}

// Handler обрабатывает запросы на получение темы оформления.
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

// ServeHTTP обрабатывает HTTP-запрос на получение темы оформления.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.theme.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	theme, err := h.service.Get()
	if err != nil {
		log.Error("failed to read theme", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read theme"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"theme": theme,
	}))
}
