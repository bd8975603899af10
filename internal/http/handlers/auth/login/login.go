// Package login реализует HTTP-обработчик входа пользователя.
//
// Handler декодирует тело запроса, валидирует поля и вызывает бизнес-логику
// аутентификации. Текст ошибки одинаков для неизвестной почты и неверного
// пароля, чтобы не раскрывать, существует ли аккаунт.
package login

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/abandonment-garden/internal/http/response"
	"github.com/magabrotheeeer/abandonment-garden/internal/lib/sl"
	"github.com/magabrotheeeer/abandonment-garden/internal/models"
	"github.com/magabrotheeeer/abandonment-garden/internal/services/auth"
)

// Handler обрабатывает запросы на вход пользователя.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP обрабатывает HTTP-запрос на вход.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyLogin
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded")

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, token, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			log.Error("missing credentials")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("email and password are required"))
		case errors.Is(err, auth.ErrInvalidCredentials):
			log.Error("invalid credentials", slog.String("email", req.Email))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid email or password"))
		default:
			log.Error("login failed", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to login user"))
		}
		return
	}

	log.Info("user logged in", slog.String("email", user.Email))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user":  user,
		"token": token,
	}))
}
