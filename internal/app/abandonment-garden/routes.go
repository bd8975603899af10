// Package abandonmentgarden предоставляет маршруты для основного приложения.
package abandonmentgarden

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	achievementlist "github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/achievement/list"
	"github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/application/apply"
	applicationlist "github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/application/list"
	"github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/auth/register"
	joblist "github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/job/list"
	jobread "github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/job/read"
	"github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/job/save"
	"github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/job/savedlist"
	"github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/job/unsave"
	themeread "github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/theme/read"
	themeupdate "github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/theme/update"
	userread "github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/user/read"
	userupdate "github.com/magabrotheeeer/abandonment-garden/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/abandonment-garden/internal/http/middlewarectx"
	"github.com/magabrotheeeer/abandonment-garden/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/abandonment-garden/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/abandonment-garden/internal/services/catalog"
	ledgerservice "github.com/magabrotheeeer/abandonment-garden/internal/services/ledger"
	themeservice "github.com/magabrotheeeer/abandonment-garden/internal/services/theme"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker,
	authService *authservice.Service, catalogService *catalogservice.Service,
	ledgerService *ledgerservice.Service, themeService *themeservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/jobs", joblist.New(logger, catalogService).ServeHTTP)
		r.Get("/jobs/{id}", jobread.New(logger, catalogService).ServeHTTP)
		r.Get("/theme", themeread.New(logger, themeService).ServeHTTP)
		r.Put("/theme", themeupdate.New(logger, themeService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/logout", logout.New(logger, authService).ServeHTTP)
			r.Get("/me", userread.New(logger, authService).ServeHTTP)
			r.Put("/me", userupdate.New(logger, authService).ServeHTTP)
			r.Get("/jobs/saved", savedlist.New(logger, ledgerService).ServeHTTP)
			r.Post("/jobs/{id}/save", save.New(logger, ledgerService).ServeHTTP)
			r.Delete("/jobs/{id}/save", unsave.New(logger, ledgerService).ServeHTTP)
			r.Post("/jobs/{id}/apply", apply.New(logger, ledgerService).ServeHTTP)
			r.Get("/applications", applicationlist.New(logger, ledgerService).ServeHTTP)
			r.Get("/achievements", achievementlist.New(logger, ledgerService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
}
