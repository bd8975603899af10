package abandonmentgarden

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/abandonment-garden/internal/cache"
	"github.com/magabrotheeeer/abandonment-garden/internal/config"
	"github.com/magabrotheeeer/abandonment-garden/internal/kvstore"
	"github.com/magabrotheeeer/abandonment-garden/internal/lib/jwt"
	"github.com/magabrotheeeer/abandonment-garden/internal/lib/sl"
	"github.com/magabrotheeeer/abandonment-garden/internal/rabbitmq"
	authservice "github.com/magabrotheeeer/abandonment-garden/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/abandonment-garden/internal/services/catalog"
	ledgerservice "github.com/magabrotheeeer/abandonment-garden/internal/services/ledger"
	themeservice "github.com/magabrotheeeer/abandonment-garden/internal/services/theme"
	"github.com/magabrotheeeer/abandonment-garden/internal/storage/accounts"
	"github.com/magabrotheeeer/abandonment-garden/internal/storage/session"
)

// App связывает HTTP сервер и все зависимости основного приложения.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	kv      *kvstore.Store
	catalog *catalogservice.Service
	conn    *amqp.Connection
	ch      *amqp.Channel
}

// New собирает приложение: хранилище, кэш, брокер, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	kv, err := kvstore.Open(cfg.StorageFilePath, logger)
	if err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	accountsStore := accounts.New(kv)
	sessionStore := session.New(kv)
	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	notifier := rabbitmq.NewAchievementNotifier(ch)

	catalogService := catalogservice.New(cfg.JobsSource, http.DefaultClient, cacheRedis, logger)
	authService := authservice.New(accountsStore, sessionStore, jwtMaker, logger)
	ledgerService := ledgerservice.New(accountsStore, sessionStore, catalogService, notifier, logger)
	themeService := themeservice.New(kv)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, jwtMaker, authService, catalogService, ledgerService, themeService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		kv:      kv,
		catalog: catalogService,
		conn:    conn,
		ch:      ch,
	}, nil
}

// Run запускает загрузку каталога и HTTP сервер, завершаясь по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	go func() {
		if err := a.catalog.Load(ctx); err != nil {
			a.logger.Error("failed to load job catalog", sl.Err(err))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if chErr := a.ch.Close(); chErr != nil {
			a.logger.Error("failed to close channel", sl.Err(chErr))
		}
		if connErr := a.conn.Close(); connErr != nil {
			a.logger.Error("failed to close connection", sl.Err(connErr))
		}
		return err
	}
}
