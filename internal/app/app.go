package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/xw1nchester/stylequiz-backend/internal/auth"
	authhandler "github.com/xw1nchester/stylequiz-backend/internal/auth/handler"
	"github.com/xw1nchester/stylequiz-backend/internal/auth/password"
	authservice "github.com/xw1nchester/stylequiz-backend/internal/auth/service"
	"github.com/xw1nchester/stylequiz-backend/internal/auth/token"
	branddb "github.com/xw1nchester/stylequiz-backend/internal/brand/db"
	brandhandler "github.com/xw1nchester/stylequiz-backend/internal/brand/handler"
	brandservice "github.com/xw1nchester/stylequiz-backend/internal/brand/service"
	"github.com/xw1nchester/stylequiz-backend/internal/config"
	leaddb "github.com/xw1nchester/stylequiz-backend/internal/lead/db"
	leadhandler "github.com/xw1nchester/stylequiz-backend/internal/lead/handler"
	leadservice "github.com/xw1nchester/stylequiz-backend/internal/lead/service"
	"github.com/xw1nchester/stylequiz-backend/internal/notify/telegram"
	"github.com/xw1nchester/stylequiz-backend/internal/ratelimit"
	quizdb "github.com/xw1nchester/stylequiz-backend/internal/quiz/db"
	quizhandler "github.com/xw1nchester/stylequiz-backend/internal/quiz/handler"
	quizservice "github.com/xw1nchester/stylequiz-backend/internal/quiz/service"
	slotdb "github.com/xw1nchester/stylequiz-backend/internal/slot/db"
	slothandler "github.com/xw1nchester/stylequiz-backend/internal/slot/handler"
	slotservice "github.com/xw1nchester/stylequiz-backend/internal/slot/service"
	minioclient "github.com/xw1nchester/stylequiz-backend/pkg/client/minio"
	pgclient "github.com/xw1nchester/stylequiz-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/stylequiz-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/xw1nchester/stylequiz-backend/docs"
)

type App struct {
	HTTPServer *http.Server
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	pgClient, err := pgclient.NewClient(context.TODO(), cfg.PostgreSQL)
	if err != nil {
		log.Fatal(err.Error())
	}

	minioClient, err := minioclient.New(minioclient.Config{
		Endpoint:        cfg.Minio.Endpoint,
		AccessKeyID:     cfg.Minio.AccessKeyID,
		SecretAccessKey: cfg.Minio.SecretAccessKey,
		UseSSL:          cfg.Minio.UseSSL,
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	router := chi.NewRouter()

	router.Use(
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		searchLimiter := ratelimit.Middleware(
			ratelimit.New(cfg.RateLimit.SearchPerSecond, time.Second), log)
		quizLimiter := ratelimit.Middleware(
			ratelimit.New(cfg.RateLimit.QuizPerMinute, time.Minute), log)
		submitLimiter := ratelimit.Middleware(
			ratelimit.New(cfg.RateLimit.SubmitPerMinute, time.Minute), log)

		tokenManager := token.NewManager(cfg.Admin)

		adminMiddleware := auth.NewAdminMiddleware(log, tokenManager)

		passwordManager := password.New(log)

		authService := authservice.New(cfg.Admin, tokenManager, passwordManager, log)

		log.Info("register auth handlers")

		authhandler.New(authService, cfg.Admin.TokenTTL, log).Register(r)

		brandRepository := branddb.New(pgClient, log)

		brandService := brandservice.New(
			brandRepository,
			brandservice.Config{
				DefaultRegion: cfg.Catalog.DefaultRegion,
				SearchTTL:     cfg.Catalog.SearchCacheTTL,
				PopularTTL:    cfg.Catalog.PopularCacheTTL,
			},
			log,
		)

		if err := brandService.Reload(context.TODO()); err != nil {
			log.Fatal("failed to load brand catalog", zap.Error(err))
		}

		log.Info("register brand handlers")

		brandhandler.New(brandService, searchLimiter, adminMiddleware, log).Register(r)

		txManager := pgtx.NewPgManager(pgClient)

		quizRepository := quizdb.New(pgClient, log)

		quizService := quizservice.New(quizRepository, brandService, txManager, log)

		log.Info("register quiz handlers")

		quizhandler.New(quizService, quizLimiter, log).Register(r)

		notifier := telegram.New(telegram.Config{
			Token:  cfg.Telegram.Token,
			ChatID: cfg.Telegram.ChatID,
		}, log)

		leadRepository := leaddb.New(pgClient, log)

		leadService := leadservice.New(leadRepository, notifier, log)

		log.Info("register lead handlers")

		leadhandler.New(leadService, submitLimiter, log).Register(r)

		slotRepository := slotdb.New(pgClient, log)

		slotService := slotservice.New(slotRepository, minioClient, cfg.Minio, log)

		log.Info("register slot handlers")

		slothandler.New(slotService, adminMiddleware, log).Register(r)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
	}
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("failed to start server")
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.HTTPServer.Shutdown(ctx)
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
