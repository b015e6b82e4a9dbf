package wire

import (
	"context"
	"net/http"
	"time"

	"film-recommendations/internal/adaptor"
	"film-recommendations/internal/data/client"
	"film-recommendations/internal/data/repository"
	"film-recommendations/internal/usecase"
	"film-recommendations/pkg/apperror"
	"film-recommendations/pkg/middleware"
	"film-recommendations/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired HTTP application
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router
func Wiring(repo *repository.Repository, reviews client.ReviewClient, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, reviews, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	r.NotFound(unknownRoute)
	r.MethodNotAllowed(unknownRoute)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(config.RateLimit.Requests, config.RateLimit.Window))

		wireRecommendation(r, handler.Recommendation)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := repo.Ping(ctx); err != nil {
			logger.Warn("Readiness check failed", zap.Error(err))
			utils.ResponseServiceUnavailable(w, "Catalog unavailable")
			return
		}
		utils.ResponseSuccess(w, "ready", nil)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func unknownRoute(w http.ResponseWriter, r *http.Request) {
	kind := apperror.KindUnknownRoute
	utils.ResponseError(w, kind.Status(), "Route "+r.Method+" "+r.URL.Path+" not found", string(kind))
}
