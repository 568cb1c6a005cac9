package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"github.com/heritagehub/apiserver/config"
	"github.com/heritagehub/apiserver/internal/db"
	apihandlers "github.com/heritagehub/apiserver/internal/handlers"
	"github.com/heritagehub/apiserver/internal/metrics"
	"github.com/heritagehub/apiserver/internal/services"
	"github.com/heritagehub/apiserver/internal/storage"
	"github.com/heritagehub/apiserver/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	monumentRepo := store.NewMonumentRepository(dbConn)
	reviewRepo := store.NewReviewRepository(dbConn)
	articleRepo := store.NewArticleRepository(dbConn)
	timelineRepo := store.NewTimelineRepository(dbConn)
	tourRepo := store.NewTourRepository(dbConn)
	favoriteRepo := store.NewFavoriteRepository(dbConn)

	userService := services.NewUserService(userRepo)
	monumentService := services.NewMonumentService(monumentRepo)
	reviewService := services.NewReviewService(reviewRepo)
	articleService := services.NewArticleService(articleRepo)
	timelineService := services.NewTimelineService(timelineRepo)
	tourService := services.NewTourService(tourRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo)

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		_ = dbConn.Close()
		return nil, errors.New("JWT_SECRET is required")
	}

	mediaStorage, err := newMediaStorage(ctx, cfg)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	appMetrics := metrics.New()
	authMiddleware := apihandlers.RequireAuth(jwtSecret)
	authorizer := apihandlers.NewAuthorizer(userService)

	tourHandler := apihandlers.NewTourHandler(tourService, appMetrics)
	favoriteHandler := apihandlers.NewFavoriteHandler(favoriteService, appMetrics)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", apihandlers.Healthz)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			apihandlers.AuthRouter(r, userService, jwtSecret, appMetrics)
		})
		r.Route("/monuments", func(r chi.Router) {
			apihandlers.MonumentRouter(
				r,
				monumentService,
				reviewService,
				timelineService,
				tourHandler,
				authMiddleware,
				authorizer,
			)
		})
		r.Route("/articles", func(r chi.Router) {
			apihandlers.ArticleRouter(r, articleService, authMiddleware, authorizer)
		})
		r.Route("/tours", func(r chi.Router) {
			apihandlers.TourRouter(r, tourService, appMetrics, authMiddleware, authorizer)
		})
		r.Route("/favorites", func(r chi.Router) {
			apihandlers.FavoriteRouter(r, favoriteService, appMetrics, authMiddleware)
		})
		r.Route("/users", func(r chi.Router) {
			apihandlers.UserRouter(r, userService, tourHandler, favoriteHandler, authMiddleware, authorizer)
		})
		r.Route("/uploads", func(r chi.Router) {
			apihandlers.UploadRouter(r, mediaStorage, cfg.Storage.PublicBaseURL, authMiddleware, authorizer)
		})
	})

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
	)(router)

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

func newMediaStorage(ctx context.Context, cfg config.Config) (*storage.Storage, error) {
	var backend storage.Backend
	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Backend)) {
	case "gcs":
		gcsBackend, err := storage.NewGCSBackend(ctx, cfg.GCS)
		if err != nil {
			return nil, err
		}
		backend = gcsBackend
	default:
		minioBackend, err := storage.NewMinioBackend(cfg.Minio)
		if err != nil {
			return nil, err
		}
		backend = minioBackend
	}

	mediaStorage := storage.NewStorage(backend)
	if err := mediaStorage.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return mediaStorage, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	log.Info().Str("addr", s.httpServer.Addr).Msg("server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
