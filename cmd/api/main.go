package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mentorhub/mentorhub-api/config"
	"github.com/mentorhub/mentorhub-api/internal/cache"
	"github.com/mentorhub/mentorhub-api/internal/database/postgres"
	"github.com/mentorhub/mentorhub-api/internal/handlers"
	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/notify"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/internal/services"
	"github.com/mentorhub/mentorhub-api/pkg/db"
	"github.com/mentorhub/mentorhub-api/pkg/httpclient"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/meeting"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"github.com/mentorhub/mentorhub-api/pkg/profiling"
	"github.com/mentorhub/mentorhub-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerAPIRoutes registers the v1 API routes for a given router group.
func registerAPIRoutes(
	group *gin.RouterGroup,
	tokenManager *jwt.TokenManager,
	generalRateLimiter, bookingRateLimiter *middleware.RateLimiter,
	bookingHandler *handlers.BookingHandler,
	sessionHandler *handlers.SessionHandler,
	requestHandler *handlers.RequestHandler,
	matchingHandler *handlers.MatchingHandler,
	statsHandler *handlers.StatsHandler,
) {
	// Public routes
	group.GET("/mentors/:id/stats", generalRateLimiter.Middleware(), statsHandler.GetMentorStats)

	// Authenticated routes
	authed := group.Group("")
	authed.Use(middleware.UserSessionMiddleware(tokenManager))

	authed.POST("/bookings", bookingRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), bookingHandler.Book)

	authed.GET("/sessions", generalRateLimiter.Middleware(), sessionHandler.List)
	authed.POST("/sessions/:id/feedback", generalRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), sessionHandler.SubmitFeedback)
	authed.POST("/sessions/:id/cancel", generalRateLimiter.Middleware(), sessionHandler.Cancel)

	authed.POST("/requests", bookingRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), requestHandler.Create)
	authed.GET("/requests", generalRateLimiter.Middleware(), requestHandler.List)
	authed.POST("/requests/:id/respond", generalRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), requestHandler.Respond)
	authed.POST("/requests/:id/cancel", generalRateLimiter.Middleware(), requestHandler.Cancel)

	authed.GET("/matches", generalRateLimiter.Middleware(), matchingHandler.FindMatches)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting MentorHub API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Initialize continuous profiling (no-op when disabled)
	profilerStop, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer profilerStop()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize PostgreSQL connection pool
	pool, err := db.NewPool(context.Background(), db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer pool.Close()

	// NOTE: Database migrations are run separately via the migrate command
	// before the app starts: ./migrate or docker-compose run migrate

	dbClient := postgres.NewClient(pool)

	// Initialize profile cache and warm it synchronously so the container is
	// only marked healthy once matching can be served.
	var profileCache cache.ProfileCacheInterface
	cacheReadyFunc := func() bool { return true }
	if cfg.Cache.DisableMentorsCache {
		logger.Warn("Profile cache is DISABLED - reading from database on every match query")
	} else {
		warmCache := cache.NewProfileCache(dbClient, cfg.Cache.MentorTTLSeconds)
		if err := warmCache.Initialize(); err != nil {
			logger.Fatal("Failed to initialize profile cache", zap.Error(err))
		}
		profileCache = warmCache
		cacheReadyFunc = warmCache.IsReady
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(dbClient, profileCache)
	sessionRepo := repository.NewSessionRepository(dbClient)
	requestRepo := repository.NewRequestRepository(dbClient)
	interestRepo := repository.NewInterestRepository(dbClient)

	// Initialize outbound notification delivery
	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.Notify.WebhookURL, httpclient.NewStandardClient())
	} else {
		logger.Warn("NOTIFY_WEBHOOK_URL not configured - notifications are dropped")
	}

	linkProvider := meeting.NewTokenLinkProvider(cfg.Meeting.LinkBaseURL)
	tokenManager := jwt.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.TTLHours)

	// Initialize services
	bookingService := services.NewBookingService(profileRepo, sessionRepo, linkProvider, notifier)
	sessionService := services.NewSessionService(sessionRepo, profileRepo, notifier)
	requestService := services.NewRequestService(requestRepo, profileRepo, notifier)
	matchingService := services.NewMatchingService(profileRepo, interestRepo)
	statsService := services.NewStatsService(profileRepo, sessionRepo)

	// Initialize handlers
	bookingHandler := handlers.NewBookingHandler(bookingService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	requestHandler := handlers.NewRequestHandler(requestService)
	matchingHandler := handlers.NewMatchingHandler(matchingService)
	statsHandler := handlers.NewStatsHandler(statsService)
	healthHandler := handlers.NewHealthHandler(pool.Ping, cacheReadyFunc)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName)) // OpenTelemetry tracing
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS configuration - only allow specific origins
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters to prevent abuse
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	bookingRateLimiter := middleware.NewRateLimiter(5, 10)    // 5 req/sec, burst of 10 (write-heavy endpoints)

	// Utility endpoints (not versioned - operational endpoints)
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	registerAPIRoutes(v1, tokenManager, generalRateLimiter, bookingRateLimiter,
		bookingHandler, sessionHandler, requestHandler, matchingHandler, statsHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
