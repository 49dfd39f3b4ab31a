package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shelter-dashboard/pkg/cache"
	"shelter-dashboard/pkg/config"
	"shelter-dashboard/pkg/httpclient"
	"shelter-dashboard/pkg/jwt"
	"shelter-dashboard/pkg/logger"
	"shelter-dashboard/pkg/middleware"
	"shelter-dashboard/pkg/s3"
	dashboardHTTP "shelter-dashboard/services/dashboard/internal/controller/http"
	"shelter-dashboard/services/dashboard/internal/repo"
	"shelter-dashboard/services/dashboard/internal/repo/remote"
	"shelter-dashboard/services/dashboard/internal/repo/stub"
	"shelter-dashboard/services/dashboard/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "shelter-dashboard/services/dashboard/docs" // Swagger docs
)

// StubBackendURL as ADMIN_API_URL runs the dashboard against the in-memory backend.
const StubBackendURL = "stub"

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	backend     repo.Backend
	thumbnails  usecase.ThumbnailStore
	redisClient *redis.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithLevel(cfg.LogLevel)

	var backend repo.Backend
	if cfg.AdminAPIURL == StubBackendURL {
		log.Warn("Using in-memory admin API stub")
		backend = stub.NewSeeded()
	} else {
		backend = remote.New(cfg.AdminAPIURL, httpclient.Config{Timeout: cfg.AdminAPITimeout}, log)
	}

	var thumbnails usecase.ThumbnailStore = usecase.DataURLThumbnails{}
	if cfg.S3Enabled() {
		s3Client, err := s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			return nil, err
		}
		thumbnails = usecase.NewS3Thumbnails(s3Client)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		backend:     backend,
		thumbnails:  thumbnails,
		redisClient: redisClient,
		jwtService:  jwt.NewService(cfg.JWTSecret),
	}, nil
}

func (a *App) Router() *gin.Engine {
	opts := usecase.SessionOptions{
		Page:              a.cfg.DashboardPage,
		PageSize:          a.cfg.DashboardPageSize,
		MaxThumbnailBytes: a.cfg.ThumbnailMaxBytes,
	}
	registry := usecase.NewRegistry(func(reviewerID string) *usecase.Session {
		return usecase.NewSession(reviewerID, a.backend, a.thumbnails, a.log, opts)
	})
	dashboardUseCase := usecase.NewDashboardUseCase(registry)
	dashboardHandler := dashboardHTTP.NewDashboardHandler(dashboardUseCase, a.log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(a.log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1/dashboard")
	api.Use(middleware.AuthMiddleware(a.jwtService))
	api.Use(middleware.RequireRole(jwt.RoleReviewer))
	api.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitPerMinute, time.Minute))
	dashboardHandler.Register(api)

	return r
}

func (a *App) Run() error {
	gin.SetMode(gin.ReleaseMode)

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: a.Router(),
	}

	go func() {
		a.log.Info("Dashboard service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down dashboard service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Dashboard service exited")
	a.log.Sync()
	return nil
}
