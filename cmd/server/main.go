package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-events/config"
	"campus-events/internal/cache"
	"campus-events/internal/database"
	"campus-events/internal/handler"
	"campus-events/internal/media"
	"campus-events/internal/queue"
	"campus-events/internal/repository"
	"campus-events/internal/service"
	"campus-events/internal/session"
	"campus-events/internal/worker"
	"campus-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.SetLevel(cfg.LogLevel)
	defer logger.L.Sync()

	log := logger.WithComponent("server")

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(context.Background(), pool); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	reviewQueue, err := newReviewQueue(cfg.Queue, rdb)
	if err != nil {
		log.Fatal("Failed to initialize review queue", zap.Error(err))
	}

	mediaStore, err := media.NewFileStore(cfg.Media.Dir, cfg.Media.BaseURL, cfg.Media.MaxBytes)
	if err != nil {
		log.Fatal("Failed to initialize media store", zap.Error(err))
	}

	// Repositories
	eventRepo := repository.NewEventRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	reviewLogRepo := repository.NewReviewLogRepository(pool)

	approvedCache := cache.NewRedisApprovedEventsCache(rdb, cfg.Cache.ApprovedEventsTTL)
	sessions := session.NewRedisStore(rdb, cfg.Session.Secret, cfg.Session.TTL)

	// Services
	eventService := service.NewEventService(eventRepo, registrationRepo, approvedCache, reviewQueue)
	adminService := service.NewAdminService(eventRepo, approvedCache, reviewQueue)
	reviewService := service.NewReviewService(reviewLogRepo)
	authService := service.NewAuthService(userRepo, sessions, cfg.Admin)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reviewWorker := worker.NewReviewWorker(reviewService, reviewQueue, cfg.Queue.RetryBackoff)
	if err := reviewWorker.Start(ctx); err != nil {
		log.Fatal("Failed to start review worker", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.RouterDeps{
		EventService:    eventService,
		AdminService:    adminService,
		ReviewService:   reviewService,
		AuthService:     authService,
		MediaStore:      mediaStore,
		MediaDir:        cfg.Media.Dir,
		SubmitPerMinute: cfg.RateLimit.SubmitPerMinute,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
	}).Handler(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      corsHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	reviewWorker.Wait()
}

func newReviewQueue(cfg config.QueueConfig, rdb *redis.Client) (queue.ReviewQueue, error) {
	if cfg.Driver == "memory" {
		return queue.NewMemoryReviewQueue(cfg.BufferSize), nil
	}
	return queue.NewRedisStreamReviewQueue(rdb, cfg.ConsumerID, nil)
}
