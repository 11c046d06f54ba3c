package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"course-api/internal/config"
	"course-api/internal/db"
	apihttp "course-api/internal/http"
	"course-api/internal/repository"
	"course-api/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var (
		userRepo   repository.UserRepository
		courseRepo repository.CourseRepository
	)
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Warn("using in-memory storage; data is lost on shutdown")
		userRepo = repository.NewMemoryUserRepository()
		courseRepo = repository.NewMemoryCourseRepository()
	default:
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		logger.Info("db connected")

		if cfg.DBAutoMigrate {
			if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
				logger.Fatal("db migrate", zap.Error(err))
			}
		}
		userRepo = repository.NewPgUserRepository(pool)
		courseRepo = repository.NewPgCourseRepository(pool)
	}

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	authSvc := service.NewAuthService(userRepo, hasher)
	userSvc := service.NewUserService(logger, userRepo, hasher)
	courseSvc := service.NewCourseService(logger, courseRepo, userRepo)

	userHandler := apihttp.NewUserHandler(logger, userSvc)
	courseHandler := apihttp.NewCourseHandler(logger, courseSvc)
	router := apihttp.NewRouter(logger, authSvc, userHandler, courseHandler, cfg.EnableGlobalErrorLogging)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		logger.Info("starting server", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	grp.Go(func() error {
		<-grpCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	if err := grp.Wait(); err != nil {
		logger.Error("server error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
