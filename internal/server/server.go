package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/persist"
	"taskboard/internal/repository"
	"taskboard/internal/session"
	"taskboard/internal/workspace"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Syncer *persist.Syncer
	Config *config.Config

	Workspaces *workspace.Registry
}

func Init(cfg *config.Config) (*Server, error) {
	setupLogging(cfg.LogLevel)

	if cfg.MigrationsEnabled {
		version, err := database.Migrate(cfg.MigrationURL())
		if err != nil {
			return nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
		}
		log.Infof("✅ Database schema at version %d", version)
	}

	// Setup GORM
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{
		Logger: logger.New(log.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Info("✅ Connected to database")

	// Setup Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("❌ invalid REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("❌ failed to connect to Redis: %w", err)
	}
	log.Info("✅ Connected to Redis")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	syncer := persist.NewSyncer(
		persist.RepositoryWriter{Boards: boardRepo, Todos: todoRepo},
		log.StandardLogger(),
		persist.Options{Buffer: cfg.SyncBuffer, Timeout: cfg.SyncTimeout},
	)
	workspaces := workspace.NewRegistry(boardRepo, todoRepo, syncer)
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	sessions := session.NewStore(rdb, cfg.SessionTTL)

	// Initialize handlers
	handlers := Handlers{
		Users:  handler.NewUserHandler(userRepo, tokens, sessions, workspaces),
		Boards: handler.NewBoardHandler(workspaces),
		Todos:  handler.NewTodoHandler(workspaces),
		Drag:   handler.NewDragHandler(workspaces),
	}

	return &Server{
		Engine: NewRouter(handlers, middleware.JWTAuthMiddleware(tokens, sessions)),
		DB:     db,
		Redis:  rdb,
		Syncer: syncer,
		Config: cfg,

		Workspaces: workspaces,
	}, nil
}

func setupLogging(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("⚠️  Unknown LOG_LEVEL %q, using info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	// Requests are done; flush reorders still queued for the database.
	log.Infof("💾 Flushing pending reorders for %d workspaces", s.Workspaces.Len())
	s.Syncer.Close()
	if err := s.Redis.Close(); err != nil {
		log.WithError(err).Warn("closing redis")
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("✅ Server exited properly")
}
