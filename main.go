package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/backend/internal/cache"
	"taskboard/backend/internal/config"
	"taskboard/backend/internal/handlers"
	"taskboard/backend/internal/repositories"
	"taskboard/backend/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConfig := &repositories.DatabaseConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Name:            cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := repositories.Connect(dbConfig)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisCache := cache.NewRedisCache(&cache.CacheConfig{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})

	if err := redisCache.Health(); err != nil {
		log.Printf("redis unavailable, continuing without cache: %v", err)
		redisCache.Close()
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	var jobQueue *worker.JobQueue
	var reminderWorker *worker.Worker
	if redisCache != nil {
		jobQueue = worker.NewJobQueue(redisCache.Client())

		reminderWorker = worker.NewWorker(worker.WorkerConfig{
			RedisClient:  redisCache.Client(),
			Concurrency:  cfg.Worker.Concurrency,
			PollInterval: cfg.Worker.PollInterval,
			Queues:       cfg.Worker.Queues,
		})
		reminderWorker.RegisterHandler(worker.JobTypeTaskReminder, worker.TaskReminderHandler(db))
		reminderWorker.Start(cfg.Worker.Concurrency)
		defer reminderWorker.Stop()
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		DB:       db,
		Cache:    redisCache,
		JobQueue: jobQueue,
		Config:   cfg,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}
