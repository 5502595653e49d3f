package handlers

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskboard/backend/internal/cache"
	"taskboard/backend/internal/config"
	"taskboard/backend/internal/middleware"
	"taskboard/backend/internal/monitoring"
	"taskboard/backend/internal/services"
	"taskboard/backend/internal/worker"
)

type RouterConfig struct {
	DB       *gorm.DB
	Cache    *cache.RedisCache // optional
	JobQueue *worker.JobQueue  // optional
	Config   *config.Config
}

// NewRouter assembles the gin engine: ambient middleware, the auth
// endpoints, and the entity/query API. Every /api route resolves the
// actor from the Bearer token and passes it explicitly to the services;
// permission decisions live in the services, not the router.
func NewRouter(rc RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryWithLog())
	router.Use(monitoring.MetricsMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	if rc.Config != nil && rc.Config.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			rc.Config.RateLimit.RequestsPerMin,
			rc.Config.RateLimit.BurstSize,
			rc.Config.RateLimit.ClientTTL,
		)
		router.Use(limiter.Middleware())
	}

	queryService := services.NewQueryService()
	cachedQueries := services.NewCachedQueryService(queryService, rc.Cache)

	userHandler := NewUserHandler(rc.DB, services.NewUserService(), cachedQueries)
	projectHandler := NewProjectHandler(rc.DB, services.NewProjectService(), cachedQueries)
	taskHandler := NewTaskHandler(rc.DB, services.NewTaskService(), cachedQueries, rc.JobQueue)
	commentHandler := NewCommentHandler(rc.DB, services.NewCommentService())
	queryHandler := NewQueryHandler(rc.DB, cachedQueries)
	authHandler := NewAuthHandler(rc.DB, services.NewAuthService())

	auth := router.Group("/api/auth")
	{
		auth.POST("/token", authHandler.Token)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	api := router.Group("/api")
	api.Use(middleware.ResolveActor())
	{
		api.POST("/users", userHandler.CreateUser)
		api.PUT("/users/:id", userHandler.UpdateUser)
		api.DELETE("/users/:id", userHandler.DeleteUser)
		api.GET("/users", queryHandler.GetUsers)

		api.POST("/projects", projectHandler.CreateProject)
		api.PUT("/projects/:id", projectHandler.UpdateProject)
		api.DELETE("/projects/:id", projectHandler.DeleteProject)
		api.GET("/projects", queryHandler.GetProjects)

		api.POST("/tasks", taskHandler.CreateTask)
		api.PUT("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
		api.GET("/tasks", queryHandler.GetTasks)

		api.POST("/comments", commentHandler.CreateComment)
		api.PUT("/comments/:id", commentHandler.UpdateComment)
		api.DELETE("/comments/:id", commentHandler.DeleteComment)
		api.GET("/comments", queryHandler.GetComments)

		api.GET("/stats", middleware.RequireAuth(), queryHandler.GetStats)
	}

	router.GET("/metrics", monitoring.MetricsHandler())
	router.GET("/health", newHealthChecker(rc).Handler())

	return router
}

func newHealthChecker(rc RouterConfig) *monitoring.HealthChecker {
	checker := monitoring.NewHealthChecker()

	checker.Register("database", func(ctx context.Context) error {
		sqlDB, err := rc.DB.DB()
		if err != nil {
			return err
		}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return sqlDB.PingContext(pingCtx)
	})

	if rc.Cache != nil {
		checker.Register("redis", func(ctx context.Context) error {
			return rc.Cache.Health()
		})
	}

	return checker
}
