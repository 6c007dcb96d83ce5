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

	"gaming-directory/config"
	_ "gaming-directory/docs" // Swagger docs
	"gaming-directory/fixtures"
	"gaming-directory/packages/directory"
	"gaming-directory/packages/directory/repositories"
	"gaming-directory/packages/logger"
	"gaming-directory/packages/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title           Gaming Directory API
// @version         1.0
// @description     Directory of gamers, games and skill levels for matchmaking

// @contact.name   API Support

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	appLog, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer appLog.Sync()

	if err := run(cfg, appLog); err != nil {
		appLog.Error("Server stopped with error", err)
		appLog.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, appLog *logger.Logger) error {
	var (
		db     *gorm.DB
		module *directory.Module
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		conn, err := config.ConnectDatabase(cfg.Database)
		if err != nil {
			return err
		}
		db = conn
		module = directory.NewModule(directory.NewGormRepositories(db), appLog)
	case config.DriverMemory:
		store := repositories.NewMemoryStore()
		module = directory.NewModule(directory.NewMemoryRepositories(store), appLog)

		// An in-memory directory starts with the sample dataset.
		seeder := fixtures.NewFixtures(module, fixtures.ClearMemory(store), appLog)
		if err := seeder.GenerateTestData(context.Background()); err != nil {
			return err
		}
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(appLog),
		middleware.AccessLog(appLog),
		middleware.Metrics(),
		cors.New(corsConfig(cfg.Server.AllowedOrigins)),
	)

	module.SetupRoutes(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", healthHandler(db))

	if cfg.Stats.Enabled {
		if err := module.StartScheduler(cfg.Stats.RefreshCron); err != nil {
			return err
		}
		defer module.StopScheduler()
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLog.Info("Server starting", zap.String("addr", srv.Addr), zap.String("driver", cfg.Database.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case sig := <-quit:
		appLog.Info("Shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	appLog.Info("Server exited")
	return nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and database is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, HealthResponse{Message: "Server is running", Database: "memory"})
			return
		}

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, HealthResponse{Message: "Database unavailable", Database: "disconnected"})
			return
		}

		c.JSON(http.StatusOK, HealthResponse{Message: "Server is running", Database: "connected"})
	}
}
