package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopswift/product-service/controllers"
	"github.com/shopswift/product-service/database"
	apperrors "github.com/shopswift/product-service/errors"
	"github.com/shopswift/product-service/logger"
	"github.com/shopswift/product-service/middleware"
	"github.com/shopswift/product-service/repository"
	"github.com/shopswift/product-service/routes"
	"github.com/shopswift/product-service/services"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Initialize("development")
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Initialize(cfg.Env)
	defer zap.L().Sync()

	// --- 1. Store connection ---

	client, db, err := database.Connect(context.Background(), cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	// --- 2. Dependency injection (wiring the layers together) ---

	productRepo := repository.NewProductRepository(db)
	if err := productRepo.EnsureIndexes(context.Background()); err != nil {
		zap.L().Warn("Failed to ensure product indexes", zap.Error(err))
	}

	productService := services.NewProductService(productRepo)
	productController := controllers.NewProductController(productService)

	// --- 3. HTTP server & middleware ---

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RateLimit())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), controllers.DefaultContextTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.Use(apperrors.Translate())

	// --- 4. Route registration ---

	routes.RegisterProductRoutes(r, productController)

	r.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// --- 5. Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Product Service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down Product Service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(client); err != nil {
		zap.L().Error("Failed to close MongoDB connection", zap.Error(err))
	}

	zap.L().Info("Product Service stopped gracefully")
}
