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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"vibe-commerce/controllers"
	"vibe-commerce/database"
	"vibe-commerce/logger"
	"vibe-commerce/repository"
	"vibe-commerce/routes"
	"vibe-commerce/services"
)

func main() {
	cfg := LoadConfig()

	logger.Initialize(cfg.Environment)
	defer logger.Sync()

	// Monetary amounts go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	if err := database.Connect(logger.Log); err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close() //nolint:errcheck

	if err := database.SeedProducts(database.DB, logger.Log); err != nil {
		logger.Log.Fatal("Failed to seed catalog", zap.Error(err))
	}

	// DI chain
	productRepo := repository.NewGormProductRepository(database.DB)
	cartRepo := repository.NewGormCartRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)

	cartService := services.NewCartService(cartRepo, productRepo, logger.Log)
	checkoutService := services.NewCheckoutService(orderRepo, cartRepo, logger.Log)

	productController := controllers.NewProductController(productRepo, logger.Log)
	cartController := controllers.NewCartController(cartService)
	checkoutController := controllers.NewCheckoutController(checkoutService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Vibe Commerce API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "vibe-commerce"})
	})

	routes.RegisterRoutes(r, productController, cartController, checkoutController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Log.Info("Storefront service started", zap.String("port", cfg.Port))
	<-quit
	logger.Log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Log.Info("Server exited cleanly")
}
