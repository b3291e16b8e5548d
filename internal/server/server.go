package server

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	_ "logistics-api/docs" // swagger docs, generated
	awsclient "logistics-api/internal/client/aws"
	"logistics-api/internal/client/geocoding"
	"logistics-api/internal/db"
	"logistics-api/internal/handlers"
	"logistics-api/internal/logger"
	"logistics-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	quoteHandler      *handlers.QuoteHandler
	zoneHandler       *handlers.ZoneHandler
	adjustmentHandler *handlers.AdjustmentHandler
	promotionHandler  *handlers.PromotionHandler

	pricingService *services.PricingService

	// Database
	dbQueries *db.Queries
)

// InitializeHandlers wires the database pool, outbound clients, services and
// handlers. Missing required configuration fails fast.
func InitializeHandlers() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	connPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries = db.New(connPool)

	// Geocode cache is optional; without Redis every lookup goes to the
	// provider.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
	}

	geocoder := geocoding.NewClient(os.Getenv("GEOCODING_BASE_URL"), rdb)

	// Promo redemption events are optional; without a queue the usage
	// counter is still incremented in the database.
	var events services.PromoEventPublisher
	if queueURL := os.Getenv("PROMO_EVENTS_QUEUE_URL"); queueURL != "" {
		publisher, err := awsclient.NewPromoEventPublisher(context.Background(), queueURL)
		if err != nil {
			logger.Fatal("Unable to create promo event publisher", zap.Error(err))
		}
		events = publisher
	}

	pricingService = services.NewPricingService(dbQueries, events)
	distanceService := services.NewDistanceService(geocoder)

	if err := pricingService.Initialize(context.Background()); err != nil {
		logger.Fatal("Unable to load pricing configuration", zap.Error(err))
	}

	commonServices := handlers.NewCommonServices(dbQueries, pricingService, distanceService)

	quoteHandler = handlers.NewQuoteHandler(commonServices)
	zoneHandler = handlers.NewZoneHandler(commonServices)
	adjustmentHandler = handlers.NewAdjustmentHandler(commonServices)
	promotionHandler = handlers.NewPromotionHandler(commonServices)
}

// InitializeRoutes registers middleware and all API routes.
func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// if we are not in production, log requests
	if os.Getenv("GIN_MODE") != "release" {
		router.Use(handlers.LogRequest())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Quoting surface consumed by the order-creation flows
		quotes := v1.Group("/quotes")
		{
			quotes.POST("", quoteHandler.CreateQuote)
			quotes.POST("/distance", quoteHandler.EstimateDistance)
		}

		// Promotion surface consumed at checkout
		promotions := v1.Group("/promotions")
		{
			promotions.POST("/validate", promotionHandler.ValidatePromotion)
			promotions.POST("/:code/redeem", promotionHandler.RedeemPromotion)
		}

		// Admin-only configuration routes
		admin := v1.Group("/admin")
		admin.Use(handlers.RequireAdminKey())
		{
			// Zone management
			admin.GET("/zones", zoneHandler.ListZones)
			admin.POST("/zones", zoneHandler.CreateZone)
			admin.GET("/zones/:zone_id", zoneHandler.GetZone)
			admin.PUT("/zones/:zone_id", zoneHandler.UpdateZone)
			admin.DELETE("/zones/:zone_id", zoneHandler.DeleteZone)

			// Adjustment management
			admin.GET("/adjustments", adjustmentHandler.ListAdjustments)
			admin.POST("/adjustments", adjustmentHandler.CreateAdjustment)
			admin.GET("/adjustments/:adjustment_id", adjustmentHandler.GetAdjustment)
			admin.PUT("/adjustments/:adjustment_id", adjustmentHandler.UpdateAdjustment)
			admin.DELETE("/adjustments/:adjustment_id", adjustmentHandler.DeleteAdjustment)

			// Promotion management
			admin.GET("/promotions", promotionHandler.ListPromotions)
			admin.POST("/promotions", promotionHandler.CreatePromotion)
			admin.GET("/promotions/:promotion_id", promotionHandler.GetPromotion)
			admin.PUT("/promotions/:promotion_id", promotionHandler.UpdatePromotion)
			admin.DELETE("/promotions/:promotion_id", promotionHandler.DeletePromotion)

			// Force a configuration reload without a mutation
			admin.POST("/pricing/refresh", func(c *gin.Context) {
				if err := pricingService.Refresh(c.Request.Context()); err != nil {
					logger.Error("failed to refresh pricing configuration", zap.Error(err))
					c.JSON(http.StatusInternalServerError, gin.H{"error": "refresh failed"})
					return
				}
				c.JSON(http.StatusOK, gin.H{"message": "pricing configuration reloaded"})
			})
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Admin-Key")
	corsConfig.AllowCredentials = true

	return cors.New(corsConfig)
}
