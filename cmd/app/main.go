package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "path-of-sharing/docs"
	"path-of-sharing/internal/common/cache"
	"path-of-sharing/internal/common/config"
	apperrors "path-of-sharing/internal/common/errors"
	"path-of-sharing/internal/common/logger"
	"path-of-sharing/internal/common/middleware"
	giveawayHTTP "path-of-sharing/internal/features/giveaway/delivery/http"
	"path-of-sharing/internal/features/giveaway/realtime"
	giveawayRepo "path-of-sharing/internal/features/giveaway/repository/postgres"
	ownerRepo "path-of-sharing/internal/features/giveaway/repository/redis"
	giveawayService "path-of-sharing/internal/features/giveaway/service"
	"path-of-sharing/internal/platform/postgres"
	"path-of-sharing/internal/platform/redis"
)

// @title           Path of Sharing API
// @version         1.0
// @description     Community giveaways of Path of Exile currency. Owner endpoints need the token returned by the owner session endpoint.

// @BasePath  /api

// @securityDefinitions.apikey OwnerToken
// @in header
// @name X-Owner-Token
// @description Token returned by POST /giveaways/{slug}/owner/session

// @tag.name giveaways
// @tag.description Giveaway creation and viewing

// @tag.name entries
// @tag.description Admission and the live entries feed

// @tag.name owner
// @tag.description Creator-only lifecycle and winner selection

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("path-of-sharing", cfg.Debug)
	logger.Info().Bool("debug", cfg.Debug).Msg("Starting Path of Sharing backend")

	postgresClient, err := postgres.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer postgresClient.Close()

	if cfg.Postgres.AutoMigrate {
		if err := postgres.MigrateUp(postgresClient.GetDB()); err != nil {
			logger.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := redis.CreateRedisClient(redisCtx, cfg)
	redisCancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	cacheService := cache.NewCacheService(redisClient)

	giveawayRepository := giveawayRepo.NewGiveawayRepository(postgresClient.GetDB())
	entryRepository := giveawayRepo.NewEntryRepository(postgresClient.GetDB())
	ownerTokenRepository := ownerRepo.NewOwnerTokenRepository(redisClient)

	// Every instance publishes to redis and relays the pattern subscription
	// into its own hub, so feeds see entries admitted anywhere.
	hub := realtime.NewHub()
	bridge := realtime.NewBridge(redisClient, hub)
	bridgeCtx, stopBridge := context.WithCancel(context.Background())
	defer stopBridge()
	go bridge.Run(bridgeCtx)

	giveawaySvc := giveawayService.NewGiveawayService(giveawayRepository, entryRepository, cacheService, cfg)
	entrySvc := giveawayService.NewEntryService(giveawayRepository, entryRepository, realtime.NewRedisPublisher(redisClient))
	winnerSvc := giveawayService.NewWinnerService(giveawayRepository, entryRepository, giveawaySvc, cacheService)
	ownerSvc := giveawayService.NewOwnerService(giveawayRepository, ownerTokenRepository, cfg)

	logger.Info().Msg("Services initialized")

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger("/health", "/live", "/ready"))
	router.Use(middleware.ErrorHandler())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", middleware.OwnerTokenHeader}
	router.Use(cors.New(corsConfig))

	handler := giveawayHTTP.NewGiveawayHandler(giveawaySvc, entrySvc, winnerSvc, ownerSvc, hub, cfg.Server.Origin)
	setupRoutes(router, handler, postgresClient, redisClient, bridge)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	// Websocket feeds are hijacked connections and Shutdown does not wait
	// for them.
	stopBridge()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func setupRoutes(router *gin.Engine, handler *giveawayHTTP.GiveawayHandler, postgresClient *postgres.Client, redisClient redis.RedisClient, bridge *realtime.Bridge) {
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		middleware.SendError(c, apperrors.NewNotFoundError("route", c.Request.URL.Path))
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "path-of-sharing",
		})
	})

	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := postgresClient.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "postgres unavailable",
				"details": err.Error(),
			})
			return
		}

		if err := redisClient.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "redis unavailable",
				"details": err.Error(),
			})
			return
		}

		// Without the bridge, feeds on this instance miss entries admitted
		// elsewhere.
		if !bridge.Subscribed() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unready",
				"error":  "entry bridge not subscribed",
			})
			return
		}

		stats := postgresClient.Stats()
		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   "path-of-sharing",
			"postgres": gin.H{
				"open_connections": stats.OpenConnections,
				"in_use":           stats.InUse,
			},
		})
	})
}
