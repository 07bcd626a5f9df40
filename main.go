package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/config"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/controllers"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/database"
	apperrors "github.com/AniketOxO/QuickBasket-Ecommerce-Platform/errors"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/logger"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/middleware"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/repository"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/routes"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/services"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	log := logger.Log
	defer log.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis backs all persistence; fall back to in-memory storage so the
	// storefront still works without it.
	var store database.Store
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Warn("redis unavailable, using in-memory storage", zap.Error(err))
		store = database.NewMemoryStore()
	} else {
		store = database.NewRedisStore(redisClient)
	}

	ctx := context.Background()
	ns := cfg.StorageNamespace

	cartRepo := repository.NewCartRepository(store, ns)
	checkoutRepo := repository.NewCheckoutRepository(store, ns)
	wishlistRepo := repository.NewWishlistRepository(store, ns)
	userRepo := repository.NewUserRepository(store, ns)
	addressRepo := repository.NewAddressRepository(store, ns)
	orderRepo := repository.NewOrderRepository(store, ns)
	locationRepo := repository.NewLocationRepository(store, ns)
	searchRepo := repository.NewSearchHistoryRepository(store, ns)

	notifier := services.NewZapNotifier(log)
	geocoder := services.NewNominatimGeocoder(cfg.GeocodeBaseURL, log)

	catalogService := services.NewCatalogService(log)
	cartService := services.NewCartService(ctx, cartRepo, checkoutRepo, notifier, log)
	wishlistService := services.NewWishlistService(ctx, wishlistRepo, cartService, notifier, log)
	authService := services.NewAuthService(ctx, userRepo, addressRepo, orderRepo, notifier, log)
	locationService := services.NewLocationService(ctx, locationRepo, geocoder, notifier, log)
	searchService := services.NewSearchService(ctx, catalogService, searchRepo, log)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(apperrors.ErrorMiddleware())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.Register(
		router,
		controllers.NewCartController(cartService),
		controllers.NewWishlistController(wishlistService),
		controllers.NewAuthController(authService),
		controllers.NewLocationController(locationService),
		controllers.NewSearchController(searchService),
		controllers.NewCatalogController(catalogService),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("storefront is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("shutdown error", zap.Error(err))
	}
	log.Info("server shutdown complete")
}
