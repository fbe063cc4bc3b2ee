package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"

	"github.com/sarmstore/storefront-backend/internal/bus"
	"github.com/sarmstore/storefront-backend/internal/config"
	"github.com/sarmstore/storefront-backend/internal/modules/auth"
	"github.com/sarmstore/storefront-backend/internal/modules/cart"
	"github.com/sarmstore/storefront-backend/internal/modules/catalog"
	"github.com/sarmstore/storefront-backend/internal/modules/category"
	"github.com/sarmstore/storefront-backend/internal/modules/checkout"
	"github.com/sarmstore/storefront-backend/internal/modules/faq"
	"github.com/sarmstore/storefront-backend/internal/modules/feedback"
	"github.com/sarmstore/storefront-backend/internal/modules/order"
	"github.com/sarmstore/storefront-backend/internal/modules/quote"
	"github.com/sarmstore/storefront-backend/internal/modules/settings"
	"github.com/sarmstore/storefront-backend/internal/modules/user"
	"github.com/sarmstore/storefront-backend/internal/notify"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("pinging database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("pinging redis", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to redis")

	changeBus := bus.New(logger)
	defer changeBus.Close()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	secret := []byte(cfg.JWTSecret)
	authService := auth.NewService(userRepo, secret)
	auth.NewHandler(authService).RegisterRoutes(router)
	authMW := auth.NewMiddleware(secret)

	// ── Catalog ─────────────────────────────────────────────
	categoryRepo := category.NewPostgresRepository(db)
	categoryService := category.NewService(categoryRepo)
	category.NewHandler(categoryService, authMW).RegisterRoutes(router)

	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo, changeBus)
	catalog.NewHandler(catalogService, authMW).RegisterRoutes(router)

	catalogCache := catalog.NewCache(catalogRepo)
	if err := catalogCache.Refresh(ctx); err != nil {
		logger.Error("warming catalog cache", "error", err)
		os.Exit(1)
	}
	go func() {
		if err := catalogCache.Run(ctx, changeBus); err != nil {
			logger.Error("catalog cache subscription stopped", "error", err)
		}
	}()

	// ── Store settings ──────────────────────────────────────
	settingsRepo := settings.NewPostgresRepository(db)
	settingsService := settings.NewService(settingsRepo, cfg.DeliveryFee)
	settings.NewHandler(settingsService, authMW).RegisterRoutes(router)

	// ── Cart ────────────────────────────────────────────────
	cartStore := cart.NewRedisStore(redisClient)
	cartService := cart.NewService(cartStore, catalogCache, settingsService, cfg.PlaceholderImage)
	cart.NewHandler(cartService, authMW).RegisterRoutes(router)

	// ── Orders & Checkout ───────────────────────────────────
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo)
	order.NewHandler(orderService, authMW).RegisterRoutes(router)

	links := notify.NewLinkBuilder(cfg.WhatsAppHost, cfg.AdminPhone)
	checkoutService := checkout.NewService(cartService, orderService, catalogService,
		links, settingsService, cfg.RequireAuthCheckout)
	checkout.NewHandler(checkoutService, authMW).RegisterRoutes(router)

	// ── Content ─────────────────────────────────────────────
	quoteRepo := quote.NewPostgresRepository(db)
	quoteService := quote.NewService(quoteRepo)
	quote.NewHandler(quoteService, authMW).RegisterRoutes(router)

	faqRepo := faq.NewPostgresRepository(db)
	faqService := faq.NewService(faqRepo)
	faq.NewHandler(faqService, authMW).RegisterRoutes(router)

	feedbackRepo := feedback.NewPostgresRepository(db)
	feedbackService := feedback.NewService(feedbackRepo)
	feedback.NewHandler(feedbackService, authMW).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	logger.Info("storefront API listening", "port", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
