package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/homecheff/affiliates/config"
	"github.com/homecheff/affiliates/pkg/affiliate"
	"github.com/homecheff/affiliates/pkg/api/handlers"
	"github.com/homecheff/affiliates/pkg/attribution"
	"github.com/homecheff/affiliates/pkg/billing"
	"github.com/homecheff/affiliates/pkg/cache"
	"github.com/homecheff/affiliates/pkg/commission"
	"github.com/homecheff/affiliates/pkg/database"
	"github.com/homecheff/affiliates/pkg/email"
	"github.com/homecheff/affiliates/pkg/jobs"
	"github.com/homecheff/affiliates/pkg/ledger"
	"github.com/homecheff/affiliates/pkg/logger"
	"github.com/homecheff/affiliates/pkg/metrics"
	custommiddleware "github.com/homecheff/affiliates/pkg/middleware"
	"github.com/homecheff/affiliates/pkg/referral"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()
	appLogger := logger.New(cfg.LogLevel)
	appLogger.Info("Configuration loaded", "environment", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0, // Capture 100% of transactions in development, adjust in production
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database with SSL configuration
	sslCfg := &database.SSLConfig{
		Mode:         cfg.DBSSLMode,
		CertPath:     cfg.DBSSLCertPath,
		KeyPath:      cfg.DBSSLKeyPath,
		RootCertPath: cfg.DBSSLRootCertPath,
	}
	db, err := database.NewClientWithSSL(cfg.DatabaseURL, sslCfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	registerRateLimiter := custommiddleware.NewRateLimiter(10, 3)  // 10 req/min for signups
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // 100 req/min for Stripe webhooks

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig()))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	// Global rate limiting (default 60 req/min)
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "HomeCheff Affiliates API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		// Check database connection
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		// Check Redis connection
		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize services
	calculator := commission.New(commission.Config{
		DirectSubscriptionPct: cfg.DirectSubscriptionPct,
		SubSubscriptionPct:    cfg.SubSubscriptionPct,
		HomecheffSharePct:     cfg.HomecheffSharePct,
		ParentSubscriptionPct: cfg.ParentSubscriptionPct,
		DirectOrderPct:        cfg.DirectOrderPct,
		SubOrderPct:           cfg.SubOrderPct,
		ParentOrderPct:        cfg.ParentOrderPct,
		DirectMaxDiscountPct:  cfg.DirectMaxDiscountPct,
		SubMaxDiscountPct:     cfg.SubMaxDiscountPct,
		MinRetainedPct:        cfg.MinRetainedPct,
	})

	referralService := referral.NewService(db.Ent, redisClient)
	attributionStore := attribution.NewStore(db.Ent, referralService, cfg.AttributionWindowDays)
	cookieBridge := attribution.NewCookieBridge(attributionStore, cfg.ReferralCookieTTLDays)
	ledgerService := ledger.NewService(db.Ent, calculator, attributionStore, cfg.LedgerPendingDays, cfg.LedgerCurrency)
	affiliateService := affiliate.NewService(db.Ent, ledgerService)
	billingService := billing.NewService(db.Ent, ledgerService, attributionStore, &billing.StripeConfig{
		SecretKey:             cfg.StripeSecretKey,
		WebhookSecret:         cfg.StripeWebhookSecret,
		AttributionWindowDays: cfg.AttributionWindowDays,
	})

	// Initialize email service
	emailService := email.NewService(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.FrontendURL,
		cfg.SendGridAPIKey,
	)
	// Service logs its own initialization status

	// Initialize handlers
	signupHandler := handlers.NewSignupHandler(db.Ent, cookieBridge, prometheusMetrics)
	referralHandler := handlers.NewReferralHandler(referralService, cookieBridge, cfg.FrontendURL, prometheusMetrics)
	billingHandler := handlers.NewBillingHandler(billingService, prometheusMetrics)
	orderHandler := handlers.NewOrderHandler(ledgerService, prometheusMetrics)
	affiliateHandler := handlers.NewAffiliateHandler(affiliateService, ledgerService)

	// Referral link visits (public, cookie-setting redirect)
	e.GET("/r/:code", referralHandler.TrackVisit)

	// API v1 routes group
	v1 := e.Group("/api/v1")

	// Ping endpoint (public)
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Signup with restrictive rate limit
	v1.POST("/auth/register", signupHandler.Register, registerRateLimiter.RateLimitMiddleware())

	// Stripe webhook with higher rate limit: 100 per minute
	v1.POST("/webhooks/stripe", billingHandler.HandleWebhook, webhookRateLimiter.RateLimitMiddleware())

	// Internal collaborator endpoints (checkout and refund services)
	internalGroup := v1.Group("/internal")
	{
		internalGroup.POST("/orders/paid", orderHandler.OrderPaid)
		internalGroup.POST("/orders/reversed", orderHandler.OrderReversed)
	}

	// Affiliate dashboard routes
	affiliatesGroup := v1.Group("/affiliates")
	{
		affiliatesGroup.GET("/:id/stats", affiliateHandler.GetStats)
		affiliatesGroup.GET("/:id/ledger", affiliateHandler.ListLedger)
		affiliatesGroup.POST("/:id/links", referralHandler.IssueLink)
	}

	// Initialize cron jobs (hourly pending-to-available sweep)
	cronManager := jobs.NewCronManager(db.Ent, ledgerService, emailService, prometheusMetrics, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started")

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	appLogger.Info("HomeCheff Affiliates API starting", "address", address, "log_level", cfg.LogLevel)
	log.Printf("🌍 CORS: https://homecheff.eu, https://www.homecheff.eu")
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Attribution window: %d days, ledger hold: %d days", cfg.AttributionWindowDays, cfg.LedgerPendingDays)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Stop cron jobs
	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	appLogger.Info("Server gracefully stopped")
}
