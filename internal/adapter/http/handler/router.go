package handler

import (
	"revenue-distribution-engine/internal/adapter/http/middleware"
	redisStore "revenue-distribution-engine/internal/adapter/storage/redis"
	"revenue-distribution-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc           ports.AuthService
	PaymentSvc        ports.PaymentService
	RoyaltySvc        ports.RoyaltyService
	RevenueSharingSvc ports.RevenueSharingService
	TokenSvc          ports.TokenService
	RateLimitStore    *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers    []ports.HealthChecker
	Logger            zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	payments := v1.Group("/payments", jwtAuth)
	{
		payments.POST("", rl("payments"), paymentHandler.CreatePayment)
		payments.GET("", rl("queries"), paymentHandler.ListPayments)
		payments.GET("/:id", rl("queries"), paymentHandler.GetPayment)
		payments.GET("/:id/events", rl("queries"), paymentHandler.ListEvents)
		payments.POST("/:id/process", rl("payments"), paymentHandler.ProcessPayment)
		payments.POST("/:id/cancel", rl("payments"), paymentHandler.CancelPayment)
		payments.POST("/:id/refund", rl("payments_refund"), paymentHandler.RefundPayment)
	}

	royaltyHandler := NewRoyaltyHandler(deps.RoyaltySvc)
	royalties := v1.Group("/royalties", jwtAuth)
	{
		royalties.POST("", rl("distributions"), royaltyHandler.CreateDistribution)
		royalties.GET("", rl("queries"), royaltyHandler.ListDistributions)
		royalties.GET("/:id", rl("queries"), royaltyHandler.GetDistribution)
		royalties.POST("/:id/process", rl("distributions"), royaltyHandler.ProcessDistribution)
	}

	sharingHandler := NewRevenueSharingHandler(deps.RevenueSharingSvc)
	sharing := v1.Group("/revenue-sharing", jwtAuth)
	{
		sharing.POST("", rl("distributions"), sharingHandler.CreateDistribution)
		sharing.GET("", rl("queries"), sharingHandler.ListDistributions)
		sharing.GET("/:id", rl("queries"), sharingHandler.GetDistribution)
		sharing.POST("/:id/process", rl("distributions"), sharingHandler.ProcessDistribution)
	}

	return r
}
