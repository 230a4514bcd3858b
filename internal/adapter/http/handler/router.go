package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"expense-vault/internal/adapter/http/middleware"
	redisStore "expense-vault/internal/adapter/storage/redis"
	"expense-vault/internal/core/ports"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Vault             ports.VaultLedger
	Policy            ports.PolicyAdmin
	Events            ports.EventRepository // nil = event trail disabled
	HashSvc           ports.HashService
	TokenSvc          ports.TokenService
	AdminUsername     string
	AdminPasswordHash string
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

	// Health check (deep: verifies PostgreSQL + Redis where wired)
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

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	authHandler := NewAuthHandler(deps.AdminUsername, deps.AdminPasswordHash, deps.HashSvc, deps.TokenSvc, deps.Logger)
	v1.POST("/auth/login", rl("auth_login"), authHandler.Login)

	vaultHandler := NewVaultHandler(deps.Vault)
	vault := v1.Group("/vault")
	{
		vault.POST("/deposit", rl("vault_mutate"), vaultHandler.Deposit)
		vault.POST("/withdraw", rl("vault_mutate"), vaultHandler.Withdraw)
		vault.POST("/spend", rl("vault_mutate"), vaultHandler.Spend)
		vault.GET("", rl("query"), vaultHandler.GetStats)
		vault.GET("/shares/:owner", rl("query"), vaultHandler.GetShares)
	}

	policyHandler := NewPolicyHandler(deps.Policy, deps.Events)
	policies := v1.Group("/policies")
	{
		// Owner-signed writes carry their own authorization; no bearer token.
		policies.POST("/signed", rl("policy_mutate"), policyHandler.SetPolicySigned)
		policies.GET("/:owner/:spender", rl("query"), policyHandler.GetPolicy)
		policies.GET("/:owner/:spender/spent", rl("query"), policyHandler.GetSpent)
	}
	v1.POST("/merchants/signed", rl("policy_mutate"), policyHandler.SetMerchantSigned)
	v1.GET("/nonces/:owner", rl("query"), policyHandler.GetNonce)

	// --- Operator routes (JWT) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/invest", rl("admin"), vaultHandler.Invest)
		admin.POST("/divest", rl("admin"), vaultHandler.Divest)
		admin.PUT("/policies", rl("admin"), policyHandler.SetPolicy)
		admin.PUT("/merchants", rl("admin"), policyHandler.SetMerchant)
		admin.GET("/events", rl("admin"), policyHandler.ListEvents)
	}

	return r
}
