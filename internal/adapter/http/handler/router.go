package handler

import (
	"estate-transfer/internal/adapter/http/middleware"
	"estate-transfer/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Transfers      ports.TransferService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	OpenAPISpec    []byte             // nil = /swagger/spec answers 404
	Tracer         trace.Tracer       // nil = requests are not traced
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	if deps.Tracer != nil {
		r.Use(middleware.Tracing(deps.Tracer))
	}

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec(deps.OpenAPISpec))
	}

	rules := middleware.DefaultRateLimitRules()

	// rl returns the rate limiter for group, or a no-op without a store.
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

	transfers := NewTransferHandler(deps.Transfers)
	tx := v1.Group("/transactions")
	{
		tx.POST("/initiate", rl(middleware.GroupInitiate), transfers.Initiate)
		tx.POST("/verify-seller-otp", rl(middleware.GroupOTPVerify), transfers.VerifySellerOTP)
		tx.POST("/verify-buyer-otp", rl(middleware.GroupOTPVerify), transfers.VerifyBuyerOTP)
		tx.POST("/resend-otp", rl(middleware.GroupOTPResend), transfers.ResendOTP)
		tx.POST("/surveyor-approve", rl(middleware.GroupWorkflow), transfers.SurveyorApprove)
		tx.POST("/buyer-agree", rl(middleware.GroupWorkflow), transfers.BuyerAgree)
		tx.GET("/:id/info", rl(middleware.GroupRead), transfers.GetInfo)
		tx.POST("/list", rl(middleware.GroupRead), transfers.List)
	}

	surveyors := NewSurveyorHandler(deps.Transfers)
	sv := v1.Group("/surveyor")
	{
		sv.POST("/login", rl(middleware.GroupRead), surveyors.Login)
		sv.POST("/pending", rl(middleware.GroupRead), surveyors.Pending)
	}

	return r
}
