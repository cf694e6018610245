package handler

import (
	"paymentcore/internal/adapter/http/middleware"
	"paymentcore/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds every dependency SetupRouter needs to wire the HTTP
// surface. RateLimiter and AuditSvc are nil-able: a nil store disables
// rate limiting and a nil audit service disables the audit trail
// instead of panicking, so the server can run in degraded mode.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	PaymentSvc     ports.PaymentService
	RefundSvc      ports.RefundService
	DisputeSvc     ports.DisputeService
	PayoutSvc      ports.PayoutService
	CustomerSvc    ports.CustomerService
	MerchantSvc    ports.MerchantService
	WebhookSvc     ports.WebhookService
	AuditSvc       ports.AuditService
	RateLimiter    ports.RateLimiter
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initializes the gin engine with every route the engine
// names, grouped by which of the four credential variants guards it.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(2 << 20)) // 2 MB request body limit
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	health := NewHealthHandler(deps.HealthCheckers...)
	r.GET("/health/live", health.Live)
	r.GET("/health/ready", health.Ready)

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Inbound connector webhooks: no merchant credential, verified
	// inside WebhookService against the connector's own signature. ---
	webhookHandler := NewWebhookHandler(deps.WebhookSvc)
	v1.POST("/webhooks/:merchant_id/:connector", rl("webhooks"), webhookHandler.Receive)

	// --- API-key authenticated routes: merchant server-to-server. ---
	apiKeyAuth := middleware.APIKeyAuth(deps.AuthSvc)

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	payments := v1.Group("/payments", apiKeyAuth)
	{
		payments.POST("", rl("payments"), paymentHandler.Create)
		payments.GET("/:id", rl("payments"), paymentHandler.Status)
		payments.POST("/:id/update", rl("payments"), paymentHandler.Update)
		payments.POST("/:id/confirm", rl("payments"), paymentHandler.Confirm)
		payments.POST("/:id/capture", rl("payments"), paymentHandler.Capture)
		payments.POST("/:id/cancel", rl("payments"), paymentHandler.Cancel)
		payments.POST("/:id/cancel_post_capture", rl("payments"), paymentHandler.CancelPostCapture)
		payments.POST("/:id/reject", rl("payments"), paymentHandler.Reject)
		payments.POST("/:id/sync", rl("payments"), paymentHandler.Sync)
		payments.GET("/:id/session_tokens", rl("session_tokens"), paymentHandler.SessionTokens)
		payments.POST("/:id/session_tokens/:connector", rl("session_tokens"), paymentHandler.PostSessionTokens)
	}
	v1.POST("/payment_methods/:id/verify", apiKeyAuth, rl("payments"), paymentHandler.VerifyPaymentMethod)
	v1.DELETE("/payment_methods/:id", apiKeyAuth, rl("payments"), NewCustomerHandler(deps.CustomerSvc).DeletePaymentMethod)

	refundHandler := NewRefundHandler(deps.RefundSvc)
	refunds := v1.Group("/refunds", apiKeyAuth)
	{
		refunds.POST("", rl("refunds"), refundHandler.Create)
		refunds.GET("/:id", rl("refunds"), refundHandler.Get)
		refunds.POST("/:id/sync", rl("refunds"), refundHandler.Sync)
	}

	payoutHandler := NewPayoutHandler(deps.PayoutSvc)
	payouts := v1.Group("/payouts", apiKeyAuth)
	{
		payouts.POST("", rl("payments"), payoutHandler.Create)
		payouts.GET("/:id", rl("payments"), payoutHandler.Get)
	}

	customerHandler := NewCustomerHandler(deps.CustomerSvc)
	customers := v1.Group("/customers", apiKeyAuth)
	{
		customers.POST("", rl("payments"), customerHandler.Create)
		customers.GET("/:id", rl("payments"), customerHandler.Get)
		customers.GET("/:id/payment_methods", rl("payments"), customerHandler.ListPaymentMethods)
		customers.POST("/:id/payment_methods", rl("payments"), customerHandler.SavePaymentMethod)
	}
	v1.POST("/mandates/:id/revoke", apiKeyAuth, rl("payments"), customerHandler.RevokeMandate)

	disputeHandler := NewDisputeHandler(deps.DisputeSvc)
	disputes := v1.Group("/disputes", apiKeyAuth)
	{
		disputes.GET("", rl("dashboard"), disputeHandler.List)
		disputes.GET("/:id", rl("dashboard"), disputeHandler.Get)
	}

	// --- Admin-key authenticated routes: elevated merchant operations. ---
	adminKeyAuth := middleware.AdminKeyAuth(deps.AuthSvc)
	disputesAdmin := v1.Group("/disputes", adminKeyAuth)
	{
		disputesAdmin.POST("/:id/accept", rl("dashboard"), disputeHandler.Accept)
		disputesAdmin.POST("/:id/evidence", rl("dashboard"), disputeHandler.SubmitEvidence)
	}

	merchantHandler := NewMerchantHandler(deps.MerchantSvc)
	accountAdmin := v1.Group("/account", adminKeyAuth)
	{
		accountAdmin.POST("/connectors", rl("dashboard"), merchantHandler.CreateConnectorAccount)
	}

	// --- JWT authenticated routes: dashboard sessions. ---
	jwtAuth := middleware.JWTAuth(deps.AuthSvc)
	accountDashboard := v1.Group("/account", jwtAuth)
	{
		accountDashboard.GET("/me", rl("dashboard"), merchantHandler.GetMe)
		accountDashboard.PUT("/profiles/:id", rl("dashboard"), merchantHandler.UpdateBusinessProfile)
	}

	// --- Publishable-key + client-secret authenticated routes: checkout
	// SDKs acting on one specific PaymentIntent without merchant-level
	// credentials. ---
	pubKeyAuth := middleware.PublishableKeyAuth(deps.AuthSvc, "id")
	clientPayments := v1.Group("/client/payments", pubKeyAuth)
	{
		clientPayments.GET("/:id", rl("session_tokens"), paymentHandler.Status)
		clientPayments.POST("/:id/confirm", rl("session_tokens"), paymentHandler.Confirm)
		clientPayments.GET("/:id/session_tokens", rl("session_tokens"), paymentHandler.SessionTokens)
	}

	return r
}
