// Package middleware implements the gin request pipeline: panic
// recovery, request logging, body-size limiting, and the four inbound
// credential variants the API supports.
package middleware

import (
	"net/http"
	"strings"
	"time"

	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
	"paymentcore/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Context keys the auth middlewares set for downstream handlers.
const (
	CtxMerchantID = "merchant_id"
	CtxProfileID  = "profile_id"
	CtxIsAdmin    = "is_admin"
	CtxAuthVariant = "auth_variant"
)

const (
	headerAPIKey         = "X-API-Key"
	headerPublishableKey = "X-Publishable-Key"
	headerClientSecret   = "X-Client-Secret"
	headerAdminKey       = "X-Admin-Key"
)

func setAuthContext(c *gin.Context, ac *ports.AuthContext) {
	c.Set(CtxMerchantID, ac.MerchantID)
	c.Set(CtxProfileID, ac.ProfileID)
	c.Set(CtxIsAdmin, ac.IsAdmin)
	c.Set(CtxAuthVariant, ac.Variant)
}

// APIKeyAuth authenticates merchant-server-to-server calls via a
// static API key.
func APIKeyAuth(authSvc ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(headerAPIKey)
		if key == "" {
			response.Error(c, apperror.InvalidAPIKey())
			c.Abort()
			return
		}
		ac, err := authSvc.AuthenticateAPIKey(c.Request.Context(), key)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		setAuthContext(c, ac)
		c.Next()
	}
}

// PublishableKeyAuth authenticates client-side calls scoped to one
// PaymentIntent via publishable key + client secret. paymentIDParam names the gin route param carrying the
// payment ID the secret must match.
func PublishableKeyAuth(authSvc ports.AuthService, paymentIDParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		pubKey := c.GetHeader(headerPublishableKey)
		secret := c.GetHeader(headerClientSecret)
		if pubKey == "" || secret == "" {
			response.Error(c, apperror.InvalidAPIKey())
			c.Abort()
			return
		}
		ac, err := authSvc.AuthenticatePublishable(c.Request.Context(), pubKey, secret, c.Param(paymentIDParam))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		setAuthContext(c, ac)
		c.Next()
	}
}

// JWTAuth authenticates dashboard sessions via a bearer token.
func JWTAuth(authSvc ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, apperror.InvalidToken())
			c.Abort()
			return
		}
		ac, err := authSvc.AuthenticateJWT(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		setAuthContext(c, ac)
		c.Next()
	}
}

// AdminKeyAuth authenticates elevated merchant operations such as
// dispute evidence submission.
func AdminKeyAuth(authSvc ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(headerAdminKey)
		if key == "" {
			response.Error(c, apperror.InvalidAPIKey())
			c.Abort()
			return
		}
		ac, err := authSvc.AuthenticateAdmin(c.Request.Context(), key)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		setAuthContext(c, ac)
		c.Next()
	}
}

// MaxBodySize rejects request bodies larger than maxBytes with a 413.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// RequestLogger logs every HTTP request at a level escalated by status.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery converts a panic into a structured 500 response instead of
// crashing the process.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "internal server error",
				})
			}
		}()
		c.Next()
	}
}
