package api

import (
	"net/http"
	"time"

	"backoffice-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	alerts   *service.AlertService
	payments *service.PaymentMethodService
	prices   *service.PriceService
	images   *service.ImageService
	tokens   TokenResolver
	tokenTTL time.Duration
	env      string
}

// NewHandler creates a new HTTP handler
func NewHandler(
	alerts *service.AlertService,
	payments *service.PaymentMethodService,
	prices *service.PriceService,
	images *service.ImageService,
	tokens TokenResolver,
	tokenTTL time.Duration,
	env string,
) *Handler {
	return &Handler{
		alerts:   alerts,
		payments: payments,
		prices:   prices,
		images:   images,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		env:      env,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authed := router.Group("/", h.authRequired())

	alerts := authed.Group("/alerts")
	{
		alerts.GET("", h.getAllAlerts)
		alerts.GET("/estoque-baixo", h.getLowStock)
		alerts.GET("/recompra", h.getReorderSuggestions)
		alerts.GET("/vendas-pendentes", h.getPendingSales)
		alerts.GET("/compras-pendentes", h.getPendingPurchases)
		alerts.GET("/stats", h.getStats)
		alerts.GET("/contador", h.getAlertCount)
		alerts.PUT("/:id/resolver", h.resolveAlert)
		alerts.PUT("/:id/dispensar", h.dismissAlert)
	}

	payments := authed.Group("/formas-pagamento")
	{
		payments.GET("", h.listPaymentMethods)
		payments.POST("", h.createPaymentMethod)
		payments.GET("/:id", h.getPaymentMethod)
		payments.PUT("/:id", h.updatePaymentMethod)
		payments.DELETE("/:id", h.deactivatePaymentMethod)
	}

	parts := authed.Group("/pecas/:pecaId")
	{
		parts.GET("/historico-precos", h.getPriceHistory)
		parts.POST("/historico-precos", h.recordPriceChange)
		parts.GET("/imagens", h.listPartImages)
		parts.POST("/imagens", h.registerPartImage)
	}

	images := authed.Group("/imagens")
	{
		images.PUT("/:id/principal", h.promoteImage)
		images.DELETE("/:id", h.deleteImage)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}
