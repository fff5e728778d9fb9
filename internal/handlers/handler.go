package handlers

import (
	"seasonal_calc/internal/logger"
	"seasonal_calc/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services    *service.Service
	log         *logger.Logger
	corsOrigins []string
}

type Option func(*Handler)

// WithCORSOrigins limits browser callers to origins. Empty or "*" allows any origin.
func WithCORSOrigins(origins []string) Option {
	return func(h *Handler) {
		h.corsOrigins = origins
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID, h.accessLog, h.corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// Countdown stream (HTTP upgrade), same port
	router.GET("/ws/countdown", h.wsCountdown)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		// Body and response match the remote estimate endpoint.
		api.POST("/estimate", h.remoteCompatibleEstimate)

		h.registerLightRoutes(api)
		h.registerRegionRoutes(api)
		h.registerSettingsRoutes(api)
		h.registerThawRoutes(api)
	}
}

func (h *Handler) registerLightRoutes(api *gin.RouterGroup) {
	lights := api.Group("/lights")
	{
		lights.POST("/estimate", h.estimateLights)
	}
}

func (h *Handler) registerRegionRoutes(api *gin.RouterGroup) {
	regions := api.Group("/regions")
	{
		regions.GET("", h.listRegions)
		regions.GET("/:code", h.getRegion)
	}
	api.GET("/region-default", h.defaultRegion)
}

func (h *Handler) registerSettingsRoutes(api *gin.RouterGroup) {
	settings := api.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.putSettings)
	}
}

func (h *Handler) registerThawRoutes(api *gin.RouterGroup) {
	thaw := api.Group("/thaw")
	{
		// Body example: {"weight":12,"unit":"lb","method":"fridge","targetTime":"2025-11-27T16:00"}
		thaw.POST("/plan", h.planThaw)
		thaw.GET("/countdown", h.getCountdown)
		thaw.DELETE("/countdown", h.cancelCountdown)
	}
}
