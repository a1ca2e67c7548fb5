package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	identified := protected.Group("")
	identified.Use(UserIdentityMiddleware(h.logger))

	incidents := protected.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/nearby", h.nearbyIncidents)
		incidents.GET("/live", h.liveIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.GET("/:id/articles", h.incidentArticles)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
	}
	identified.POST("/incidents", h.createIncident)
	identified.GET("/incidents/assigned", h.assignedIncidents)

	zones := protected.Group("/zones")
	{
		zones.GET("", h.listZones)
		zones.GET("/nearby", h.nearbyZones)
		zones.PUT("/:id", h.updateZone)
		zones.DELETE("/:id", h.deleteZone)
	}
	identified.POST("/zones", h.createZone)

	protected.POST("/location/check", h.checkLocation)

	// Создание SOS ограничено по частоте на пользователя
	limited := identified.Group("/sos")
	limited.Use(RateLimitMiddleware(h.cfg.RateLimitRPS, h.cfg.RateLimitBurst, h.logger))
	{
		limited.POST("", h.createSos)
		limited.POST("/offline-alert", h.createOfflineAlert)
		limited.POST("/offline-recovered", h.markOfflineRecovered)
	}
	identified.GET("/sos/user", h.userSosEvents)
	protected.GET("/sos/pending", h.pendingSosEvents)
	protected.GET("/sos/recent", h.recentSosEvents)
	protected.PUT("/sos/:id/status", h.updateSosStatus)

	contacts := identified.Group("/contacts")
	{
		contacts.GET("", h.listContacts)
		contacts.POST("", h.createContact)
		contacts.PUT("/:id", h.updateContact)
		contacts.DELETE("/:id", h.deleteContact)
	}

	articles := protected.Group("/articles")
	{
		articles.GET("", h.listArticles)
		articles.POST("/fetch", h.fetchArticles)
	}
}
