package router

import (
	"github.com/gin-gonic/gin"

	"leaseline.app/server/core/config"
	"leaseline.app/server/internal/http/handler"
	"leaseline.app/server/internal/http/handler/webhook"
	"leaseline.app/server/internal/service"
	"leaseline.app/server/internal/store"
)

type RouterConfig struct {
	Twilio config.TwilioConfig
}

func SetupRoutes(router *gin.Engine, services *service.Services, stores *store.Stores, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	twilioHandler := webhook.NewTwilioWebhookHandler(services.Inbound(), cfg.Twilio)
	router.POST("/webhooks/twilio/sms", twilioHandler.HandleSMS)

	v1 := router.Group("/api/v1")
	{
		leadHandler := handler.NewLeadHandler(services.LeadIngest(), stores.Leads())
		LeadRouter(v1.Group("/leads"), leadHandler)

		propertyHandler := handler.NewPropertyHandler(stores.Properties())
		PropertyRouter(v1.Group("/properties"), propertyHandler)

		tenantHandler := handler.NewTenantHandler(stores.Tenants())
		TenantRouter(v1.Group("/tenants"), tenantHandler)

		userHandler := handler.NewUserHandler(stores.Users())
		UserRouter(v1.Group("/users"), userHandler)

		visitorHandler := handler.NewVisitorHandler(services.VisitorApprovals())
		VisitorRouter(v1.Group("/visitors"), visitorHandler)

		dashboardHandler := handler.NewDashboardHandler(services.Dashboard())
		DashboardRouter(v1.Group("/dashboard"), dashboardHandler)
	}
}
