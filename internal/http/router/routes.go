package router

import (
	"github.com/gin-gonic/gin"

	"leaseline.app/server/internal/http/handler"
)

func LeadRouter(router *gin.RouterGroup, handler *handler.LeadHandler) {
	router.POST("", handler.Create)
	router.GET("", handler.List)
	router.PATCH("/:id", handler.Update)
}

func PropertyRouter(router *gin.RouterGroup, handler *handler.PropertyHandler) {
	router.POST("", handler.Create)
	router.GET("", handler.List)
}

func TenantRouter(router *gin.RouterGroup, handler *handler.TenantHandler) {
	router.POST("", handler.Create)
	router.GET("", handler.List)
}

func UserRouter(router *gin.RouterGroup, handler *handler.UserHandler) {
	router.POST("", handler.Create)
}

func VisitorRouter(router *gin.RouterGroup, handler *handler.VisitorHandler) {
	router.POST("/requests", handler.CreateRequest)
}

func DashboardRouter(router *gin.RouterGroup, handler *handler.DashboardHandler) {
	router.GET("/stats", handler.Stats)
}
