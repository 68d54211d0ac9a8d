package router

import (
	"github.com/gin-gonic/gin"

	"dei-dashboard/api/handler"
)

func RegisterRoutes(r *gin.Engine, dashboardH *handler.DashboardHandler) {
	api := r.Group("/api/v1")
	{
		dashboard := api.Group("/dashboard")
		{
			dashboard.POST("/query", dashboardH.Query)
			dashboard.GET("/options", dashboardH.Options)
			dashboard.GET("/featured", dashboardH.Featured)
		}
		loads := api.Group("/loads")
		{
			loads.GET("/history", dashboardH.LoadHistory)
		}
	}
}
