package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.POST("", handler.Create)

		// The bare department path catches the empty-segment case so
		// the missing parameter is reported as 400 instead of a router
		// 404.
		employees.GET("/department", handler.GetByDepartment)
		employees.GET("/department/:department", handler.GetByDepartment)

		employees.GET("/:id", handler.GetByID)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}
