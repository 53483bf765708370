package routes

import (
	"github.com/Kariqs/laptopzone-api/controllers"
	"github.com/Kariqs/laptopzone-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine, c *controllers.Controller) {
	adminGroup := server.Group("/admin", middlewares.RequireAuth(c.JWTSecret))
	{
		adminGroup.GET("/me", c.GetAdminStatus)
		adminGroup.POST("/product", c.CreateProduct)
		adminGroup.POST("/product-image", c.UploadProductImage)
	}
}
