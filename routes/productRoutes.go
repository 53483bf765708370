package routes

import (
	"github.com/Kariqs/laptopzone-api/controllers"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine, c *controllers.Controller) {
	server.GET("/product", c.GetProducts)
	server.GET("/product/:slug", c.GetProduct)
	server.GET("/advisor", c.Recommend)
}
