package routes

import (
	"github.com/Kariqs/laptopzone-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine, c *controllers.Controller) {
	server.POST("/cart", c.AddCartItem)
	server.GET("/cart", c.GetCart)
}
