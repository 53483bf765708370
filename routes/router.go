package routes

import (
	"time"

	"github.com/Kariqs/laptopzone-api/controllers"
	"github.com/Kariqs/laptopzone-api/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with middleware and every route group.
func NewRouter(c *controllers.Controller, allowOrigins []string) *gin.Engine {
	server := gin.New()
	server.MaxMultipartMemory = 8 << 20
	server.Use(middlewares.RequestLogger(), gin.Recovery())
	if len(allowOrigins) > 0 {
		server.Use(cors.New(cors.Config{
			AllowOrigins:     allowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.SessionHeader},
			ExposeHeaders:    []string{"Content-Length", middlewares.SessionHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	server.Use(middlewares.Session())

	DefaultRoutes(server, c)
	AuthRoutes(server, c)
	ProductRoutes(server, c)
	CartRoutes(server, c)
	AdminRoutes(server, c)
	return server
}
