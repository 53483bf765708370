package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (c *Controller) GetHome(ctx *gin.Context) {
	message := `Welcome to the LaptopZoneLB API. Laptops & IT Solutions.

The following are the endpoints for this API:

AUTH
- POST "/auth/login" - Sign in and receive a bearer token

CATALOG
- GET "/product?search=&brand=All" - Search the catalog
- GET "/product/:slug?ram=&storage=" - Product detail with configured price
- GET "/advisor?minBudget=&maxBudget=&cpu=&gpu=&ramMin=&storageMin=" - Ranked recommendations

CART
- POST "/cart" - Add a product to the session cart
- GET "/cart" - Session cart and last search

ADMIN
- GET "/admin/me" - Signed-in uid and admin status
- POST "/admin/product" - Create a product
- POST "/admin/product-image" - Upload a product thumbnail`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
