package controllers

import (
	"net/http"
	"strconv"

	"github.com/Kariqs/laptopzone-api/catalog"
	"github.com/Kariqs/laptopzone-api/middlewares"
	"github.com/gin-gonic/gin"
)

func (c *Controller) GetProducts(ctx *gin.Context) {
	search := ctx.Query("search")
	brand := ctx.DefaultQuery("brand", catalog.AllBrands)

	products, err := c.Store.FetchAll(ctx.Request.Context())
	if err != nil {
		respondWithFailure(ctx, "Unable to fetch products", err)
		return
	}
	c.Sessions.SetQuery(ctx.GetString(middlewares.SessionKey), search)

	filtered := catalog.Filter(products, search, brand)
	ctx.JSON(http.StatusOK, gin.H{
		"products": filtered,
		"metadata": gin.H{
			"total":  len(products),
			"count":  len(filtered),
			"search": search,
			"brand":  brand,
		},
	})
}

func (c *Controller) GetProduct(ctx *gin.Context) {
	ram, err := optionalSize(ctx, "ram")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid RAM selection", err)
		return
	}
	storage, err := optionalSize(ctx, "storage")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid storage selection", err)
		return
	}

	product, err := c.Store.FetchBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		respondWithFailure(ctx, "Unable to retrieve product", err)
		return
	}
	if product == nil {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"product": product,
		"pricing": catalog.Resolve(*product, ram, storage),
	})
}

func optionalSize(ctx *gin.Context, key string) (*int, error) {
	raw, ok := ctx.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	size, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &size, nil
}
