package controllers

import (
	"net/http"

	"github.com/Kariqs/laptopzone-api/middlewares"
	"github.com/gin-gonic/gin"
)

type cartItemInput struct {
	Slug string `json:"slug" binding:"required"`
}

func (c *Controller) AddCartItem(ctx *gin.Context) {
	var input cartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid input", err)
		return
	}

	product, err := c.Store.FetchBySlug(ctx.Request.Context(), input.Slug)
	if err != nil {
		respondWithFailure(ctx, "Unable to fetch product", err)
		return
	}
	if product == nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}

	count := c.Sessions.AddToCart(ctx.GetString(middlewares.SessionKey), *product)
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": product.Title + " added to cart",
		"count":   count,
	})
}

func (c *Controller) GetCart(ctx *gin.Context) {
	snapshot := c.Sessions.Snapshot(ctx.GetString(middlewares.SessionKey))
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cart":  snapshot.Cart,
		"count": len(snapshot.Cart),
		"query": snapshot.Query,
	})
}
