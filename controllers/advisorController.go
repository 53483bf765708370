package controllers

import (
	"net/http"

	"github.com/Kariqs/laptopzone-api/catalog"
	"github.com/gin-gonic/gin"
)

// defaultMaxBudget mirrors the advisor form's initial ceiling.
const defaultMaxBudget = 2000

func (c *Controller) Recommend(ctx *gin.Context) {
	prefs := catalog.Preferences{MaxBudget: defaultMaxBudget}
	if err := ctx.ShouldBindQuery(&prefs); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid preferences", err)
		return
	}

	products, err := c.Store.FetchAll(ctx.Request.Context())
	if err != nil {
		respondWithFailure(ctx, "Advisor recommendation failed", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"preferences": prefs,
		"results":     catalog.Recommend(products, prefs),
	})
}
