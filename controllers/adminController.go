package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/laptopzone-api/admin"
	"github.com/Kariqs/laptopzone-api/middlewares"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAdminStatus reports the caller uid and whether it holds admin privilege.
func (c *Controller) GetAdminStatus(ctx *gin.Context) {
	uid := ctx.GetString(middlewares.CallerUIDKey)
	err := c.Pipeline.Authorize(ctx.Request.Context(), uid)
	switch {
	case err == nil:
		sendJSONResponse(ctx, http.StatusOK, gin.H{"uid": uid, "isAdmin": true})
	case errors.Is(err, admin.ErrUnauthorized):
		sendJSONResponse(ctx, http.StatusOK, gin.H{"uid": uid, "isAdmin": false, "message": err.Error()})
	default:
		respondWithFailure(ctx, "Admin check failed", err)
	}
}

func (c *Controller) CreateProduct(ctx *gin.Context) {
	var form admin.ProductForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id, err := c.Pipeline.Submit(ctx.Request.Context(), ctx.GetString(middlewares.CallerUIDKey), form)
	if err != nil {
		respondWithFailure(ctx, "Save failed", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Product added",
		"id":      id,
	})
}

func (c *Controller) UploadProductImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Unable to read file", err)
		return
	}
	defer f.Close()

	slug := ctx.PostForm("slug")
	uid := ctx.GetString(middlewares.CallerUIDKey)
	url, err := c.Pipeline.UploadAsset(ctx.Request.Context(), uid, slug, admin.Asset{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        f,
	}, func(fraction float64) {
		zap.L().Debug("upload progress", zap.String("file", fileHeader.Filename), zap.Float64("fraction", fraction))
	})
	if err != nil {
		respondWithFailure(ctx, "Upload failed", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "File uploaded",
		"url":     url,
	})
}
