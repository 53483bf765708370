package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Kariqs/laptopzone-api/admin"
	"github.com/Kariqs/laptopzone-api/state"
	"github.com/Kariqs/laptopzone-api/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Controller carries the dependencies every handler needs.
type Controller struct {
	Store     store.ProductStore
	Users     store.UserStore
	Pipeline  *admin.Pipeline
	Sessions  *state.Sessions
	JWTSecret string
	TokenTTL  time.Duration
}

func New(s store.ProductStore, users store.UserStore, jwtSecret string, tokenTTL time.Duration) *Controller {
	return &Controller{
		Store:     s,
		Users:     users,
		Pipeline:  admin.NewPipeline(s),
		Sessions:  state.NewSessions(),
		JWTSecret: jwtSecret,
		TokenTTL:  tokenTTL,
	}
}

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// respondWithFailure maps the error taxonomy onto HTTP statuses.
func respondWithFailure(ctx *gin.Context, message string, err error) {
	var validationErr *admin.ValidationError
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message":       message,
			"error":         err.Error(),
			"missingFields": validationErr.MissingFields,
			"invalidFields": validationErr.InvalidFields,
		})
	case errors.Is(err, admin.ErrUnauthorized):
		respondWithError(ctx, http.StatusForbidden, message, err)
	case errors.Is(err, admin.ErrAssetTooLarge):
		respondWithError(ctx, http.StatusRequestEntityTooLarge, message, err)
	case errors.Is(err, admin.ErrInvalidAsset):
		respondWithError(ctx, http.StatusBadRequest, message, err)
	case errors.Is(err, admin.ErrSlugTaken), errors.Is(err, store.ErrDuplicateSlug):
		respondWithError(ctx, http.StatusConflict, message, err)
	case errors.Is(err, store.ErrBackendUnavailable):
		zap.L().Error(message, zap.Error(err))
		respondWithError(ctx, http.StatusServiceUnavailable, message, err)
	default:
		zap.L().Error(message, zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, message, err)
	}
}
