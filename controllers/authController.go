package controllers

import (
	"net/http"

	"github.com/Kariqs/laptopzone-api/models"
	"github.com/Kariqs/laptopzone-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgInvalidCredentials    = "invalid email or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
)

// Login handles admin dashboard authentication
func (c *Controller) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := c.Users.FindUserByEmail(ctx.Request.Context(), loginData.Email)
	if err != nil {
		respondWithFailure(ctx, msgInternalServerError, err)
		return
	}
	if user == nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if err := utils.ComparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	tokenString, err := utils.GenerateJWT(user.UID, user.Email, c.JWTSecret, c.TokenTTL)
	if err != nil {
		zap.L().Error("JWT generation error", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": tokenString, "uid": user.UID})
}
