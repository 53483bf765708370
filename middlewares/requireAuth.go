package middlewares

import (
	"net/http"
	"strings"

	"github.com/Kariqs/laptopzone-api/utils"
	"github.com/gin-gonic/gin"
)

const CallerUIDKey = "uid"

// RequireAuth resolves the bearer token to a caller uid. Privilege is checked
// later, by the admin pipeline.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "You must sign in first."})
			return
		}

		uid, err := utils.ParseJWT(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")), secret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		ctx.Set(CallerUIDKey, uid)
		ctx.Next()
	}
}
