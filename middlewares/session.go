package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	SessionKey    = "session"
)

// Session tags every request with a view-state session id, minting one when
// the client did not send it back.
func Session() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(SessionHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Header(SessionHeader, id)
		ctx.Set(SessionKey, id)
		ctx.Next()
	}
}
