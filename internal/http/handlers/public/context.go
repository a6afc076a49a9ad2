package public

import (
	handlershared "github.com/blogicum/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func parsePostID(c *gin.Context) (uint, bool) {
	return handlershared.ParseIDParam(c, "id")
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondPageError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondPageError(c, code, key, err)
}
