package Auth

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"

	"github.com/realworld-club/realworld-gin-example-sr/database"
)

// RespondError 统一把业务错误映射为HTTP状态码
// NotFound 类 -> 404，Unauthorized -> 403，Validation -> 400，其余 -> 500
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrUserNotFound),
		errors.Is(err, database.ErrArticleNotFound),
		errors.Is(err, database.ErrCommentNotFound),
		errors.Is(err, database.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, database.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, database.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
