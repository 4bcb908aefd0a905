package Auth

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"

	"github.com/realworld-club/realworld-gin-example-sr/service/Auth"
)

// AuthMiddleware 认证中间件，未携带有效令牌直接拒绝
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseTokenFromRequest(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "认证令牌无效或未提供",
			})
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}

// OptionalAuthMiddleware 可选认证中间件：带令牌则注入用户信息，
// 匿名请求照常放行，用于需要按请求者计算 favorited/following 的只读接口
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseTokenFromRequest(c); ok {
			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
		}
		c.Next()
	}
}

// parseTokenFromRequest 从 Authorization 头或 Cookie 中取出并校验令牌
func parseTokenFromRequest(c *gin.Context) (*Auth.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		token, err := c.Cookie("access_token")
		if err != nil {
			return nil, false
		}
		authHeader = "Bearer " + token
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := Auth.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// ViewerID 从上下文取请求者ID，匿名请求返回 0
func ViewerID(c *gin.Context) uint {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// ActingEmail 从上下文取请求者邮箱，匿名请求返回空串
func ActingEmail(c *gin.Context) string {
	return c.GetString("email")
}
