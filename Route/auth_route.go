package Route

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/realworld-club/realworld-gin-example-sr/Config"
	RouteArticle "github.com/realworld-club/realworld-gin-example-sr/Route/Article"
	RouteAuth "github.com/realworld-club/realworld-gin-example-sr/Route/Auth"
	RouteProfile "github.com/realworld-club/realworld-gin-example-sr/Route/Profile"
)

func ApiRoute() {
	r := gin.Default()

	// 配置CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           120 * time.Hour,
		AllowOriginFunc: func(origin string) bool {
			// 在生产环境中可以动态验证来源
			return true
		},
	}))

	// API 路由
	api := r.Group("/api")

	// 公开路由
	api.POST("/users", RouteAuth.Register)
	api.POST("/users/login", RouteAuth.Login)

	// 只读路由，认证可选：带令牌时 favorited/following 按请求者计算
	public := api.Group("/")
	public.Use(RouteAuth.OptionalAuthMiddleware())

	// 需要认证的路由
	auth := api.Group("/")
	auth.Use(RouteAuth.AuthMiddleware())

	// 当前用户
	auth.GET("/user", RouteAuth.GetCurrentUser)
	auth.PUT("/user", RouteAuth.UpdateCurrentUser)

	RouteArticle.SetupArticleRoutes(public, auth)
	RouteProfile.SetupProfileRoutes(public, auth)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	// 启动服务器
	if err := r.Run(":" + Config.Cfg.ServerPort); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
