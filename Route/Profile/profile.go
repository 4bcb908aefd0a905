package Profile

import (
	"github.com/gin-gonic/gin"
	"net/http"

	RouteAuth "github.com/realworld-club/realworld-gin-example-sr/Route/Auth"
	"github.com/realworld-club/realworld-gin-example-sr/service/Profile"
)

// SetupProfileRoutes 注册个人资料相关路由
func SetupProfileRoutes(public, auth *gin.RouterGroup) {
	public.GET("/profiles/:username", GetProfile)

	auth.POST("/profiles/:username/follow", FollowUser)
	auth.DELETE("/profiles/:username/follow", UnfollowUser)
}

// GetProfile 查看公开资料，认证可选，following 相对请求者计算
func GetProfile(c *gin.Context) {
	profile, err := Profile.GlobalFollowService.GetProfile(RouteAuth.ViewerID(c), c.Param("username"))
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// FollowUser 关注用户
func FollowUser(c *gin.Context) {
	profile, err := Profile.GlobalFollowService.Follow(RouteAuth.ActingEmail(c), c.Param("username"))
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UnfollowUser 取消关注
func UnfollowUser(c *gin.Context) {
	profile, err := Profile.GlobalFollowService.Unfollow(RouteAuth.ActingEmail(c), c.Param("username"))
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
