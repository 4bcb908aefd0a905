package Auth

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"github.com/realworld-club/realworld-gin-example-sr/database"
	"github.com/realworld-club/realworld-gin-example-sr/service/Auth"
)

// Register 用户注册
func Register(c *gin.Context) {
	var req database.RegisterRequest

	// 绑定请求数据
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "请求参数错误: " + err.Error(),
		})
		return
	}

	user, err := Auth.GlobalUserService.CreateUser(req)
	if err != nil {
		RespondError(c, err)
		return
	}

	// 生成JWT令牌
	token, err := Auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "生成令牌失败",
		})
		return
	}

	c.SetCookie("access_token", token, 3600*24*7, "/", "", false, true)

	c.JSON(http.StatusCreated, gin.H{"user": database.UserResponse{
		Username: user.Username,
		Email:    user.Email,
		Bio:      user.Bio,
		Image:    user.Image,
		Token:    token,
	}})
}

// Login 用户登录
func Login(c *gin.Context) {
	var req database.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "请求参数错误: " + err.Error(),
		})
		return
	}

	user, err := Auth.GlobalUserService.VerifyLogin(req.Email, req.Password)
	if err != nil {
		// 登录失败统一返回参数错误，避免暴露邮箱是否注册
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "邮箱或密码错误",
		})
		return
	}

	token, err := Auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "生成令牌失败",
		})
		return
	}

	c.SetCookie("access_token", token, 3600*24*7, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"user": database.UserResponse{
		Username: user.Username,
		Email:    user.Email,
		Bio:      user.Bio,
		Image:    user.Image,
		Token:    token,
	}})
}

// GetCurrentUser 获取当前登录用户
func GetCurrentUser(c *gin.Context) {
	user, err := Auth.GlobalUserService.GetUserByEmail(ActingEmail(c))
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": database.UserResponse{
		Username: user.Username,
		Email:    user.Email,
		Bio:      user.Bio,
		Image:    user.Image,
	}})
}

// UpdateCurrentUser 更新当前登录用户资料
func UpdateCurrentUser(c *gin.Context) {
	var req database.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "请求参数错误: " + err.Error(),
		})
		return
	}

	user, err := Auth.GlobalUserService.UpdateUser(ActingEmail(c), req)
	if err != nil {
		RespondError(c, err)
		return
	}

	// 邮箱变更后旧令牌中的邮箱已失效，重新签发
	token, err := Auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "生成令牌失败",
		})
		return
	}
	c.SetCookie("access_token", token, 3600*24*7, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"user": database.UserResponse{
		Username: user.Username,
		Email:    user.Email,
		Bio:      user.Bio,
		Image:    user.Image,
		Token:    token,
	}})
}
