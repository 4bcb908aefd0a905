package database

import (
	"gorm.io/gorm"
)

// User 用户数据存储结构
// Email 是用户的自然主键：唯一且创建后不可变，服务层按 Email 定位用户
type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null;size:50"`
	Email        string `gorm:"uniqueIndex;not null;size:100"`
	PasswordHash string `gorm:"not null;size:255"`
	Bio          string `gorm:"size:1024"`
	Image        string `gorm:"size:512"`
}

// IsSameUser 用户相等性按 Email 判断，而不是按对象引用
func (u *User) IsSameUser(other *User) bool {
	if other == nil {
		return false
	}
	return u.Email == other.Email
}

// RegisterRequest 注册请求结构体
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

// LoginRequest 登录请求结构体
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest 更新当前用户请求结构体，空字段表示不修改
type UpdateUserRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6,max=100"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// UserResponse 当前用户响应结构体
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token,omitempty"`
}

// ProfileResponse 公开资料响应结构体，Following 相对于请求者计算
type ProfileResponse struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}
