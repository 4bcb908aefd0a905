package Auth

import (
	"errors"
	"fmt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/realworld-club/realworld-gin-example-sr/database"
	"github.com/realworld-club/realworld-gin-example-sr/service"
)

// GlobalUserService 全局 UserService 实例
var GlobalUserService UserService

// UserService 用户服务接口
type UserService interface {
	CreateUser(req database.RegisterRequest) (*database.User, error)
	GetUserByEmail(email string) (*database.User, error)
	GetUserByID(id uint) (*database.User, error)
	UpdateUser(email string, req database.UpdateUserRequest) (*database.User, error)
	VerifyLogin(email, password string) (*database.User, error)
}

// 用户服务实现
type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) (UserService, error) {

	if db == nil {
		return nil, errors.New("数据库连接不能为空")
	}

	userService := &userService{db}
	GlobalUserService = userService
	return userService, nil
}

// CreateUser 创建用户，用户名和邮箱都必须唯一
func (s *userService) CreateUser(req database.RegisterRequest) (*database.User, error) {
	var existing database.User
	if err := s.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: 用户名已存在", database.ErrValidation)
	}
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: 邮箱已被注册", database.ErrValidation)
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &database.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByEmail 根据邮箱获取用户
func (s *userService) GetUserByEmail(email string) (*database.User, error) {
	return service.ResolveUserByEmail(s.db, email)
}

// GetUserByID 根据ID获取用户
func (s *userService) GetUserByID(id uint) (*database.User, error) {
	var user database.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser 更新当前用户资料，只应用非空字段
// 邮箱允许修改，但目标邮箱不能已被其他用户占用
func (s *userService) UpdateUser(email string, req database.UpdateUserRequest) (*database.User, error) {
	user, err := service.ResolveUserByEmail(s.db, email)
	if err != nil {
		return nil, err
	}

	if req.Username != "" && req.Username != user.Username {
		var existing database.User
		if err := s.db.Where("username = ? AND id <> ?", req.Username, user.ID).First(&existing).Error; err == nil {
			return nil, fmt.Errorf("%w: 用户名已存在", database.ErrValidation)
		}
		user.Username = req.Username
	}
	if req.Email != "" && req.Email != user.Email {
		var existing database.User
		if err := s.db.Where("email = ? AND id <> ?", req.Email, user.ID).First(&existing).Error; err == nil {
			return nil, fmt.Errorf("%w: 邮箱已被注册", database.ErrValidation)
		}
		user.Email = req.Email
	}
	if req.Password != "" {
		hashed, err := HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Image != "" {
		user.Image = req.Image
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyLogin 校验邮箱和密码
func (s *userService) VerifyLogin(email, password string) (*database.User, error) {
	user, err := service.ResolveUserByEmail(s.db, email)
	if err != nil {
		return nil, err
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: 邮箱或密码错误", database.ErrValidation)
	}
	return user, nil
}

// HashPassword 使用bcrypt加密密码
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword 校验密码
func VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
