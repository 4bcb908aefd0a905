package Auth

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/realworld-club/realworld-gin-example-sr/database"
	"github.com/realworld-club/realworld-gin-example-sr/service/Auth"
)

// setupUserService 创建用户服务测试环境（使用 SQLite 内存数据库）
func setupUserService(t *testing.T) Auth.UserService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("无法创建测试数据库: %v", err)
	}

	if err := db.AutoMigrate(&database.User{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	service, err := Auth.NewUserService(db)
	if err != nil {
		t.Fatalf("创建用户服务失败: %v", err)
	}
	return service
}

// TestCreateUser 测试注册和密码加密
func TestCreateUser(t *testing.T) {
	service := setupUserService(t)

	user, err := service.CreateUser(database.RegisterRequest{
		Username: "seokrae",
		Email:    "seokrae@gmail.com",
		Password: "1234password",
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	if user.Email != "seokrae@gmail.com" {
		t.Errorf("邮箱不匹配: %s", user.Email)
	}
	if user.PasswordHash == "1234password" {
		t.Error("密码不应明文存储")
	}
	if !Auth.VerifyPassword("1234password", user.PasswordHash) {
		t.Error("密码校验失败")
	}
}

// TestCreateUserDuplicate 测试用户名和邮箱唯一性
func TestCreateUserDuplicate(t *testing.T) {
	service := setupUserService(t)

	_, err := service.CreateUser(database.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "password1",
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	// 邮箱重复
	_, err = service.CreateUser(database.RegisterRequest{
		Username: "alice2", Email: "a@x.com", Password: "password1",
	})
	if !errors.Is(err, database.ErrValidation) {
		t.Errorf("重复邮箱应返回校验错误, got: %v", err)
	}

	// 用户名重复
	_, err = service.CreateUser(database.RegisterRequest{
		Username: "alice", Email: "a2@x.com", Password: "password1",
	})
	if !errors.Is(err, database.ErrValidation) {
		t.Errorf("重复用户名应返回校验错误, got: %v", err)
	}
}

// TestUpdateUserEmailUniqueness 测试更新时邮箱不能占用他人邮箱
func TestUpdateUserEmailUniqueness(t *testing.T) {
	service := setupUserService(t)

	_, err := service.CreateUser(database.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "password1",
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	_, err = service.CreateUser(database.RegisterRequest{
		Username: "bob", Email: "b@x.com", Password: "password1",
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	// bob 尝试改成 alice 的邮箱
	_, err = service.UpdateUser("b@x.com", database.UpdateUserRequest{Email: "a@x.com"})
	if !errors.Is(err, database.ErrValidation) {
		t.Errorf("占用他人邮箱应返回校验错误, got: %v", err)
	}

	// 改成未占用的邮箱
	updated, err := service.UpdateUser("b@x.com", database.UpdateUserRequest{Email: "b2@x.com", Bio: "hello"})
	if err != nil {
		t.Fatalf("更新用户失败: %v", err)
	}
	if updated.Email != "b2@x.com" || updated.Bio != "hello" {
		t.Errorf("更新结果不正确: %+v", updated)
	}

	// 旧邮箱已查不到
	if _, err := service.GetUserByEmail("b@x.com"); !errors.Is(err, database.ErrUserNotFound) {
		t.Errorf("旧邮箱应查不到用户, got: %v", err)
	}
}

// TestVerifyLogin 测试登录校验
func TestVerifyLogin(t *testing.T) {
	service := setupUserService(t)

	_, err := service.CreateUser(database.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "password1",
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	if _, err := service.VerifyLogin("a@x.com", "password1"); err != nil {
		t.Errorf("正确密码登录失败: %v", err)
	}
	if _, err := service.VerifyLogin("a@x.com", "wrong"); !errors.Is(err, database.ErrValidation) {
		t.Errorf("错误密码应返回校验错误, got: %v", err)
	}
	if _, err := service.VerifyLogin("missing@x.com", "password1"); !errors.Is(err, database.ErrUserNotFound) {
		t.Errorf("不存在的用户应返回用户不存在, got: %v", err)
	}
}
