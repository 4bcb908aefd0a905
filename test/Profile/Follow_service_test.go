package Profile

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/realworld-club/realworld-gin-example-sr/database"
	"github.com/realworld-club/realworld-gin-example-sr/service/Profile"
)

// setupFollowService 创建关注服务测试环境（使用 SQLite 内存数据库）
func setupFollowService(t *testing.T) (*gorm.DB, Profile.FollowServiceInterface) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "无法创建测试数据库")

	err = db.AutoMigrate(&database.User{}, &database.FollowModel{})
	require.NoError(t, err, "数据库迁移失败")

	return db, Profile.NewFollowService(db)
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string) *database.User {
	user := &database.User{
		Username:     username,
		Email:        email,
		PasswordHash: "test-hash",
		Bio:          "bio of " + username,
	}
	require.NoError(t, db.Create(user).Error, "创建测试用户失败")
	return user
}

// TestFollowLifecycle 测试关注/取关完整流程
func TestFollowLifecycle(t *testing.T) {
	db, service := setupFollowService(t)
	alice := createTestUser(t, db, "alice", "a@x.com")
	bob := createTestUser(t, db, "bob", "b@x.com")

	profile, err := service.Follow("a@x.com", "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", profile.Username)
	assert.True(t, profile.Following)
	assert.True(t, service.IsFollowing(alice.ID, bob.ID))

	profile, err = service.Unfollow("a@x.com", "bob")
	require.NoError(t, err)
	assert.False(t, profile.Following)
	assert.False(t, service.IsFollowing(alice.ID, bob.ID))
}

// TestFollowIdempotent 测试重复关注只留一条边
func TestFollowIdempotent(t *testing.T) {
	db, service := setupFollowService(t)
	createTestUser(t, db, "alice", "a@x.com")
	createTestUser(t, db, "bob", "b@x.com")

	_, err := service.Follow("a@x.com", "bob")
	require.NoError(t, err)
	_, err = service.Follow("a@x.com", "bob")
	require.NoError(t, err, "重复关注应幂等")

	var count int64
	db.Model(&database.FollowModel{}).Count(&count)
	assert.Equal(t, int64(1), count, "重复关注只应留一条边")

	// 取关两次同样幂等
	_, err = service.Unfollow("a@x.com", "bob")
	require.NoError(t, err)
	_, err = service.Unfollow("a@x.com", "bob")
	require.NoError(t, err, "重复取关应幂等")
}

// TestFollowSelf 测试不允许关注自己
func TestFollowSelf(t *testing.T) {
	db, service := setupFollowService(t)
	createTestUser(t, db, "alice", "a@x.com")

	_, err := service.Follow("a@x.com", "alice")
	assert.ErrorIs(t, err, database.ErrValidation, "关注自己应被拒绝")
}

// TestFollowDirectional 测试关注是有方向的
func TestFollowDirectional(t *testing.T) {
	db, service := setupFollowService(t)
	alice := createTestUser(t, db, "alice", "a@x.com")
	bob := createTestUser(t, db, "bob", "b@x.com")

	_, err := service.Follow("a@x.com", "bob")
	require.NoError(t, err)

	assert.True(t, service.IsFollowing(alice.ID, bob.ID))
	assert.False(t, service.IsFollowing(bob.ID, alice.ID), "反方向不应被视为已关注")
}

// TestGetProfileViewerRelative 测试资料的 following 字段相对请求者计算
func TestGetProfileViewerRelative(t *testing.T) {
	db, service := setupFollowService(t)
	alice := createTestUser(t, db, "alice", "a@x.com")
	createTestUser(t, db, "bob", "b@x.com")

	_, err := service.Follow("a@x.com", "bob")
	require.NoError(t, err)

	// alice 视角
	profile, err := service.GetProfile(alice.ID, "bob")
	require.NoError(t, err)
	assert.True(t, profile.Following)
	assert.Equal(t, "bio of bob", profile.Bio)

	// 匿名视角
	profile, err = service.GetProfile(0, "bob")
	require.NoError(t, err)
	assert.False(t, profile.Following, "匿名请求者 following 应为 false")

	// 不存在的用户名
	_, err = service.GetProfile(alice.ID, "nobody")
	assert.ErrorIs(t, err, database.ErrProfileNotFound)
}

// TestFollowUnknownUser 测试双方都必须存在
func TestFollowUnknownUser(t *testing.T) {
	db, service := setupFollowService(t)
	createTestUser(t, db, "alice", "a@x.com")

	_, err := service.Follow("a@x.com", "nobody")
	assert.ErrorIs(t, err, database.ErrUserNotFound)

	_, err = service.Follow("missing@x.com", "alice")
	assert.ErrorIs(t, err, database.ErrUserNotFound)
}
