package Profile

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/realworld-club/realworld-gin-example-sr/database"
	"github.com/realworld-club/realworld-gin-example-sr/service"
)

type FollowServiceInterface interface {
	Follow(fromEmail, toUsername string) (*database.ProfileResponse, error)
	Unfollow(fromEmail, toUsername string) (*database.ProfileResponse, error)
	IsFollowing(fromUserID, toUserID uint) bool
	GetProfile(viewerID uint, username string) (*database.ProfileResponse, error)
}

var GlobalFollowService FollowServiceInterface

type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) FollowServiceInterface {
	s := &FollowService{db: db}
	GlobalFollowService = s
	return s
}

// Follow 关注用户，幂等：(FollowerID, FollowingID) 唯一
// 不允许关注自己
func (s *FollowService) Follow(fromEmail, toUsername string) (*database.ProfileResponse, error) {
	fromUser, err := service.ResolveUserByEmail(s.db, fromEmail)
	if err != nil {
		return nil, err
	}
	toUser, err := service.ResolveUserByUsername(s.db, toUsername)
	if err != nil {
		return nil, err
	}
	if fromUser.ID == toUser.ID {
		return nil, fmt.Errorf("%w: 不能关注自己", database.ErrValidation)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var follow database.FollowModel
		return tx.Where("follower_id = ? AND following_id = ?", fromUser.ID, toUser.ID).
			FirstOrCreate(&follow, database.FollowModel{FollowerID: fromUser.ID, FollowingID: toUser.ID}).Error
	})
	if err != nil {
		return nil, err
	}

	return BuildProfile(toUser, true), nil
}

// Unfollow 取消关注，幂等：没关注过也不报错
func (s *FollowService) Unfollow(fromEmail, toUsername string) (*database.ProfileResponse, error) {
	fromUser, err := service.ResolveUserByEmail(s.db, fromEmail)
	if err != nil {
		return nil, err
	}
	toUser, err := service.ResolveUserByUsername(s.db, toUsername)
	if err != nil {
		return nil, err
	}

	err = s.db.Where("follower_id = ? AND following_id = ?", fromUser.ID, toUser.ID).
		Delete(&database.FollowModel{}).Error
	if err != nil {
		return nil, err
	}

	return BuildProfile(toUser, false), nil
}

// IsFollowing 请求者是否关注了目标用户，匿名请求者传 0 恒为 false
func (s *FollowService) IsFollowing(fromUserID, toUserID uint) bool {
	if fromUserID == 0 {
		return false
	}
	var count int64
	s.db.Model(&database.FollowModel{}).
		Where("follower_id = ? AND following_id = ?", fromUserID, toUserID).
		Count(&count)
	return count > 0
}

// GetProfile 按用户名查询公开资料，Following 相对请求者计算
func (s *FollowService) GetProfile(viewerID uint, username string) (*database.ProfileResponse, error) {
	user, err := service.ResolveUserByUsername(s.db, username)
	if err != nil {
		return nil, database.ErrProfileNotFound
	}
	return BuildProfile(user, s.IsFollowing(viewerID, user.ID)), nil
}

// BuildProfile 用户实体到公开资料的投影
func BuildProfile(user *database.User, following bool) *database.ProfileResponse {
	return &database.ProfileResponse{
		Username:  user.Username,
		Bio:       user.Bio,
		Image:     user.Image,
		Following: following,
	}
}
