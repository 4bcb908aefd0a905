package database

import (
	"time"

	"gorm.io/gorm"
)

// ArticleModel 文章，Slug 是对外的自然主键，AuthorID 创建后不可变
type ArticleModel struct {
	gorm.Model
	Slug        string `gorm:"uniqueIndex;not null"`
	Title       string `gorm:"not null"`
	Description string `gorm:"size:2048"`
	Body        string `gorm:"size:2048"`
	Author      User
	AuthorID    uint
	Tags        []TagModel     `gorm:"many2many:article_tags;"`
	Comments    []CommentModel `gorm:"ForeignKey:ArticleID"`
}

// TagModel 标签按名称去重（区分大小写），没有独立生命周期
type TagModel struct {
	gorm.Model
	Tag           string         `gorm:"uniqueIndex;not null"`
	ArticleModels []ArticleModel `gorm:"many2many:article_tags;"`
}

// CommentModel 评论只存在于所属文章之下，随文章级联删除
type CommentModel struct {
	gorm.Model
	ArticleID uint `gorm:"index"`
	Author    User
	AuthorID  uint
	Body      string `gorm:"size:2048;not null"`
}

// FavoriteModel 收藏关系，(UserID, ArticleID) 唯一，只有存在与否没有其他状态
// 关系行不走软删除，取消收藏后同一对键要能重新插入
type FavoriteModel struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index;uniqueIndex:idx_user_article"`
	ArticleID uint `gorm:"index;uniqueIndex:idx_user_article"`
	CreatedAt time.Time
}

// FollowModel 关注关系，有方向：Follower 关注 Following，同样不走软删除
type FollowModel struct {
	ID          uint `gorm:"primaryKey"`
	FollowerID  uint `gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint `gorm:"index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time
}
