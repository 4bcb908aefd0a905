package service

import (
	"errors"
	"gorm.io/gorm"

	"github.com/realworld-club/realworld-gin-example-sr/database"
)

// 所有服务共用的"解析行为人 / 解析目标资源"查找逻辑：
// 按自然主键（Email / Username / Slug）查找，查不到时返回对应的 NotFound 错误

// ResolveUserByEmail 按邮箱解析用户
func ResolveUserByEmail(db *gorm.DB, email string) (*database.User, error) {
	var user database.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ResolveUserByUsername 按用户名解析用户
func ResolveUserByUsername(db *gorm.DB, username string) (*database.User, error) {
	var user database.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ResolveArticleBySlug 按 slug 解析文章
func ResolveArticleBySlug(db *gorm.DB, slug string) (*database.ArticleModel, error) {
	var article database.ArticleModel
	if err := db.Where("slug = ?", slug).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}
