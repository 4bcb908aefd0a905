package Article

import (
	"gorm.io/gorm"

	"github.com/realworld-club/realworld-gin-example-sr/database"
	"github.com/realworld-club/realworld-gin-example-sr/service"
)

type FavoriteServiceInterface interface {
	Favorite(actingEmail, slug string) (*database.ArticleModel, error)
	Unfavorite(actingEmail, slug string) (*database.ArticleModel, error)
	FavoritesCount(articleID uint) (int64, error)
	IsFavorited(userID, articleID uint) bool
}

var GlobalFavoriteService FavoriteServiceInterface

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) FavoriteServiceInterface {
	s := &FavoriteService{db: db}
	GlobalFavoriteService = s
	return s
}

// Favorite 收藏文章，幂等：(UserID, ArticleID) 唯一，重复收藏不产生第二条记录
func (s *FavoriteService) Favorite(actingEmail, slug string) (*database.ArticleModel, error) {
	actor, err := service.ResolveUserByEmail(s.db, actingEmail)
	if err != nil {
		return nil, err
	}
	article, err := service.ResolveArticleBySlug(s.db, slug)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var favorite database.FavoriteModel
		return tx.Where("user_id = ? AND article_id = ?", actor.ID, article.ID).
			FirstOrCreate(&favorite, database.FavoriteModel{UserID: actor.ID, ArticleID: article.ID}).Error
	})
	if err != nil {
		return nil, err
	}

	return GlobalArticleService.GetArticleBySlug(slug)
}

// Unfavorite 取消收藏，幂等：没收藏过也不报错
func (s *FavoriteService) Unfavorite(actingEmail, slug string) (*database.ArticleModel, error) {
	actor, err := service.ResolveUserByEmail(s.db, actingEmail)
	if err != nil {
		return nil, err
	}
	article, err := service.ResolveArticleBySlug(s.db, slug)
	if err != nil {
		return nil, err
	}

	err = s.db.Where("user_id = ? AND article_id = ?", actor.ID, article.ID).
		Delete(&database.FavoriteModel{}).Error
	if err != nil {
		return nil, err
	}

	return GlobalArticleService.GetArticleBySlug(slug)
}

// FavoritesCount 收藏数由收藏集合大小派生
func (s *FavoriteService) FavoritesCount(articleID uint) (int64, error) {
	var count int64
	err := s.db.Model(&database.FavoriteModel{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	return count, err
}

// IsFavorited 请求者是否收藏了该文章，匿名请求者传 0 恒为 false
func (s *FavoriteService) IsFavorited(userID, articleID uint) bool {
	if userID == 0 {
		return false
	}
	var count int64
	s.db.Model(&database.FavoriteModel{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count)
	return count > 0
}
