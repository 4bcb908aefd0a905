package Article

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/realworld-club/realworld-gin-example-sr/database"
	"github.com/realworld-club/realworld-gin-example-sr/service"
)

// ListCriteria 文章列表查询条件，Offset/Limit 为分页参数
type ListCriteria struct {
	Author      string // 按作者用户名过滤
	Tag         string // 按标签名过滤
	FavoritedBy string // 按收藏者用户名过滤
	Offset      int
	Limit       int
}

type ArticleServiceInterface interface {
	CreateArticle(authorEmail string, req database.CreateArticleRequest) (*database.ArticleModel, error)
	UpdateArticle(actingEmail, slug string, req database.UpdateArticleRequest) (*database.ArticleModel, error)
	DeleteArticle(actingEmail, slug string) error
	GetArticleBySlug(slug string) (*database.ArticleModel, error)
	ListArticles(criteria ListCriteria) ([]database.ArticleModel, int64, error)
	FeedArticles(actingEmail string, offset, limit int) ([]database.ArticleModel, int64, error)
}

var GlobalArticleService ArticleServiceInterface

type ArticleService struct {
	db *gorm.DB
}

func NewArticleService(db *gorm.DB) ArticleServiceInterface {
	s := &ArticleService{db: db}
	GlobalArticleService = s
	return s
}

// CreateArticle 创建文章：按邮箱解析作者，生成唯一slug，复用已有标签
// 标签关联和文章写入在同一事务中完成
func (s *ArticleService) CreateArticle(authorEmail string, req database.CreateArticleRequest) (*database.ArticleModel, error) {
	author, err := service.ResolveUserByEmail(s.db, authorEmail)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: 标题不能为空", database.ErrValidation)
	}

	article := &database.ArticleModel{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		AuthorID:    author.ID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		article.Slug = uniqueSlug(tx, req.Title, 0)

		tags, err := findOrCreateTags(tx, req.TagList)
		if err != nil {
			return err
		}
		article.Tags = tags

		return tx.Create(article).Error
	})
	if err != nil {
		return nil, err
	}

	invalidateTagCache()
	return s.GetArticleBySlug(article.Slug)
}

// UpdateArticle 更新文章，只有作者本人可以修改；只应用非空字段，标题变更时重新生成slug
func (s *ArticleService) UpdateArticle(actingEmail, slug string, req database.UpdateArticleRequest) (*database.ArticleModel, error) {
	article, err := service.ResolveArticleBySlug(s.db, slug)
	if err != nil {
		return nil, err
	}
	actor, err := service.ResolveUserByEmail(s.db, actingEmail)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != actor.ID {
		return nil, fmt.Errorf("%w: 只有作者可以修改文章", database.ErrUnauthorized)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if strings.TrimSpace(req.Title) != "" && req.Title != article.Title {
			article.Title = req.Title
			article.Slug = uniqueSlug(tx, req.Title, article.ID)
		}
		if req.Description != "" {
			article.Description = req.Description
		}
		if req.Body != "" {
			article.Body = req.Body
		}
		return tx.Save(article).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetArticleBySlug(article.Slug)
}

// DeleteArticle 删除文章，同一事务内级联删除评论、收藏关系和标签关联
func (s *ArticleService) DeleteArticle(actingEmail, slug string) error {
	article, err := service.ResolveArticleBySlug(s.db, slug)
	if err != nil {
		return err
	}
	actor, err := service.ResolveUserByEmail(s.db, actingEmail)
	if err != nil {
		return err
	}
	if article.AuthorID != actor.ID {
		return fmt.Errorf("%w: 只有作者可以删除文章", database.ErrUnauthorized)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", article.ID).Delete(&database.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", article.ID).Delete(&database.FavoriteModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(article).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(article).Error
	})
}

// GetArticleBySlug 按slug查询文章，带作者和标签
func (s *ArticleService) GetArticleBySlug(slug string) (*database.ArticleModel, error) {
	var article database.ArticleModel
	err := s.db.Preload("Author").Preload("Tags").
		Where("slug = ?", slug).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

// listQuery 按条件构建查询，Count 和 Find 各构建一次避免复用同一builder
func (s *ArticleService) listQuery(c ListCriteria) *gorm.DB {
	query := s.db.Model(&database.ArticleModel{})
	if c.Author != "" {
		query = query.
			Joins("JOIN users AS authors ON authors.id = article_models.author_id").
			Where("authors.username = ?", c.Author)
	}
	if c.Tag != "" {
		query = query.
			Joins("JOIN article_tags ON article_tags.article_model_id = article_models.id").
			Joins("JOIN tag_models ON tag_models.id = article_tags.tag_model_id").
			Where("tag_models.tag = ?", c.Tag)
	}
	if c.FavoritedBy != "" {
		query = query.
			Joins("JOIN favorite_models ON favorite_models.article_id = article_models.id").
			Joins("JOIN users AS favoriters ON favoriters.id = favorite_models.user_id").
			Where("favoriters.username = ?", c.FavoritedBy)
	}
	return query
}

// ListArticles 文章列表，支持作者/标签/收藏者过滤，按创建时间倒序分页
func (s *ArticleService) ListArticles(c ListCriteria) ([]database.ArticleModel, int64, error) {
	if c.Limit <= 0 {
		c.Limit = 20
	}

	var total int64
	if err := s.listQuery(c).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []database.ArticleModel
	err := s.listQuery(c).
		Preload("Author").Preload("Tags").
		Order("article_models.created_at DESC").
		Offset(c.Offset).Limit(c.Limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// FeedArticles 关注流：当前用户关注的作者发表的文章，按创建时间倒序
func (s *ArticleService) FeedArticles(actingEmail string, offset, limit int) ([]database.ArticleModel, int64, error) {
	actor, err := service.ResolveUserByEmail(s.db, actingEmail)
	if err != nil {
		return nil, 0, err
	}
	if limit <= 0 {
		limit = 20
	}

	followed := s.db.Model(&database.FollowModel{}).
		Select("following_id").
		Where("follower_id = ?", actor.ID)

	var total int64
	err = s.db.Model(&database.ArticleModel{}).
		Where("author_id IN (?)", followed).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var articles []database.ArticleModel
	err = s.db.Preload("Author").Preload("Tags").
		Where("author_id IN (?)", followed).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}
