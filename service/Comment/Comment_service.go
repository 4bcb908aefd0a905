package Comment

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/realworld-club/realworld-gin-example-sr/database"
	"github.com/realworld-club/realworld-gin-example-sr/service"
)

type CommentServiceInterface interface {
	AddComment(actingEmail, slug, body string) (*database.CommentModel, error)
	ListComments(slug string) ([]database.CommentModel, error)
	DeleteComment(actingEmail, slug string, commentID uint) error
}

var GlobalCommentService CommentServiceInterface

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) CommentServiceInterface {
	s := &CommentService{db: db}
	GlobalCommentService = s
	return s
}

// AddComment 发表评论：分别解析用户和文章，各自返回对应的 NotFound
func (s *CommentService) AddComment(actingEmail, slug, body string) (*database.CommentModel, error) {
	actor, err := service.ResolveUserByEmail(s.db, actingEmail)
	if err != nil {
		return nil, err
	}
	article, err := service.ResolveArticleBySlug(s.db, slug)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: 评论内容不能为空", database.ErrValidation)
	}

	comment := &database.CommentModel{
		ArticleID: article.ID,
		AuthorID:  actor.ID,
		Body:      body,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}

	// 带作者信息返回
	if err := s.db.Preload("Author").First(comment, comment.ID).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments 文章评论列表，无需认证
func (s *CommentService) ListComments(slug string) ([]database.CommentModel, error) {
	article, err := service.ResolveArticleBySlug(s.db, slug)
	if err != nil {
		return nil, err
	}

	var comments []database.CommentModel
	err = s.db.Preload("Author").
		Where("article_id = ?", article.ID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment 删除评论：评论必须属于该文章，且只有评论作者可以删除
// 删除在事务内执行，不会出现文章集合和评论存储不一致的中间状态
func (s *CommentService) DeleteComment(actingEmail, slug string, commentID uint) error {
	actor, err := service.ResolveUserByEmail(s.db, actingEmail)
	if err != nil {
		return err
	}
	article, err := service.ResolveArticleBySlug(s.db, slug)
	if err != nil {
		return err
	}

	var comment database.CommentModel
	err = s.db.Where("id = ? AND article_id = ?", commentID, article.ID).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return database.ErrCommentNotFound
		}
		return err
	}

	if comment.AuthorID != actor.ID {
		return fmt.Errorf("%w: 只有评论作者可以删除评论", database.ErrUnauthorized)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&comment).Error
	})
}
