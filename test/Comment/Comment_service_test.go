package Comment

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/realworld-club/realworld-gin-example-sr/database"
	"github.com/realworld-club/realworld-gin-example-sr/service/Article"
	"github.com/realworld-club/realworld-gin-example-sr/service/Comment"
	"github.com/realworld-club/realworld-gin-example-sr/service/Profile"
)

// setupCommentTestDB 创建评论服务测试环境（使用 SQLite 内存数据库）
func setupCommentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("无法创建测试数据库: %v", err)
	}

	err = db.AutoMigrate(
		&database.User{},
		&database.ArticleModel{},
		&database.TagModel{},
		&database.CommentModel{},
		&database.FavoriteModel{},
		&database.FollowModel{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	Article.NewArticleService(db)
	Article.NewTagService(db)
	Article.NewFavoriteService(db)
	Profile.NewFollowService(db)
	Comment.NewCommentService(db)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string) *database.User {
	user := &database.User{
		Username:     username,
		Email:        email,
		PasswordHash: "test-hash",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

func createTestArticle(t *testing.T, authorEmail, title string) *database.ArticleModel {
	article, err := Article.GlobalArticleService.CreateArticle(authorEmail, database.CreateArticleRequest{
		Title: title, Body: "body",
	})
	if err != nil {
		t.Fatalf("创建测试文章失败: %v", err)
	}
	return article
}

// TestAddAndListComments 测试发表和查询评论
func TestAddAndListComments(t *testing.T) {
	db := setupCommentTestDB(t)
	createTestUser(t, db, "alice", "a@x.com")
	createTestUser(t, db, "bob", "b@x.com")
	article := createTestArticle(t, "a@x.com", "Hello")

	comment, err := Comment.GlobalCommentService.AddComment("b@x.com", article.Slug, "nice post")
	if err != nil {
		t.Fatalf("发表评论失败: %v", err)
	}
	if comment.Body != "nice post" || comment.Author.Username != "bob" {
		t.Errorf("评论内容不匹配: %+v", comment)
	}

	comments, err := Comment.GlobalCommentService.ListComments(article.Slug)
	if err != nil {
		t.Fatalf("查询评论失败: %v", err)
	}
	if len(comments) != 1 || comments[0].Body != "nice post" {
		t.Errorf("评论列表不匹配: %d", len(comments))
	}

	// 不存在的文章
	if _, err := Comment.GlobalCommentService.AddComment("b@x.com", "no-such-slug", "x"); !errors.Is(err, database.ErrArticleNotFound) {
		t.Errorf("应返回文章不存在, got: %v", err)
	}
	// 不存在的用户
	if _, err := Comment.GlobalCommentService.AddComment("missing@x.com", article.Slug, "x"); !errors.Is(err, database.ErrUserNotFound) {
		t.Errorf("应返回用户不存在, got: %v", err)
	}
	// 空评论
	if _, err := Comment.GlobalCommentService.AddComment("b@x.com", article.Slug, "  "); !errors.Is(err, database.ErrValidation) {
		t.Errorf("空评论应返回校验错误, got: %v", err)
	}
}

// TestDeleteCommentAuthorization 测试只有评论作者可以删除评论
// 文章作者删除他人评论同样被拒绝，评论保持可见
func TestDeleteCommentAuthorization(t *testing.T) {
	db := setupCommentTestDB(t)
	createTestUser(t, db, "alice", "a@x.com")
	createTestUser(t, db, "bob", "b@x.com")
	article := createTestArticle(t, "a@x.com", "Hello")

	// bob 在 alice 的文章下评论
	comment, err := Comment.GlobalCommentService.AddComment("b@x.com", article.Slug, "nice post")
	if err != nil {
		t.Fatalf("发表评论失败: %v", err)
	}

	// 文章作者 alice 尝试删除 bob 的评论
	err = Comment.GlobalCommentService.DeleteComment("a@x.com", article.Slug, comment.ID)
	if !errors.Is(err, database.ErrUnauthorized) {
		t.Errorf("文章作者删除他人评论应返回权限错误, got: %v", err)
	}

	// 评论仍然在列表里
	comments, err := Comment.GlobalCommentService.ListComments(article.Slug)
	if err != nil {
		t.Fatalf("查询评论失败: %v", err)
	}
	if len(comments) != 1 {
		t.Errorf("评论应保持不变: %d", len(comments))
	}

	// 评论作者本人删除成功
	if err := Comment.GlobalCommentService.DeleteComment("b@x.com", article.Slug, comment.ID); err != nil {
		t.Fatalf("评论作者删除失败: %v", err)
	}
	comments, _ = Comment.GlobalCommentService.ListComments(article.Slug)
	if len(comments) != 0 {
		t.Errorf("删除后评论列表应为空: %d", len(comments))
	}
}

// TestDeleteCommentNotFound 测试评论必须属于指定文章
func TestDeleteCommentNotFound(t *testing.T) {
	db := setupCommentTestDB(t)
	createTestUser(t, db, "alice", "a@x.com")
	createTestUser(t, db, "bob", "b@x.com")
	first := createTestArticle(t, "a@x.com", "First")
	second := createTestArticle(t, "a@x.com", "Second")

	comment, err := Comment.GlobalCommentService.AddComment("b@x.com", first.Slug, "nice")
	if err != nil {
		t.Fatalf("发表评论失败: %v", err)
	}

	// 评论ID正确但文章不对
	err = Comment.GlobalCommentService.DeleteComment("b@x.com", second.Slug, comment.ID)
	if !errors.Is(err, database.ErrCommentNotFound) {
		t.Errorf("应返回评论不存在, got: %v", err)
	}

	// 不存在的评论ID
	err = Comment.GlobalCommentService.DeleteComment("b@x.com", first.Slug, 9999)
	if !errors.Is(err, database.ErrCommentNotFound) {
		t.Errorf("应返回评论不存在, got: %v", err)
	}
}
