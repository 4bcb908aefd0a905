package Article

import (
	"sort"

	"github.com/realworld-club/realworld-gin-example-sr/database"
	"github.com/realworld-club/realworld-gin-example-sr/service/Profile"
)

// 响应组装：实体到响应结构体的纯投影
// Favorited/Following 相对请求者计算，匿名请求者 viewerID 为 0，两个字段恒为 false

// BuildArticleResponse 组装单篇文章响应
func BuildArticleResponse(article *database.ArticleModel, viewerID uint) database.ArticleResponse {
	tagList := make([]string, 0, len(article.Tags))
	for _, tag := range article.Tags {
		tagList = append(tagList, tag.Tag)
	}
	sort.Strings(tagList)

	count, _ := GlobalFavoriteService.FavoritesCount(article.ID)
	following := Profile.GlobalFollowService.IsFollowing(viewerID, article.AuthorID)

	return database.ArticleResponse{
		Slug:           article.Slug,
		Title:          article.Title,
		Description:    article.Description,
		Body:           article.Body,
		TagList:        tagList,
		CreatedAt:      article.CreatedAt,
		UpdatedAt:      article.UpdatedAt,
		Favorited:      GlobalFavoriteService.IsFavorited(viewerID, article.ID),
		FavoritesCount: count,
		Author:         *Profile.BuildProfile(&article.Author, following),
	}
}

// BuildMultiArticleResponse 组装文章列表响应，total 是过滤条件下的总数而非本页数量
func BuildMultiArticleResponse(articles []database.ArticleModel, total int64, viewerID uint) database.MultiArticleResponse {
	responses := make([]database.ArticleResponse, 0, len(articles))
	for i := range articles {
		responses = append(responses, BuildArticleResponse(&articles[i], viewerID))
	}
	return database.MultiArticleResponse{
		Articles:      responses,
		ArticlesCount: total,
	}
}

// BuildCommentResponse 组装单条评论响应
func BuildCommentResponse(comment *database.CommentModel, viewerID uint) database.CommentResponse {
	following := Profile.GlobalFollowService.IsFollowing(viewerID, comment.AuthorID)
	return database.CommentResponse{
		ID:        comment.ID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
		Author:    *Profile.BuildProfile(&comment.Author, following),
	}
}

// BuildMultiCommentResponse 组装评论列表响应
func BuildMultiCommentResponse(comments []database.CommentModel, viewerID uint) database.MultiCommentResponse {
	responses := make([]database.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, BuildCommentResponse(&comments[i], viewerID))
	}
	return database.MultiCommentResponse{
		Comments:     responses,
		CommentsSize: len(responses),
	}
}
