package database

import "time"

// CreateArticleRequest 创建文章请求结构体
type CreateArticleRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Body        string   `json:"body" binding:"required"`
	TagList     []string `json:"tagList"`
}

// UpdateArticleRequest 更新文章请求结构体，空字段表示不修改
type UpdateArticleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
}

// CreateCommentRequest 发表评论请求结构体
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// ArticleResponse 文章响应结构体
// Favorited 相对请求者计算，FavoritesCount 由收藏集合大小派生，不单独存储
type ArticleResponse struct {
	Slug           string          `json:"slug"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Body           string          `json:"body"`
	TagList        []string        `json:"tagList"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	Favorited      bool            `json:"favorited"`
	FavoritesCount int64           `json:"favoritesCount"`
	Author         ProfileResponse `json:"author"`
}

// MultiArticleResponse 文章列表响应结构体
type MultiArticleResponse struct {
	Articles      []ArticleResponse `json:"articles"`
	ArticlesCount int64             `json:"articlesCount"`
}

// CommentResponse 评论响应结构体
type CommentResponse struct {
	ID        uint            `json:"id"`
	Body      string          `json:"body"`
	CreatedAt time.Time       `json:"createdAt"`
	Author    ProfileResponse `json:"author"`
}

// MultiCommentResponse 评论列表响应结构体，附带数量字段
type MultiCommentResponse struct {
	Comments     []CommentResponse `json:"comments"`
	CommentsSize int               `json:"commentsSize"`
}

// TagListResponse 标签列表响应结构体
type TagListResponse struct {
	Tags []string `json:"tags"`
}
