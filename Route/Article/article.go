package Article

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"

	RouteAuth "github.com/realworld-club/realworld-gin-example-sr/Route/Auth"
	"github.com/realworld-club/realworld-gin-example-sr/database"
	"github.com/realworld-club/realworld-gin-example-sr/service/Article"
)

// SetupArticleRoutes 注册文章相关路由
// public 组挂可选认证中间件，auth 组挂强制认证中间件
func SetupArticleRoutes(public, auth *gin.RouterGroup) {
	public.GET("/articles", ListArticles)
	public.GET("/articles/:slug", GetArticle)
	public.GET("/articles/:slug/comments", ListComments)
	public.GET("/tags", ListTags)

	auth.GET("/articles/feed", FeedArticles)
	auth.POST("/articles", CreateArticle)
	auth.PUT("/articles/:slug", UpdateArticle)
	auth.DELETE("/articles/:slug", DeleteArticle)
	auth.POST("/articles/:slug/comments", AddComment)
	auth.DELETE("/articles/:slug/comments/:id", DeleteComment)
	auth.POST("/articles/:slug/favorite", FavoriteArticle)
	auth.DELETE("/articles/:slug/favorite", UnfavoriteArticle)
}

// pageParams 解析 offset/limit 分页参数
func pageParams(c *gin.Context) (int, int) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return offset, limit
}

// ListArticles 文章列表，认证可选
func ListArticles(c *gin.Context) {
	offset, limit := pageParams(c)
	criteria := Article.ListCriteria{
		Author:      c.Query("author"),
		Tag:         c.Query("tag"),
		FavoritedBy: c.Query("favorited"),
		Offset:      offset,
		Limit:       limit,
	}

	articles, total, err := Article.GlobalArticleService.ListArticles(criteria)
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Article.BuildMultiArticleResponse(articles, total, RouteAuth.ViewerID(c)))
}

// FeedArticles 关注流，认证必须
func FeedArticles(c *gin.Context) {
	offset, limit := pageParams(c)

	articles, total, err := Article.GlobalArticleService.FeedArticles(RouteAuth.ActingEmail(c), offset, limit)
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Article.BuildMultiArticleResponse(articles, total, RouteAuth.ViewerID(c)))
}

// GetArticle 单篇文章，认证可选
func GetArticle(c *gin.Context) {
	article, err := Article.GlobalArticleService.GetArticleBySlug(c.Param("slug"))
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"article": Article.BuildArticleResponse(article, RouteAuth.ViewerID(c)),
	})
}

// CreateArticle 创建文章
func CreateArticle(c *gin.Context) {
	var req database.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "请求参数错误: " + err.Error(),
		})
		return
	}

	article, err := Article.GlobalArticleService.CreateArticle(RouteAuth.ActingEmail(c), req)
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"article": Article.BuildArticleResponse(article, RouteAuth.ViewerID(c)),
	})
}

// UpdateArticle 更新文章
func UpdateArticle(c *gin.Context) {
	var req database.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "请求参数错误: " + err.Error(),
		})
		return
	}

	article, err := Article.GlobalArticleService.UpdateArticle(RouteAuth.ActingEmail(c), c.Param("slug"), req)
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"article": Article.BuildArticleResponse(article, RouteAuth.ViewerID(c)),
	})
}

// DeleteArticle 删除文章
func DeleteArticle(c *gin.Context) {
	if err := Article.GlobalArticleService.DeleteArticle(RouteAuth.ActingEmail(c), c.Param("slug")); err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// FavoriteArticle 收藏文章
func FavoriteArticle(c *gin.Context) {
	article, err := Article.GlobalFavoriteService.Favorite(RouteAuth.ActingEmail(c), c.Param("slug"))
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"article": Article.BuildArticleResponse(article, RouteAuth.ViewerID(c)),
	})
}

// UnfavoriteArticle 取消收藏
func UnfavoriteArticle(c *gin.Context) {
	article, err := Article.GlobalFavoriteService.Unfavorite(RouteAuth.ActingEmail(c), c.Param("slug"))
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"article": Article.BuildArticleResponse(article, RouteAuth.ViewerID(c)),
	})
}

// ListTags 全部标签
func ListTags(c *gin.Context) {
	tags, err := Article.GlobalTagService.ListTags()
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, database.TagListResponse{Tags: tags})
}
