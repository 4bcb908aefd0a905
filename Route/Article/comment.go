package Article

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"

	RouteAuth "github.com/realworld-club/realworld-gin-example-sr/Route/Auth"
	"github.com/realworld-club/realworld-gin-example-sr/database"
	"github.com/realworld-club/realworld-gin-example-sr/service/Article"
	"github.com/realworld-club/realworld-gin-example-sr/service/Comment"
)

// AddComment 发表评论
func AddComment(c *gin.Context) {
	var req database.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "请求参数错误: " + err.Error(),
		})
		return
	}

	comment, err := Comment.GlobalCommentService.AddComment(RouteAuth.ActingEmail(c), c.Param("slug"), req.Body)
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"comment": Article.BuildCommentResponse(comment, RouteAuth.ViewerID(c)),
	})
}

// ListComments 文章评论列表，认证可选
func ListComments(c *gin.Context) {
	comments, err := Comment.GlobalCommentService.ListComments(c.Param("slug"))
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Article.BuildMultiCommentResponse(comments, RouteAuth.ViewerID(c)))
}

// DeleteComment 删除评论
func DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的评论ID",
		})
		return
	}

	err = Comment.GlobalCommentService.DeleteComment(RouteAuth.ActingEmail(c), c.Param("slug"), uint(commentID))
	if err != nil {
		RouteAuth.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
