package database

import "errors"

// 业务错误类型，服务层只返回这些哨兵错误（可用 fmt.Errorf("%w: ...") 附加细节），
// 路由层负责把它们映射为 HTTP 状态码
var (
	ErrUserNotFound    = errors.New("用户不存在")
	ErrArticleNotFound = errors.New("文章不存在")
	ErrCommentNotFound = errors.New("评论不存在")
	ErrProfileNotFound = errors.New("个人资料不存在")
	ErrUnauthorized    = errors.New("权限不足")
	ErrValidation      = errors.New("参数校验失败")
)
