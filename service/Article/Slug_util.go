package Article

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/realworld-club/realworld-gin-example-sr/database"
)

// Slugify 把标题转成URL安全的slug：小写、非字母数字折叠为连字符
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true // 抑制开头的连字符
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// uniqueSlug 生成唯一slug：发生冲突时追加一段uuid后缀
// excludeID 用于更新场景，排除文章自身占用的slug
func uniqueSlug(db *gorm.DB, title string, excludeID uint) string {
	slug := Slugify(title)
	if slug == "" {
		slug = uuid.NewString()[:8]
	}

	// Unscoped：软删除的文章仍占用唯一索引里的slug
	var count int64
	db.Unscoped().Model(&database.ArticleModel{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count)
	if count == 0 {
		return slug
	}
	return slug + "-" + uuid.NewString()[:8]
}
