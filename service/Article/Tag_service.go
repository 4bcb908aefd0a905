package Article

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/realworld-club/realworld-gin-example-sr/database"
)

const tagCacheKey = "tags:all"
const tagCacheTTL = 10 * time.Minute

type TagServiceInterface interface {
	ListTags() ([]string, error)
}

var GlobalTagService TagServiceInterface

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) TagServiceInterface {
	s := &TagService{db: db}
	GlobalTagService = s
	return s
}

// findOrCreateTags 按名称复用已有标签（区分大小写），不存在时创建
// 在调用方的事务内执行
func findOrCreateTags(tx *gorm.DB, names []string) ([]database.TagModel, error) {
	var tags []database.TagModel
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var tag database.TagModel
		if err := tx.Where("tag = ?", name).FirstOrCreate(&tag, database.TagModel{Tag: name}).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// ListTags 全部标签列表，优先走Redis缓存，Redis不可用时直接查库
func (s *TagService) ListTags() ([]string, error) {
	client := database.GetRedis()
	ctx := context.Background()

	if client != nil {
		if data, err := client.Get(ctx, tagCacheKey).Result(); err == nil {
			var tags []string
			if err := json.Unmarshal([]byte(data), &tags); err == nil {
				return tags, nil
			}
		}
	}

	var tags []string
	err := s.db.Model(&database.TagModel{}).
		Order("tag ASC").
		Pluck("tag", &tags).Error
	if err != nil {
		return nil, err
	}

	if client != nil {
		if data, err := json.Marshal(tags); err == nil {
			client.Set(ctx, tagCacheKey, data, tagCacheTTL)
		}
	}
	return tags, nil
}

// invalidateTagCache 文章写入后让标签缓存失效，Redis不可用时跳过
func invalidateTagCache() {
	client := database.GetRedis()
	if client == nil {
		return
	}
	client.Del(context.Background(), tagCacheKey)
}
