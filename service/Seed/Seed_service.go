package Seed

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/realworld-club/realworld-gin-example-sr/database"
	"github.com/realworld-club/realworld-gin-example-sr/service/Article"
	"github.com/realworld-club/realworld-gin-example-sr/service/Auth"
	"github.com/realworld-club/realworld-gin-example-sr/service/Profile"
)

// SeedUser 演示用户配置
type SeedUser struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Bio      string `yaml:"bio"`
	Image    string `yaml:"image"`
}

// SeedArticle 演示文章配置
type SeedArticle struct {
	Author      string   `yaml:"author"` // 作者邮箱
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Body        string   `yaml:"body"`
	Tags        []string `yaml:"tags"`
}

// SeedFollow 演示关注关系配置
type SeedFollow struct {
	From string `yaml:"from"` // 关注者邮箱
	To   string `yaml:"to"`   // 被关注者用户名
}

// SeedConfig 演示数据文件结构
type SeedConfig struct {
	Users    []SeedUser    `yaml:"users"`
	Articles []SeedArticle `yaml:"articles"`
	Follows  []SeedFollow  `yaml:"follows"`
}

// LoadSeedConfig 从YAML文件加载演示数据配置
func LoadSeedConfig(configPath string) (*SeedConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config SeedConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析演示数据失败: %w", err)
	}
	return &config, nil
}

// ApplySeed 通过服务层写入演示数据，已存在的用户跳过，保证重复启动安全
func ApplySeed(config *SeedConfig) error {
	for _, u := range config.Users {
		if _, err := Auth.GlobalUserService.GetUserByEmail(u.Email); err == nil {
			continue // 已存在
		}
		user, err := Auth.GlobalUserService.CreateUser(database.RegisterRequest{
			Username: u.Username,
			Email:    u.Email,
			Password: u.Password,
		})
		if err != nil {
			return fmt.Errorf("写入演示用户 %s 失败: %w", u.Email, err)
		}
		if u.Bio != "" || u.Image != "" {
			_, err = Auth.GlobalUserService.UpdateUser(user.Email, database.UpdateUserRequest{
				Bio:   u.Bio,
				Image: u.Image,
			})
			if err != nil {
				return err
			}
		}
	}

	for _, a := range config.Articles {
		if _, err := Article.GlobalArticleService.GetArticleBySlug(Article.Slugify(a.Title)); err == nil {
			continue // 已存在
		}
		_, err := Article.GlobalArticleService.CreateArticle(a.Author, database.CreateArticleRequest{
			Title:       a.Title,
			Description: a.Description,
			Body:        a.Body,
			TagList:     a.Tags,
		})
		if err != nil {
			return fmt.Errorf("写入演示文章 %q 失败: %w", a.Title, err)
		}
	}

	for _, f := range config.Follows {
		if _, err := Profile.GlobalFollowService.Follow(f.From, f.To); err != nil {
			return fmt.Errorf("写入演示关注关系 %s -> %s 失败: %w", f.From, f.To, err)
		}
	}

	log.Printf("演示数据写入完成: %d 用户, %d 文章, %d 关注关系",
		len(config.Users), len(config.Articles), len(config.Follows))
	return nil
}
