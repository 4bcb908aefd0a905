package main

import (
	"log"

	"github.com/realworld-club/realworld-gin-example-sr/Config"
	"github.com/realworld-club/realworld-gin-example-sr/Route"
	"github.com/realworld-club/realworld-gin-example-sr/database"
	ArticleService "github.com/realworld-club/realworld-gin-example-sr/service/Article"
	AuthService "github.com/realworld-club/realworld-gin-example-sr/service/Auth"
	CommentService "github.com/realworld-club/realworld-gin-example-sr/service/Comment"
	ProfileService "github.com/realworld-club/realworld-gin-example-sr/service/Profile"
	SeedService "github.com/realworld-club/realworld-gin-example-sr/service/Seed"
)

func main() {

	// 初始化配置
	if err := Config.InitConfig(); err != nil {
		log.Fatalf("配置初始化失败: %v", err)
	}

	// 初始化数据库
	if err := database.InitDB(Config.Cfg.DatabaseURL); err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	// 初始化Redis（失败时自动降级，不影响启动）
	if err := database.InitRedis(Config.Cfg.RedisAddr, Config.Cfg.RedisPassword, Config.Cfg.RedisDB); err != nil {
		log.Printf("Redis初始化失败: %v", err)
	}

	// 初始化服务
	if _, err := AuthService.NewUserService(database.DB); err != nil {
		log.Fatalf("初始化用户服务失败: %v", err)
	}
	ProfileService.NewFollowService(database.DB)
	ArticleService.NewArticleService(database.DB)
	ArticleService.NewTagService(database.DB)
	ArticleService.NewFavoriteService(database.DB)
	CommentService.NewCommentService(database.DB)

	// 写入演示数据（配置了 SEED_FILE 才执行）
	if Config.Cfg.SeedFile != "" {
		seed, err := SeedService.LoadSeedConfig(Config.Cfg.SeedFile)
		if err != nil {
			log.Fatalf("加载演示数据失败: %v", err)
		}
		if err := SeedService.ApplySeed(seed); err != nil {
			log.Fatalf("写入演示数据失败: %v", err)
		}
	}

	// 启动路由
	log.Println("服务器启动中...")
	Route.ApiRoute()
}
