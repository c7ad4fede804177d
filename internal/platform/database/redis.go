package database

import (
	"context"
	"fmt"

	"github.com/matsuyama952/touhyou-system/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// RDB はグローバルなRedisクライアントインスタンス
var RDB *redis.Client

// Ctx はRedis操作に使うグローバルなコンテキスト
var Ctx = context.Background()

// InitRedis はRedisデータベースへの接続を初期化する
func InitRedis(cfg config.RedisConfig) {
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Pingで接続を確認する
	_, err := RDB.Ping(Ctx).Result()
	if err != nil {
		// 接続できない場合はpanicして起動を中断する
		panic("Redisに接続できません: " + err.Error())
	}

	markRedisAvailable()
	fmt.Println("Redis接続に成功しました！")
}
