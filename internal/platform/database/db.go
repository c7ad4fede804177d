package database

import (
	"fmt"
	"log"
	"os"

	"github.com/matsuyama952/touhyou-system/internal/platform/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB はプロジェクト全体で共有するgormのデータベースハンドル
var DB *gorm.DB

// InitDB はSQLiteデータベースへの接続を初期化する
func InitDB(cfg config.SqliteConfig) {
	var err error

	// GORMログ設定
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 0,
			LogLevel:      logger.Silent, // 本番ではSilentにしておく
			Colorful:      true,
		},
	)

	DB, err = gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: newLogger,
	})

	if err != nil {
		fmt.Println("データベース接続に失敗しました", err)
		panic(err)
	}

	fmt.Println("データベース接続に成功しました！")
}

// Ping はデータベースとの疎通を確認する。ヘルスチェックから呼ばれる。
func Ping() error {
	if DB == nil {
		return fmt.Errorf("データベースが初期化されていません")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
