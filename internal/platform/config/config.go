package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Cfg はアプリケーション全体の設定を保持するグローバル変数
var Cfg *Config

// Config 構造体はアプリケーションの全設定項目を定義する
// config.yaml の構造と完全に対応している
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Event    EventConfig    `mapstructure:"event"`
}

// ServerConfig はサーバー関連の設定を定義する
type ServerConfig struct {
	Mode    string     `mapstructure:"mode"`
	Address string     `mapstructure:"address"`
	Cors    CorsConfig `mapstructure:"cors"`
}

// CorsConfig はCORS関連の設定を定義する
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig はデータベースとキャッシュ関連の設定を定義する
type DatabaseConfig struct {
	Sqlite SqliteConfig `mapstructure:"sqlite"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

// SqliteConfig はSQLiteの設定を定義する
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig はRedisの設定を定義する
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// EventConfig はイベント開催年度まわりの設定を定義する
type EventConfig struct {
	// Year はシード時に作成するイベント設定の年度。0なら現在の暦年を使う
	Year int `mapstructure:"year"`
	// TargetEvaluators は進捗表示に使う評価者の目標人数
	TargetEvaluators int `mapstructure:"targetEvaluators"`
}

// LoadConfig は設定ファイルの検索・読み込み・解析を行う
// 指定されたパスから config.yaml という名前のファイルを探す
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. ファイル名と形式を設定
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 2. 検索パスを追加（順に探索される）
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// 3. 環境変数によるオーバーライドを許可
	// 例: SERVER_ADDRESS=:9090 で server.address を上書きできる
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. デフォルト値
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.sqlite.path", "touhyou.db")
	v.SetDefault("database.redis.address", "localhost:6379")
	v.SetDefault("event.targetEvaluators", 100)

	// 5. 設定ファイルを読み込む（存在しなければデフォルトのみで続行）
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// 6. 構造体へデシリアライズ
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 7. グローバル変数へ代入
	Cfg = &cfg

	return Cfg, nil
}
