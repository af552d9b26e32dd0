package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Notifier NotifierConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NotifierConfig 通知排程與發送相關設定
// 各元件經由建構子注入，不直接讀取環境變數
type NotifierConfig struct {
	// 任務佇列回呼的目標 URL，未設定時排程會直接失敗
	CallbackURL string
	// 販售開始時間所屬時區（例：Asia/Tokyo）
	Timezone string
	// 發送頻道的 webhook URL 列表（逗號分隔）
	ChannelWebhookURLs []string
	// 營運告警用 webhook URL，空字串時停用告警
	AlertWebhookURL string
	// 單一通知的最大發送嘗試次數
	MaxSendAttempts int
	// 重試退避基準時間：等待 = base * 2^(attempt-1)
	RetryBaseDelay time.Duration
	// Sweep 視為「即將到期」的提前量
	SweepWindow time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Notifier: GetNotifierConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	testNotifierConfig := NotifierConfig{
		CallbackURL:        "http://localhost:8080/internal/notifications/callback",
		Timezone:           "Asia/Tokyo",
		ChannelWebhookURLs: []string{"http://localhost:9999/webhook"},
		MaxSendAttempts:    3,
		RetryBaseDelay:     time.Millisecond, // 測試不等真實退避
		SweepWindow:        5 * time.Minute,
	}

	return &Config{
		Database: *testConfig,
		Redis:    testRedisConfig,
		Notifier: testNotifierConfig,
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetNotifierConfig() NotifierConfig {
	attempts, err := strconv.Atoi(getEnv("NOTIFY_MAX_SEND_ATTEMPTS", "3"))
	if err != nil {
		panic(err)
	}

	var channels []string
	for _, u := range strings.Split(getEnv("NOTIFY_CHANNEL_WEBHOOK_URLS", ""), ",") {
		if u = strings.TrimSpace(u); u != "" {
			channels = append(channels, u)
		}
	}

	return NotifierConfig{
		CallbackURL:        getEnv("NOTIFY_CALLBACK_URL", ""),
		Timezone:           getEnv("NOTIFY_TIMEZONE", "Asia/Tokyo"),
		ChannelWebhookURLs: channels,
		AlertWebhookURL:    getEnv("NOTIFY_ALERT_WEBHOOK_URL", ""),
		MaxSendAttempts:    attempts,
		RetryBaseDelay:     time.Second,
		SweepWindow:        5 * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
