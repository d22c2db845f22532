package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	Redis     RedisConfig
	Server    ServerConfig
	Session   SessionConfig
	Admin     AdminConfig
	Media     MediaConfig
	Cache     CacheConfig
	Queue     QueueConfig
	RateLimit RateLimitConfig
	LogLevel  string
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

type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

// AdminConfig 固定的管理員帳密；Password 為空時停用管理員登入
type AdminConfig struct {
	Email    string
	Password string
}

type MediaConfig struct {
	Dir      string
	BaseURL  string
	MaxBytes int64
}

type CacheConfig struct {
	ApprovedEventsTTL time.Duration
}

type QueueConfig struct {
	Driver     string // memory | redis
	BufferSize int
	ConsumerID string
	// 寫入審核紀錄失敗時的重試間隔（起始值，連續失敗加倍）
	RetryBackoff time.Duration
}

type RateLimitConfig struct {
	SubmitPerMinute int
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env 不存在時直接使用環境變數
	_ = godotenv.Load()

	AppConfig = &Config{
		Database:  GetDatabaseConfig(),
		Redis:     GetRedisConfig(),
		Server:    GetServerConfig(),
		Session:   GetSessionConfig(),
		Admin:     GetAdminConfig(),
		Media:     GetMediaConfig(),
		Cache:     GetCacheConfig(),
		Queue:     GetQueueConfig(),
		RateLimit: GetRateLimitConfig(),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
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

	return &Config{
		Database: *testConfig,
		Redis:    testRedisConfig,
		Server: ServerConfig{
			Port:         "0",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Session: SessionConfig{
			Secret: "test-secret",
			TTL:    time.Hour,
		},
		Admin: AdminConfig{
			Email:    "admin@campus.test",
			Password: "admin-pass",
		},
		Media: MediaConfig{
			Dir:      os.TempDir(),
			BaseURL:  "http://localhost/media",
			MaxBytes: 1 << 20,
		},
		Cache:     CacheConfig{ApprovedEventsTTL: time.Minute},
		Queue:     QueueConfig{Driver: "memory", BufferSize: 16},
		RateLimit: RateLimitConfig{SubmitPerMinute: 1000},
		LogLevel:  "debug",
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

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:           getEnv("PORT", "8080"),
		ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func GetSessionConfig() SessionConfig {
	return SessionConfig{
		Secret: getEnv("SESSION_SECRET", "change-me"),
		TTL:    getEnvAsDuration("SESSION_TTL", 24*time.Hour),
	}
}

func GetAdminConfig() AdminConfig {
	return AdminConfig{
		Email:    getEnv("ADMIN_EMAIL", "admin@campus.local"),
		Password: getEnv("ADMIN_PASSWORD", ""),
	}
}

func GetMediaConfig() MediaConfig {
	return MediaConfig{
		Dir:      getEnv("MEDIA_DIR", "./data/media"),
		BaseURL:  strings.TrimRight(getEnv("MEDIA_BASE_URL", "http://localhost:8080/media"), "/"),
		MaxBytes: int64(getEnvAsInt("MEDIA_MAX_BYTES", 10<<20)),
	}
}

func GetCacheConfig() CacheConfig {
	return CacheConfig{
		ApprovedEventsTTL: getEnvAsDuration("CACHE_APPROVED_EVENTS_TTL", 5*time.Minute),
	}
}

func GetQueueConfig() QueueConfig {
	return QueueConfig{
		Driver:       getEnv("QUEUE_DRIVER", "redis"),
		BufferSize:   getEnvAsInt("QUEUE_BUFFER_SIZE", 256),
		ConsumerID:   getEnv("QUEUE_CONSUMER_ID", ""),
		RetryBackoff: getEnvAsDuration("QUEUE_RETRY_BACKOFF", time.Second),
	}
}

func GetRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		SubmitPerMinute: getEnvAsInt("RATE_LIMIT_SUBMIT_PER_MINUTE", 30),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
