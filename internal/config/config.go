package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

type DB struct {
	URL        string
	AuthToken  string
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

// Enabled reports whether media uploads go to object storage.
func (m MinIO) Enabled() bool {
	return m.Endpoint != ""
}

type AI struct {
	APIKey    string
	Model     string
	ChatModel string
	BaseURL   string
	Timeout   time.Duration
}

type Session struct {
	Secret        string
	TTL           time.Duration
	SweepInterval time.Duration
	CookieName    string
	CookieSecure  bool
}

type Admin struct {
	Username string
	Password string
}

type Config struct {
	ServerPort    int
	DB            DB
	MinIO         MinIO
	AI            AI
	Session       Session
	Admin         Admin
	MaxUploadSize int64
	StaticDir     string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		URL:        getEnv("DATABASE_URL", ""),
		AuthToken:  getEnv("DATABASE_AUTH_TOKEN", ""),
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "ukmpr"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

// DSN builds the lib/pq connection string. DATABASE_URL wins over the
// discrete DB_* variables; DATABASE_AUTH_TOKEN is passed as the password.
func (d DB) DSN() string {
	if d.URL != "" {
		if d.AuthToken != "" {
			return fmt.Sprintf("%s password=%s", toKeyValue(d.URL), d.AuthToken)
		}
		return d.URL
	}

	password := d.DbPASSWORD
	if d.AuthToken != "" {
		password = d.AuthToken
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.DbHOST,
		d.DbPORT,
		d.DbUSER,
		password,
		d.DbNAME,
		d.DbSSLMODE,
	)
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", ""),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "ukmpr-media"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", ""),
	}
}

func LoadAI() AI {
	return AI{
		APIKey:    getEnv("GEMINI_API_KEY", ""),
		Model:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		ChatModel: getEnv("GEMINI_CHAT_MODEL", "gemini-2.5-flash"),
		BaseURL:   getEnv("GEMINI_BASE_URL", ""),
		Timeout:   parseDuration(getEnv("AI_TIMEOUT", "60s"), time.Minute),
	}
}

func LoadSession() Session {
	return Session{
		Secret:        getEnv("SESSION_SECRET", ""),
		TTL:           parseDuration(getEnv("SESSION_TTL", "168h"), 7*24*time.Hour),
		SweepInterval: parseDuration(getEnv("SESSION_SWEEP_INTERVAL", "1h"), time.Hour),
		CookieName:    "session_id",
		CookieSecure:  getEnvBool("COOKIE_SECURE", true),
	}
}

const defaultAdminPassword = "admin123"

func LoadAdmin() Admin {
	password := getEnv("ADMIN_PASSWORD", "")
	if password == "" {
		log.Println("Warning: ADMIN_PASSWORD is not set, the seeded admin account uses the default password")
		password = defaultAdminPassword
	}

	return Admin{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Password: password,
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	port := getEnvAsInt("SERVER_PORT", 0)
	if port == 0 {
		port = getEnvAsInt("PORT", 8080)
	}

	return &Config{
		ServerPort:    port,
		DB:            LoadDB(),
		MinIO:         LoadMinIO(),
		AI:            LoadAI(),
		Session:       LoadSession(),
		Admin:         LoadAdmin(),
		MaxUploadSize: parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "5242880")),
		StaticDir:     getEnv("STATIC_DIR", ""),
	}
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 5 * 1024 * 1024
	}
	return size
}

// toKeyValue leaves key=value DSNs alone and converts postgres:// URLs with
// lib/pq's own parser so a password can be appended.
func toKeyValue(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		if kv, err := pq.ParseURL(dsn); err == nil {
			return kv
		}
	}
	return dsn
}
