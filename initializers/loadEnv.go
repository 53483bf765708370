package initializers

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

type Config struct {
	Port        string
	Env         string
	CORSOrigins []string

	DBDriver string
	DBDSN    string
	DBHost   string
	DBPort   string
	DBUser   string
	DBPass   string
	DBName   string

	JWTSecret string
	TokenTTL  time.Duration

	S3Bucket           string
	S3Region           string
	S3Endpoint         string
	S3AccessKeyID      string
	S3SecretAccessKey  string
	AssetPublicBaseURL string

	BootstrapAdminEmail    string
	BootstrapAdminPassword string

	MaxSessions int
	SessionTTL  time.Duration
}

var AppConfig Config

// LoadEnv reads .env if present without overriding variables that are
// already set, then fills AppConfig.
func LoadEnv() {
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}
	AppConfig = LoadConfig()
}

func LoadConfig() Config {
	ttl, err := time.ParseDuration(getenv("TOKEN_TTL", "720h"))
	if err != nil {
		ttl = 30 * 24 * time.Hour
	}
	sessionTTL, err := time.ParseDuration(getenv("SESSION_TTL", "24h"))
	if err != nil {
		sessionTTL = 24 * time.Hour
	}
	return Config{
		Port:        getenv("PORT", "8080"),
		Env:         strings.ToLower(getenv("ENV", "development")),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:5173")),

		DBDriver: strings.ToLower(getenv("DB_DRIVER", "mysql")),
		DBDSN:    os.Getenv("DB_DSN"),
		DBHost:   getenv("DB_HOST", "127.0.0.1"),
		DBPort:   os.Getenv("DB_PORT"),
		DBUser:   getenv("DB_USER", "root"),
		DBPass:   os.Getenv("DB_PASS"),
		DBName:   getenv("DB_NAME", "laptopzone"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  ttl,

		S3Bucket:           os.Getenv("S3_BUCKET"),
		S3Region:           getenv("S3_REGION", "auto"),
		S3Endpoint:         os.Getenv("S3_ENDPOINT"),
		S3AccessKeyID:      os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey:  os.Getenv("S3_SECRET_ACCESS_KEY"),
		AssetPublicBaseURL: os.Getenv("ASSET_PUBLIC_BASE_URL"),

		BootstrapAdminEmail:    os.Getenv("BOOTSTRAP_ADMIN_EMAIL"),
		BootstrapAdminPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),

		MaxSessions: cast.ToInt(getenv("SESSION_MAX", "10000")),
		SessionTTL:  sessionTTL,
	}
}

// MustValidate stops the process when a required setting is missing.
func (c Config) MustValidate() {
	if c.JWTSecret == "" {
		zap.S().Fatal("Required environment variable JWT_SECRET is not set")
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
