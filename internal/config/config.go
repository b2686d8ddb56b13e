package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DB          DBConfig
	Server      ServerConfig
	Redis       RedisConfig
	JWT         JWTConfig
	GoogleOAuth GoogleOAuthConfig
	Logger      LoggerConfig
	Sentry      SentryConfig
	Quiz        QuizConfig
	Push        PushConfig
	Cache       CacheConfig
	RateLimit   RateLimitConfig
}

type DBConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// PublicBaseURL is the front-end origin used to build shareable quiz links.
	PublicBaseURL string
	AllowOrigins  string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type JWTConfig struct {
	SecretKey  string
	SessionTTL time.Duration
	CookieName string
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type LoggerConfig struct {
	Env   string
	Level string
}

type SentryConfig struct {
	DSN     string
	Env     string
	Release string
}

type QuizConfig struct {
	SessionTTL           time.Duration
	CertificateThreshold int
}

type PushConfig struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subscriber      string
}

type CacheConfig struct {
	LeaderboardTTL time.Duration
	VerifyTTL      time.Duration
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.public_base_url", "http://localhost:3000")
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("jwt.session_ttl_hours", 24)
	v.SetDefault("jwt.cookie_name", "dcn_session")
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("quiz.session_ttl_minutes", 60)
	v.SetDefault("quiz.certificate_threshold", 5)
	v.SetDefault("cache.leaderboard_ttl_seconds", 60)
	v.SetDefault("cache.verify_ttl_seconds", 600)
	v.SetDefault("rate_limit.max", 100)
	v.SetDefault("rate_limit.window_seconds", 60)
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		DB: DBConfig{
			Host:         v.GetString("db.host"),
			Port:         v.GetInt("db.port"),
			User:         v.GetString("db.user"),
			Password:     v.GetString("db.password"),
			DBName:       v.GetString("db.name"),
			SSLMode:      v.GetString("db.sslmode"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
			MaxIdleConns: v.GetInt("db.max_idle_conns"),
		},
		Server: ServerConfig{
			Port:          v.GetInt("server.port"),
			ReadTimeout:   time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout:  time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			PublicBaseURL: strings.TrimRight(v.GetString("server.public_base_url"), "/"),
			AllowOrigins:  v.GetString("server.allow_origins"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			SecretKey:  v.GetString("jwt.secret_key"),
			SessionTTL: time.Duration(v.GetInt("jwt.session_ttl_hours")) * time.Hour,
			CookieName: v.GetString("jwt.cookie_name"),
		},
		GoogleOAuth: GoogleOAuthConfig{
			ClientID:     v.GetString("google.client_id"),
			ClientSecret: v.GetString("google.client_secret"),
			RedirectURL:  v.GetString("google.redirect_url"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Sentry: SentryConfig{
			DSN:     v.GetString("sentry.dsn"),
			Env:     v.GetString("sentry.env"),
			Release: v.GetString("sentry.release"),
		},
		Quiz: QuizConfig{
			SessionTTL:           time.Duration(v.GetInt("quiz.session_ttl_minutes")) * time.Minute,
			CertificateThreshold: v.GetInt("quiz.certificate_threshold"),
		},
		Push: PushConfig{
			VAPIDPublicKey:  v.GetString("push.vapid_public_key"),
			VAPIDPrivateKey: v.GetString("push.vapid_private_key"),
			Subscriber:      v.GetString("push.subscriber"),
		},
		Cache: CacheConfig{
			LeaderboardTTL: time.Duration(v.GetInt("cache.leaderboard_ttl_seconds")) * time.Second,
			VerifyTTL:      time.Duration(v.GetInt("cache.verify_ttl_seconds")) * time.Second,
		},
		RateLimit: RateLimitConfig{
			Max:    v.GetInt("rate_limit.max"),
			Window: time.Duration(v.GetInt("rate_limit.window_seconds")) * time.Second,
		},
	}

	// Override with the short environment names used by the deployment.
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if secret := os.Getenv("JWT_SECRET_KEY"); secret != "" {
		config.JWT.SecretKey = secret
	}
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		config.Sentry.DSN = dsn
	}
	if pub := os.Getenv("VAPID_PUBLIC_KEY"); pub != "" {
		config.Push.VAPIDPublicKey = pub
	}
	if priv := os.Getenv("VAPID_PRIVATE_KEY"); priv != "" {
		config.Push.VAPIDPrivateKey = priv
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks settings the process cannot start without.
func (c *Config) Validate() error {
	if c.Quiz.SessionTTL <= 0 {
		return fmt.Errorf("quiz.session_ttl_minutes must be positive")
	}
	if c.Quiz.CertificateThreshold <= 0 {
		return fmt.Errorf("quiz.certificate_threshold must be positive")
	}
	if c.JWT.SecretKey != "" && len(c.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 bytes long")
	}
	return nil
}

// GetDSN returns a postgres connection URL for the pgx stdlib driver.
func (c *Config) GetDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DB.User, c.DB.Password),
		Host:     fmt.Sprintf("%s:%d", c.DB.Host, c.DB.Port),
		Path:     c.DB.DBName,
		RawQuery: "sslmode=" + c.DB.SSLMode,
	}
	return u.String()
}
