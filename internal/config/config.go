package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	AI       AIConfig       `mapstructure:"ai"`
	Crisis   CrisisConfig   `mapstructure:"crisis"`
	Chat     ChatConfig     `mapstructure:"chat"`
	Security SecurityConfig `mapstructure:"security"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	MiddlewareTimeout time.Duration `mapstructure:"middleware_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
	MaxConns int32  `mapstructure:"max_conns"`
	MinConns int32  `mapstructure:"min_conns"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type AuthConfig struct {
	JWTSecret       string        `mapstructure:"jwt_secret"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
}

type AIConfig struct {
	DefaultProvider string       `mapstructure:"default_provider"`
	Gemini          GeminiConfig `mapstructure:"gemini"`
	Ollama          OllamaConfig `mapstructure:"ollama"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
	// CustomModelID is an optional fine-tuned model used for chat replies.
	CustomModelID string `mapstructure:"custom_model_id"`
}

type OllamaConfig struct {
	Host         string `mapstructure:"host"`
	DefaultModel string `mapstructure:"default_model"`
}

// CrisisConfig controls crisis detection and escalation policy.
type CrisisConfig struct {
	// Keywords is the explicit self-harm phrase list for the local pre-filter.
	Keywords []string `mapstructure:"keywords"`
	// EscalationThreshold is the minimum confidence for storing an alert.
	EscalationThreshold float64 `mapstructure:"escalation_threshold"`
	// AlertDismissAfter is how long a client alert stays up before auto-dismissing.
	AlertDismissAfter time.Duration `mapstructure:"alert_dismiss_after"`
}

type ChatConfig struct {
	// HistoryContext is how many prior exchanges are fed back into the model.
	HistoryContext     int      `mapstructure:"history_context"`
	SupportedLanguages []string `mapstructure:"supported_languages"`
}

type SecurityConfig struct {
	// EncryptionKey protects crisis alert content at rest. Derived from the
	// JWT secret when unset.
	EncryptionKey string          `mapstructure:"encryption_key"`
	RateLimit     RateLimitConfig `mapstructure:"rate_limit"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File enables rotating file output when set (production deployments).
	File string `mapstructure:"file"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/config.yaml"
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.middleware_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "15s")

	// Database
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "zenith")
	v.SetDefault("database.database", "zenith")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	// Auth
	v.SetDefault("auth.access_token_ttl", "24h")
	v.SetDefault("auth.refresh_token_ttl", "168h") // 7 days

	// AI
	v.SetDefault("ai.default_provider", "gemini")
	v.SetDefault("ai.gemini.model", "gemini-1.5-flash")
	v.SetDefault("ai.ollama.host", "")
	v.SetDefault("ai.ollama.default_model", "llama3")

	// Crisis detection
	v.SetDefault("crisis.keywords", []string{
		"suicide", "kill myself", "end my life", "want to die",
		"self harm", "hurt myself", "no reason to live",
		"better off dead", "can't go on", "worthless",
	})
	v.SetDefault("crisis.escalation_threshold", 0.7)
	v.SetDefault("crisis.alert_dismiss_after", "30s")

	// Chat
	v.SetDefault("chat.history_context", 5)
	v.SetDefault("chat.supported_languages", []string{
		"en", "hi", "bn", "te", "mr", "ta", "ur", "gu", "kn", "ml",
	})

	// Security
	v.SetDefault("security.rate_limit.requests_per_minute", 60)
	v.SetDefault("security.rate_limit.burst", 10)

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func bindEnvVars(v *viper.Viper) {
	// Database
	v.BindEnv("database.password", "POSTGRES_PASSWORD")

	// Redis
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Auth
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")

	// AI
	v.BindEnv("ai.gemini.api_key", "GEMINI_API_KEY")
	v.BindEnv("ai.gemini.custom_model_id", "GEMINI_CUSTOM_MODEL_ID")
	v.BindEnv("ai.ollama.host", "OLLAMA_HOST")

	// Security
	v.BindEnv("security.encryption_key", "ENCRYPTION_KEY")
}
