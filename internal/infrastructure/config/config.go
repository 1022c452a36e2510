package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is built once at startup and passed by reference into each component
// constructor; nothing reads the environment after Load returns.
type Config struct {
	Port        string `env:"PORT,           default=9000"`
	Env         string `env:"ENV,            default=development"`
	FrontendURL string `env:"FRONTEND_URL,   default=http://localhost:3000"`
	JWTSecret   string `env:"JWT_SECRET,     required"`
	AdminKey    string `env:"ADMIN_LOGIN_KEY, required"`
	LogLevel    string `env:"LOG_LEVEL,      default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=maan_homes"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     string `env:"SMTP_PORT,    default=465"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	Sender   string `env:"SENDER_EMAIL"`
}

// Production reports whether the service runs with production cookie policy.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
