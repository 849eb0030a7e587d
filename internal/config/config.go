package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"mywallet"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Owner struct {
		// TelegramID identifies the single wallet owner; every stored row
		// is scoped to it.
		TelegramID int64 `envconfig:"OWNER_TELEGRAM_ID" required:"true"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"mywallet"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// Secret signs API bearer tokens. Leaving it empty disables auth,
		// which is only sensible on localhost.
		Secret string `envconfig:"AUTH_SECRET"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	AI struct {
		BaseURL string        `envconfig:"AI_BASE_URL" default:"https://api.openai.com/v1"`
		APIKey  string        `envconfig:"AI_API_KEY"`
		Model   string        `envconfig:"AI_MODEL" default:"gpt-4"`
		Timeout time.Duration `envconfig:"AI_TIMEOUT" default:"60s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// AIEnabled reports whether an AI provider is configured. Without it the
// assistant endpoints are disabled and categorization falls back.
func (c *Config) AIEnabled() bool {
	return c.AI.APIKey != ""
}

func Load() (*Config, error) {
	// Local development keeps secrets in .env; absence is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
