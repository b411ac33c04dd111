package config

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		APIKey    string `env:"APP_API_KEY"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Instagram struct {
		GraphURL          string  `env:"INSTAGRAM_GRAPH_URL" env-default:"https://graph.instagram.com"`
		MaxPosts          int     `env:"INSTAGRAM_MAX_POSTS" env-default:"100"`
		RequestsPerSecond float64 `env:"INSTAGRAM_REQUESTS_PER_SECOND" env-default:"4"`
		Burst             int     `env:"INSTAGRAM_BURST" env-default:"8"`
	}
	Store struct {
		APIVersion        string  `env:"STORE_API_VERSION" env-default:"2024-07"`
		PageSize          int     `env:"STORE_PAGE_SIZE" env-default:"250"`
		DeleteBatchSize   int     `env:"STORE_DELETE_BATCH_SIZE" env-default:"250"`
		RequestsPerSecond float64 `env:"STORE_REQUESTS_PER_SECOND" env-default:"2"`
		Burst             int     `env:"STORE_BURST" env-default:"4"`
	}
	Sync struct {
		Auto             bool   `env:"SYNC_AUTO" env-default:"false"`
		Cron             string `env:"SYNC_CRON" env-default:"0 */6 * * *"`
		ReuploadOnUpdate bool   `env:"SYNC_REUPLOAD_ON_UPDATE" env-default:"false"`
	}
	Telegram struct {
		Token  string `env:"TELEGRAM_TOKEN"`
		ChatID int64  `env:"TELEGRAM_CHAT_ID"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		var err error
		if _, statErr := os.Stat(".env"); statErr == nil {
			err = cleanenv.ReadConfig(".env", cfg)
		} else {
			err = cleanenv.ReadEnv(cfg)
		}
		if err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN builds the lib/pq style connection string used by the goose paths.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode)
}
