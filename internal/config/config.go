package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN                 string
	Environment           string
	HTTPAddr              string
	TelegramToken         string
	AdminChatID           int64
	Timezone              string
	ConflictCheckInterval time.Duration
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return fromEnv(os.Getenv)
}

// fromEnv собирает конфиг из переменных окружения
func fromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DBDSN:         getenv("DB_DSN"),
		Environment:   getenv("ENV"),
		HTTPAddr:      getenv("HTTP_ADDR"),
		TelegramToken: getenv("TELEGRAM_TOKEN"),
		Timezone:      getenv("TIMEZONE"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	if raw := getenv("ADMIN_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse ADMIN_CHAT_ID: %w", err)
		}
		cfg.AdminChatID = id
	}

	cfg.ConflictCheckInterval = 15 * time.Minute
	if raw := getenv("CONFLICT_CHECK_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse CONFLICT_CHECK_INTERVAL: %w", err)
		}
		if interval <= 0 {
			return nil, fmt.Errorf("CONFLICT_CHECK_INTERVAL must be positive")
		}
		cfg.ConflictCheckInterval = interval
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("load TIMEZONE: %w", err)
	}

	return cfg, nil
}

// Location часовой пояс, в котором даты событий означают полночь
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// BotEnabled бот запускается только при заданном токене
func (c *Config) BotEnabled() bool {
	return c.TelegramToken != ""
}
