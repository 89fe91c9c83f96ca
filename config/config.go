package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream booking feed.
	RoomAPIBaseURL      string `mapstructure:"ROOM_API_BASE_URL"`
	PollIntervalMinutes int    `mapstructure:"POLL_INTERVAL_MINUTES"`
	FetchTimeoutSeconds int    `mapstructure:"FETCH_TIMEOUT_SECONDS"`

	// Display window and reference clock.
	DisplayTimezone  string `mapstructure:"DISPLAY_TIMEZONE"`
	DisplayStartHour int    `mapstructure:"DISPLAY_START_HOUR"`
	DisplaySlotCount int    `mapstructure:"DISPLAY_SLOT_COUNT"`

	// Decorative block animations.
	AnimationCycleMs int `mapstructure:"ANIMATION_CYCLE_MS"`
	AnimationDecayMs int `mapstructure:"ANIMATION_DECAY_MS"`

	// Redis configuration (last-known-good snapshot cache).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ROOM_API_BASE_URL", "http://localhost:3000")
	viper.SetDefault("POLL_INTERVAL_MINUTES", 10)
	viper.SetDefault("FETCH_TIMEOUT_SECONDS", 15)
	viper.SetDefault("DISPLAY_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("DISPLAY_START_HOUR", 6)
	viper.SetDefault("DISPLAY_SLOT_COUNT", 13)
	viper.SetDefault("ANIMATION_CYCLE_MS", 1800)
	viper.SetDefault("ANIMATION_DECAY_MS", 1200)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
