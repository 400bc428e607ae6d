package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	SMTP    SMTPConfig
	Redis   RedisConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// SMTPConfig holds the outbound mail settings. Password is the required
// credential; when it is absent order dispatch fails per request instead of
// stopping the process.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// RedisConfig is optional; an empty Host disables rate limiting.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// CatalogConfig points at an optional YAML catalog override. An empty Path
// keeps the built-in product list.
type CatalogConfig struct {
	Path string
}

func Load() *Config {
	// A local .env is a development convenience; its absence is fine.
	_ = godotenv.Load()

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("ORDER_FROM", "narudzbine@mesna.to")
	viper.SetDefault("ORDER_TO", "narudzbine@mesna.to")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("ORDER_FROM"),
			To:       viper.GetString("ORDER_TO"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Catalog: CatalogConfig{
			Path: viper.GetString("CATALOG_PATH"),
		},
	}
}
