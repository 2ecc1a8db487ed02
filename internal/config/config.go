package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every runtime setting the application needs. It is built once
// at startup and passed by reference into services and adapters.
type Config struct {
	Environment    string
	AppPort        string
	ClientURL      string
	DatabaseURL    string
	JWTSecret      string
	GoogleClientID string
	CloudinaryURL  string
	UploadDir      string
	RabbitMQURL    string
}

// Load reads configuration from environment variables (with a few defaults)
// and fails when a required setting is missing. A missing JWT secret or
// database URL is a fatal configuration error, not something to discover on
// the first request.
func Load() (*Config, error) {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("CLIENT_URL", "*")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.AutomaticEnv()

	cfg := &Config{
		Environment:    viper.GetString("APP_ENV"),
		AppPort:        viper.GetString("APP_PORT"),
		ClientURL:      viper.GetString("CLIENT_URL"),
		DatabaseURL:    viper.GetString("DATABASE_URL"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		GoogleClientID: viper.GetString("GOOGLE_CLIENT_ID"),
		CloudinaryURL:  viper.GetString("CLOUDINARY_URL"),
		UploadDir:      viper.GetString("UPLOAD_DIR"),
		RabbitMQURL:    viper.GetString("RABBITMQ_URL"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	return cfg, nil
}
