package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name            string
	Env             string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Driver   string
	URI      string
	Name     string
	MaxConns uint64
	Timeout  time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "fleet-booking")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 5)
	viper.SetDefault("DB_DRIVER", DriverMongo)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "fleet")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_TIMEOUT_SECONDS", 5)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// .env is optional, plain environment variables are enough in containers
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            viper.GetString("APP_NAME"),
			Env:             viper.GetString("APP_ENV"),
			Port:            viper.GetString("PORT"),
			Debug:           viper.GetBool("DEBUG"),
			LogPath:         viper.GetString("LOG_PATH"),
			ShutdownTimeout: time.Duration(viper.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(viper.GetString("DB_DRIVER")),
			URI:      viper.GetString("MONGO_URI"),
			Name:     viper.GetString("DB_NAME"),
			MaxConns: viper.GetUint64("DB_MAX_CONNS"),
			Timeout:  time.Duration(viper.GetInt("DB_TIMEOUT_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: SplitList(viper.GetString("CORS_ORIGINS")),
		},
	}

	return config, nil
}

// SplitList turns "a, b,,c" into [a b c].
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
