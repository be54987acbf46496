package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
		GinMode                  string
	}
	Database struct {
		URL  string // PostgreSQL connection string; empty means SQLite
		Path string // SQLite file path
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 5000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("database_url", "")
	v.SetDefault("database_path", DefaultDatabasePath)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			GinMode:                  v.GetString("GIN_MODE"),
		},
		Database: Database{
			URL:  v.GetString("DATABASE_URL"),
			Path: v.GetString("DATABASE_PATH"),
		},
	}
}
