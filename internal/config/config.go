package config

import (
	"github.com/spf13/viper"
	"github.com/yiryeong/wanted-pre-onboarding/internal/logger"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Seed      SeedConfig      `mapstructure:"seed"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// AuthConfig token issuing configuration
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"` // HS256 signing key
	TokenTTL  int    `mapstructure:"token_ttl"`  // hours
}

type SchedulerConfig struct {
	Interval int `mapstructure:"interval"` // seconds
	Workers  int `mapstructure:"workers"`  // report job pool size
}

// SeedConfig demo data seeding
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // stdout, file
	File   string `mapstructure:"file"`   // log file path when output is file
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/funding")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "funding")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("auth.jwt_secret", "change-me")
	viper.SetDefault("auth.token_ttl", 24)
	viper.SetDefault("scheduler.interval", 300)
	viper.SetDefault("scheduler.workers", 4)
	viper.SetDefault("seed.enabled", false)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
