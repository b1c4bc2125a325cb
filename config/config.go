package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB  int    `mapstructure:"REDIS_SESSION_DB"`
	RedisAuthDB     int    `mapstructure:"REDIS_AUTH_DB"`
	RedisPricingDB  int    `mapstructure:"REDIS_PRICING_DB"`
	RedisReminderDB int    `mapstructure:"REDIS_REMINDER_DB"`

	// Pricing. CommissionRate is the platform cut applied on top of the
	// base price; must satisfy 0 <= rate < 1.
	CommissionRate  float64 `mapstructure:"COMMISSION_RATE"`
	SurgeStartHour  int     `mapstructure:"SURGE_START_HOUR"`
	SurgeEndHour    int     `mapstructure:"SURGE_END_HOUR"`
	SurgeMultiplier float64 `mapstructure:"SURGE_MULTIPLIER"`

	// Booking session lifetime, in minutes.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	// AdminTokens maps static console tokens to the admin sub-role they
	// carry. Injected here rather than hardcoded in the middleware.
	AdminTokens map[string]string `mapstructure:"ADMIN_TOKENS"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_PRICING_DB", 2)
	viper.SetDefault("REDIS_REMINDER_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("COMMISSION_RATE", 0.15)
	viper.SetDefault("SURGE_START_HOUR", 17)
	viper.SetDefault("SURGE_END_HOUR", 20)
	viper.SetDefault("SURGE_MULTIPLIER", 1.25)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("ADMIN_TOKENS", map[string]string{
		"homeserve-super-admin": "SUPER_ADMIN",
	})

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if AppConfig.CommissionRate < 0 || AppConfig.CommissionRate >= 1 {
		log.Fatalf("Invalid COMMISSION_RATE %.2f: must be in [0, 1)", AppConfig.CommissionRate)
	}
	if AppConfig.SurgeMultiplier < 1.0 {
		log.Fatalf("Invalid SURGE_MULTIPLIER %.2f: must be >= 1.0", AppConfig.SurgeMultiplier)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
