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
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAIContextDB     int    `mapstructure:"REDIS_AI_CONTEXT_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// LLM configuration.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Google Cloud credentials (Speech-to-Text, Gmail, Calendar).
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`
	GoogleOAuthTokenFile     string `mapstructure:"GOOGLE_OAUTH_TOKEN_FILE"`
	GoogleOAuthClientFile    string `mapstructure:"GOOGLE_OAUTH_CLIENT_FILE"`

	// Invitation email sender.
	SenderEmail    string `mapstructure:"SENDER_EMAIL"`
	EmailSignature string `mapstructure:"EMAIL_SIGNATURE"`

	// Scheduling defaults applied when a parsed request omits them.
	WorkStartHour          int `mapstructure:"WORK_START_HOUR"`
	WorkEndHour            int `mapstructure:"WORK_END_HOUR"`
	SlotStepMinutes        int `mapstructure:"SLOT_STEP_MINUTES"`
	DefaultDurationMinutes int `mapstructure:"DEFAULT_DURATION_MINUTES"`
	ReminderLeadMinutes    int `mapstructure:"REMINDER_LEAD_MINUTES"`
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
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AI_CONTEXT_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "")
	viper.SetDefault("GOOGLE_OAUTH_TOKEN_FILE", "credentials/token.json")
	viper.SetDefault("GOOGLE_OAUTH_CLIENT_FILE", "credentials/client_secret.json")
	viper.SetDefault("SENDER_EMAIL", "")
	viper.SetDefault("EMAIL_SIGNATURE", "The Meeting Planner Team")
	viper.SetDefault("WORK_START_HOUR", 9)
	viper.SetDefault("WORK_END_HOUR", 18)
	viper.SetDefault("SLOT_STEP_MINUTES", 30)
	viper.SetDefault("DEFAULT_DURATION_MINUTES", 60)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 30)

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
