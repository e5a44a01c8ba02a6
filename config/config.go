package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values. It is loaded once at process start
// and passed into component constructors; client input can never change it.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Storage configuration. Empty DATABASE_URL selects the in-memory store.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Email configuration. An empty SENDGRID_API_KEY outside production
	// selects the no-op mailer (development mode).
	SendGridAPIKey string `mapstructure:"SENDGRID_API_KEY"`
	EmailFrom      string `mapstructure:"EMAIL_FROM"`
	EmailFromName  string `mapstructure:"EMAIL_FROM_NAME"`
	TeamEmail      string `mapstructure:"TEAM_EMAIL"`

	// Bot mitigation. An empty RECAPTCHA_SECRET_KEY disables the
	// verification gate entirely (development pass-through).
	RecaptchaSecret string `mapstructure:"RECAPTCHA_SECRET_KEY"`
}

// Load reads configuration from config.yaml and the environment.
func Load() *Config {
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
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_NAME", "peacelock")
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("EMAIL_FROM", "noreply@peaceandlocknj.com")
	viper.SetDefault("EMAIL_FROM_NAME", "Peace & Lock")
	viper.SetDefault("TEAM_EMAIL", "gettmarketing101@gmail.com")
	viper.SetDefault("RECAPTCHA_SECRET_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return &cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
