package utils

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	DefaultConfigPath           = "config.yaml"
	DefaultTimezone             = "Asia/Jakarta"
	DefaultReminderPollInterval = time.Minute
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Gemini API configuration
	GeminiAPIKey string `yaml:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL"`

	// Reminders
	Timezone             string `yaml:"TIMEZONE"`
	ReminderPollInterval string `yaml:"REMINDER_POLL_INTERVAL"`

	LogDebug bool `yaml:"LOG_DEBUG"`
}

var config Config

// LoadConfigFile replaces the active configuration with the contents of path.
// On error the previous configuration is kept.
func LoadConfigFile(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var loaded Config
	if err := yaml.Unmarshal(file, &loaded); err != nil {
		return err
	}

	config = loaded
	return nil
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		return config.GeminiModel
	case "TIMEZONE":
		if config.Timezone == "" {
			return DefaultTimezone
		}
		return config.Timezone
	case "REMINDER_POLL_INTERVAL":
		return config.ReminderPollInterval
	case "LOG_DEBUG":
		return strconv.FormatBool(config.LogDebug)
	default:
		return ""
	}
}

// GetLocation returns the configured time zone, falling back to UTC when the
// zone name is unknown.
func GetLocation() *time.Location {
	loc, err := time.LoadLocation(GetConfig("TIMEZONE"))
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, using UTC\n", GetConfig("TIMEZONE"))
		return time.UTC
	}
	return loc
}

func GetReminderPollInterval() time.Duration {
	raw := GetConfig("REMINDER_POLL_INTERVAL")
	if raw == "" {
		return DefaultReminderPollInterval
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Invalid REMINDER_POLL_INTERVAL %q, using %s\n", raw, DefaultReminderPollInterval)
		return DefaultReminderPollInterval
	}
	return d
}
