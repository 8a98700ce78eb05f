package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task engine specifics
	Timezone string
	Store    StoreConfig
	Blob     BlobConfig
	Auth     AuthConfig
	OpenAI   OpenAIConfig
	Prefill  PrefillConfig

	// Reminder glue (optional)
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StoreConfig configures the embedded document store.
type StoreConfig struct {
	Path   string // bbolt database file
	Bucket string // single logical collection, default "tasks"
}

// BlobConfig configures the attachment blob store.
type BlobConfig struct {
	Dir     string // local directory holding uploaded files
	BaseURL string // public URL prefix returned for uploads
}

// AuthConfig selects the identity provider.
// Mode "google" verifies bearer tokens against Google's tokeninfo
// endpoint; "static" trusts the X-User-ID header (development only).
type AuthConfig struct {
	Mode string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

// PrefillConfig tunes the template prefill pipeline.
type PrefillConfig struct {
	CacheSize       int    // max cached drafts
	CacheTTL        string // e.g. "5m"
	RateLimitPerMin int    // per-user upstream call budget
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Task engine
	cfg.Timezone = viper.GetString("timezone")
	cfg.Store.Path = viper.GetString("store.path")
	cfg.Store.Bucket = viper.GetString("store.bucket")
	cfg.Blob.Dir = viper.GetString("blob.dir")
	cfg.Blob.BaseURL = viper.GetString("blob.base_url")
	cfg.Auth.Mode = viper.GetString("auth.mode")

	// OpenAI
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}

	// Prefill
	cfg.Prefill.CacheSize = viper.GetInt("prefill.cache_size")
	cfg.Prefill.CacheTTL = viper.GetString("prefill.cache_ttl")
	cfg.Prefill.RateLimitPerMin = viper.GetInt("prefill.rate_limit_per_min")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	if cfg.GoogleCalendar.CalendarID == "" {
		cfg.GoogleCalendar.CalendarID = "primary"
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("timezone", "Local")
	viper.SetDefault("store.path", "data/tasks.db")
	viper.SetDefault("store.bucket", "tasks")
	viper.SetDefault("blob.dir", "data/attachments")
	viper.SetDefault("blob.base_url", "http://localhost:8080/static")
	viper.SetDefault("auth.mode", "static")

	viper.SetDefault("openai.model", "gpt-3.5-turbo")

	viper.SetDefault("prefill.cache_size", 128)
	viper.SetDefault("prefill.cache_ttl", "5m")
	viper.SetDefault("prefill.rate_limit_per_min", 30)
}
