package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Storage and frontend.
	DBPath    string `mapstructure:"DB_PATH"`
	StaticDir string `mapstructure:"STATIC_DIR"`

	// Admin contact and shared secret.
	AdminWhatsApp string `mapstructure:"ADMIN_WHATSAPP"`
	AdminToken    string `mapstructure:"ADMIN_TOKEN"`

	// Twilio WhatsApp credentials. All three must be set for automated sends.
	TwilioAccountSID   string        `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken    string        `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppFrom string        `mapstructure:"TWILIO_WHATSAPP_FROM"`
	TwilioBaseURL      string        `mapstructure:"TWILIO_BASE_URL"`
	NotifyTimeout      time.Duration `mapstructure:"NOTIFY_TIMEOUT"`

	BrandImageURL      string `mapstructure:"BRAND_IMAGE_URL"`
	DefaultCountryCode string `mapstructure:"DEFAULT_COUNTRY_CODE"`
	BookingIDPrefix    string `mapstructure:"BOOKING_ID_PREFIX"`

	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`
}

var defaults = map[string]any{
	"PORT":                 "5000",
	"ENV":                  "development",
	"LOG_LEVEL":            "info",
	"DB_PATH":              "database/business.db",
	"STATIC_DIR":           "frontend",
	"ADMIN_WHATSAPP":       "",
	"ADMIN_TOKEN":          "",
	"TWILIO_ACCOUNT_SID":   "",
	"TWILIO_AUTH_TOKEN":    "",
	"TWILIO_WHATSAPP_FROM": "",
	"TWILIO_BASE_URL":      "https://api.twilio.com",
	"NOTIFY_TIMEOUT":       "10s",
	"BRAND_IMAGE_URL":      "",
	"DEFAULT_COUNTRY_CODE": "91",
	"BOOKING_ID_PREFIX":    "HF",
	"MAX_REQUESTS_PER_MIN": 60,
	"ALLOWED_ORIGINS":      "*",
}

// Load reads .env, an optional config.yaml and the process environment, in
// increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Annotate(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Annotate(err, "decoding config")
	}
	cfg.AdminWhatsApp = strings.TrimPrefix(strings.TrimSpace(cfg.AdminWhatsApp), "+")
	cfg.DefaultCountryCode = strings.TrimPrefix(strings.TrimSpace(cfg.DefaultCountryCode), "+")
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = 10 * time.Second
	}
	return &cfg, nil
}

// IsProduction reports whether production logging and gin release mode apply.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// TwilioEnabled reports whether automated WhatsApp sends are configured.
func (c *Config) TwilioEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioWhatsAppFrom != ""
}

// Origins splits ALLOWED_ORIGINS into a list for the CORS middleware.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
