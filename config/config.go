package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Fetch     FetchConfig
	Contact   ContactConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	TrustedProxies []string `mapstructure:"trusted_proxies"` // IPs/CIDRs allowed to set X-Forwarded-For
}

// FetchConfig holds outbound request configuration.
// Timeouts are fixed per call site and apply to every analysis.
type FetchConfig struct {
	UserAgent           string        `mapstructure:"user_agent"`
	RootTimeout         time.Duration `mapstructure:"root_timeout"`
	FeedTimeout         time.Duration `mapstructure:"feed_timeout"`
	PolicyTimeout       time.Duration `mapstructure:"policy_timeout"`
	MaxIdleConns        int           `mapstructure:"max_idle_conns"`
	MaxIdleConnsPerHost int           `mapstructure:"max_idle_conns_per_host"`
	MaxBodyBytes        int64         `mapstructure:"max_body_bytes"`
}

// ContactConfig holds contact extraction configuration
type ContactConfig struct {
	DefaultRegion string `mapstructure:"default_region"` // ISO 3166-1 alpha-2
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
	Burst int `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/storeinsights/")

	// Environment variable settings
	v.SetEnvPrefix("STOREINSIGHTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.trusted_proxies", []string{})

	// Fetch defaults
	v.SetDefault("fetch.user_agent", defaultUserAgent)
	v.SetDefault("fetch.root_timeout", "15s")
	v.SetDefault("fetch.feed_timeout", "10s")
	v.SetDefault("fetch.policy_timeout", "5s")
	v.SetDefault("fetch.max_idle_conns", 100)
	v.SetDefault("fetch.max_idle_conns_per_host", 10)
	v.SetDefault("fetch.max_body_bytes", 10<<20)

	// Contact defaults
	v.SetDefault("contact.default_region", "US")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
	v.SetDefault("ratelimit.burst", 10)
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Fetch.UserAgent == "" {
		return fmt.Errorf("fetch user agent must not be empty")
	}

	if config.Fetch.RootTimeout <= 0 || config.Fetch.FeedTimeout <= 0 || config.Fetch.PolicyTimeout <= 0 {
		return fmt.Errorf("fetch timeouts must be positive, got root=%s feed=%s policy=%s",
			config.Fetch.RootTimeout, config.Fetch.FeedTimeout, config.Fetch.PolicyTimeout)
	}

	if config.Fetch.MaxBodyBytes <= 0 {
		return fmt.Errorf("fetch max body bytes must be positive, got: %d", config.Fetch.MaxBodyBytes)
	}

	if len(config.Contact.DefaultRegion) != 2 {
		return fmt.Errorf("contact default region must be a 2-letter country code, got: %q", config.Contact.DefaultRegion)
	}

	for _, proxy := range config.Server.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return fmt.Errorf("trusted proxy must be an IP or CIDR, got: %q", proxy)
			}
		}
	}

	if config.RateLimit.PerIP < 0 || config.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limits must not be negative")
	}

	return nil
}
