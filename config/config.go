package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingCredentials is returned when any of the three Reddit
// credentials is absent. The service cannot start without them.
var ErrMissingCredentials = errors.New("reddit credentials are not configured")

// Config holds the application configuration
type Config struct {
	Reddit    RedditConfig    `mapstructure:"reddit"`
	Server    ServerConfig    `mapstructure:"server"`
	Cache     CacheConfig     `mapstructure:"cache"`
	WordCloud WordCloudConfig `mapstructure:"wordcloud"`
}

// RedditConfig holds Reddit API credentials and endpoints
type RedditConfig struct {
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	UserAgent    string        `mapstructure:"user_agent"`
	TokenURL     string        `mapstructure:"token_url"`
	APIBaseURL   string        `mapstructure:"api_base_url"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// CacheConfig holds result memoization settings
type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// WordCloudConfig holds word cloud rendering defaults
type WordCloudConfig struct {
	FontFile   string `mapstructure:"font_file"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Background string `mapstructure:"background"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	viper.SetDefault("reddit.token_url", "https://www.reddit.com/api/v1/access_token")
	viper.SetDefault("reddit.api_base_url", "https://oauth.reddit.com")
	viper.SetDefault("reddit.fetch_timeout", "30s")
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("cache.ttl", "1h")
	viper.SetDefault("cache.cleanup_interval", "10m")
	viper.SetDefault("wordcloud.font_file", "./fonts/Roboto-Regular.ttf")
	viper.SetDefault("wordcloud.width", 800)
	viper.SetDefault("wordcloud.height", 400)
	viper.SetDefault("wordcloud.background", "#FFFFFF")

	// Environment variable bindings
	viper.AutomaticEnv()
	viper.BindEnv("reddit.client_id", "REDDIT_CLIENT_ID")
	viper.BindEnv("reddit.client_secret", "REDDIT_CLIENT_SECRET")
	viper.BindEnv("reddit.user_agent", "REDDIT_USER_AGENT")

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Println("No config file found, using defaults and environment variables")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Reddit.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (r RedditConfig) validate() error {
	switch {
	case r.ClientID == "":
		return fmt.Errorf("%w: REDDIT_CLIENT_ID is empty", ErrMissingCredentials)
	case r.ClientSecret == "":
		return fmt.Errorf("%w: REDDIT_CLIENT_SECRET is empty", ErrMissingCredentials)
	case r.UserAgent == "":
		return fmt.Errorf("%w: REDDIT_USER_AGENT is empty", ErrMissingCredentials)
	}
	return nil
}
