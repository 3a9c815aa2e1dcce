package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Shopify ShopifyConfig `mapstructure:"shopify"`
	Sync    SyncConfig    `mapstructure:"sync"`
	LLM     LLMConfig     `mapstructure:"llm"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

// ShopifyConfig carries the two externally supplied credentials plus the
// pinned Admin API version. ShopName may be the bare store handle or the
// full <handle>.myshopify.com domain.
type ShopifyConfig struct {
	ShopName    string `mapstructure:"shop_name"`
	AccessToken string `mapstructure:"access_token"`
	APIVersion  string `mapstructure:"api_version"`
}

type SyncConfig struct {
	PageSize       int           `mapstructure:"page_size"`
	OrderWindow    time.Duration `mapstructure:"order_window"`
	RequestDelay   time.Duration `mapstructure:"request_delay"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	InsightsDir    string        `mapstructure:"insights_dir"`
}

type LLMConfig struct {
	Generator ProviderConfig `mapstructure:"generator"`
}

type ProviderConfig struct {
	Provider  string `mapstructure:"provider"`
	Model     string `mapstructure:"model"`
	APIKeyEnv string `mapstructure:"api_key_env"`
	APIKey    string `mapstructure:"api_key"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// The config file is optional: every key has a default and the Shopify
// credentials are normally supplied through the environment.
func LoadConfig() (*Config, error) {
	// A local .env is the conventional place for store credentials.
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.trooba/")
	v.AddConfigPath("/etc/trooba/")

	v.SetEnvPrefix("TROOBA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Credentials keep their upstream variable names.
	_ = v.BindEnv("shopify.shop_name", "SHOPIFY_SHOP_NAME")
	_ = v.BindEnv("shopify.access_token", "SHOPIFY_ACCESS_TOKEN")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("db.path", "database/shopify_data.db")
	v.SetDefault("shopify.api_version", "2023-10")
	v.SetDefault("sync.page_size", 250)
	v.SetDefault("sync.order_window", 90*24*time.Hour)
	v.SetDefault("sync.request_delay", 500*time.Millisecond)
	v.SetDefault("sync.request_timeout", 30*time.Second)
	v.SetDefault("sync.insights_dir", "ai_insights")
	v.SetDefault("llm.generator.provider", "mock")
	v.SetDefault("llm.generator.model", "claude-3-5-sonnet-latest")
	v.SetDefault("llm.generator.api_key_env", "ANTHROPIC_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
