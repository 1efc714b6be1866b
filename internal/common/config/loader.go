// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like RAKUTEN_APPLICATION_ID
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored when absent
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig()

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string config values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// Direct override if config values are still empty after expansion
func overrideEmptyConfig(cfg *Config) {
	if cfg.APIs.BookSearch.APIKey == "" {
		if val := os.Getenv("BOOK_SEARCH_API_KEY"); val != "" {
			cfg.APIs.BookSearch.APIKey = val
		}
	}
	if cfg.APIs.Gourmet.APIKey == "" {
		if val := os.Getenv("GOURMET_API_KEY"); val != "" {
			cfg.APIs.Gourmet.APIKey = val
		}
	}
	if cfg.APIs.Rakuten.ApplicationID == "" {
		if val := os.Getenv("RAKUTEN_APPLICATION_ID"); val != "" {
			cfg.APIs.Rakuten.ApplicationID = val
		}
	}
	if cfg.Cache.Redis.Password == "" {
		if val := os.Getenv("REDIS_PASSWORD"); val != "" {
			cfg.Cache.Redis.Password = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "searchscout"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}

	// Server defaults
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}

	// Cache defaults
	if cfg.Cache.Redis.Address == "" {
		cfg.Cache.Redis.Address = "localhost:6379"
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 900
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	// API timeout defaults
	if cfg.APIs.Interpreter.Timeout == 0 {
		cfg.APIs.Interpreter.Timeout = 60000
	}
	if cfg.APIs.Interpreter.Model == "" {
		cfg.APIs.Interpreter.Model = "gpt-oss-20b"
	}
	if cfg.APIs.Interpreter.Temperature == 0 {
		cfg.APIs.Interpreter.Temperature = 0.3
	}
	if cfg.APIs.Interpreter.MaxTokens == 0 {
		cfg.APIs.Interpreter.MaxTokens = 500
	}
	if cfg.APIs.BookSearch.Timeout == 0 {
		cfg.APIs.BookSearch.Timeout = 10000
	}
	if cfg.APIs.BookCatalog.Timeout == 0 {
		cfg.APIs.BookCatalog.Timeout = 10000
	}
	if cfg.APIs.Gourmet.Timeout == 0 {
		cfg.APIs.Gourmet.Timeout = 10000
	}
	if cfg.APIs.Rakuten.Timeout == 0 {
		cfg.APIs.Rakuten.Timeout = 10000
	}

	// Search pipeline defaults
	if cfg.Search.MaxBookCandidates == 0 {
		cfg.Search.MaxBookCandidates = 20
	}
	if cfg.Search.AccumulateThreshold == 0 {
		cfg.Search.AccumulateThreshold = 15
	}
	if cfg.Search.BookPaddingThreshold == 0 {
		cfg.Search.BookPaddingThreshold = 10
	}
	if cfg.Search.MaxRestaurants == 0 {
		cfg.Search.MaxRestaurants = 15
	}
	if cfg.Search.GourmetPaddingMinimum == 0 {
		cfg.Search.GourmetPaddingMinimum = 5
	}
	if cfg.Search.MaxConcurrentLookups == 0 {
		cfg.Search.MaxConcurrentLookups = 3
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Server.Address == "" {
		return fmt.Errorf("server.address is required")
	}

	if cfg.APIs.Interpreter.BaseURL == "" {
		return fmt.Errorf("apis.interpreter.base_url is required")
	}
	if cfg.APIs.BookSearch.BaseURL == "" {
		return fmt.Errorf("apis.book_search.base_url is required")
	}
	if cfg.APIs.BookCatalog.BaseURL == "" {
		return fmt.Errorf("apis.book_catalog.base_url is required")
	}

	if cfg.Cache.Redis.Address == "" {
		return fmt.Errorf("cache.redis.address is required")
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
