// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Cache   CacheConfig   `mapstructure:"cache"`
	APIs    APIsConfig    `mapstructure:"apis"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

type CacheConfig struct {
	Redis      RedisConfig `mapstructure:"redis"`
	TTLSeconds int         `mapstructure:"ttl_seconds"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// APIsConfig holds settings for external API integrations.
type APIsConfig struct {
	Interpreter struct {
		BaseURL     string  `mapstructure:"base_url"`
		Model       string  `mapstructure:"model"`
		Timeout     int     `mapstructure:"timeout"` // milliseconds
		Temperature float64 `mapstructure:"temperature"`
		MaxTokens   int     `mapstructure:"max_tokens"`
	} `mapstructure:"interpreter"`

	BookSearch struct {
		BaseURL string `mapstructure:"base_url"`
		APIKey  string `mapstructure:"api_key"`
		Timeout int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"book_search"`

	BookCatalog struct {
		BaseURL string `mapstructure:"base_url"`
		Timeout int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"book_catalog"`

	Gourmet struct {
		BaseURL string `mapstructure:"base_url"`
		APIKey  string `mapstructure:"api_key"`
		Timeout int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"gourmet"`

	Rakuten struct {
		BaseURL       string `mapstructure:"base_url"`
		ApplicationID string `mapstructure:"application_id"`
		Timeout       int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"rakuten"`
}

// SearchConfig holds the caps and thresholds of the aggregation pipeline.
type SearchConfig struct {
	MaxBookCandidates     int `mapstructure:"max_book_candidates"`
	AccumulateThreshold   int `mapstructure:"accumulate_threshold"`
	BookPaddingThreshold  int `mapstructure:"book_padding_threshold"`
	MaxRestaurants        int `mapstructure:"max_restaurants"`
	GourmetPaddingMinimum int `mapstructure:"gourmet_padding_minimum"`
	MaxConcurrentLookups  int `mapstructure:"max_concurrent_lookups"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
