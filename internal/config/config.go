package config

import "time"

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Redis      RedisConfig      `yaml:"redis"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Completion CompletionConfig `yaml:"completion"`
	Speech     SpeechConfig     `yaml:"speech"`
	Assistant  AssistantConfig  `yaml:"assistant"`
}

type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
}

type RedisConfig struct {
	Addresses []string `yaml:"addresses"`
	Password  string   `yaml:"password"`
	DB        int      `yaml:"db"`
	PoolSize  int      `yaml:"pool_size"`
}

type TelemetryConfig struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	MetricsPort int    `yaml:"metrics_port"`
}

type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requests_per_minute"`
}

// CompletionConfig points at an Azure OpenAI chat-completions deployment.
// The deployment carries the model choice, so no model name travels with
// individual requests.
type CompletionConfig struct {
	BaseURL       string            `yaml:"base_url"`
	APIKey        string            `yaml:"api_key"`
	Deployment    string            `yaml:"deployment"`
	APIVersion    string            `yaml:"api_version"`
	Timeout       time.Duration     `yaml:"timeout"`
	MaxRetries    int               `yaml:"max_retries"`
	MaxConcurrent int               `yaml:"max_concurrent"`
	Headers       map[string]string `yaml:"headers,omitempty"`
}

// SpeechConfig points at an Azure Speech short-audio recognition region.
// Endpoint, when set, overrides the region-derived URL (used in tests).
type SpeechConfig struct {
	SubscriptionKey string        `yaml:"subscription_key"`
	Region          string        `yaml:"region"`
	Language        string        `yaml:"language"`
	Endpoint        string        `yaml:"endpoint,omitempty"`
	Timeout         time.Duration `yaml:"timeout"`
}

type AssistantConfig struct {
	// OriginLabel is the fixed reference location embedded in routing
	// prompts.
	OriginLabel string `yaml:"origin_label"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8080,
			ReadTimeout:      30 * time.Second,
			WriteTimeout:     120 * time.Second,
			IdleTimeout:      120 * time.Second,
			GracefulShutdown: 30 * time.Second,
		},
		Redis: RedisConfig{
			Addresses: []string{"localhost:6379"},
			DB:        0,
			PoolSize:  50,
		},
		Telemetry: TelemetryConfig{
			LogLevel:    "info",
			LogFormat:   "json",
			MetricsPort: 9090,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 60,
		},
		Completion: CompletionConfig{
			APIVersion:    "2024-05-01-preview",
			Deployment:    "gpt-4",
			Timeout:       30 * time.Second,
			MaxRetries:    0,
			MaxConcurrent: 25,
		},
		Speech: SpeechConfig{
			Language: "en-US",
			Timeout:  15 * time.Second,
		},
		Assistant: AssistantConfig{
			OriginLabel: "New Zealand Wellington",
		},
	}
}
