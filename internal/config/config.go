package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL is used when neither API_BASE_URL nor NEXT_PUBLIC_API_URL is set.
const DefaultAPIBaseURL = "https://flybackend-misty-feather-6458.fly.dev"

const (
	StorageFile   = "file"
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	API       APIConfig       `yaml:"api"`
	Storage   StorageConfig   `yaml:"storage"`
	Redis     RedisConfig     `yaml:"redis"`
	Cache     CacheConfig     `yaml:"cache"`
	Suggest   SuggestConfig   `yaml:"suggest"`
	Snowflake SnowflakeConfig `yaml:"snowflake"`
	Log       LogConfig       `yaml:"log"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url" env:"API_BASE_URL"`
	// Zero means the HTTP client never gives up on its own.
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"0s"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	Dir    string `yaml:"dir" env:"STORAGE_DIR"`
}

type RedisConfig struct {
	Addr      string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password  string `yaml:"password" env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"mealcounter:"`
}

type CacheConfig struct {
	L1Capacity int `yaml:"l1_capacity" env:"CACHE_L1_CAPACITY" env-default:"256"`
}

type SuggestConfig struct {
	Limit int `yaml:"limit" env:"SUGGEST_LIMIT" env-default:"8"`
}

type SnowflakeConfig struct {
	DatacenterID int64 `yaml:"datacenter_id" env:"SNOWFLAKE_DATACENTER_ID" env-default:"1"`
	WorkerID     int64 `yaml:"worker_id" env:"SNOWFLAKE_WORKER_ID" env-default:"1"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	File  string `yaml:"file" env:"LOG_FILE"`
}

// Load reads .env (if present), an optional YAML file named by CONFIG_PATH,
// and environment variables, in increasing order of priority.
func Load() (*Config, error) {
	// Load .env if it exists (local dev), ignore if not
	_ = godotenv.Load()

	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = getEnv("NEXT_PUBLIC_API_URL", DefaultAPIBaseURL)
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = defaultStorageDir()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageFile, StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.API.Timeout < 0 {
		return fmt.Errorf("api timeout must not be negative")
	}
	if c.Cache.L1Capacity < 0 {
		return fmt.Errorf("cache l1 capacity must not be negative")
	}
	if c.Suggest.Limit <= 0 {
		return fmt.Errorf("suggest limit must be positive")
	}
	return nil
}

func defaultStorageDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "mealcounter")
	}
	return ".mealcounter"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
