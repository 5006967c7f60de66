// config предоставляет структуру конфигурации query-tiles-сервиса
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string        `yaml:"env"     env:"ENV"        env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	GRPC     GRPCConfig    `yaml:"grpc"`
	DB       DBConfig      `yaml:"db"`
	Cache    CacheConfig   `yaml:"cache"`
	Fetcher  FetcherConfig `yaml:"fetcher"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"5s"`
}

// GRPCConfig — сетевые настройки gRPC-сервера.
type GRPCConfig struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50053"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50083"`
}

// Addr возвращает адрес в формате host:port.
func (g GRPCConfig) Addr() string {
	return net.JoinHostPort(g.Host, g.Port)
}

// Addr возвращает адрес в формате host:port.
func (g HTTPConfig) Addr() string {
	return net.JoinHostPort(g.Host, g.Port)
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// CacheConfig — настройки Redis-кэша групп плиток.
// Пустой URL отключает кэш: сервис работает напрямую с хранилищем.
type CacheConfig struct {
	URL string        `yaml:"url" env:"CACHE_URL"`
	TTL time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"1h"`
}

// FetcherConfig — параметры периодического опроса тайл-сервера.
type FetcherConfig struct {
	// Базовый URL тайл-сервера.
	ServerURL string `yaml:"server_url" env:"TILE_SERVER_URL"`
	// Список локалей, для которых запрашиваются группы плиток.
	// Можно задать через ENV TILE_LOCALES, разделитель — запятая.
	Locales  []string      `yaml:"locales"  env:"TILE_LOCALES"   env-separator:","`
	Interval time.Duration `yaml:"interval" env:"FETCH_INTERVAL" env-default:"12h"`
	// Expiry — возраст группы, после которого она считается устаревшей
	// и удаляется из хранилища.
	Expiry time.Duration `yaml:"expiry" env:"GROUP_EXPIRY" env-default:"48h"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.Fetcher.ServerURL != "" && len(c.Fetcher.Locales) == 0 {
		return fmt.Errorf("fetcher.locales must contain at least one locale when fetcher.server_url is set")
	}
	if c.Fetcher.Interval < time.Minute {
		return fmt.Errorf("fetcher.interval must be at least 1m")
	}
	if c.Fetcher.Expiry < c.Fetcher.Interval {
		return fmt.Errorf("fetcher.expiry must be >= fetcher.interval")
	}
	if c.Cache.URL != "" && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 when cache.url is set")
	}
	return nil
}
