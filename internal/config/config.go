package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
	Climate    ClimateConfig
	PriceModel PriceModelConfig
	MapID      MapIDConfig
	CORS       CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ClimateCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// ClimateConfig - настройки конвейера климатических оценок
type ClimateConfig struct {
	DataDir        string
	GeometryEngine string
	Preload        bool
}

// PriceModelConfig - внешняя модель цены; пустой URL отключает модель
type PriceModelConfig struct {
	URL     string
	Timeout time.Duration
}

// MapIDConfig - провайдер подложки карты
type MapIDConfig struct {
	APIKey  string
	BaseURL string
}

type CORSConfig struct {
	AllowOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")

	v.SetDefault("DB_ENABLED", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "smartproperty")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("CLIMATE_CACHE_TTL", 3600)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("CLIMATE_DATA_DIR", "data")
	v.SetDefault("CLIMATE_GEOMETRY_ENGINE", "planar")
	v.SetDefault("CLIMATE_PRELOAD", true)

	v.SetDefault("PRICE_MODEL_URL", "")
	v.SetDefault("PRICE_MODEL_TIMEOUT", 5000)

	v.SetDefault("MAPID_BASE_URL", "https://basemap.mapid.io")

	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
}

// Load читает конфигурацию из .env в текущей директории и окружения
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom читает конфигурацию из файла path (если он есть) и окружения.
// Переменные окружения имеют приоритет над файлом.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Enabled:         v.GetBool("DB_ENABLED"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ClimateCacheTTL: time.Duration(v.GetInt("CLIMATE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Climate: ClimateConfig{
			DataDir:        v.GetString("CLIMATE_DATA_DIR"),
			GeometryEngine: strings.ToLower(v.GetString("CLIMATE_GEOMETRY_ENGINE")),
			Preload:        v.GetBool("CLIMATE_PRELOAD"),
		},
		PriceModel: PriceModelConfig{
			URL:     strings.TrimRight(v.GetString("PRICE_MODEL_URL"), "/"),
			Timeout: time.Duration(v.GetInt("PRICE_MODEL_TIMEOUT")) * time.Millisecond,
		},
		MapID: MapIDConfig{
			APIKey:  v.GetString("MAPID_API_KEY"),
			BaseURL: strings.TrimRight(v.GetString("MAPID_BASE_URL"), "/"),
		},
		CORS: CORSConfig{
			AllowOrigins: parseList(v.GetString("CORS_ALLOW_ORIGINS")),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Climate.GeometryEngine {
	case "planar", "grid":
	default:
		return fmt.Errorf("invalid CLIMATE_GEOMETRY_ENGINE %q: expected planar or grid", c.Climate.GeometryEngine)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid API_PORT %d", c.Server.Port)
	}
	if c.Cache.ClimateCacheTTL < 0 {
		return errors.New("CLIMATE_CACHE_TTL must not be negative")
	}
	return nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
