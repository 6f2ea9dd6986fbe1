package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DB        DBConfig
	Server    ServerConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Quiz      QuizConfig
	CacheTTLs CacheTTLConfig
}

type DBConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

// RedisConfig configures the category cache. An empty Address disables it.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggerConfig struct {
	Level string
	Env   string
}

type QuizConfig struct {
	PageSize        int
	SelectionPolicy string
}

// CacheTTLConfig holds TTLs as duration strings ("10m", "1h").
type CacheTTLConfig struct {
	Categories string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("server.idle_timeout", "20s")
	v.SetDefault("server.body_limit", 1024*1024)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "trivia")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("quiz.page_size", 10)
	v.SetDefault("quiz.selection_policy", "random")

	v.SetDefault("cache_ttls.categories", "10m")
}

// LoadConfig reads config.yaml (optional) and APP_-prefixed environment
// variables, e.g. APP_DB_HOST overrides db.host.
func LoadConfig() (*Config, error) {
	// .env is a local convenience; it never overrides variables already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if path := os.Getenv("APP_CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		DB: DBConfig{
			Host:         v.GetString("db.host"),
			Port:         v.GetInt("db.port"),
			User:         v.GetString("db.user"),
			Password:     v.GetString("db.password"),
			DBName:       v.GetString("db.name"),
			SSLMode:      v.GetString("db.sslmode"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
			MaxIdleConns: v.GetInt("db.max_idle_conns"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Quiz: QuizConfig{
			PageSize:        v.GetInt("quiz.page_size"),
			SelectionPolicy: v.GetString("quiz.selection_policy"),
		},
		CacheTTLs: CacheTTLConfig{
			Categories: v.GetString("cache_ttls.categories"),
		},
	}

	if cfg.Quiz.PageSize <= 0 {
		return nil, fmt.Errorf("quiz.page_size must be positive, got %d", cfg.Quiz.PageSize)
	}

	return cfg, nil
}

// GetDSN returns a postgres URL usable by both the pgx driver and golang-migrate.
func (c *Config) GetDSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DB.User, c.DB.Password),
		Host:     fmt.Sprintf("%s:%d", c.DB.Host, c.DB.Port),
		Path:     "/" + c.DB.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DB.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// ParseTTLStringOrDefault parses a duration string, falling back to def when
// it is empty or invalid.
func (c *Config) ParseTTLStringOrDefault(ttl string, def time.Duration) time.Duration {
	if ttl == "" {
		return def
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d < 0 {
		return def
	}
	return d
}
