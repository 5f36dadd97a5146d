package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Postgres   PostgresConfig

	Auth   AuthConfig
	CIPerf CIPerfConfig

	// Timezone for relative date parsing ("today", "tomorrow").
	Timezone string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN renders the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

type CIPerfConfig struct {
	Owner    string
	Repo     string
	Workflow string
	Token    string

	ReportsDir string

	// Thresholds; zero values fall back to the aggregator defaults.
	TotalTimeSeconds   int
	CacheHitRate       float64
	DegradationPercent float64
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Best effort; env vars may come from the real environment instead.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Timezone = viper.GetString("timezone")

	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.SessionTTL = viper.GetDuration("auth.session_ttl")
	cfg.Auth.GoogleClientID = viper.GetString("auth.google_client_id")
	cfg.Auth.GoogleClientSecret = viper.GetString("auth.google_client_secret")
	cfg.Auth.GoogleRedirectURL = viper.GetString("auth.google_redirect_url")
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}

	cfg.CIPerf.Owner = viper.GetString("ciperf.owner")
	cfg.CIPerf.Repo = viper.GetString("ciperf.repo")
	cfg.CIPerf.Workflow = viper.GetString("ciperf.workflow")
	cfg.CIPerf.Token = viper.GetString("ciperf.token")
	if token := viper.GetString("github_token"); token != "" {
		cfg.CIPerf.Token = token
	}
	cfg.CIPerf.ReportsDir = viper.GetString("ciperf.reports_dir")
	cfg.CIPerf.TotalTimeSeconds = viper.GetInt("ciperf.total_time_seconds")
	cfg.CIPerf.CacheHitRate = viper.GetFloat64("ciperf.cache_hit_rate")
	cfg.CIPerf.DegradationPercent = viper.GetFloat64("ciperf.degradation_percent")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("timezone", "Local")

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "task_scheduler")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("auth.session_ttl", "24h")

	viper.SetDefault("ciperf.workflow", "ci.yml")
	viper.SetDefault("ciperf.reports_dir", "reports/ci-performance")
	viper.SetDefault("ciperf.total_time_seconds", 300)
	viper.SetDefault("ciperf.cache_hit_rate", 85)
	viper.SetDefault("ciperf.degradation_percent", 20)
}
