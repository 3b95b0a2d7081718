package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/domaingate/internal/adapters/out/httpprober"
	"github.com/bnema/domaingate/internal/adapters/out/telemetry"
	"github.com/bnema/domaingate/internal/domain"
	"github.com/bnema/domaingate/internal/usecase/domains"
)

// Store drivers.
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

// Provider drivers.
const (
	ProviderDriverVercel     = "vercel"
	ProviderDriverCloudflare = "cloudflare"
)

// Config holds the application configuration.
type Config struct {
	Server struct {
		EdgeAddr       string   `mapstructure:"edge_addr"`
		APIAddr        string   `mapstructure:"api_addr"`
		DataDir        string   `mapstructure:"data_dir"`
		TrustedProxies []string `mapstructure:"trusted_proxies"`
	} `mapstructure:"server"`

	Routing struct {
		RootDomain       string   `mapstructure:"root_domain"`
		ReservedPrefixes []string `mapstructure:"reserved_prefixes"`
		RewritePrefix    string   `mapstructure:"rewrite_prefix"`
	} `mapstructure:"routing"`

	Edge struct {
		AppUpstream          string        `mapstructure:"app_upstream"`
		CustomDomainUpstream string        `mapstructure:"custom_domain_upstream"`
		CNAMETarget          string        `mapstructure:"cname_target"`
		ProbeTimeout         time.Duration `mapstructure:"probe_timeout"`
	} `mapstructure:"edge"`

	Provider struct {
		Driver  string        `mapstructure:"driver"`
		Timeout time.Duration `mapstructure:"timeout"`
		Vercel  struct {
			Token     string `mapstructure:"token"`
			ProjectID string `mapstructure:"project_id"`
			TeamID    string `mapstructure:"team_id"`
			BaseURL   string `mapstructure:"base_url"`
		} `mapstructure:"vercel"`
		Cloudflare struct {
			APIToken string `mapstructure:"api_token"`
			ZoneID   string `mapstructure:"zone_id"`
			BaseURL  string `mapstructure:"base_url"`
		} `mapstructure:"cloudflare"`
	} `mapstructure:"provider"`

	Store struct {
		Driver string `mapstructure:"driver"`
		SQLite struct {
			Path string `mapstructure:"path"`
		} `mapstructure:"sqlite"`
	} `mapstructure:"store"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	API struct {
		AllowedCIDRs []string `mapstructure:"allowed_cidrs"`
		CORSOrigins  []string `mapstructure:"cors_origins"`
		RateLimit    struct {
			Enabled       bool          `mapstructure:"enabled"`
			PerIPRPS      float64       `mapstructure:"per_ip_rps"`
			Burst         int           `mapstructure:"burst"`
			SweepInterval time.Duration `mapstructure:"sweep_interval"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"api"`

	Events struct {
		Enabled    bool `mapstructure:"enabled"`
		BufferSize int  `mapstructure:"buffer_size"`
	} `mapstructure:"events"`

	Telemetry telemetry.Config `mapstructure:"telemetry"`
}

// initConfig loads configuration from file, environment and defaults.
func initConfig(configPath string) (*viper.Viper, Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Store.SQLite.Path == "" {
		cfg.Store.SQLite.Path = filepath.Join(cfg.Server.DataDir, "domaingate.db")
	}

	return v, cfg, nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("server.edge_addr", ":8080")
	v.SetDefault("server.api_addr", ":8081")
	v.SetDefault("server.data_dir", DefaultDataDir())
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("routing.root_domain", "")
	v.SetDefault("routing.reserved_prefixes", []string{})
	v.SetDefault("routing.rewrite_prefix", "/subdomain")
	v.SetDefault("edge.app_upstream", "http://127.0.0.1:3000")
	v.SetDefault("edge.custom_domain_upstream", "")
	v.SetDefault("edge.cname_target", "")
	v.SetDefault("edge.probe_timeout", httpprober.DefaultTimeout)
	v.SetDefault("provider.driver", ProviderDriverVercel)
	v.SetDefault("provider.timeout", domains.DefaultProviderTimeout)
	v.SetDefault("provider.vercel.token", "")
	v.SetDefault("provider.vercel.project_id", "")
	v.SetDefault("provider.vercel.team_id", "")
	v.SetDefault("provider.vercel.base_url", "")
	v.SetDefault("provider.cloudflare.api_token", "")
	v.SetDefault("provider.cloudflare.zone_id", "")
	v.SetDefault("provider.cloudflare.base_url", "")
	v.SetDefault("store.driver", StoreDriverSQLite)
	v.SetDefault("store.sqlite.path", "") // defaults to {data_dir}/domaingate.db when empty
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("api.allowed_cidrs", []string{})
	v.SetDefault("api.cors_origins", []string{})
	v.SetDefault("api.rate_limit.enabled", true)
	v.SetDefault("api.rate_limit.per_ip_rps", 5)
	v.SetDefault("api.rate_limit.burst", 20)
	v.SetDefault("api.rate_limit.sweep_interval", time.Minute)
	v.SetDefault("events.enabled", true)
	v.SetDefault("events.buffer_size", 100)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.auth_token", "")
	v.SetDefault("telemetry.traces", true)
	v.SetDefault("telemetry.metrics", true)
	v.SetDefault("telemetry.trace_sample_rate", 1.0)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("DOMAINGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// validateServeConfig checks what serve needs beyond what the CLI commands need.
func validateServeConfig(cfg Config) error {
	var problems []string
	if cfg.Routing.RootDomain == "" {
		problems = append(problems, "routing.root_domain is required")
	}
	if cfg.Edge.AppUpstream == "" {
		problems = append(problems, "edge.app_upstream is required")
	}
	if cfg.Server.EdgeAddr == cfg.Server.APIAddr {
		problems = append(problems, "server.edge_addr and server.api_addr must differ")
	}
	if cfg.API.RateLimit.Enabled && cfg.API.RateLimit.PerIPRPS <= 0 {
		problems = append(problems, "api.rate_limit.per_ip_rps must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
