// Package config loads service configuration from the environment, optionally
// layered over a YAML file named by CONFIG_FILE.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/murkotick/storefront-graph/internal/platform"
)

// RequiredScopes must all appear in CT_SCOPES.
var RequiredScopes = []string{"view_products", "manage_shopping_lists", "manage_orders"}

type Platform struct {
	ProjectKey        string        `yaml:"project_key"`
	ClientID          string        `yaml:"client_id"`
	ClientSecret      string        `yaml:"client_secret"`
	Scopes            string        `yaml:"scopes"`
	APIURL            string        `yaml:"api_url"`
	AuthURL           string        `yaml:"auth_url"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	Timeout           time.Duration `yaml:"timeout"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Telemetry struct {
	OTLPEndpoint string  `yaml:"otlp_endpoint"`
	Insecure     bool    `yaml:"insecure"`
	SampleRate   float64 `yaml:"sample_rate"`
}

type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`
	HTTPAddr string `yaml:"http_addr"`
	GRPCAddr string `yaml:"grpc_addr"`

	Platform Platform `yaml:"platform"`

	OrderListLimit  int           `yaml:"order_list_limit"`
	SpannerDatabase string        `yaml:"spanner_database"`
	Redis           Redis         `yaml:"redis"`
	IdempotencyTTL  time.Duration `yaml:"idempotency_ttl"`

	Telemetry Telemetry `yaml:"telemetry"`
}

func defaults() Config {
	return Config{
		AppEnv:   "dev",
		LogLevel: "info",
		HTTPAddr: ":4000",
		GRPCAddr: ":50051",
		Platform: Platform{
			RequestsPerSecond: 20,
			Burst:             10,
			Timeout:           15 * time.Second,
		},
		OrderListLimit: 100,
		IdempotencyTTL: 24 * time.Hour,
		Telemetry:      Telemetry{SampleRate: 1},
	}
}

// Load builds the configuration and validates it.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %q: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.AppEnv, "APP_ENV")
	setString(&c.LogLevel, "LOG_LEVEL")
	if port := os.Getenv("PORT"); port != "" {
		c.HTTPAddr = ":" + port
	}
	setString(&c.HTTPAddr, "HTTP_ADDR")
	setString(&c.GRPCAddr, "GRPC_ADDR")

	setString(&c.Platform.ProjectKey, "CT_PROJECT_KEY")
	setString(&c.Platform.ClientID, "CT_CLIENT_ID")
	setString(&c.Platform.ClientSecret, "CT_CLIENT_SECRET")
	setString(&c.Platform.Scopes, "CT_SCOPES")
	setString(&c.Platform.APIURL, "CT_API_URL")
	setString(&c.Platform.AuthURL, "CT_AUTH_URL")

	setString(&c.SpannerDatabase, "SPANNER_DATABASE")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Telemetry.OTLPEndpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")

	var errs []error
	errs = append(errs,
		setParsed(&c.Platform.RequestsPerSecond, "CT_REQUESTS_PER_SECOND", func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }),
		setParsed(&c.Platform.Burst, "CT_BURST", strconv.Atoi),
		setParsed(&c.Platform.Timeout, "CT_TIMEOUT", time.ParseDuration),
		setParsed(&c.OrderListLimit, "ORDER_LIST_LIMIT", strconv.Atoi),
		setParsed(&c.Redis.DB, "REDIS_DB", strconv.Atoi),
		setParsed(&c.IdempotencyTTL, "IDEMPOTENCY_TTL", time.ParseDuration),
		setParsed(&c.Telemetry.Insecure, "OTEL_INSECURE", strconv.ParseBool),
		setParsed(&c.Telemetry.SampleRate, "OTEL_SAMPLE_RATE", func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }),
	)
	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setParsed[T any](dst *T, key string, parse func(string) (T, error)) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	parsed, err := parse(v)
	if err != nil {
		return fmt.Errorf("%s: invalid value %q: %w", key, v, err)
	}
	*dst = parsed
	return nil
}

// Validate reports every missing platform setting in one error and checks
// the configured scopes.
func (c Config) Validate() error {
	required := []struct{ key, val string }{
		{"CT_PROJECT_KEY", c.Platform.ProjectKey},
		{"CT_CLIENT_ID", c.Platform.ClientID},
		{"CT_CLIENT_SECRET", c.Platform.ClientSecret},
		{"CT_SCOPES", c.Platform.Scopes},
		{"CT_API_URL", c.Platform.APIURL},
		{"CT_AUTH_URL", c.Platform.AuthURL},
	}
	var missing []string
	for _, r := range required {
		if r.val == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if absent := missingScopes(c.ScopeList()); len(absent) > 0 {
		return fmt.Errorf("CT_SCOPES is missing required scopes: %s", strings.Join(absent, ", "))
	}
	if c.OrderListLimit < 0 {
		return fmt.Errorf("ORDER_LIST_LIMIT must not be negative")
	}
	return nil
}

// ScopeList splits the space separated CT_SCOPES value.
func (c Config) ScopeList() []string {
	return strings.Fields(c.Platform.Scopes)
}

func missingScopes(scopes []string) []string {
	have := make(map[string]bool, len(scopes))
	for _, s := range scopes {
		name, _, _ := strings.Cut(s, ":")
		have[name] = true
	}
	var missing []string
	for _, r := range RequiredScopes {
		if !have[r] {
			missing = append(missing, r)
		}
	}
	return missing
}

// PlatformConfig is the platform client configuration.
func (c Config) PlatformConfig() platform.Config {
	return platform.Config{
		ProjectKey:        c.Platform.ProjectKey,
		ClientID:          c.Platform.ClientID,
		ClientSecret:      c.Platform.ClientSecret,
		APIURL:            c.Platform.APIURL,
		AuthURL:           c.Platform.AuthURL,
		Scopes:            c.ScopeList(),
		RequestsPerSecond: c.Platform.RequestsPerSecond,
		Burst:             c.Platform.Burst,
		Timeout:           c.Platform.Timeout,
	}
}
