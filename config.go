package folio

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Site name (default "Ayden Ballard")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD
	Locale      string // OpenGraph locale (default "en_GB")

	Addr      string // Listen address (default ":3000")
	StaticDir string // User-owned static assets served under /public (default "public")

	SessionSecret string // Cookie session key; a random key is used when empty
	CookieSecure  bool   // Set true for HTTPS

	ContentDir string // Content directory; the embedded bundle is used when empty

	AckDuration       time.Duration // How long the contact acknowledgment stays visible (default 5s)
	ContactRateLimit  int           // Contact submissions allowed per window and IP (default 5)
	ContactRateWindow time.Duration // Contact limiter window (default 1m)

	MetricsEnabled bool   // Serve /metrics (default true)
	LogLevel       string // debug, info, warn or error (default "info")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Ayden Ballard"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Locale == "" {
		c.Locale = "en_GB"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.AckDuration <= 0 {
		c.AckDuration = 5 * time.Second
	}
	if c.ContactRateLimit <= 0 {
		c.ContactRateLimit = 5
	}
	if c.ContactRateWindow <= 0 {
		c.ContactRateWindow = time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// EnvPrefix is prepended to every configuration key read from the
// environment, e.g. FOLIO_SERVER_ADDR for server.addr.
const EnvPrefix = "FOLIO"

// LoadConfig reads configuration from path, or from folio.yaml in . or
// ./config when path is empty, then applies FOLIO_* environment overrides.
// A missing default config file is not an error.
func LoadConfig(path string) (SiteConfig, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("site.name", "Ayden Ballard")
	v.SetDefault("site.url", "http://localhost:3000")
	v.SetDefault("site.description", "Full stack engineering notes, projects and experience.")
	v.SetDefault("site.author", "Ayden Ballard")
	v.SetDefault("site.locale", "en_GB")
	v.SetDefault("server.addr", ":3000")
	v.SetDefault("server.static_dir", "public")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.cookie_secure", false)
	v.SetDefault("content.dir", "")
	v.SetDefault("contact.ack_duration", "5s")
	v.SetDefault("contact.rate_limit", 5)
	v.SetDefault("contact.rate_window", "1m")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return SiteConfig{}, fmt.Errorf("folio: read config: %w", err)
		}
	}

	cfg := SiteConfig{
		Name:              v.GetString("site.name"),
		URL:               strings.TrimRight(v.GetString("site.url"), "/"),
		Description:       v.GetString("site.description"),
		Author:            v.GetString("site.author"),
		Locale:            v.GetString("site.locale"),
		Addr:              v.GetString("server.addr"),
		StaticDir:         v.GetString("server.static_dir"),
		SessionSecret:     v.GetString("session.secret"),
		CookieSecure:      v.GetBool("session.cookie_secure"),
		ContentDir:        v.GetString("content.dir"),
		AckDuration:       v.GetDuration("contact.ack_duration"),
		ContactRateLimit:  v.GetInt("contact.rate_limit"),
		ContactRateWindow: v.GetDuration("contact.rate_window"),
		MetricsEnabled:    v.GetBool("metrics.enabled"),
		LogLevel:          strings.ToLower(v.GetString("log.level")),
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return SiteConfig{}, fmt.Errorf("folio: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// ParseLogLevel maps a level name to the Echo logger level.
func ParseLogLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG, nil
	case "", "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}
