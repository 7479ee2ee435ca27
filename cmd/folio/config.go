package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arnevik/folio"
)

// fileConfig is the on-disk shape of folio.yml. Every key can also be set
// through a FOLIO_* environment variable (e.g. FOLIO_ADMIN_PASSWORD), which
// is where secrets belong.
type fileConfig struct {
	Name        string `yaml:"name" koanf:"name"`
	URL         string `yaml:"url" koanf:"url"`
	Description string `yaml:"description" koanf:"description"`

	Addr     string `yaml:"addr" koanf:"addr"`
	Content  string `yaml:"content" koanf:"content"`
	Database string `yaml:"database" koanf:"database"`

	AdminPassword string `yaml:"admin_password" koanf:"admin_password"`
	SessionSecret string `yaml:"session_secret" koanf:"session_secret"`
	CookieSecure  bool   `yaml:"cookie_secure" koanf:"cookie_secure"`

	DeliveryDelayMS int  `yaml:"delivery_delay_ms" koanf:"delivery_delay_ms"`
	LiveReload      bool `yaml:"live_reload" koanf:"live_reload"`
}

// loadConfig reads the YAML config if it exists, then overlays FOLIO_*
// environment variables.
func loadConfig(path string) (*fileConfig, error) {
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("FOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	var cfg fileConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// siteConfig converts the file config into the engine's SiteConfig.
// Zero values fall through to the engine defaults.
func (c *fileConfig) siteConfig() folio.SiteConfig {
	return folio.SiteConfig{
		Name:          c.Name,
		URL:           c.URL,
		Description:   c.Description,
		Addr:          c.Addr,
		ContentPath:   c.Content,
		DatabasePath:  c.Database,
		AdminPassword: c.AdminPassword,
		SessionSecret: c.SessionSecret,
		CookieSecure:  c.CookieSecure,
		DeliveryDelay: time.Duration(c.DeliveryDelayMS) * time.Millisecond,
		LiveReload:    c.LiveReload,
	}
}
