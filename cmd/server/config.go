package main

import (
	"github.com/dmitrymomot/filesession/pkg/config"
	"github.com/dmitrymomot/filesession/pkg/cookie"
	"github.com/dmitrymomot/filesession/pkg/httpserver"
	"github.com/dmitrymomot/filesession/pkg/logger"
	"github.com/dmitrymomot/filesession/pkg/session"
)

// appConfig is read from the environment, then overlaid with the YAML file
// named by SESSION_SETTINGS_FILE when set.
type appConfig struct {
	SettingsFile string `env:"SESSION_SETTINGS_FILE" yaml:"-"`
	BasePath     string `env:"APP_BASE_PATH" envDefault:"." yaml:"base_path"`

	Log     logger.Config     `yaml:"log"`
	HTTP    httpserver.Config `yaml:"http"`
	Cookie  cookie.Config     `yaml:"cookie"`
	Session session.Config    `yaml:"session"`
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	if cfg.SettingsFile != "" {
		if err := config.LoadYAML(cfg.SettingsFile, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// settings is the view of the configuration every session handler exposes.
func (c appConfig) settings() session.Settings {
	sc := c.Session
	return session.Settings{BasePath: c.BasePath, Session: &sc}
}
