package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	dconfig "agent-activity/domain/config"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is unset.
const DefaultPath = "./config.yml"

var validate = validator.New()

// Path returns CONFIG_PATH or the default location.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// Load parses the YAML configuration file at path on top of the defaults.
// A missing file yields the defaults. LOG_LEVEL overrides log.level.
func Load(path string) (*dconfig.Config, error) {
	c := dconfig.Default()
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Debug("config.default", "path", path)
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		slog.Info(fmt.Sprintf("Loaded config: %s", path))
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		c.Log.Level = strings.ToLower(lvl)
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: rule '%s' (value: '%v')", e.Namespace(), e.Tag(), e.Value()))
			}
			return nil, fmt.Errorf("config %s invalid: %s", path, strings.Join(msgs, "; "))
		}
		return nil, err
	}
	c.Rules = c.Rules.WithDefaults()
	c.Policy = c.Policy.WithDefaults()
	return c, nil
}

// SlogLevel maps a config level name to a slog level.
func SlogLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
