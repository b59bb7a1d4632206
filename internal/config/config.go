package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gridedit/internal/grid"
	"gridedit/internal/trace"

	"github.com/spf13/viper"
)

// ConfigEnv overrides the config file location.
const ConfigEnv = "GRIDEDIT_CONFIG"

// Config holds application configuration.
type Config struct {
	Columns []ColumnConfig `mapstructure:"columns"`
	UI      UIConfig       `mapstructure:"ui"`
	Trace   TraceConfig    `mapstructure:"trace"`
	Log     LogConfig      `mapstructure:"log"`
}

// ColumnConfig is one entry of the [[columns]] table array.
type ColumnConfig struct {
	Name    string   `mapstructure:"name"`
	Kind    string   `mapstructure:"kind"`
	Options []string `mapstructure:"options"`
	Default string   `mapstructure:"default"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ShowPosition bool `mapstructure:"show_position"`
	Mouse        bool `mapstructure:"mouse"`
}

// TraceConfig holds OTLP export settings.
type TraceConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
	Insecure    bool   `mapstructure:"insecure"`
}

// LogConfig holds debug log settings.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Load reads configuration from file and env. Env var overrides use prefix GRIDEDIT_.
// path, when non-empty, takes precedence over GRIDEDIT_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.show_position", true)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("trace.endpoint", "")
	v.SetDefault("trace.service_name", trace.DefaultServiceName)
	v.SetDefault("trace.insecure", true)
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gridedit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GRIDEDIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine; a named file must exist and parse.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || explicit {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Schema builds the grid schema from the configured columns, falling back to
// the sample schema when none are configured.
func (c Config) Schema() (grid.Schema, error) {
	if len(c.Columns) == 0 {
		return grid.DefaultSchema(), nil
	}
	cols := make([]grid.Column, len(c.Columns))
	for i, cc := range c.Columns {
		kind := grid.KindFreeText
		if cc.Kind != "" {
			k, err := grid.ParseKind(cc.Kind)
			if err != nil {
				return grid.Schema{}, fmt.Errorf("column %q: %w", cc.Name, err)
			}
			kind = k
		}
		cols[i] = grid.Column{Name: cc.Name, Kind: kind, Options: cc.Options, Default: cc.Default}
	}
	s, err := grid.NewSchema(cols)
	if err != nil {
		return grid.Schema{}, fmt.Errorf("columns: %w", err)
	}
	return s, nil
}

// Tracing converts the trace section for the trace package.
func (c Config) Tracing() trace.Config {
	return trace.Config{
		Endpoint:    c.Trace.Endpoint,
		ServiceName: c.Trace.ServiceName,
		Insecure:    c.Trace.Insecure,
	}
}
