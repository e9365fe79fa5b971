package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"paginator/internal/pagination"
	"paginator/internal/scroll"
)

const DefaultPath = ".paginator/config.yaml"

// Config holds the settings of the demo list and its feed source.
type Config struct {
	Source         string        `mapstructure:"source" yaml:"source"` // memory | file | http
	File           string        `mapstructure:"file" yaml:"file,omitempty"`
	URL            string        `mapstructure:"url" yaml:"url,omitempty"`
	PageSize       int           `mapstructure:"page_size" yaml:"page_size"`
	TotalItems     int           `mapstructure:"total_items" yaml:"total_items"` // memory source only
	Latency        time.Duration `mapstructure:"latency" yaml:"latency"`
	LeadingScreens float64       `mapstructure:"leading_screens" yaml:"leading_screens"`
	Directions     string        `mapstructure:"directions" yaml:"directions"`
	NoColor        bool          `mapstructure:"no_color" yaml:"no_color"`
	LogFile        string        `mapstructure:"log_file" yaml:"log_file,omitempty"`
}

func Default() *Config {
	return &Config{
		Source:         "memory",
		PageSize:       20,
		TotalItems:     200,
		Latency:        400 * time.Millisecond,
		LeadingScreens: 2,
		Directions:     "vertical",
	}
}

// SetDefaults registers Default() on v so that flags and files override it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("source", d.Source)
	v.SetDefault("file", d.File)
	v.SetDefault("url", d.URL)
	v.SetDefault("page_size", d.PageSize)
	v.SetDefault("total_items", d.TotalItems)
	v.SetDefault("latency", d.Latency)
	v.SetDefault("leading_screens", d.LeadingScreens)
	v.SetDefault("directions", d.Directions)
	v.SetDefault("no_color", d.NoColor)
	v.SetDefault("log_file", d.LogFile)
}

// Load reads path (if it exists) into v and returns the validated result.
// A missing file at the default path is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("PAGINATOR")
	v.AutomaticEnv()

	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) || path != DefaultPath {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	switch c.Source {
	case "memory":
		if c.TotalItems <= 0 {
			return fmt.Errorf("config: total_items must be positive")
		}
	case "file":
		if c.File == "" {
			return fmt.Errorf("config: source file needs a file path")
		}
	case "http":
		if c.URL == "" {
			return fmt.Errorf("config: source http needs a url")
		}
	default:
		return fmt.Errorf("config: unknown source %q", c.Source)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("config: page_size must be positive")
	}
	if c.LeadingScreens <= 0 {
		return fmt.Errorf("config: leading_screens must be positive")
	}
	if _, err := c.ScrollableDirections(); err != nil {
		return err
	}
	return nil
}

// ScrollableDirections parses Directions, which must lie on one axis.
func (c *Config) ScrollableDirections() (scroll.Direction, error) {
	d, err := scroll.Parse(c.Directions)
	if err != nil {
		return scroll.None, fmt.Errorf("config: directions: %w", err)
	}
	if d.IsEmpty() {
		return scroll.None, fmt.Errorf("config: directions must not be empty")
	}
	if _, err := pagination.AxisFor(d); err != nil {
		return scroll.None, fmt.Errorf("config: directions: %w", err)
	}
	return d, nil
}

// Marshal renders c as YAML with two-space indentation.
func Marshal(c *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes c as YAML, creating parent directories.
func Save(path string, c *Config) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
