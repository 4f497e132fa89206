package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every setting of the server. The zero value is not
// usable; start from Default.
type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// Directory files are served from. Empty means the working
	// directory at the time Load runs.
	Root         string `yaml:"root"`
	IndexFile    string `yaml:"index_file"`
	NotFoundFile string `yaml:"not_found_file"`

	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// Bounds on the request head.
	MaxLineLength int `yaml:"max_line_length"`
	MaxLines      int `yaml:"max_lines"`

	LogLevel string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Host:          "127.0.0.1",
		IndexFile:     "index.html",
		NotFoundFile:  "404.html",
		ReadTimeout:   10 * time.Second,
		WriteTimeout:  10 * time.Second,
		MaxLineLength: 8 << 10,
		MaxLines:      100,
		LogLevel:      "info",
	}
}

// Load starts from Default, applies the YAML file at `path` when
// path is not empty, then the environment. The port is left for
// the caller to set from the command line.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.Host = getEnvOrDefault("FILESERVER_HOST", cfg.Host)
	cfg.Root = getEnvOrDefault("FILESERVER_ROOT", cfg.Root)
	cfg.LogLevel = getEnvOrDefault("FILESERVER_LOG_LEVEL", cfg.LogLevel)

	if cfg.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("working directory: %w", err)
		}
		cfg.Root = wd
	}
	return cfg, nil
}

var levels = []string{"debug", "info", "warn", "error"}

func (c *Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.Root == "" {
		errs = append(errs, errors.New("root is empty"))
	}
	if c.IndexFile == "" || c.NotFoundFile == "" {
		errs = append(errs, errors.New("index_file and not_found_file must be set"))
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		errs = append(errs, errors.New("timeouts must not be negative"))
	}
	if c.MaxLineLength < 16 {
		errs = append(errs, fmt.Errorf("max_line_length too small: %d", c.MaxLineLength))
	}
	if c.MaxLines < 1 {
		errs = append(errs, fmt.Errorf("max_lines too small: %d", c.MaxLines))
	}
	if !validLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("unknown log_level %q, want one of %s", c.LogLevel, strings.Join(levels, ", ")))
	}
	return errors.Join(errs...)
}

func validLevel(l string) bool {
	for _, v := range levels {
		if l == v {
			return true
		}
	}
	return false
}

// Address is the host:port the listener binds to.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
