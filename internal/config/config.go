package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pact-cli/pact/internal/branding"
	"github.com/pact-cli/pact/internal/paths"
	"github.com/pact-cli/pact/internal/registry"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyBaseDir       = "base_dir"
	KeyTemplatesRoot = "templates_root"
	KeyShell         = "shell"
	KeyLogLevel      = "log_level"
	KeyLanguages     = "languages"
	KeyCategories    = "categories"
)

// settableKeys can be changed with Set. The tables are edited in the file.
var settableKeys = []string{KeyBaseDir, KeyTemplatesRoot, KeyShell, KeyLogLevel}

var (
	// ErrUnknownKey is returned by Get and Set for keys pact does not know.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalid wraps schema violations found while loading or setting.
	ErrInvalid = errors.New("invalid configuration")
	// ErrNotFound is returned by Load and Get when an explicitly named
	// config file does not exist.
	ErrNotFound = errors.New("config file not found")
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the effective configuration for one run.
type Config struct {
	BaseDir       string              `mapstructure:"base_dir" yaml:"base_dir"`
	TemplatesRoot string              `mapstructure:"templates_root" yaml:"templates_root"`
	Shell         string              `mapstructure:"shell" yaml:"shell"`
	LogLevel      string              `mapstructure:"log_level" yaml:"log_level"`
	Languages     []registry.Language `mapstructure:"languages" yaml:"languages"`
	Categories    []registry.Category `mapstructure:"categories" yaml:"categories"`

	// File is the user config file that was merged in, empty if none was
	// found.
	File string `mapstructure:"-" yaml:"-"`
}

// Dir returns the path to the pact config directory (~/.pact/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the user config file path: $PACT_CONFIG when set,
// otherwise ~/.pact/config.yaml.
func FilePath() string {
	if p := os.Getenv(branding.EnvVar("config")); p != "" {
		return p
	}
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the directory holding path if it does not exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// newViper layers defaults, the user file at path (if present) and the
// environment. It returns the path of the file actually merged. When
// required is set a missing file is an ErrNotFound error.
func newViper(path string, required bool) (*viper.Viper, string, error) {
	if path == "" {
		path = FilePath()
	}

	v := viper.New()
	v.SetConfigType(fileType)
	if err := v.ReadConfig(bytes.NewReader(defaultsYAML)); err != nil {
		return nil, "", fmt.Errorf("reading built-in defaults: %w", err)
	}

	merged := ""
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, "", fmt.Errorf("reading config file %s: %w", path, err)
		}
		merged = path
	} else if errors.Is(err, os.ErrNotExist) {
		if required {
			return nil, "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
	} else {
		return nil, "", fmt.Errorf("reading config file %s: %w", path, err)
	}

	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v, merged, nil
}

// Load reads the configuration. path overrides FilePath when non-empty and
// must then exist; a missing default file is not an error.
func Load(path string) (*Config, error) {
	v, file, err := newViper(path, path != "")
	if err != nil {
		return nil, err
	}

	if err := check(v.AllSettings(), file); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.File = file

	if cfg.BaseDir, err = paths.ExpandHome(cfg.BaseDir); err != nil {
		return nil, err
	}
	if cfg.TemplatesRoot, err = paths.ExpandHome(cfg.TemplatesRoot); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// check validates settings and turns issues into an ErrInvalid error.
func check(settings map[string]any, source string) error {
	res, err := Validate(settings)
	if err != nil {
		return err
	}
	if res.Valid {
		return nil
	}
	if source == "" {
		source = "environment"
	}
	lines := make([]string, 0, len(res.Issues))
	for _, issue := range res.Issues {
		lines = append(lines, "  "+issue.String())
	}
	return fmt.Errorf("%w (%s):\n%s", ErrInvalid, source, strings.Join(lines, "\n"))
}

// Registry builds the language and category lookup tables.
func (c *Config) Registry() *registry.Registry {
	return registry.New(c.Languages, c.Categories)
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding configuration: %w", err)
	}
	return out, nil
}

// Keys returns every top-level setting key.
func Keys() []string {
	return append(slices.Clone(settableKeys), KeyLanguages, KeyCategories)
}

// Get returns the effective value of key. Tables are rendered as YAML.
func Get(path, key string) (string, error) {
	if !slices.Contains(Keys(), key) {
		return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	v, _, err := newViper(path, path != "")
	if err != nil {
		return "", err
	}

	switch val := v.Get(key).(type) {
	case string:
		return val, nil
	case nil:
		return "", nil
	default:
		out, err := yaml.Marshal(val)
		if err != nil {
			return "", fmt.Errorf("encoding %s: %w", key, err)
		}
		return strings.TrimRight(string(out), "\n"), nil
	}
}

// Set writes a scalar key to the user config file at path (FilePath when
// empty), creating the file if needed. The result must still validate.
func Set(path, key, value string) error {
	if !slices.Contains(settableKeys, key) {
		return fmt.Errorf("%w %q (settable: %s)", ErrUnknownKey, key, strings.Join(settableKeys, ", "))
	}
	if path == "" {
		path = FilePath()
	}

	merged, _, err := newViper(path, false)
	if err != nil {
		return err
	}
	merged.Set(key, value)
	if err := check(merged.AllSettings(), path); err != nil {
		return err
	}

	user := viper.New()
	user.SetConfigFile(path)
	user.SetConfigType(fileType)
	if _, err := os.Stat(path); err == nil {
		if err := user.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	user.Set(key, value)

	if err := EnsureDir(path); err != nil {
		return err
	}
	if err := user.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
