// Package config holds the application settings the scaffolding helpers read:
// the application namespace, the framework root and its built-in classes, and
// list formatting defaults. Settings load from YAML, then environment
// variables override individual keys.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bake/pkg/format"
	"github.com/goliatone/go-bake/pkg/identity"
)

// Configuration keys understood by Read.
const (
	KeyAppNamespace  = identity.NamespaceKey
	KeyFrameworkRoot = "Framework.root"
)

// Environment variables applied by Load.
const (
	EnvAppNamespace  = "BAKE_APP_NAMESPACE"
	EnvFrameworkRoot = "BAKE_FRAMEWORK_ROOT"
	EnvFormatIndent  = "BAKE_FORMAT_INDENT"
)

// Config is the full settings tree.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Framework FrameworkConfig `yaml:"framework"`
	Format    FormatConfig    `yaml:"format"`
}

// AppConfig describes the application being scaffolded.
type AppConfig struct {
	Namespace string `yaml:"namespace"`
}

// FrameworkConfig describes the framework generated code builds on. Classes
// extends the built-in class registry.
type FrameworkConfig struct {
	Root    string   `yaml:"root"`
	Classes []string `yaml:"classes,omitempty"`
}

// FormatConfig overrides list formatting defaults. Nil fields keep the
// defaults from format.DefaultOptions.
type FormatConfig struct {
	Indent        *int    `yaml:"indent,omitempty"`
	Tab           *string `yaml:"tab,omitempty"`
	TrailingComma *bool   `yaml:"trailingComma,omitempty"`
	Quotes        *bool   `yaml:"quotes,omitempty"`
}

var _ identity.ConfigReader = Config{}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		App:       AppConfig{Namespace: identity.DefaultNamespace},
		Framework: FrameworkConfig{Root: identity.DefaultFrameworkRoot},
	}
}

// Parse decodes YAML on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Load reads path when it exists and applies environment overrides. An empty
// path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		cfg, err = Parse(data)
		if err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

// Read implements identity.ConfigReader.
func (c Config) Read(key string) (string, bool) {
	switch key {
	case KeyAppNamespace:
		return c.App.Namespace, c.App.Namespace != ""
	case KeyFrameworkRoot:
		return c.Framework.Root, c.Framework.Root != ""
	default:
		return "", false
	}
}

// FormatOptions converts the format block to list formatting options.
func (c Config) FormatOptions() []format.Option {
	var opts []format.Option
	if c.Format.Indent != nil {
		opts = append(opts, format.WithIndent(*c.Format.Indent))
	}
	if c.Format.Tab != nil {
		opts = append(opts, format.WithTab(*c.Format.Tab))
	}
	if c.Format.TrailingComma != nil {
		opts = append(opts, format.WithTrailingComma(*c.Format.TrailingComma))
	}
	if c.Format.Quotes != nil {
		opts = append(opts, format.WithQuotes(*c.Format.Quotes))
	}
	return opts
}

// IdentityOptions returns the resolver options implied by the framework block.
func (c Config) IdentityOptions() []identity.Option {
	opts := []identity.Option{identity.WithFrameworkRoot(c.Framework.Root)}
	if len(c.Framework.Classes) > 0 {
		registry := identity.NewRegistry()
		registry.Register(c.Framework.Classes...)
		opts = append(opts, identity.WithRegistry(registry))
	}
	return opts
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookupTrimmed(lookup, EnvAppNamespace); ok {
		c.App.Namespace = v
	}
	if v, ok := lookupTrimmed(lookup, EnvFrameworkRoot); ok {
		c.Framework.Root = v
	}
	if v, ok := lookupTrimmed(lookup, EnvFormatIndent); ok {
		indent, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvFormatIndent, err)
		}
		c.Format.Indent = &indent
	}
	return nil
}

func (c *Config) normalize() {
	c.App.Namespace = strings.TrimSpace(c.App.Namespace)
	if c.App.Namespace == "" {
		c.App.Namespace = identity.DefaultNamespace
	}
	c.Framework.Root = strings.TrimSpace(c.Framework.Root)
	if c.Framework.Root == "" {
		c.Framework.Root = identity.DefaultFrameworkRoot
	}
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
