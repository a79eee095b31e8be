// Package config loads svgcomp settings from svgcomp.yaml, SVGCOMP_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the default config file looked up in the working directory.
const FileName = "svgcomp.yaml"

const envPrefix = "SVGCOMP"

// Keys.
const (
	KeyAssetsDir         = "assets_dir"
	KeyComponentsDir     = "components_dir"
	KeyIndexFile         = "index_file"
	KeyTemplate          = "template"
	KeyComponentExt      = "component_ext"
	KeyClassNameVariable = "class_name_variable"
	KeyVerbose           = "verbose"
)

// Config holds the resolved settings for one run.
type Config struct {
	AssetsDir     string `yaml:"assets_dir" mapstructure:"assets_dir"`
	ComponentsDir string `yaml:"components_dir" mapstructure:"components_dir"`
	// IndexFile defaults to index.ts inside ComponentsDir.
	IndexFile         string `yaml:"index_file" mapstructure:"index_file"`
	Template          string `yaml:"template" mapstructure:"template"`
	ComponentExt      string `yaml:"component_ext" mapstructure:"component_ext"`
	ClassNameVariable string `yaml:"class_name_variable" mapstructure:"class_name_variable"`
	Verbose           bool   `yaml:"verbose" mapstructure:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		AssetsDir:         "./src/assets",
		ComponentsDir:     "./src/components/atoms/icons",
		ComponentExt:      ".tsx",
		ClassNameVariable: "classNameToUse",
	}
}

// New returns a viper instance with defaults and environment binding set up.
// The caller may bind flags before calling Load.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyAssetsDir, d.AssetsDir)
	v.SetDefault(KeyComponentsDir, d.ComponentsDir)
	v.SetDefault(KeyIndexFile, "")
	v.SetDefault(KeyTemplate, "")
	v.SetDefault(KeyComponentExt, d.ComponentExt)
	v.SetDefault(KeyClassNameVariable, d.ClassNameVariable)
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (path, or svgcomp.yaml in the working
// directory when path is empty) into v and decodes the result.
// A missing default config file is not an error; an explicit path must exist.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigFile(FileName)
	}
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if path != "" || !missing {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.IndexFile == "" && cfg.ComponentsDir != "" {
		cfg.IndexFile = filepath.Join(cfg.ComponentsDir, "index.ts")
	}
	return cfg, nil
}

// Validate reports settings that would make every build fail.
func (c Config) Validate() error {
	if c.AssetsDir == "" {
		return fmt.Errorf("%s is required", KeyAssetsDir)
	}
	if c.ComponentsDir == "" {
		return fmt.Errorf("%s is required", KeyComponentsDir)
	}
	if !strings.HasPrefix(c.ComponentExt, ".") {
		return fmt.Errorf("%s must start with a dot, got %q", KeyComponentExt, c.ComponentExt)
	}
	return nil
}

// WriteDefault writes the default settings as YAML to path.
func WriteDefault(path string) error {
	d, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, d, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
