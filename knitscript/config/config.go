package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config controls how the command line tool runs programs.
// Command line flags take precedence over values read from a file.
type Config struct {
	// Continue with the next statement after a failed one.
	KeepGoing bool      `yaml:"keep_going"`
	Color     ColorMode `yaml:"color"`
	// Directory against which relative chart paths are resolved.
	// Defaults to the directory of the program file.
	BaseDir string `yaml:"base_dir"`
	DumpAST bool   `yaml:"dump_ast"`
}

func Default() Config {
	return Config{
		KeepGoing: false,
		Color:     ColorAuto,
		BaseDir:   "",
		DumpAST:   false,
	}
}

// Load reads a YAML config file, filling omitted keys with their defaults.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file: %w", err)
	}
	return Parse(content)
}

func Parse(content []byte) (Config, error) {
	config := Default()
	if err := yaml.Unmarshal(content, &config); err != nil {
		return Config{}, fmt.Errorf("invalid config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (self Config) Validate() error {
	switch self.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode `%s`: valid values are `auto`, `always` and `never`", self.Color)
	}
}
