package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DefaultProjectFile = "keyframes.json"
	DefaultPadCount    = 255
)

// Config holds the editor settings
type Config struct {
	// ProjectFile is the JSON file the editor opens and autosaves to
	ProjectFile string `yaml:"project_file"`
	Autosave    bool   `yaml:"autosave"`
	// PadCount is the keyframe count of autosaved exports
	PadCount int    `yaml:"pad_count"`
	Slider   Slider `yaml:"slider"`
	// NudgeStep is the value change of one +/- keypress
	NudgeStep float64 `yaml:"nudge_step"`
}

// Slider bounds the scrub position in the TUI
type Slider struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		ProjectFile: DefaultProjectFile,
		Autosave:    true,
		PadCount:    DefaultPadCount,
		Slider:      Slider{Min: 0, Max: 10, Step: 0.01},
		NudgeStep:   0.1,
	}
}

// Path returns the config file location from KEYFRAMER_CONFIG,
// falling back to $XDG_CONFIG_HOME/keyframer/config.yaml.
func Path() string {
	if env := os.Getenv("KEYFRAMER_CONFIG"); env != "" {
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keyframer", "config.yaml")
}

// Load reads the config file at Path, if any, then applies env overrides
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile reads settings from path over the defaults. A missing file is
// not an error. KEYFRAMER_FILE and KEYFRAMER_AUTOSAVE override the file.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if env := os.Getenv("KEYFRAMER_FILE"); env != "" {
		cfg.ProjectFile = env
	}
	if env := os.Getenv("KEYFRAMER_AUTOSAVE"); env != "" {
		on, err := strconv.ParseBool(env)
		if err != nil {
			return cfg, fmt.Errorf("invalid KEYFRAMER_AUTOSAVE %q: %w", env, err)
		}
		cfg.Autosave = on
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings for values the editor cannot work with
func (c Config) Validate() error {
	if c.ProjectFile == "" {
		return fmt.Errorf("project_file is required")
	}
	if c.PadCount < 0 {
		return fmt.Errorf("pad_count cannot be negative: %d", c.PadCount)
	}
	if c.Slider.Min < 0 || c.Slider.Max <= c.Slider.Min {
		return fmt.Errorf("slider range [%v, %v] is invalid", c.Slider.Min, c.Slider.Max)
	}
	if c.Slider.Step <= 0 {
		return fmt.Errorf("slider step must be positive: %v", c.Slider.Step)
	}
	if c.NudgeStep <= 0 {
		return fmt.Errorf("nudge_step must be positive: %v", c.NudgeStep)
	}
	return nil
}

// Marshal renders the settings as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
