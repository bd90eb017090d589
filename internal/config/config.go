// Package config holds the engine configuration the commentary subsystem
// reads its disposition from. Configuration is a yaml file with environment
// variable overrides; values are clamped here so the taunt engine can rely
// on in-range integers.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"banter/internal/taunt"
)

// Config is the full engine configuration.
type Config struct {
	Name  string      `yaml:"name"`
	Taunt TauntConfig `yaml:"taunt"`
}

// TauntConfig is the speaker disposition block.
type TauntConfig struct {
	Enabled            bool   `yaml:"enabled"`
	Intensity          int    `yaml:"intensity"`          // 0-100
	Rudeness           int    `yaml:"rudeness"`           // 0-100
	SpeakWhileLosing   int    `yaml:"speak_while_losing"` // 0-100
	UserBlunderDelta   int    `yaml:"user_blunder_delta"`
	EngineBlunderDelta int    `yaml:"engine_blunder_delta"`
	SmallGainMin       int    `yaml:"small_gain_min"`
	SmallGainMax       int    `yaml:"small_gain_max"`
	File               string `yaml:"file"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Name: "banter",
		Taunt: TauntConfig{
			Enabled:            true,
			Intensity:          100,
			Rudeness:           50,
			SpeakWhileLosing:   50,
			UserBlunderDelta:   200,
			EngineBlunderDelta: 200,
			SmallGainMin:       30,
			SmallGainMax:       60,
			File:               taunt.DefaultCorpusFile,
		},
	}
}

// Load reads the configuration at path, falling back to defaults when the
// file does not exist. Environment overrides are applied after the file,
// and all percentage fields are clamped before the config is returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.Normalize()
	return cfg, nil
}

// Save writes the configuration to path as yaml.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets BANTER_* environment variables override file
// values, highest precedence.
func (c *Config) applyEnvOverrides() {
	if v, ok := envBool("BANTER_TAUNT_ENABLED"); ok {
		c.Taunt.Enabled = v
	}
	if v, ok := envInt("BANTER_TAUNT_INTENSITY"); ok {
		c.Taunt.Intensity = v
	}
	if v, ok := envInt("BANTER_TAUNT_RUDENESS"); ok {
		c.Taunt.Rudeness = v
	}
	if v, ok := envInt("BANTER_TAUNT_SPEAK_WHILE_LOSING"); ok {
		c.Taunt.SpeakWhileLosing = v
	}
	if v := os.Getenv("BANTER_TAUNT_FILE"); v != "" {
		c.Taunt.File = v
	}
}

// Normalize clamps percentage fields to 0-100 and repairs an inverted
// small-gain window. The taunt engine trusts these ranges.
func (c *Config) Normalize() {
	c.Taunt.Intensity = clampPct(c.Taunt.Intensity)
	c.Taunt.Rudeness = clampPct(c.Taunt.Rudeness)
	c.Taunt.SpeakWhileLosing = clampPct(c.Taunt.SpeakWhileLosing)
	if c.Taunt.UserBlunderDelta < 0 {
		c.Taunt.UserBlunderDelta = 0
	}
	if c.Taunt.EngineBlunderDelta < 0 {
		c.Taunt.EngineBlunderDelta = 0
	}
	if c.Taunt.SmallGainMax < c.Taunt.SmallGainMin {
		c.Taunt.SmallGainMin, c.Taunt.SmallGainMax = c.Taunt.SmallGainMax, c.Taunt.SmallGainMin
	}
	if c.Taunt.File == "" {
		c.Taunt.File = taunt.DefaultCorpusFile
	}
}

// TauntSettings adapts the config to the taunt engine's SettingsSource.
func (c *Config) TauntSettings() taunt.Settings {
	return taunt.Settings{
		Enabled:            c.Taunt.Enabled,
		Intensity:          c.Taunt.Intensity,
		Rudeness:           c.Taunt.Rudeness,
		SpeakWhileLosing:   c.Taunt.SpeakWhileLosing,
		UserBlunderDelta:   c.Taunt.UserBlunderDelta,
		EngineBlunderDelta: c.Taunt.EngineBlunderDelta,
		SmallGainMin:       c.Taunt.SmallGainMin,
		SmallGainMax:       c.Taunt.SmallGainMax,
		CorpusFile:         c.Taunt.File,
	}
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envBool(key string) (bool, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
