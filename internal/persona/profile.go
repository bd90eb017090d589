// Package persona provides named personality profiles: snapshots of the
// commentary disposition that can be exported to yaml, imported back, and
// applied to the engine configuration field by field with range clamping.
package persona

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"banter/internal/config"
)

// Disposition is the taunt-related slice of a personality.
type Disposition struct {
	Enabled            bool   `yaml:"enabled"`
	File               string `yaml:"file"`
	Intensity          int    `yaml:"intensity"`
	Rudeness           int    `yaml:"rudeness"`
	SpeakWhileLosing   int    `yaml:"speak_while_losing"`
	UserBlunderDelta   int    `yaml:"user_blunder_delta"`
	EngineBlunderDelta int    `yaml:"engine_blunder_delta"`
	SmallGainMin       int    `yaml:"small_gain_min"`
	SmallGainMax       int    `yaml:"small_gain_max"`
}

// Profile is a named personality record.
type Profile struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description"`
	Taunts      Disposition `yaml:"taunts"`
}

// ApplyTo copies the profile's disposition into the configuration. The
// config's Normalize pass clamps everything into range afterwards, so a
// profile with out-of-range numbers cannot corrupt the engine settings.
func (p *Profile) ApplyTo(cfg *config.Config) {
	cfg.Taunt.Enabled = p.Taunts.Enabled
	cfg.Taunt.Intensity = p.Taunts.Intensity
	cfg.Taunt.Rudeness = p.Taunts.Rudeness
	cfg.Taunt.SpeakWhileLosing = p.Taunts.SpeakWhileLosing
	cfg.Taunt.UserBlunderDelta = p.Taunts.UserBlunderDelta
	cfg.Taunt.EngineBlunderDelta = p.Taunts.EngineBlunderDelta
	cfg.Taunt.SmallGainMin = p.Taunts.SmallGainMin
	cfg.Taunt.SmallGainMax = p.Taunts.SmallGainMax
	if p.Taunts.File != "" {
		cfg.Taunt.File = p.Taunts.File
	}
	cfg.Normalize()
}

// SnapshotFrom builds a profile out of the current configuration.
func SnapshotFrom(cfg *config.Config, id, description string) *Profile {
	return &Profile{
		ID:          id,
		Description: description,
		Taunts: Disposition{
			Enabled:            cfg.Taunt.Enabled,
			File:               cfg.Taunt.File,
			Intensity:          cfg.Taunt.Intensity,
			Rudeness:           cfg.Taunt.Rudeness,
			SpeakWhileLosing:   cfg.Taunt.SpeakWhileLosing,
			UserBlunderDelta:   cfg.Taunt.UserBlunderDelta,
			EngineBlunderDelta: cfg.Taunt.EngineBlunderDelta,
			SmallGainMin:       cfg.Taunt.SmallGainMin,
			SmallGainMax:       cfg.Taunt.SmallGainMax,
		},
	}
}

// LoadProfile reads a yaml profile from path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if p.ID == "" {
		return nil, fmt.Errorf("profile %s has no id", path)
	}
	return &p, nil
}

// Save writes the profile to path as yaml.
func (p *Profile) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
