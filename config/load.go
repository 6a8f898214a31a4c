package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// LoadFile overlays the YAML file at path onto base. Keys missing from the
// file keep their base values.
func LoadFile(path string, base Tuning) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read tuning file: %w", err)
	}
	return Parse(data, base)
}

// Parse overlays YAML data onto base.
func Parse(data []byte, base Tuning) (Tuning, error) {
	t := base.Clone()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("parse tuning yaml: %w", err)
	}
	return t, nil
}

// ApplyEnv overlays DOOMERANG_* environment variables onto base.
func ApplyEnv(base Tuning) (Tuning, error) {
	t := base.Clone()
	if err := env.Parse(&t); err != nil {
		return base, fmt.Errorf("parse env: %w", err)
	}
	return t, nil
}

// Load builds the tuning from the defaults, the optional YAML file and the
// environment, in that order, and validates the result.
func Load(path string) (Tuning, error) {
	t := Default()
	var err error
	if path != "" {
		if t, err = LoadFile(path, t); err != nil {
			return t, err
		}
	}
	if t, err = ApplyEnv(t); err != nil {
		return t, err
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Clone returns a copy of t that shares no weapon overrides with it.
func (t Tuning) Clone() Tuning {
	weapons := make(map[string]WeaponConfig, len(t.Weapons))
	for name, w := range t.Weapons {
		weapons[name] = WeaponConfig{
			Damage:    cloneStat(w.Damage),
			Speed:     cloneStat(w.Speed),
			Knockback: cloneStat(w.Knockback),
		}
	}
	t.Weapons = weapons
	return t
}

func cloneStat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Stat(*v)
}
