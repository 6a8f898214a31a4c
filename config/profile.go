package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
	"gopkg.in/yaml.v3"
)

// ProfileStore persists named tuning profiles in the user data directory.
type ProfileStore struct {
	m *gdata.Manager
}

// OpenProfiles opens the profile storage for appName.
func OpenProfiles(appName string) (*ProfileStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open profile storage: %w", err)
	}
	return &ProfileStore{m: m}, nil
}

func profileKey(name string) string {
	return "tuning_" + name
}

// Save stores t under name.
func (s *ProfileStore) Save(name string, t Tuning) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode profile %q: %w", name, err)
	}
	if err := s.m.SaveItem(profileKey(name), data); err != nil {
		return fmt.Errorf("save profile %q: %w", name, err)
	}
	return nil
}

// Load overlays the profile stored under name onto base. A missing profile
// leaves base unchanged.
func (s *ProfileStore) Load(name string, base Tuning) (Tuning, error) {
	data, err := s.m.LoadItem(profileKey(name))
	if err != nil {
		return base, fmt.Errorf("load profile %q: %w", name, err)
	}
	if data == nil {
		log.Printf("Warning: No saved tuning profile %q, using current values", name)
		return base, nil
	}
	return Parse(data, base)
}
