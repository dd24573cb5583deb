package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Credentials is one profile of the ~/.galens credentials file.
type Credentials struct {
	AccessToken string
}

// LoadCredentials reads the named profile from an ini credentials file.
// Callers treat failure as soft and fall back to default application
// credentials.
func LoadCredentials(path, profile string) (*Credentials, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	section := cfg.Section(profile)
	token := section.Key("access_token").String()
	if token == "" {
		return nil, fmt.Errorf("profile %q has no access_token", profile)
	}
	return &Credentials{AccessToken: token}, nil
}

// ListProfiles returns the profile names present in a credentials file.
func ListProfiles(path string) ([]string, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var profiles []string
	for _, section := range cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}
