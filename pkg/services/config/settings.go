// Package config loads the operator-supplied settings: the OAuth client
// details and property catalog from a YAML file, and the access token from
// a credentials profile kept outside version control.
package config

import (
	"fmt"

	"github.com/ga-tools/ga-lens/pkg/models/domain"
	"github.com/spf13/viper"
)

type PropertyEntry struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

type ExclusionFilter struct {
	Field string `mapstructure:"field"`
	Value string `mapstructure:"value"`
}

type Settings struct {
	ClientID   string          `mapstructure:"client_id"`
	Scopes     string          `mapstructure:"scopes"`
	Endpoint   string          `mapstructure:"endpoint"`
	Properties []PropertyEntry `mapstructure:"properties"`
	Exclude    ExclusionFilter `mapstructure:"exclude"`
}

const defaultScopes = "https://www.googleapis.com/auth/analytics.readonly"

// LoadSettings reads the YAML settings file.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("scopes", defaultScopes)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if len(s.Properties) == 0 {
		return nil, fmt.Errorf("settings file %s declares no properties", path)
	}
	return &s, nil
}

// Catalog converts the configured property entries into domain records.
func (s *Settings) Catalog() []domain.Property {
	catalog := make([]domain.Property, 0, len(s.Properties))
	for _, p := range s.Properties {
		catalog = append(catalog, domain.Property{ID: p.ID, Name: p.Name})
	}
	return catalog
}
