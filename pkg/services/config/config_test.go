package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeFile(t, "galens.yaml", `
client_id: test-client.apps.example.com
endpoint: https://analytics.example.com
properties:
  - id: "123"
    name: Main Site
  - id: "456"
    name: Blog
exclude:
  field: pagePath
  value: staging
`)

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "test-client.apps.example.com", settings.ClientID)
	assert.Equal(t, "https://analytics.example.com", settings.Endpoint)
	assert.Equal(t, "https://www.googleapis.com/auth/analytics.readonly", settings.Scopes)
	assert.Equal(t, "staging", settings.Exclude.Value)

	catalog := settings.Catalog()
	require.Len(t, catalog, 2)
	assert.Equal(t, "123", catalog[0].ID)
	assert.Equal(t, "Main Site", catalog[0].Name)
}

func TestLoadSettings_NoProperties(t *testing.T) {
	path := writeFile(t, "galens.yaml", `client_id: x`)

	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no properties")
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadCredentials(t *testing.T) {
	path := writeFile(t, ".galens", `
[default]
access_token = ya29.test-token

[staging]
access_token = ya29.staging-token
`)

	creds, err := LoadCredentials(path, "default")
	require.NoError(t, err)
	assert.Equal(t, "ya29.test-token", creds.AccessToken)

	creds, err = LoadCredentials(path, "staging")
	require.NoError(t, err)
	assert.Equal(t, "ya29.staging-token", creds.AccessToken)
}

func TestLoadCredentials_MissingToken(t *testing.T) {
	path := writeFile(t, ".galens", "[default]\nother = x\n")

	_, err := LoadCredentials(path, "default")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_token")
}

func TestListProfiles(t *testing.T) {
	path := writeFile(t, ".galens", `
[default]
access_token = a

[staging]
access_token = b
`)

	profiles, err := ListProfiles(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"default", "staging"}, profiles)
}
