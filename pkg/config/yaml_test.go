package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filesession/pkg/config"
)

type yamlInner struct {
	Name     string `yaml:"name"`
	Duration int    `yaml:"duration"`
}

type yamlSettings struct {
	BasePath string     `yaml:"base_path"`
	Inner    *yamlInner `yaml:"inner"`
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	t.Run("decodes file and expands env", func(t *testing.T) {
		t.Setenv("YAML_TEST_BASE", "/var/app")
		path := writeFile(t, "base_path: ${YAML_TEST_BASE}\ninner:\n  name: sid\n")

		cfg := yamlSettings{Inner: &yamlInner{Duration: 30}}
		require.NoError(t, config.LoadYAML(path, &cfg))

		assert.Equal(t, "/var/app", cfg.BasePath)
		require.NotNil(t, cfg.Inner)
		assert.Equal(t, "sid", cfg.Inner.Name)
		assert.Equal(t, 30, cfg.Inner.Duration, "absent keys keep prepared values")
	})

	t.Run("absent block stays nil", func(t *testing.T) {
		path := writeFile(t, "base_path: /srv\n")

		var cfg yamlSettings
		require.NoError(t, config.LoadYAML(path, &cfg))
		assert.Nil(t, cfg.Inner)
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg yamlSettings
		err := config.LoadYAML(filepath.Join(t.TempDir(), "nope.yaml"), &cfg)
		assert.ErrorIs(t, err, config.ErrReadingConfigFile)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, "base_path: [unterminated\n")
		var cfg yamlSettings
		assert.ErrorIs(t, config.LoadYAML(path, &cfg), config.ErrParsingConfigFile)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *yamlSettings
		assert.ErrorIs(t, config.LoadYAML("whatever.yaml", cfg), config.ErrNilPointer)
	})
}
