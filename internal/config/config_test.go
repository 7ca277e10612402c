package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"filestep/internal/config"
	"filestep/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "xdg-open {path}", cfg.Editor.Open)
	assert.Empty(t, cfg.Editor.Save)
	assert.NotEmpty(t, cfg.Store.Path)
	assert.False(t, cfg.Settings.Verbose)
}

func TestLoadConfigFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
editor:
  open: "gimp {path}"
store:
  path: "/tmp/filestep-test.db"
settings:
  verbose: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "gimp {path}", cfg.Editor.Open)
	assert.Equal(t, "/tmp/filestep-test.db", cfg.Store.Path)
	assert.True(t, cfg.Settings.Verbose)
	// Unset fields keep their defaults
	assert.Empty(t, cfg.Editor.Close)
}

func TestLoadConfigFileRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: [nope"), 0644))

	_, err := config.LoadConfigFile(path)
	assert.Error(t, err)
}

func TestFiltersIncludeConfiguredExtras(t *testing.T) {
	cfg := config.New()
	cfg.FileTypes = []config.FileTypeEntry{
		{Extension: "webp", Format: "webp"},
	}
	require.NoError(t, cfg.Validate())

	filters := cfg.Filters()
	assert.Len(t, filters, len(types.BuiltinFilters())+1)

	webp, ok := types.FilterByName("webp", filters)
	require.True(t, ok)
	assert.True(t, webp.Matches("pic.WEBP"))

	// Built-ins are still there
	_, ok = types.FilterByName("png", filters)
	assert.True(t, ok)
}

func TestValidateRejectsDuplicateExtension(t *testing.T) {
	cfg := config.New()
	cfg.FileTypes = []config.FileTypeEntry{
		{Extension: "PNG"}, // collides with the built-in png
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestValidateRejectsEmptyExtension(t *testing.T) {
	cfg := config.New()
	cfg.FileTypes = []config.FileTypeEntry{{Extension: ""}}
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresOpenCommand(t *testing.T) {
	cfg := config.New()
	cfg.Editor.Open = "  "
	assert.Error(t, cfg.Validate())
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := config.New()
	cfg.Editor.Open = "myeditor {path}"
	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "myeditor {path}", loaded.Editor.Open)
}
