package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"filestep/pkg/types"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines the editor hooks, the tag store location, and any extra file
// types merged into the built-in set.
type Config struct {
	Editor struct {
		Open  string `yaml:"open"`  // Command run to open a document ({path})
		Save  string `yaml:"save"`  // Command run to save a document ({path}, {format})
		Close string `yaml:"close"` // Command run to close a window ({window})
	} `yaml:"editor"`
	Store struct {
		Path string `yaml:"path"` // Tag store database location
	} `yaml:"store"`
	FileTypes []FileTypeEntry `yaml:"file_types"` // Extra file types beyond the built-in set
	Settings  struct {
		Verbose bool `yaml:"verbose"` // Enable debug logging
	} `yaml:"settings"`
}

// FileTypeEntry declares one additional file type in the config file.
type FileTypeEntry struct {
	Extension  string   `yaml:"extension"`  // Canonical extension, e.g. "webp"
	Alternates []string `yaml:"alternates"` // Alternate extensions for the same type
	Format     string   `yaml:"format"`     // Save-format hint (defaults to the extension)
}

// ConfigDir returns the filestep config directory.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "filestep")
}

// LoadConfig loads configuration from the default location
// (~/.config/filestep/config.yaml).
func LoadConfig() (*Config, error) {
	return LoadConfigFile(filepath.Join(ConfigDir(), "config.yaml"))
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Editor.Open != "" {
		cfg.Editor.Open = tempCfg.Editor.Open
	}
	if tempCfg.Editor.Save != "" {
		cfg.Editor.Save = tempCfg.Editor.Save
	}
	if tempCfg.Editor.Close != "" {
		cfg.Editor.Close = tempCfg.Editor.Close
	}
	if tempCfg.Store.Path != "" {
		cfg.Store.Path = tempCfg.Store.Path
	}
	if len(tempCfg.FileTypes) > 0 {
		cfg.FileTypes = tempCfg.FileTypes
	}
	cfg.Settings.Verbose = tempCfg.Settings.Verbose

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	// xdg-open hands the file to whatever editor the desktop associates
	// with its type. Save and close have no portable default; the hooks
	// stay empty and the editor is assumed to handle both itself.
	cfg.Editor.Open = "xdg-open {path}"

	cfg.Store.Path = filepath.Join(ConfigDir(), "state.db")
	cfg.FileTypes = []FileTypeEntry{}

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if strings.TrimSpace(c.Editor.Open) == "" {
		return fmt.Errorf("editor.open command is required")
	}

	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("store.path is required")
	}

	// Validate extra file types against each other and the built-in set
	seen := map[string]bool{}
	for _, f := range types.BuiltinFilters() {
		for _, ext := range f.Extensions() {
			seen[ext] = true
		}
	}
	for i, entry := range c.FileTypes {
		ext := strings.ToLower(strings.TrimPrefix(entry.Extension, "."))
		if ext == "" {
			return fmt.Errorf("file type %d: extension is required", i)
		}
		if seen[ext] {
			return fmt.Errorf("file type %d: duplicate extension %q", i, ext)
		}
		seen[ext] = true
		for _, alt := range entry.Alternates {
			alt = strings.ToLower(strings.TrimPrefix(alt, "."))
			if alt == "" {
				return fmt.Errorf("file type %d: empty alternate extension", i)
			}
			if seen[alt] {
				return fmt.Errorf("file type %d: duplicate extension %q", i, alt)
			}
			seen[alt] = true
		}
	}

	return nil
}

// Filters returns the built-in filter set extended with the configured
// extra file types.
func (c *Config) Filters() []types.FileTypeFilter {
	filters := types.BuiltinFilters()
	for _, entry := range c.FileTypes {
		filters = append(filters, types.NewFileTypeFilter(entry.Extension, entry.Alternates, entry.Format))
	}
	return filters
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}
