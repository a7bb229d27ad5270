package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Database settings
	Database DatabaseConfig `yaml:"database"`

	// Receipt settings
	Receipt ReceiptConfig `yaml:"receipt"`

	// Suggestion collaborator settings
	Suggest SuggestConfig `yaml:"suggest"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"` // Path to SQLite database
}

type ReceiptConfig struct {
	NumberPrefix   string  `yaml:"number_prefix"`    // Receipt number prefix (e.g., "ZG")
	DefaultTaxRate float64 `yaml:"default_tax_rate"` // Tax rate as percent (16 = 16%)
	OutputDir      string  `yaml:"output_dir"`       // Directory for exported printable receipts
}

type SuggestConfig struct {
	Model string `yaml:"model"` // Generative model used for job suggestions
}

// DefaultConfigPath returns ~/.config/pressbook/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "pressbook", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "pressbook", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(homeDir, ".config", "pressbook", "pressbook.db"),
		},
		Receipt: ReceiptConfig{
			NumberPrefix:   "ZG",
			DefaultTaxRate: 0,
			OutputDir:      filepath.Join(homeDir, ".config", "pressbook", "receipts"),
		},
		Suggest: SuggestConfig{
			Model: "gemini-2.5-flash",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates all necessary directories (for database, exports, etc.)
func (c *Config) EnsureDirectories() error {
	// Create database directory
	dbDir := filepath.Dir(c.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return err
	}

	// Create receipt export directory
	if err := os.MkdirAll(c.Receipt.OutputDir, 0755); err != nil {
		return err
	}

	return nil
}
