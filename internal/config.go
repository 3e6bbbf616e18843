package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/wynn/internal/apperr"
)

// Config represents the application configuration.
type Config struct {
	App          ApplicationConfig `yaml:"app"`
	Vaults       []VaultConfig     `yaml:"vaults"`
	DefaultVault string            `yaml:"default_vault"`
	MCP          MCPConfig         `yaml:"mcp"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if len(c.Vaults) == 0 {
		return fmt.Errorf("at least one vault is required")
	}
	for i := range c.Vaults {
		if err := c.Vaults[i].Validate(); err != nil {
			return err
		}
	}
	if c.DefaultVault != "" {
		if _, err := c.vault(c.DefaultVault); err != nil {
			return err
		}
	}
	return c.MCP.Validate()
}

func (c *Config) vault(name string) (*VaultConfig, error) {
	for i := range c.Vaults {
		if c.Vaults[i].Name == name {
			return &c.Vaults[i], nil
		}
	}
	return nil, fmt.Errorf("vault %q: %w", name, apperr.ErrNoVault)
}

// VaultDir resolves the directory of the default vault. When no default
// is named the first configured vault wins.
func (c *Config) VaultDir() (string, error) {
	if c.DefaultVault == "" {
		if len(c.Vaults) == 0 {
			return "", apperr.ErrNoVault
		}
		return c.Vaults[0].Path, nil
	}
	v, err := c.vault(c.DefaultVault)
	if err != nil {
		return "", err
	}
	return v.Path, nil
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return nil
}

// VaultConfig names one markdown vault directory.
type VaultConfig struct {
	Name       string `yaml:"name"`
	Path       string `yaml:"path"`
	PublishURL string `yaml:"publish_url"`
}

// Validate validates the vault configuration.
func (c *VaultConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Path, validation.Required),
	)
}

// MCPConfig holds the optional MCP HTTP sidecar configuration.
type MCPConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Address returns the sidecar listen address.
func (c *MCPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the MCP configuration.
func (c *MCPConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Vaults: []VaultConfig{
			{Name: "main", Path: "./vault"},
		},
		DefaultVault: "main",
		MCP: MCPConfig{
			Enabled: false,
			Port:    8080,
		},
	}
}
