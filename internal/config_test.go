package internal

import (
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
}

func TestConfigNoVaults(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Vaults = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("config without vaults should fail")
	}
}

func TestConfigUnknownDefaultVault(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.DefaultVault = "ghost"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("unknown default vault should fail")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestVaultDir(t *testing.T) {
	cfg := &Config{
		Vaults: []VaultConfig{
			{Name: "work", Path: "/srv/work"},
			{Name: "home", Path: "/srv/home"},
		},
		DefaultVault: "home",
	}
	got, err := cfg.VaultDir()
	if err != nil {
		t.Fatalf("VaultDir: %v", err)
	}
	if got != "/srv/home" {
		t.Errorf("got %q", got)
	}

	cfg.DefaultVault = ""
	got, err = cfg.VaultDir()
	if err != nil {
		t.Fatalf("VaultDir: %v", err)
	}
	if got != "/srv/work" {
		t.Errorf("got %q", got)
	}
}

func TestMCPConfigDisabledSkipsPortCheck(t *testing.T) {
	cfg := MCPConfig{Enabled: false, Port: 0}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled mcp should pass: %v", err)
	}
}

func TestMCPConfigEnabledNeedsPort(t *testing.T) {
	cfg := MCPConfig{Enabled: true, Port: 0}
	if err := cfg.Validate(); err == nil {
		t.Fatal("enabled mcp without port should fail")
	}
	cfg.Port = 9000
	if err := cfg.Validate(); err != nil {
		t.Fatalf("enabled mcp with port should pass: %v", err)
	}
	if cfg.Address() != ":9000" {
		t.Errorf("address = %q", cfg.Address())
	}
}
