package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/dash-protocol/dash-go/pkg/request"
	"github.com/dash-protocol/dash-go/pkg/version"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dash.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
base_url: https://gdps.example.com/db/
client: "2.1"
secret: custom
binary_version: 3.5
protocol_log: decode.dlog
log_level: debug
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.BaseURL != "https://gdps.example.com/db/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Client != "2.1" || cfg.ProtocolLog != "decode.dlog" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.BinaryVersion != (version.GameVersion{Major: 3, Minor: 5}) {
		t.Errorf("BinaryVersion = %s", cfg.BinaryVersion)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	base, err := cfg.Base()
	if err != nil {
		t.Fatalf("Base failed: %v", err)
	}
	if base.Secret != "custom" {
		t.Errorf("Secret = %q, want override", base.Secret)
	}
	if base.GameVersion != request.GD21.GameVersion {
		t.Errorf("GameVersion = %s, want manifest value %s", base.GameVersion, request.GD21.GameVersion)
	}
	if base.BinaryVersion.String() != "3.5" {
		t.Errorf("BinaryVersion = %s, want override", base.BinaryVersion)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "log_level: warn\n"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.BaseURL != request.DefaultServerURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.Client != version.Current {
		t.Errorf("Client = %q, want %q", cfg.Client, version.Current)
	}

	base, err := cfg.Base()
	if err != nil {
		t.Fatalf("Base failed: %v", err)
	}
	if base != request.GD22 {
		t.Errorf("Base = %+v, want GD22 preset", base)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	_, err := LoadConfig(writeConfig(t, "game_version: banana\n"))
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}

	cfg = DefaultConfig()
	cfg.Client = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty client")
	}

	cfg = DefaultConfig()
	cfg.Client = "1.9"
	if _, err := cfg.Base(); err == nil {
		t.Error("expected error for unknown client manifest")
	}
}

func TestApplyFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	baseURL := fs.String("base-url", "", "")
	client := fs.String("client", "", "")
	protocolLog := fs.String("protocol-log", "", "")
	logLevel := fs.String("log-level", "", "")
	if err := fs.Parse([]string{"--client", "2.1", "--log-level", "debug"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cfg := DefaultConfig()
	cfg.ProtocolLog = "from-file.dlog"
	applyFlags(&cfg, fs, *baseURL, *client, *protocolLog, *logLevel)

	if cfg.Client != "2.1" || cfg.LogLevel != "debug" {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.ProtocolLog != "from-file.dlog" {
		t.Errorf("unset flag overrode config: %q", cfg.ProtocolLog)
	}
	if cfg.BaseURL != request.DefaultServerURL {
		t.Errorf("unset flag overrode base URL: %q", cfg.BaseURL)
	}
}
