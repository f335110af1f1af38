package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultTo != "slate" {
		t.Errorf("expected default target 'slate', got %s", cfg.DefaultTo)
	}
	if cfg.DefaultFrom != "" {
		t.Errorf("expected source detection by default, got %s", cfg.DefaultFrom)
	}
	if cfg.Parse.Sanitize {
		t.Error("expected sanitize to be off by default")
	}
	if !cfg.Export.Pretty {
		t.Error("expected pretty output by default")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.LogLevel)
	}
}

func TestConfig_GetSet(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Set("parse.sanitize", "true"); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if !cfg.Parse.Sanitize {
		t.Error("expected sanitize to be on")
	}

	if err := cfg.Set("default_to", " html "); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if v, _ := cfg.Get("default_to"); v != "html" {
		t.Errorf("expected 'html', got %s", v)
	}

	if v, err := cfg.Get("export.pretty"); err != nil || v != "true" {
		t.Errorf("expected 'true', got %s (%v)", v, err)
	}

	if err := cfg.Set("parse.sanitize", "maybe"); err == nil {
		t.Error("expected error for invalid boolean")
	}
	if err := cfg.Set("providers.openai", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := cfg.Get("nonexistent"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	if len(keys) != 9 {
		t.Fatalf("expected 9 keys, got %d: %v", len(keys), keys)
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Errorf("keys not sorted: %v", keys)
		}
	}

	cfg := DefaultConfig()
	for _, k := range keys {
		if _, err := cfg.Get(k); err != nil {
			t.Errorf("Get(%q): %v", k, err)
		}
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv(EnvSanitize, "yes")
	t.Setenv(EnvAlignStyle, "1")
	t.Setenv(EnvLogLevel, "debug")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if !cfg.Parse.Sanitize {
		t.Error("expected sanitize from environment")
	}
	if !cfg.Parse.AlignStyle || !cfg.Export.AlignStyle {
		t.Error("expected align style on both sides from environment")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.LogLevel)
	}
}

func TestLoader_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	loader := NewLoaderWithPath(configPath)

	cfg := DefaultConfig()
	cfg.DefaultTo = "tiptap"
	cfg.Parse.CollapseWhitespace = true

	if err := loader.Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	if !loader.Exists() {
		t.Error("expected config file to exist after save")
	}

	loaded, err := loader.LoadRaw()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if loaded.DefaultTo != "tiptap" {
		t.Errorf("expected default target 'tiptap', got %s", loaded.DefaultTo)
	}
	if !loaded.Parse.CollapseWhitespace {
		t.Error("expected collapse_whitespace to survive save")
	}
}

func TestLoader_LoadNonExistent(t *testing.T) {
	tmpDir := t.TempDir()
	loader := NewLoaderWithPath(filepath.Join(tmpDir, "nonexistent", "config.yaml"))

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if cfg.DefaultTo != "slate" {
		t.Errorf("expected default target 'slate', got %s", cfg.DefaultTo)
	}
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("parse:\n  sanitize: true\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := NewLoaderWithPath(configPath).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Parse.Sanitize {
		t.Error("expected sanitize from file")
	}
	if cfg.DefaultTo != "slate" || !cfg.Export.Pretty {
		t.Errorf("expected defaults for missing keys, got %+v", cfg)
	}
}

func TestLoader_ExpandEnvVars(t *testing.T) {
	t.Setenv("RICHMARK_TEST_DIR", "/srv/docs")
	os.Unsetenv("UNSET_VAR_FOR_TEST")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `default_to: html
fallback: ${RICHMARK_TEST_DIR}/empty.json
log_level: "${UNSET_VAR_FOR_TEST}"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	loader := NewLoaderWithPath(configPath)

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Fallback != "/srv/docs/empty.json" {
		t.Errorf("expected expanded fallback path, got %s", cfg.Fallback)
	}
	if cfg.LogLevel != "" {
		t.Errorf("expected empty log level for unset env var, got %s", cfg.LogLevel)
	}

	raw, err := loader.LoadRaw()
	if err != nil {
		t.Fatalf("failed to load raw config: %v", err)
	}
	if raw.Fallback != "${RICHMARK_TEST_DIR}/empty.json" {
		t.Errorf("expected unexpanded fallback path, got %s", raw.Fallback)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_VAR", "test-value")

	if v := GetEnvOrDefault("TEST_VAR", "default"); v != "test-value" {
		t.Errorf("expected 'test-value', got %s", v)
	}
	if v := GetEnvOrDefault("NONEXISTENT_VAR", "default"); v != "default" {
		t.Errorf("expected 'default', got %s", v)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
		{"invalid", false},
	}

	for _, tc := range tests {
		t.Setenv("TEST_BOOL", tc.value)
		if got := GetEnvBool("TEST_BOOL"); got != tc.expected {
			t.Errorf("GetEnvBool(%q): expected %v, got %v", tc.value, tc.expected, got)
		}
	}
}

func TestNewLoader(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	loader, err := NewLoader()
	if err != nil {
		t.Fatalf("failed to create loader: %v", err)
	}

	path := loader.ConfigPath()
	if filepath.Base(path) != ConfigFileName {
		t.Errorf("expected config file name %s, got %s", ConfigFileName, filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != ConfigDirName {
		t.Errorf("expected config dir %s, got %s", ConfigDirName, filepath.Dir(path))
	}
}

func TestNewLoader_EnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(EnvConfigPath, custom)

	loader, err := NewLoader()
	if err != nil {
		t.Fatalf("failed to create loader: %v", err)
	}
	if loader.ConfigPath() != custom {
		t.Errorf("expected %s, got %s", custom, loader.ConfigPath())
	}
}

func TestLoader_Init(t *testing.T) {
	loader := NewLoaderWithPath(filepath.Join(t.TempDir(), "config.yaml"))

	if err := loader.Init(); err != nil {
		t.Fatalf("failed to init config: %v", err)
	}
	if !loader.Exists() {
		t.Error("expected config file to exist after init")
	}
	if err := loader.Init(); err == nil {
		t.Error("expected error when initializing existing config")
	}
}

func TestLoader_LoadInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("{{{{invalid yaml"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := NewLoaderWithPath(configPath).Load(); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
