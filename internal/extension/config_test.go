package extension

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFile)

	content := `extensions:
  - name: acme-go
    path: vendor/acme-go
  - name: rust-tools
    path: /opt/rust-tools
resolution:
  order: [extensions, user, shared]
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.Extensions) != 2 {
		t.Errorf("expected 2 extensions, got %d", len(cfg.Extensions))
	}
	if cfg.Extensions[0].Name != "acme-go" {
		t.Errorf("expected first extension name 'acme-go', got %q", cfg.Extensions[0].Name)
	}
	if cfg.Extensions[1].Path != "/opt/rust-tools" {
		t.Errorf("expected second extension path '/opt/rust-tools', got %q", cfg.Extensions[1].Path)
	}

	expectedOrder := []string{"extensions", "user", "shared"}
	if len(cfg.Resolution.Order) != len(expectedOrder) {
		t.Fatalf("expected %d resolution order entries, got %d", len(expectedOrder), len(cfg.Resolution.Order))
	}
	for i, entry := range cfg.Resolution.Order {
		if entry != expectedOrder[i] {
			t.Errorf("resolution order[%d] = %q, want %q", i, entry, expectedOrder[i])
		}
	}
}

func TestLoadConfig_DefaultOrder(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFile)

	if err := os.WriteFile(configPath, []byte("extensions: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(cfg.Extensions) != 0 {
		t.Errorf("expected 0 extensions, got %d", len(cfg.Extensions))
	}
	if len(cfg.Resolution.Order) != 2 || cfg.Resolution.Order[0] != OrderExtensions {
		t.Errorf("resolution order = %v, want default", cfg.Resolution.Order)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/" + ConfigFile)
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadConfigOrDefault(t *testing.T) {
	cfg, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), ConfigFile))
	if err != nil {
		t.Fatalf("LoadConfigOrDefault() error = %v", err)
	}
	if len(cfg.Resolution.Order) != 2 {
		t.Errorf("expected default resolution order, got %v", cfg.Resolution.Order)
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(bad, []byte("extensions: {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigOrDefault(bad); err == nil {
		t.Error("expected parse error for malformed config, got nil")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nested", ConfigFile)

	original := &ExtensionConfig{
		Extensions: []Extension{
			{Name: "alpha", Path: "extensions/alpha"},
			{Name: "beta"},
		},
		Resolution: ResolutionConfig{
			Order: []string{"user", "extensions"},
		},
	}

	if err := SaveConfig(configPath, original); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(loaded.Extensions) != len(original.Extensions) {
		t.Fatalf("extension count mismatch: got %d, want %d", len(loaded.Extensions), len(original.Extensions))
	}
	for i, ext := range loaded.Extensions {
		if ext != original.Extensions[i] {
			t.Errorf("extension[%d] = %+v, want %+v", i, ext, original.Extensions[i])
		}
	}
	for i, entry := range loaded.Resolution.Order {
		if entry != original.Resolution.Order[i] {
			t.Errorf("resolution order[%d] = %q, want %q", i, entry, original.Resolution.Order[i])
		}
	}
}

func TestFindExtension(t *testing.T) {
	cfg := &ExtensionConfig{
		Extensions: []Extension{
			{Name: "alpha", Path: "extensions/alpha"},
			{Name: "beta", Path: "extensions/beta"},
		},
	}

	ext := cfg.FindExtension("alpha")
	if ext == nil {
		t.Fatal("expected to find 'alpha', got nil")
	}
	if ext.Name != "alpha" {
		t.Errorf("expected name 'alpha', got %q", ext.Name)
	}

	if ext := cfg.FindExtension("nonexistent"); ext != nil {
		t.Errorf("expected nil for nonexistent extension, got %v", ext)
	}
}

func TestAddRemoveExtension(t *testing.T) {
	cfg := &ExtensionConfig{
		Extensions: []Extension{{Name: "existing"}},
	}

	if err := cfg.AddExtension(Extension{Name: "existing"}); err == nil {
		t.Error("expected error adding duplicate extension, got nil")
	}
	if err := cfg.AddExtension(Extension{Name: "new", Path: "/x"}); err != nil {
		t.Fatalf("AddExtension() error = %v", err)
	}
	if len(cfg.Extensions) != 2 {
		t.Fatalf("expected 2 extensions, got %d", len(cfg.Extensions))
	}

	if err := cfg.RemoveExtension("existing"); err != nil {
		t.Fatalf("RemoveExtension() error = %v", err)
	}
	if err := cfg.RemoveExtension("existing"); err == nil {
		t.Error("expected error removing missing extension, got nil")
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0].Name != "new" {
		t.Errorf("extensions = %+v, want only 'new'", cfg.Extensions)
	}
}
