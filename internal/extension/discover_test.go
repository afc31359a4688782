package extension

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiscover_ScanAndDeclared(t *testing.T) {
	userRoot := t.TempDir()
	writeExtension(t, userRoot, "acme.go", goExtension)
	writeExtension(t, userRoot, "ferris.rust", rustExtension)
	if err := os.MkdirAll(filepath.Join(userRoot, "no-manifest"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(userRoot, ".hidden"), 0o755); err != nil {
		t.Fatal(err)
	}

	declared := writeExtension(t, t.TempDir(), "local-go", goExtension)

	sources := []Source{
		{Name: "local-go", BasePath: declared},
		{Name: "user", BasePath: userRoot, Scan: true},
		{Name: "missing", BasePath: filepath.Join(userRoot, "does-not-exist"), Scan: true},
	}

	d, err := Discover(sources)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(d.Manifests) != 2 {
		t.Fatalf("expected 2 manifests, got %d", len(d.Manifests))
	}
	if d.Manifests[0].ID() != "acme.go" || d.Manifests[0].Dir() != declared {
		t.Errorf("Manifests[0] = %s at %s, want acme.go from declared source", d.Manifests[0].ID(), d.Manifests[0].Dir())
	}
	if d.Manifests[1].ID() != "ferris.rust" {
		t.Errorf("Manifests[1] = %s, want ferris.rust", d.Manifests[1].ID())
	}

	// The user copy of acme.go loses to the declared one.
	if len(d.Skipped) != 1 {
		t.Fatalf("expected 1 skipped entry, got %d: %+v", len(d.Skipped), d.Skipped)
	}
	if d.Skipped[0].Source != "user" || !strings.Contains(d.Skipped[0].Err.Error(), "already provided by local-go") {
		t.Errorf("Skipped[0] = %+v", d.Skipped[0])
	}
}

func TestDiscover_BadManifest(t *testing.T) {
	root := t.TempDir()
	writeExtension(t, root, "broken", `{"name": "broken", "contributes": {"welcomeItems": {"c": [{"id": "x", "button": {"title": "x"}}]}}}`)
	writeExtension(t, root, "fine", `{"name": "fine"}`)

	d, err := Discover([]Source{{Name: "user", BasePath: root, Scan: true}})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(d.Manifests) != 1 || d.Manifests[0].ID() != "fine" {
		t.Errorf("Manifests = %v, want only 'fine'", d.Manifests)
	}
	if len(d.Skipped) != 1 || !strings.Contains(d.Skipped[0].Err.Error(), "needs a command or a link") {
		t.Errorf("Skipped = %+v, want one decode error", d.Skipped)
	}
}

func TestDiscover_DeclaredWithoutManifest(t *testing.T) {
	dir := t.TempDir()

	d, err := Discover([]Source{{Name: "empty", BasePath: dir}})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(d.Skipped) != 1 {
		t.Errorf("expected declared extension without manifest to be reported, got %+v", d.Skipped)
	}
}

func TestDiscover_SourceIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Discover([]Source{{Name: "bad", BasePath: file, Scan: true}}); err == nil {
		t.Fatal("expected error for file source, got nil")
	}
}

func TestDiscover_DeclaredInsideUserRoot(t *testing.T) {
	userRoot := t.TempDir()
	extDir := writeExtension(t, userRoot, "acme-go", goExtension)

	sources := []Source{
		{Name: "acme-go", BasePath: extDir},
		{Name: OrderUser, BasePath: userRoot, Scan: true},
	}
	d, err := Discover(sources)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(d.Manifests) != 1 {
		t.Errorf("got %d manifests, want 1", len(d.Manifests))
	}
	if len(d.Skipped) != 0 {
		t.Errorf("Skipped = %+v, want none for a directory seen twice", d.Skipped)
	}
}
