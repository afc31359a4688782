package extension

import (
	"os"
	"path/filepath"
	"testing"
)

// writeExtension creates dir/name/package.json with the given content.
func writeExtension(t *testing.T, dir, name, content string) string {
	t.Helper()
	extDir := filepath.Join(dir, name)
	if err := os.MkdirAll(extDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(extDir, "package.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return extDir
}

const goExtension = `{
  "name": "go",
  "publisher": "acme",
  "version": "1.0.0",
  "engines": { "welcome": ">=1.0.0" },
  "contributes": {
    "welcomeCategories": [
      { "id": "start", "title": "Go", "description": "Set up Go" }
    ],
    "welcomeItems": {
      "start": [
        {
          "id": "install",
          "title": "Install tools",
          "description": "Install gopls",
          "button": { "title": "Install", "command": "go.install" },
          "media": { "path": "media/install.png", "altText": "Install" }
        },
        {
          "id": "tour",
          "title": "Take the tour",
          "description": "Learn Go",
          "button": { "title": "Open", "link": "https://go.dev/tour" },
          "doneOn": { "event": "tourOpened" },
          "media": { "path": "https://go.dev/tour.png", "altText": "Tour" }
        }
      ],
      "Setup": [
        {
          "id": "format",
          "title": "Format on save",
          "description": "Enable gofmt",
          "button": { "title": "Enable", "command": "go.format" },
          "media": { "path": "format.png", "altText": "Format" }
        }
      ]
    }
  }
}`

const rustExtension = `{
  "name": "rust",
  "publisher": "ferris",
  "version": "0.2.0",
  "engines": { "welcome": "^2.0.0" },
  "contributes": {
    "welcomeCategories": [
      { "id": "start", "title": "Rust", "description": "Set up Rust" }
    ]
  }
}`
