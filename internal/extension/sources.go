package extension

import (
	"path/filepath"
)

// Source is a location searched for extension manifests.
type Source struct {
	Name     string // e.g., "user", "acme-go"
	BasePath string // absolute path
	// Scan marks a directory whose subdirectories are extensions. When false,
	// BasePath is itself an extension directory.
	Scan bool
}

// BuildSources expands the resolution order into sources. The token
// "extensions" becomes one Source per declared extension in declaration
// order; "user" maps to userRoot; any other entry is a directory under
// configDir that is scanned for extensions.
func BuildSources(cfg *ExtensionConfig, configDir, userRoot string) []Source {
	var sources []Source

	for _, entry := range cfg.Resolution.Order {
		switch entry {
		case OrderUser:
			sources = append(sources, Source{
				Name:     OrderUser,
				BasePath: userRoot,
				Scan:     true,
			})

		case OrderExtensions:
			for _, ext := range cfg.Extensions {
				basePath := ext.Path
				if basePath == "" {
					basePath = filepath.Join(configDir, "extensions", ext.Name)
				}
				if !filepath.IsAbs(basePath) {
					basePath = filepath.Join(configDir, basePath)
				}
				sources = append(sources, Source{
					Name:     ext.Name,
					BasePath: basePath,
				})
			}

		default:
			basePath := entry
			if !filepath.IsAbs(basePath) {
				basePath = filepath.Join(configDir, entry)
			}
			sources = append(sources, Source{
				Name:     entry,
				BasePath: basePath,
				Scan:     true,
			})
		}
	}

	return sources
}
