package extension

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/welcome/internal/manifest"
)

// Skipped records a manifest or extension that was not used.
type Skipped struct {
	Path   string
	Source string
	Err    error
}

// Discovery is the result of scanning sources for manifests.
type Discovery struct {
	Manifests []*manifest.Manifest
	Skipped   []Skipped
}

// Discover walks sources in order and parses every extension manifest it
// finds. Missing directories are ignored. Manifests that fail to parse are
// recorded in Skipped. A directory reachable from several sources is read
// once. When two sources ship the same extension id the earlier source wins
// and the later manifest is skipped.
func Discover(sources []Source) (*Discovery, error) {
	d := &Discovery{}
	seen := make(map[string]string)
	visited := make(map[string]bool)

	for _, src := range sources {
		dirs, err := extensionDirs(src)
		if err != nil {
			return nil, err
		}

		for _, dir := range dirs {
			if visited[dir] {
				continue
			}
			visited[dir] = true

			path, err := manifest.Find(dir)
			if err != nil {
				if errors.Is(err, manifest.ErrNoManifest) && src.Scan {
					continue
				}
				d.Skipped = append(d.Skipped, Skipped{Path: dir, Source: src.Name, Err: err})
				continue
			}

			m, err := manifest.Parse(path)
			if err != nil {
				d.Skipped = append(d.Skipped, Skipped{Path: path, Source: src.Name, Err: err})
				continue
			}

			if prev, dup := seen[m.ID()]; dup {
				d.Skipped = append(d.Skipped, Skipped{
					Path:   path,
					Source: src.Name,
					Err:    fmt.Errorf("extension %s already provided by %s", m.ID(), prev),
				})
				continue
			}
			seen[m.ID()] = src.Name
			d.Manifests = append(d.Manifests, m)
		}
	}

	return d, nil
}

// extensionDirs lists the extension directories of a source.
func extensionDirs(src Source) ([]string, error) {
	info, err := os.Stat(src.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading source %s: %w", src.Name, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s: %s is not a directory", src.Name, src.BasePath)
	}

	if !src.Scan {
		return []string{src.BasePath}, nil
	}

	entries, err := os.ReadDir(src.BasePath)
	if err != nil {
		return nil, fmt.Errorf("reading source %s: %w", src.Name, err)
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		dirs = append(dirs, filepath.Join(src.BasePath, entry.Name()))
	}
	return dirs, nil
}
