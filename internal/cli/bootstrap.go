package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/agentx-labs/welcome/internal/builtin"
	"github.com/agentx-labs/welcome/internal/config"
	"github.com/agentx-labs/welcome/internal/extension"
	"github.com/agentx-labs/welcome/internal/media"
	"github.com/agentx-labs/welcome/internal/walkthrough"
)

// loadOptions controls how loadRegistry assembles the catalog.
type loadOptions struct {
	Logger           *slog.Logger
	HostVersion      string
	Builtin          bool
	MediaBase        string
	ExtensionsConfig string
	ConfigDir        string

	// Observe is called with the empty registry before anything is
	// registered, so listeners see every event.
	Observe func(*walkthrough.Registry)
}

// loadReport describes what loadRegistry registered and skipped.
type loadReport struct {
	Extensions []string
	Skipped    []extension.Skipped
}

// optionsFromConfig builds loadOptions from the loaded user config.
func optionsFromConfig() loadOptions {
	return loadOptions{
		Logger:           logger,
		HostVersion:      buildVersion,
		Builtin:          config.GetBool(config.KeyBuiltin),
		MediaBase:        config.MediaBase(),
		ExtensionsConfig: config.ExtensionsConfigPath(),
		ConfigDir:        config.Dir(),
	}
}

// loadRegistry builds a registry from built-in content followed by the
// extensions discovered through the extensions config.
func loadRegistry(opts loadOptions) (*walkthrough.Registry, *loadReport, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	reg := walkthrough.New(walkthrough.WithLogger(opts.Logger))
	if opts.Observe != nil {
		opts.Observe(reg)
	}

	if opts.Builtin {
		content, err := builtin.Load()
		if err != nil {
			return nil, nil, err
		}
		base, err := media.FileBase(opts.MediaBase)
		if err != nil {
			return nil, nil, err
		}
		if err := builtin.Register(reg, content, base); err != nil {
			return nil, nil, fmt.Errorf("registering built-in content: %w", err)
		}
	}

	cfg, err := extension.LoadConfigOrDefault(opts.ExtensionsConfig)
	if err != nil {
		return nil, nil, err
	}
	userRoot := filepath.Join(opts.ConfigDir, config.UserExtensionsDir)
	sources := extension.BuildSources(cfg, opts.ConfigDir, userRoot)

	found, err := extension.Discover(sources)
	if err != nil {
		return nil, nil, fmt.Errorf("discovering extensions: %w", err)
	}
	for _, s := range found.Skipped {
		opts.Logger.Warn("skipping manifest", "path", s.Path, "source", s.Source, "error", s.Err)
	}

	res, err := extension.Ingest(reg, found.Manifests, opts.HostVersion, opts.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("ingesting extensions: %w", err)
	}

	report := &loadReport{
		Extensions: res.Extensions,
		Skipped:    append(found.Skipped, res.Skipped...),
	}
	return reg, report, nil
}
