package extension

import (
	"fmt"
	"log/slog"

	"github.com/agentx-labs/welcome/internal/manifest"
	"github.com/agentx-labs/welcome/internal/media"
	"github.com/agentx-labs/welcome/internal/walkthrough"
)

// CategoryID returns the registry id of a category contributed by an extension.
func CategoryID(extensionID, category string) string {
	return extensionID + "#" + category
}

// TaskID returns the registry id of an item contributed by an extension
// under the welcomeItems key category.
func TaskID(extensionID, category, item string) string {
	return extensionID + "#" + category + "#" + item
}

// IngestResult summarizes an Ingest call.
type IngestResult struct {
	Extensions []string
	Skipped    []Skipped
	Categories int
	Tasks      int
}

// plan is the converted contribution set of one manifest.
type plan struct {
	manifest   *manifest.Manifest
	categories []walkthrough.CategoryDescriptor
	tasks      []walkthrough.TaskDescriptor
}

// Ingest registers the contributions of manifests into reg. Manifests whose
// engine constraint rejects hostVersion, or whose items cannot be converted,
// are skipped with a warning. All categories are registered before any task
// so items may target categories of other extensions. A task registration
// error aborts ingestion and is returned.
func Ingest(reg *walkthrough.Registry, manifests []*manifest.Manifest, hostVersion string, logger *slog.Logger) (*IngestResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	result := &IngestResult{}

	var plans []plan
	for _, m := range manifests {
		if err := m.CheckEngine(hostVersion); err != nil {
			logger.Warn("skipping extension", "extension", m.ID(), "error", err)
			result.Skipped = append(result.Skipped, Skipped{Path: m.Path, Err: err})
			continue
		}

		p, err := newPlan(m)
		if err != nil {
			logger.Warn("skipping extension", "extension", m.ID(), "error", err)
			result.Skipped = append(result.Skipped, Skipped{Path: m.Path, Err: err})
			continue
		}
		plans = append(plans, p)
		result.Extensions = append(result.Extensions, m.ID())
	}

	// Duplicate ids are dropped by the registry, so count what it kept.
	before := len(reg.Categories())
	for _, p := range plans {
		for _, c := range p.categories {
			reg.RegisterCategory(c)
		}
	}
	result.Categories = len(reg.Categories()) - before

	for _, p := range plans {
		for _, t := range p.tasks {
			if _, err := reg.RegisterTask(t); err != nil {
				return result, fmt.Errorf("extension %s: %w", p.manifest.ID(), err)
			}
			result.Tasks++
		}
		logger.Debug("ingested extension",
			"extension", p.manifest.ID(),
			"categories", len(p.categories),
			"tasks", len(p.tasks),
		)
	}

	return result, nil
}

func newPlan(m *manifest.Manifest) (plan, error) {
	p := plan{manifest: m}
	extID := m.ID()

	own := make(map[string]bool)
	for _, c := range m.Contributes.WelcomeCategories {
		own[c.ID] = true
		p.categories = append(p.categories, c.Descriptor(CategoryID(extID, c.ID)))
	}

	if len(m.Contributes.WelcomeItems) == 0 {
		return p, nil
	}

	base, err := media.FileBase(m.Dir())
	if err != nil {
		return plan{}, err
	}

	for _, group := range m.Contributes.WelcomeItems {
		category := group.Category
		if own[category] {
			category = CategoryID(extID, category)
		}
		for _, item := range group.Items {
			d, err := item.Descriptor(TaskID(extID, group.Category, item.ID), category, base)
			if err != nil {
				return plan{}, fmt.Errorf("welcomeItems[%s]: %w", group.Category, err)
			}
			p.tasks = append(p.tasks, d)
		}
	}
	return p, nil
}
