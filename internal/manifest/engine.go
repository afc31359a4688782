package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// EngineName is the engines key an extension uses to declare the host
// versions it supports.
const EngineName = "welcome"

// CheckEngine returns an error when hostVersion does not satisfy the
// manifest's engine constraint. Manifests without a constraint and
// development hosts ("dev" or any unparsable version) always pass.
func (m *Manifest) CheckEngine(hostVersion string) error {
	constraint, ok := m.Engines[EngineName]
	if !ok || strings.TrimSpace(constraint) == "" || constraint == "*" {
		return nil
	}

	host, err := parseSemver(hostVersion)
	if err != nil {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("extension %s: parsing engine constraint %q: %w", m.ID(), constraint, err)
	}
	if ok, errs := c.Validate(host); !ok {
		if len(errs) > 0 {
			return fmt.Errorf("extension %s: host %s: %w", m.ID(), host, errs[0])
		}
		return fmt.Errorf("extension %s: host %s does not satisfy %q", m.ID(), host, constraint)
	}
	return nil
}

// SemVer parses the manifest version.
func (m *Manifest) SemVer() (*semver.Version, error) {
	v, err := parseSemver(m.Version)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q of %s: %w", m.Version, m.ID(), err)
	}
	return v, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
