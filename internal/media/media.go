package media

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

var (
	// ErrEmptyPath is returned for a blank media path.
	ErrEmptyPath = errors.New("empty media path")

	// ErrNoBase is returned when a relative path is resolved without a base.
	ErrNoBase = errors.New("relative media path without base")

	// ErrEscapesBase is returned for relative paths that leave the base.
	ErrEscapesBase = errors.New("media path escapes base")
)

// Path is a media path as declared by content: Bare or ThemedPath.
type Path interface {
	isPath()
}

// Bare is a single path used for every theme. It may be relative to the
// content's base or an absolute http(s) URL.
type Bare string

// ThemedPath declares one path per color theme.
type ThemedPath struct {
	HC    string `yaml:"hc" json:"hc"`
	Light string `yaml:"light" json:"light"`
	Dark  string `yaml:"dark" json:"dark"`
}

func (Bare) isPath()       {}
func (ThemedPath) isPath() {}

// Themed holds resolved URLs for the high-contrast, light and dark themes.
type Themed struct {
	HC    string `json:"hc"`
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// IsZero reports whether no media was resolved.
func (t Themed) IsZero() bool {
	return t.HC == "" && t.Light == "" && t.Dark == ""
}

// Resolve turns p into a Themed triple. Relative entries are joined onto base.
func Resolve(p Path, base *url.URL) (Themed, error) {
	switch p := p.(type) {
	case Bare:
		u, err := resolveOne(string(p), base)
		if err != nil {
			return Themed{}, err
		}
		return Themed{HC: u, Light: u, Dark: u}, nil

	case ThemedPath:
		var t Themed
		var err error
		if t.HC, err = resolveOne(p.HC, base); err != nil {
			return Themed{}, fmt.Errorf("hc: %w", err)
		}
		if t.Light, err = resolveOne(p.Light, base); err != nil {
			return Themed{}, fmt.Errorf("light: %w", err)
		}
		if t.Dark, err = resolveOne(p.Dark, base); err != nil {
			return Themed{}, fmt.Errorf("dark: %w", err)
		}
		return t, nil

	case nil:
		return Themed{}, ErrEmptyPath

	default:
		return Themed{}, fmt.Errorf("unsupported media path %T", p)
	}
}

// FileBase returns a file:// URL for dir, made absolute first.
func FileBase(dir string) (*url.URL, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving media base %s: %w", dir, err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return &url.URL{Scheme: "file", Path: p}, nil
}

func resolveOne(p string, base *url.URL) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", ErrEmptyPath
	}

	if u, err := url.Parse(p); err == nil && (u.Scheme == "https" || u.Scheme == "http") {
		return u.String(), nil
	}

	if base == nil {
		return "", fmt.Errorf("%w: %s", ErrNoBase, p)
	}

	rel := path.Clean(filepath.ToSlash(p))
	if rel == ".." || strings.HasPrefix(rel, "../") || path.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s", ErrEscapesBase, p)
	}
	return base.JoinPath(rel).String(), nil
}
