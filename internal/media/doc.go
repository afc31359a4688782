// Package media resolves task media paths into per-theme URLs.
package media
