// Package builtin ships the Getting Started content bundled with the
// application and replays it into a walkthrough.Registry at startup.
package builtin
