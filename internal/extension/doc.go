// Package extension finds installed extensions and feeds their Getting
// Started contributions into a walkthrough.Registry. Extension locations are
// declared in extensions.yaml; the resolution order decides which location
// wins when two of them ship the same extension id.
package extension
