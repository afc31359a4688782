// Package walkthrough holds the Getting Started catalog: categories and the
// tasks registered against them. Producers (built-in content, extension
// manifests) register descriptors during startup; views read the catalog and
// subscribe to addition events. The registry is single-threaded and must be
// accessed from one goroutine.
package walkthrough
