// Package manifest decodes extension manifests (package.json or package.yaml)
// and the Getting Started contribution points they declare:
// welcomeCategories and welcomeItems. Decoding enforces the one-of shapes of
// buttons, completion signals and media paths, and converts contributions
// into walkthrough descriptors. It also checks the manifest's engine
// constraint against the host version.
package manifest
