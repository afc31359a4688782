// Package config manages user-level settings stored at ~/.welcome/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the extensions.yaml location, the built-in media directory, the log level,
// and whether built-in content is registered at startup.
package config
