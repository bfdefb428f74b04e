// Package config loads secretsweep's YAML configuration. Settings resolve
// with CLI flags taking precedence over a scan-root-local file, which takes
// precedence over the global XDG config.
package config
