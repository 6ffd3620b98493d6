// Package config loads the read-only application configuration from a YAML
// file and YTMOV_ environment variables.
package config
