// Package config loads and merges primus configuration.
//
// Effective configuration is built in layers: compiled defaults, then the
// JSON config file at the platform config directory, then PRIMUS_*
// environment variables, then CLI flag overrides. Later layers win.
package config
