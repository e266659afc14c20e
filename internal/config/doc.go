// Package config loads, normalizes, and validates playmate configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PLAYMATE_LOG_LEVEL. The Config type gathers the state and log directories,
// the db format revision used for reads, the study kinds the merge command
// knows about, and logging settings.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, upper-cased study kinds, and clear validation errors.
package config
