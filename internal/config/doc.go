// Package config loads, validates, and normalizes sagelink configuration.
//
// Configuration lives in a TOML file (default ~/.config/sagelink/config.toml,
// or sagelink.toml in the working directory). Load applies defaults, expands
// ~ in path fields, honors environment overrides for credentials, and
// validates the result. A missing file falls back to defaults; a malformed
// file is the one fatal startup error in the system.
package config
