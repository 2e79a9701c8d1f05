// Package config loads, normalizes, and validates dngconv configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the DNGCONV_DNGLAB environment
// fallback for the converter location. Obtain settings through this package so
// downstream code receives sanitized paths, canonical option values, and clear
// validation errors.
package config
