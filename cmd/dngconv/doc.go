// Package main hosts the dngconv CLI entrypoint and command graph.
//
// Without a subcommand on a terminal dngconv opens the interactive picker
// interface; "convert" runs the same orchestration non-interactively for
// scripts. Configuration resolution and logger construction live here so the
// internal packages stay free of flag handling.
package main
