// Package main hosts the playmate CLI entrypoint and command graph.
//
// The Cobra-based command tree reads OPF files from disk, hands them to the
// codec and merge packages, and writes results back with file locking. It
// centralizes configuration resolution, logger setup, and the run journal so
// subcommands can focus on their own flags and output.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
