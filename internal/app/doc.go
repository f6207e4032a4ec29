// Package app wires application dependencies for the reqsign binaries.
//
// It builds the configured store (file, memory or redis, optionally sealed),
// the signing services and the operation runner from a config.Config, and
// exposes them via the Wire struct for commands to use.
package app
