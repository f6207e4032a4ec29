// Package request provides domain.RequestSource implementations that turn
// files, CLI flags and *http.Request values into request snapshots.
package request
