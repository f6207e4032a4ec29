// Package flock provides cross-platform advisory file locks.
//
// The file store takes an exclusive lock on a sidecar lock file around each
// read-modify-write cycle so that several reqsign processes sharing one home
// directory do not lose each other's writes.
//
// Usage:
//
//	file, _ := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
//	if err := flock.Exclusive(file.Fd()); err != nil {
//	    // Lock not acquired - file is in use
//	}
//	defer flock.Unlock(file.Fd())
package flock
