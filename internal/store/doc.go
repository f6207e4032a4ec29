// Package store provides the key/value stores reqsign keeps its state in.
//
// It contains concrete implementations of domain.Store:
//   - FileStore: one JSON document on disk, guarded by a mutex and an
//     advisory file lock, written via temp file and rename
//   - MemoryStore: an in-process map, for tests and one-shot use
//   - RedisStore: a Redis hash, for state shared between machines
//   - SealedStore: a decorator that encrypts selected keys (the private key)
//     at rest under a passphrase
//
// All stores are safe for concurrent use, atomic per key, and apply SetItems
// as a single all-or-nothing write.
package store
