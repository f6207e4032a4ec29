// Package operation exposes the caller-facing actions of reqsign behind one
// Operation interface: generating keys, generating an idempotency key,
// signing a request and capturing response fields.
//
// A host (the CLI, a test, an embedding proxy) builds an Env once and hands
// operations to a Runner, which adds a run ID, logging and metrics.
package operation
