// Package signing produces and checks request signatures.
//
// Sign walks one request through a fixed sequence of states:
//
//	Idle → KeyReady → (IdempotencyReady) → MessageBuilt → Signed
//
// The private key is loaded first, so a missing key fails before any field is
// resolved. A failed Sign returns no signature and leaves the store unchanged.
//
// Two idempotency policies are supported. PolicySession reuses the stored key
// until it is regenerated. PolicyPerRequest draws a fresh key for every
// signature and stores it only once the signature exists.
package signing
