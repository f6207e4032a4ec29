// Package idempotency creates and reads the session idempotency key.
//
// The key is a ten-digit decimal drawn uniformly from [1000000000, 9999999999)
// and stored under "idempotencykey". Generate replaces the stored key; Draw
// only produces one, leaving persistence to the caller.
package idempotency
