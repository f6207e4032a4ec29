// Package errors defines the sentinel errors used across reqsign.
//
// Every failure surfaced by the signing core wraps exactly one of these
// sentinels, so callers classify errors with errors.Is regardless of how much
// context was added on the way up.
//
// This package must not import other internal packages.
package errors

import "errors"

// Store access.
var (
	// ErrStoreRead indicates the store could not be read, or held a value that
	// could not be decoded.
	ErrStoreRead = errors.New("store read failed")

	// ErrStoreWrite indicates a store write was not confirmed.
	ErrStoreWrite = errors.New("store write failed")

	// ErrItemNotFound is returned by Store.GetItem for an absent key.
	ErrItemNotFound = errors.New("store item not found")

	// ErrLockTimeout indicates the store file lock could not be acquired in time.
	ErrLockTimeout = errors.New("lock acquisition timeout")
)

// Key material.
var (
	// ErrMissingKey indicates no private key is stored when signing.
	ErrMissingKey = errors.New("no signing key stored")

	// ErrKeyMismatch indicates the stored private key does not derive the stored public key.
	ErrKeyMismatch = errors.New("stored public key does not match private key")

	// ErrMissingIdempotencyKey indicates the message needs an idempotency key
	// but none has been generated.
	ErrMissingIdempotencyKey = errors.New("no idempotency key stored")

	// ErrInvalidEncoding indicates a key or signature could not be decoded.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrWeakPassphrase indicates a sealing passphrase fails the strength policy.
	ErrWeakPassphrase = errors.New("passphrase is too weak")
)

// Field resolution.
var (
	// ErrIndexOutOfRange indicates a malformed $N token or an N past the last URL segment.
	ErrIndexOutOfRange = errors.New("url segment index out of range")

	// ErrUnsupportedBodyFormat indicates a body lookup against a mime type
	// other than application/json or multipart/form-data.
	ErrUnsupportedBodyFormat = errors.New("unsupported body format")

	// ErrMalformedBody indicates a body that claims JSON but does not parse as a JSON object.
	ErrMalformedBody = errors.New("malformed body")

	// ErrMissingField indicates a name present in neither the store nor the body.
	ErrMissingField = errors.New("field not found")

	// ErrForbiddenField indicates a field token naming the stored private key.
	ErrForbiddenField = errors.New("field may not be signed")
)

// Configuration.
var (
	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidStore indicates an invalid store configuration value.
	ErrConfigInvalidStore = errors.New("invalid store configuration")

	// ErrConfigInvalidSigning indicates an invalid signing configuration value.
	ErrConfigInvalidSigning = errors.New("invalid signing configuration")

	// ErrConfigInvalidLog indicates an invalid log configuration value.
	ErrConfigInvalidLog = errors.New("invalid log configuration")

	// ErrConfigInvalidVerifier indicates an invalid verifier configuration value.
	ErrConfigInvalidVerifier = errors.New("invalid verifier configuration")
)

// Transport.
var (
	// ErrUnexpectedStatus indicates the server answered a signed request with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrUnknownOperation indicates an operation name that is not registered.
	ErrUnknownOperation = errors.New("unknown operation")
)
