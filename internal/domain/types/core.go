package types

import "strconv"

// Well-known store keys.
const (
	StoreKeyPublicKey      = "pubkey"
	StoreKeyPrivateKey     = "privkey"
	StoreKeyIdempotencyKey = "idempotencykey"
	StoreKeyUID            = "uid"
	StoreKeyTransactionKey = "transactionKey"
)

// FieldToken identifies one component of a canonical message.
//
// "$N" selects the Nth '/'-separated segment of the request URL; any other
// token names a value looked up in the store, then in the request body.
type FieldToken string

// String returns the string form of the token.
func (t FieldToken) String() string { return string(t) }

// Idempotency key bounds: ten decimal digits, upper bound exclusive.
const (
	IdempotencyKeyMin uint64 = 1_000_000_000
	IdempotencyKeyMax uint64 = 9_999_999_999
)

// IdempotencyKey is a per-session random nonce folded into signed messages.
type IdempotencyKey uint64

// String returns the decimal form used in messages and in the store.
func (k IdempotencyKey) String() string { return strconv.FormatUint(uint64(k), 10) }

// Valid reports whether k lies in [IdempotencyKeyMin, IdempotencyKeyMax).
func (k IdempotencyKey) Valid() bool {
	return uint64(k) >= IdempotencyKeyMin && uint64(k) < IdempotencyKeyMax
}

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
