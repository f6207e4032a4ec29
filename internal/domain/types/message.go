package types

import "encoding/base64"

// Message is the canonical byte sequence a signature is computed over.
type Message []byte

// Signature is a raw Ed25519 signature.
type Signature []byte

// String returns the standard base64 form attached to requests.
func (s Signature) String() string { return base64.StdEncoding.EncodeToString(s) }

// SignState is a step of the per-request signing state machine.
type SignState int

// Signing states, in order.
const (
	SignStateIdle SignState = iota
	SignStateKeyReady
	SignStateIdempotencyReady
	SignStateMessageBuilt
	SignStateSigned
)

func (s SignState) String() string {
	switch s {
	case SignStateIdle:
		return "idle"
	case SignStateKeyReady:
		return "key_ready"
	case SignStateIdempotencyReady:
		return "idempotency_ready"
	case SignStateMessageBuilt:
		return "message_built"
	case SignStateSigned:
		return "signed"
	default:
		return "unknown"
	}
}

// SignRequest selects what goes into the canonical message.
type SignRequest struct {
	// IncludeIdempotencyKey prefixes the message with the idempotency key.
	IncludeIdempotencyKey bool
	// Fields is the ordered token list.
	Fields []FieldToken
}

// SignResult is the outcome of a successful sign.
type SignResult struct {
	Signature Signature
	// IdempotencyKey is the key folded into the message; zero when none was used.
	IdempotencyKey IdempotencyKey
	// Message is the signed canonical message. It is for in-process callers
	// (tests, verification) and must not be logged.
	Message Message
	State   SignState
}
