package types

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Seed is the 32-byte private seed an Ed25519 key pair is derived from.
// This is the form persisted under the privkey store key.
type Ed25519Seed [32]byte

// Slice returns the seed as a []byte.
func (s Ed25519Seed) Slice() []byte { return s[:] }

// KeyPair is the request-signing key pair. Only Public is ever shared.
type KeyPair struct {
	Public  Ed25519Public
	Private Ed25519Seed
}
