// Package crypto exposes the minimal primitives used by reqsign.
//
// Contents
//
//   - Ed25519 key generation from a 32-byte seed, deterministic signing and
//     verification (GenerateEd25519, PublicFromSeed, SignEd25519, VerifyEd25519)
//   - Store encodings: base64 public keys and signatures, hex private seeds
//     (B64, DecodeB64, Hex, DecodeSeedHex)
//   - Uniform random integers from crypto/rand (RandomUint64)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Ed25519 signatures are deterministic: the same seed and message always give
// the same signature. Callers should treat seeds as sensitive and Wipe them
// when practical.
package crypto
