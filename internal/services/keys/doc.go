// Package keys manages creation and loading of the request-signing key pair.
//
// The pair is persisted through a domain.Store as the hex private seed under
// "privkey" and the standard base64 public key under "pubkey". Both are
// written in a single SetItems call so a reader never sees one without the
// other.
package keys
