package store

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"reqsign/internal/crypto"
)

const (
	// envelopeFormatVersion is the current version of the sealed value format.
	envelopeFormatVersion = 1

	// sealedPrefix marks a store value as a sealed envelope.
	sealedPrefix = "sealed:"
)

// errWrongPassphrase is returned when the passphrase is incorrect or the
// envelope has been modified.
var errWrongPassphrase = errors.New("wrong passphrase or corrupted value")

// envelope is the JSON structure holding the ciphertext and KDF parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and returns raw as a "sealed:" string.
func seal(passphrase string, raw []byte, n, r, p int) (string, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return "", err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], n, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return "", err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; the per-seal salt makes the key unique
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	b, err := json.Marshal(envelope{
		V:      envelopeFormatVersion,
		Salt:   salt[:],
		N:      n,
		R:      r,
		P:      p,
		Cipher: ct,
	})
	if err != nil {
		return "", err
	}
	return sealedPrefix + base64.StdEncoding.EncodeToString(b), nil
}

// open reverses seal.
func open(passphrase, value string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, sealedPrefix))
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}
	if env.V > envelopeFormatVersion {
		return nil, fmt.Errorf("unsupported envelope version %d", env.V)
	}

	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, env.Salt)
	if err != nil {
		return nil, errWrongPassphrase
	}
	return pt, nil
}

func isSealed(value string) bool { return strings.HasPrefix(value, sealedPrefix) }

// Tunables for scrypt key derivation.
func scryptParamsDefault() (n, r, p int) { return 1 << 15, 8, 1 }
