package domain

import (
	interfaces "reqsign/internal/domain/interfaces"
	types "reqsign/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	FieldToken      = types.FieldToken
	IdempotencyKey  = types.IdempotencyKey
	Fingerprint     = types.Fingerprint
	Ed25519Public   = types.Ed25519Public
	Ed25519Seed     = types.Ed25519Seed
	KeyPair         = types.KeyPair
	Param           = types.Param
	RequestBody     = types.RequestBody
	RequestSnapshot = types.RequestSnapshot
	Message         = types.Message
	Signature       = types.Signature
	SignState       = types.SignState
	SignRequest     = types.SignRequest
	SignResult      = types.SignResult
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Store              = interfaces.Store
	RequestSource      = interfaces.RequestSource
	KeyService         = interfaces.KeyService
	IdempotencyService = interfaces.IdempotencyService
	SigningService     = interfaces.SigningService
	CaptureService     = interfaces.CaptureService
)

// Re-exported constants.
const (
	StoreKeyPublicKey      = types.StoreKeyPublicKey
	StoreKeyPrivateKey     = types.StoreKeyPrivateKey
	StoreKeyIdempotencyKey = types.StoreKeyIdempotencyKey
	StoreKeyUID            = types.StoreKeyUID
	StoreKeyTransactionKey = types.StoreKeyTransactionKey

	IdempotencyKeyMin = types.IdempotencyKeyMin
	IdempotencyKeyMax = types.IdempotencyKeyMax

	MimeJSON          = types.MimeJSON
	MimeMultipartForm = types.MimeMultipartForm

	SignStateIdle             = types.SignStateIdle
	SignStateKeyReady         = types.SignStateKeyReady
	SignStateIdempotencyReady = types.SignStateIdempotencyReady
	SignStateMessageBuilt     = types.SignStateMessageBuilt
	SignStateSigned           = types.SignStateSigned
)
