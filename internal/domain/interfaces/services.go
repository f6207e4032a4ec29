package interfaces

import (
	"context"

	domaintypes "reqsign/internal/domain/types"
)

// KeyService creates and reads the request-signing key pair.
type KeyService interface {
	Generate(ctx context.Context) (string, error)
	PublicKey(ctx context.Context) (string, error)
	Load(ctx context.Context) (domaintypes.KeyPair, error)
	Fingerprint(ctx context.Context) (domaintypes.Fingerprint, error)
}

// IdempotencyService creates and reads the session idempotency key.
type IdempotencyService interface {
	Generate(ctx context.Context) (domaintypes.IdempotencyKey, error)
	Current(ctx context.Context) (domaintypes.IdempotencyKey, error)
	Draw() (domaintypes.IdempotencyKey, error)
	Save(ctx context.Context, key domaintypes.IdempotencyKey) error
}

// SigningService builds and signs canonical messages.
type SigningService interface {
	Sign(
		ctx context.Context,
		snapshot domaintypes.RequestSnapshot,
		req domaintypes.SignRequest,
	) (domaintypes.SignResult, error)
	Verify(ctx context.Context, message []byte, signatureB64, publicKeyB64 string) (bool, error)
}

// CaptureService copies learned fields from responses into the store.
type CaptureService interface {
	Capture(ctx context.Context, responseJSON []byte) ([]string, error)
}
