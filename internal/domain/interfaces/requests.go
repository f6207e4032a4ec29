package interfaces

import (
	"context"

	domaintypes "reqsign/internal/domain/types"
)

// RequestSource returns the snapshot of an in-flight request by opaque id.
type RequestSource interface {
	Snapshot(ctx context.Context, requestID string) (domaintypes.RequestSnapshot, error)
}
