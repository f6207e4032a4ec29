package canonical

import (
	"context"
	"fmt"
	"strings"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
	"reqsign/internal/protocol/fieldtoken"
)

// KeySource supplies the idempotency key for a message.
type KeySource interface {
	Current(ctx context.Context) (domain.IdempotencyKey, error)
}

// FixedKey is a KeySource that always returns itself.
type FixedKey domain.IdempotencyKey

// Current returns k.
func (k FixedKey) Current(context.Context) (domain.IdempotencyKey, error) {
	return domain.IdempotencyKey(k), nil
}

// Builder assembles canonical messages.
type Builder struct {
	Keys     KeySource
	Resolver FieldResolver
}

// Build concatenates the idempotency key (when includeIdempotencyKey is set)
// and the value of every token, in order, with no separators.
func (b Builder) Build(
	ctx context.Context,
	tokens []domain.FieldToken,
	includeIdempotencyKey bool,
) (domain.Message, error) {
	var sb strings.Builder

	if includeIdempotencyKey {
		if b.Keys == nil {
			return nil, rserrors.ErrMissingIdempotencyKey
		}
		ik, err := b.Keys.Current(ctx)
		if err != nil {
			return nil, err
		}
		sb.WriteString(ik.String())
	}

	for _, tok := range tokens {
		v, err := b.Resolver.Resolve(ctx, tok)
		if err != nil {
			return nil, err
		}
		sb.WriteString(v)
	}

	return domain.Message(sb.String()), nil
}

// Describe renders the message layout for display without resolving
// anything: "{idempotency-key,a,b}".
func Describe(tokens []domain.FieldToken, includeIdempotencyKey bool) string {
	prefix := ""
	if includeIdempotencyKey {
		prefix = "idempotency-key,"
	}
	return fmt.Sprintf("{%s%s}", prefix, fieldtoken.Join(tokens))
}
