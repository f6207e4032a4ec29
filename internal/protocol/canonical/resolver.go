package canonical

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
	"reqsign/internal/protocol/fieldtoken"
)

// FieldResolver resolves one field token to its string value.
type FieldResolver interface {
	Resolve(ctx context.Context, token domain.FieldToken) (string, error)
}

// Resolver resolves tokens against one request snapshot and a store.
// Create one per request; it caches the parsed body.
type Resolver struct {
	store    domain.Store
	snapshot domain.RequestSnapshot

	bodyParsed bool
	body       BodyFormat
	bodyErr    error
}

// NewResolver returns a Resolver for snapshot backed by store.
func NewResolver(store domain.Store, snapshot domain.RequestSnapshot) *Resolver {
	return &Resolver{store: store, snapshot: snapshot}
}

// Resolve returns the value of token: a URL segment for "$N", else the store
// value, else the body value. The private key name never resolves.
func (r *Resolver) Resolve(ctx context.Context, token domain.FieldToken) (string, error) {
	if fieldtoken.IsSegment(token) {
		return r.segment(token)
	}

	name := string(token)
	if name == domain.StoreKeyPrivateKey {
		return "", fmt.Errorf("%w: %q", rserrors.ErrForbiddenField, name)
	}
	ok, err := r.store.HasItem(ctx, name)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", name, err)
	}
	if ok {
		v, err := r.store.GetItem(ctx, name)
		if errors.Is(err, rserrors.ErrItemNotFound) {
			// Deleted between HasItem and GetItem; fall through to the body.
			return r.fromBody(name)
		}
		if err != nil {
			return "", fmt.Errorf("resolving %q: %w", name, err)
		}
		return v, nil
	}
	return r.fromBody(name)
}

func (r *Resolver) segment(token domain.FieldToken) (string, error) {
	n, err := fieldtoken.SegmentIndex(token)
	if err != nil {
		return "", err
	}
	segments := strings.Split(r.snapshot.URL, "/")
	if n >= len(segments) {
		return "", fmt.Errorf("%w: %q on a URL with %d segments",
			rserrors.ErrIndexOutOfRange, token, len(segments))
	}
	return segments[n], nil
}

func (r *Resolver) fromBody(name string) (string, error) {
	if !r.bodyParsed {
		r.body, r.bodyErr = ParseBody(r.snapshot.Body)
		r.bodyParsed = true
	}
	if r.bodyErr != nil {
		return "", fmt.Errorf("resolving %q: %w", name, r.bodyErr)
	}
	v, err := r.body.Lookup(name)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", name, err)
	}
	return v, nil
}

// Compile-time assertion that Resolver implements FieldResolver.
var _ FieldResolver = (*Resolver)(nil)
