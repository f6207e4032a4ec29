package capture

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/rs/zerolog"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
	"reqsign/internal/protocol/canonical"
)

// DefaultFields are captured when no field list is configured.
var DefaultFields = []string{domain.StoreKeyUID, domain.StoreKeyTransactionKey}

// Service writes selected top-level response members to the store.
type Service struct {
	store  domain.Store
	fields []string
}

// New returns a capture service for fields, or DefaultFields when none are given.
func New(s domain.Store, fields ...string) *Service {
	if len(fields) == 0 {
		fields = DefaultFields
	}
	return &Service{store: s, fields: append([]string(nil), fields...)}
}

// Fields returns the names this service captures.
func (s *Service) Fields() []string { return append([]string(nil), s.fields...) }

// Capture stores every configured field present at the top level of
// responseJSON under its own name, in a single write, and returns the
// captured names sorted.
//
// Invalid JSON fails with ErrMalformedBody. Valid JSON that is not an object,
// or an object holding none of the fields, captures nothing.
func (s *Service) Capture(ctx context.Context, responseJSON []byte) ([]string, error) {
	if !json.Valid(responseJSON) {
		return nil, rserrors.Wrap(rserrors.ErrMalformedBody, "response is not valid JSON")
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(responseJSON, &members); err != nil || members == nil {
		zerolog.Ctx(ctx).Debug().Msg("response is not a JSON object; nothing captured")
		return nil, nil
	}

	pairs := make(map[string]string, len(s.fields))
	for _, name := range s.fields {
		raw, ok := members[name]
		if !ok {
			continue
		}
		v, err := canonical.Stringify(raw)
		if err != nil {
			return nil, err
		}
		pairs[name] = v
	}
	if len(pairs) == 0 {
		return nil, nil
	}
	if err := s.store.SetItems(ctx, pairs); err != nil {
		return nil, err
	}

	captured := make([]string, 0, len(pairs))
	for name := range pairs {
		captured = append(captured, name)
	}
	sort.Strings(captured)
	zerolog.Ctx(ctx).Debug().Strs("fields", captured).Msg("captured response fields")
	return captured, nil
}

// Compile-time assertion that Service implements domain.CaptureService.
var _ domain.CaptureService = (*Service)(nil)
