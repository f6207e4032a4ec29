package signing

import (
	"context"

	"github.com/rs/zerolog"

	"reqsign/internal/crypto"
	"reqsign/internal/domain"
	"reqsign/internal/protocol/canonical"
	"reqsign/internal/services/idempotency"
	"reqsign/internal/services/keys"
)

// Service signs canonical messages with the stored key pair.
type Service struct {
	store  domain.Store
	keys   *keys.Service
	ik     *idempotency.Service
	policy Policy
}

// New returns a signing service backed by the given store.
func New(s domain.Store, policy Policy) *Service {
	if policy == "" {
		policy = DefaultPolicy
	}
	return &Service{
		store:  s,
		keys:   keys.New(s),
		ik:     idempotency.New(s),
		policy: policy,
	}
}

// Policy reports the idempotency policy in use.
func (s *Service) Policy() Policy { return s.policy }

// Sign builds the canonical message for snapshot and signs it.
func (s *Service) Sign(
	ctx context.Context,
	snapshot domain.RequestSnapshot,
	req domain.SignRequest,
) (domain.SignResult, error) {
	log := zerolog.Ctx(ctx)
	state := domain.SignStateIdle

	kp, err := s.keys.Load(ctx)
	if err != nil {
		log.Debug().Stringer("state", state).Err(err).Msg("sign aborted")
		return domain.SignResult{}, err
	}
	defer crypto.Wipe(kp.Private[:])
	state = domain.SignStateKeyReady

	var (
		ik      domain.IdempotencyKey
		persist bool
		source  canonical.KeySource
	)
	if req.IncludeIdempotencyKey {
		switch s.policy {
		case PolicyPerRequest:
			ik, err = s.ik.Draw()
			persist = true
		default:
			ik, err = s.ik.Current(ctx)
		}
		if err != nil {
			log.Debug().Stringer("state", state).Err(err).Msg("sign aborted")
			return domain.SignResult{}, err
		}
		source = canonical.FixedKey(ik)
		state = domain.SignStateIdempotencyReady
	}

	builder := canonical.Builder{
		Keys:     source,
		Resolver: canonical.NewResolver(s.store, snapshot),
	}
	msg, err := builder.Build(ctx, req.Fields, req.IncludeIdempotencyKey)
	if err != nil {
		log.Debug().Stringer("state", state).Err(err).Msg("sign aborted")
		return domain.SignResult{}, err
	}
	state = domain.SignStateMessageBuilt

	sig := crypto.SignEd25519(kp.Private, msg)

	if persist {
		if err := s.ik.Save(ctx, ik); err != nil {
			log.Debug().Stringer("state", state).Err(err).Msg("sign aborted")
			return domain.SignResult{}, err
		}
	}
	state = domain.SignStateSigned

	log.Debug().
		Int("fields", len(req.Fields)).
		Bool("idempotency_key", req.IncludeIdempotencyKey).
		Str("policy", string(s.policy)).
		Int("message_len", len(msg)).
		Msg("request signed")

	return domain.SignResult{
		Signature:      sig,
		IdempotencyKey: ik,
		Message:        msg,
		State:          state,
	}, nil
}

// Verify checks a base64 signature over message with a base64 public key.
// Malformed encodings are errors; a well-formed signature that does not
// verify is (false, nil).
func (s *Service) Verify(
	_ context.Context,
	message []byte,
	signatureB64, publicKeyB64 string,
) (bool, error) {
	return Verify(message, signatureB64, publicKeyB64)
}

// Verify is the store-independent form of Service.Verify.
func Verify(message []byte, signatureB64, publicKeyB64 string) (bool, error) {
	pub, err := crypto.DecodePublicB64(publicKeyB64)
	if err != nil {
		return false, err
	}
	sig, err := crypto.DecodeB64(signatureB64)
	if err != nil {
		return false, err
	}
	return crypto.VerifyEd25519(pub, message, sig), nil
}

// Compile-time assertion that Service implements domain.SigningService.
var _ domain.SigningService = (*Service)(nil)
