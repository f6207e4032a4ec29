package operation

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"reqsign/internal/domain"
	"reqsign/internal/protocol/canonical"
	"reqsign/internal/protocol/fieldtoken"
	"reqsign/internal/services/capture"
	"reqsign/internal/services/idempotency"
	"reqsign/internal/services/keys"
	"reqsign/internal/services/signing"
)

// Operation is one caller-facing action.
type Operation interface {
	// Name is the stable identifier, e.g. "sign".
	Name() string
	// DisplayName is the human label.
	DisplayName() string
	// Describe renders the operation with its arguments.
	Describe() string
	// Run executes the operation and returns its textual result.
	Run(ctx context.Context, env Env) (string, error)
}

// Env carries the collaborators an operation runs against.
type Env struct {
	Store     domain.Store
	Requests  domain.RequestSource
	RequestID string
	Logger    *zerolog.Logger

	// Policy selects the idempotency policy for Sign.
	Policy signing.Policy
	// CaptureFields overrides capture.DefaultFields.
	CaptureFields []string

	// Signer and Capture are the wired services. When nil, operations build
	// them over Store from Policy and CaptureFields.
	Signer  *signing.Service
	Capture *capture.Service
}

func (e Env) signer() *signing.Service {
	if e.Signer != nil {
		return e.Signer
	}
	return signing.New(e.Store, e.Policy)
}

func (e Env) capture() *capture.Service {
	if e.Capture != nil {
		return e.Capture
	}
	return capture.New(e.Store, e.CaptureFields...)
}

// GenerateKeys creates and stores a new key pair and returns the public key.
type GenerateKeys struct{}

func (GenerateKeys) Name() string        { return "genKeys" }
func (GenerateKeys) DisplayName() string { return "Generate Signature Keypair" }
func (g GenerateKeys) Describe() string  { return g.Name() }

// Run returns the base64 public key.
func (GenerateKeys) Run(ctx context.Context, env Env) (string, error) {
	return keys.New(env.Store).Generate(ctx)
}

// GenerateIdempotencyKey creates and stores a new idempotency key.
type GenerateIdempotencyKey struct{}

func (GenerateIdempotencyKey) Name() string        { return "genIK" }
func (GenerateIdempotencyKey) DisplayName() string { return "Generate Idempotency Key" }
func (g GenerateIdempotencyKey) Describe() string  { return g.Name() }

// Run returns the key in decimal.
func (GenerateIdempotencyKey) Run(ctx context.Context, env Env) (string, error) {
	k, err := idempotency.New(env.Store).Generate(ctx)
	if err != nil {
		return "", err
	}
	return k.String(), nil
}

// Sign signs the request identified by Env.RequestID.
type Sign struct {
	IncludeIdempotencyKey bool
	// Fields is the comma-separated field list.
	Fields string
}

func (Sign) Name() string        { return "sign" }
func (Sign) DisplayName() string { return "Sign" }

// Describe renders "sign{idempotency-key,<fields>}" or "sign{<fields>}".
func (s Sign) Describe() string {
	return s.Name() + canonical.Describe(fieldtoken.Parse(s.Fields), s.IncludeIdempotencyKey)
}

// Run returns the base64 signature.
func (s Sign) Run(ctx context.Context, env Env) (string, error) {
	if env.Requests == nil {
		return "", errors.New("sign: no request source configured")
	}
	snap, err := env.Requests.Snapshot(ctx, env.RequestID)
	if err != nil {
		return "", err
	}
	res, err := env.signer().Sign(ctx, snap, domain.SignRequest{
		IncludeIdempotencyKey: s.IncludeIdempotencyKey,
		Fields:                fieldtoken.Parse(s.Fields),
	})
	if err != nil {
		return "", err
	}
	return res.Signature.String(), nil
}

// CaptureResponseFields stores learned fields from a JSON response body.
type CaptureResponseFields struct {
	Body []byte
}

func (CaptureResponseFields) Name() string        { return "captureResponse" }
func (CaptureResponseFields) DisplayName() string { return "Capture Response Fields" }
func (c CaptureResponseFields) Describe() string  { return c.Name() }

// Run returns the captured names, comma-separated.
func (c CaptureResponseFields) Run(ctx context.Context, env Env) (string, error) {
	names, err := env.capture().Capture(ctx, c.Body)
	if err != nil {
		return "", err
	}
	return strings.Join(names, ","), nil
}

// Compile-time assertions.
var (
	_ Operation = GenerateKeys{}
	_ Operation = GenerateIdempotencyKey{}
	_ Operation = Sign{}
	_ Operation = CaptureResponseFields{}
)
