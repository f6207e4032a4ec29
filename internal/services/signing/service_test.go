package signing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqsign/internal/crypto"
	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
	"reqsign/internal/protocol/fieldtoken"
	"reqsign/internal/services/keys"
	"reqsign/internal/services/signing"
	"reqsign/internal/store"
)

func paymentSnapshot() domain.RequestSnapshot {
	return domain.RequestSnapshot{
		Method: "POST",
		URL:    "https://api.example.com/v1/payments",
		Body: domain.RequestBody{
			MimeType: domain.MimeJSON,
			Text:     `{"amount":"X","currency":"Y"}`,
		},
	}
}

func seededStore(t *testing.T) (*store.MemoryStore, string) {
	t.Helper()
	s := store.NewMemoryStore(map[string]string{domain.StoreKeyIdempotencyKey: "1234567890"})
	pub, err := keys.New(s).Generate(context.Background())
	require.NoError(t, err)
	return s, pub
}

func TestSign_MessageAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, pub := seededStore(t)
	svc := signing.New(s, signing.PolicySession)

	res, err := svc.Sign(ctx, paymentSnapshot(), domain.SignRequest{
		IncludeIdempotencyKey: true,
		Fields:                fieldtoken.Parse("amount,currency"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Message("1234567890XY"), res.Message)
	assert.Equal(t, domain.IdempotencyKey(1234567890), res.IdempotencyKey)
	assert.Equal(t, domain.SignStateSigned, res.State)

	ok, err := svc.Verify(ctx, res.Message, res.Signature.String(), pub)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(ctx, []byte("1234567890XZ"), res.Signature.String(), pub)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSign_Deterministic(t *testing.T) {
	ctx := context.Background()
	s, _ := seededStore(t)
	svc := signing.New(s, signing.PolicySession)
	req := domain.SignRequest{IncludeIdempotencyKey: true, Fields: fieldtoken.Parse("amount")}

	a, err := svc.Sign(ctx, paymentSnapshot(), req)
	require.NoError(t, err)
	b, err := svc.Sign(ctx, paymentSnapshot(), req)
	require.NoError(t, err)
	assert.Equal(t, a.Signature, b.Signature)
}

func TestSign_KnownSeed(t *testing.T) {
	ctx := context.Background()
	// RFC 8032 test vector 1: empty message.
	s := store.NewMemoryStore(map[string]string{
		domain.StoreKeyPrivateKey: "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
	})
	res, err := signing.New(s, "").Sign(ctx, paymentSnapshot(), domain.SignRequest{})
	require.NoError(t, err)
	assert.Equal(t,
		"e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e06522490155"+
			"5fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
		crypto.Hex(res.Signature))
}

func TestSign_MissingKeyFailsFirst(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore(nil)

	// Neither the idempotency key nor the field exist; the key check must win.
	_, err := signing.New(s, signing.PolicySession).Sign(ctx, paymentSnapshot(), domain.SignRequest{
		IncludeIdempotencyKey: true,
		Fields:                fieldtoken.Parse("nope"),
	})
	assert.ErrorIs(t, err, rserrors.ErrMissingKey)
}

func TestSign_MissingIdempotencyKey(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore(nil)
	_, err := keys.New(s).Generate(ctx)
	require.NoError(t, err)

	_, err = signing.New(s, signing.PolicySession).Sign(ctx, paymentSnapshot(), domain.SignRequest{
		IncludeIdempotencyKey: true,
	})
	assert.ErrorIs(t, err, rserrors.ErrMissingIdempotencyKey)
}

func TestSign_ResolutionErrors(t *testing.T) {
	ctx := context.Background()
	s, _ := seededStore(t)
	svc := signing.New(s, signing.PolicySession)

	tests := []struct {
		name   string
		fields string
		want   error
	}{
		{"missing field", "amount,missing", rserrors.ErrMissingField},
		{"segment out of range", "$9", rserrors.ErrIndexOutOfRange},
		{"bad segment", "$one", rserrors.ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Sign(ctx, paymentSnapshot(), domain.SignRequest{Fields: fieldtoken.Parse(tt.fields)})
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, res.Signature)
		})
	}
}

func TestSign_PerRequestPolicy(t *testing.T) {
	ctx := context.Background()
	s, _ := seededStore(t)
	svc := signing.New(s, signing.PolicyPerRequest)
	req := domain.SignRequest{IncludeIdempotencyKey: true, Fields: fieldtoken.Parse("amount")}

	a, err := svc.Sign(ctx, paymentSnapshot(), req)
	require.NoError(t, err)
	assert.True(t, a.IdempotencyKey.Valid())
	assert.Equal(t, domain.Message(a.IdempotencyKey.String()+"X"), a.Message)

	stored, err := s.GetItem(ctx, domain.StoreKeyIdempotencyKey)
	require.NoError(t, err)
	assert.Equal(t, a.IdempotencyKey.String(), stored)

	b, err := svc.Sign(ctx, paymentSnapshot(), req)
	require.NoError(t, err)
	assert.NotEqual(t, a.IdempotencyKey, b.IdempotencyKey)
}

func TestSign_PerRequestFailureLeavesStore(t *testing.T) {
	ctx := context.Background()
	s, _ := seededStore(t)
	svc := signing.New(s, signing.PolicyPerRequest)

	_, err := svc.Sign(ctx, paymentSnapshot(), domain.SignRequest{
		IncludeIdempotencyKey: true,
		Fields:                fieldtoken.Parse("missing"),
	})
	require.ErrorIs(t, err, rserrors.ErrMissingField)

	stored, err := s.GetItem(ctx, domain.StoreKeyIdempotencyKey)
	require.NoError(t, err)
	assert.Equal(t, "1234567890", stored)
}

func TestVerify_Encoding(t *testing.T) {
	_, err := signing.Verify([]byte("m"), "!!!", "AAAA")
	assert.True(t, errors.Is(err, rserrors.ErrInvalidEncoding))

	_, pub, err := crypto.GenerateEd25519()
	require.NoError(t, err)
	_, err = signing.Verify([]byte("m"), "%%%", crypto.B64(pub.Slice()))
	assert.ErrorIs(t, err, rserrors.ErrInvalidEncoding)

	ok, err := signing.Verify([]byte("m"), crypto.B64([]byte("short")), crypto.B64(pub.Slice()))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParsePolicy(t *testing.T) {
	p, err := signing.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, signing.PolicySession, p)

	p, err = signing.ParsePolicy("Per-Request")
	require.NoError(t, err)
	assert.Equal(t, signing.PolicyPerRequest, p)

	_, err = signing.ParsePolicy("always")
	assert.ErrorIs(t, err, rserrors.ErrConfigInvalidSigning)
}
