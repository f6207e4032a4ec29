package transport_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
	"reqsign/internal/protocol/fieldtoken"
	"reqsign/internal/services/keys"
	"reqsign/internal/services/signing"
	"reqsign/internal/store"
	"reqsign/internal/transport"
)

type seen struct {
	signature   string
	idempotency string
	body        string
}

func newServer(t *testing.T, status int, respBody string, got *seen) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got.signature = r.Header.Get(transport.DefaultSignatureHeader)
		got.idempotency = r.Header.Get(transport.DefaultIdempotencyHeader)
		got.body = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setup(t *testing.T) (*store.MemoryStore, string) {
	t.Helper()
	s := store.NewMemoryStore(map[string]string{domain.StoreKeyIdempotencyKey: "1234567890"})
	pub, err := keys.New(s).Generate(context.Background())
	require.NoError(t, err)
	return s, pub
}

func TestDo_SignsSendsAndCaptures(t *testing.T) {
	ctx := context.Background()
	s, pub := setup(t)
	var got seen
	srv := newServer(t, http.StatusOK, `{"uid":"U1","transactionKey":"T1"}`, &got)

	req, err := transport.NewJSONRequest(ctx, http.MethodPost, srv.URL+"/v1/pay", map[string]string{"amount": "100"})
	require.NoError(t, err)

	resp, err := transport.New(s, transport.Options{}).Do(ctx, req, domain.SignRequest{
		IncludeIdempotencyKey: true,
		Fields:                fieldtoken.Parse("amount,$4"),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1234567890", got.idempotency)
	assert.Equal(t, resp.Signature, got.signature)
	assert.JSONEq(t, `{"amount":"100"}`, got.body)
	assert.Equal(t, []string{"transactionKey", "uid"}, resp.Captured)

	ok, err := signing.Verify([]byte("1234567890100pay"), got.signature, pub)
	require.NoError(t, err)
	assert.True(t, ok)

	uid, err := s.GetItem(ctx, domain.StoreKeyUID)
	require.NoError(t, err)
	assert.Equal(t, "U1", uid)
}

func TestDo_CustomHeaderNoIdempotency(t *testing.T) {
	ctx := context.Background()
	s, _ := setup(t)
	var sig string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sig = r.Header.Get("X-Req-Sig")
		assert.Empty(t, r.Header.Get(transport.DefaultIdempotencyHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/a/b", nil)
	require.NoError(t, err)

	resp, err := transport.New(s, transport.Options{SignatureHeader: "X-Req-Sig"}).
		Do(ctx, req, domain.SignRequest{Fields: fieldtoken.Parse("$3,$4")})
	require.NoError(t, err)
	assert.Equal(t, resp.Signature, sig)
	assert.Empty(t, resp.Captured)
}

func TestDo_UnexpectedStatus(t *testing.T) {
	ctx := context.Background()
	s, _ := setup(t)
	var got seen
	srv := newServer(t, http.StatusConflict, `{"uid":"SHOULD_NOT_CAPTURE"}`, &got)

	req, err := transport.NewJSONRequest(ctx, http.MethodPost, srv.URL, map[string]string{"a": "1"})
	require.NoError(t, err)

	resp, err := transport.New(s, transport.Options{}).Do(ctx, req, domain.SignRequest{Fields: fieldtoken.Parse("a")})
	require.ErrorIs(t, err, rserrors.ErrUnexpectedStatus)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.True(t, strings.Contains(err.Error(), "409"))

	ok, err := s.HasItem(ctx, domain.StoreKeyUID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDo_SignFailureSendsNothing(t *testing.T) {
	ctx := context.Background()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls++ }))
	defer srv.Close()

	req, err := transport.NewJSONRequest(ctx, http.MethodPost, srv.URL, map[string]string{"a": "1"})
	require.NoError(t, err)

	_, err = transport.New(store.NewMemoryStore(nil), transport.Options{}).
		Do(ctx, req, domain.SignRequest{Fields: fieldtoken.Parse("a")})
	assert.ErrorIs(t, err, rserrors.ErrMissingKey)
	assert.Zero(t, calls)
}

func TestDo_BadJSONResponseStillSucceeds(t *testing.T) {
	ctx := context.Background()
	s, _ := setup(t)
	var got seen
	srv := newServer(t, http.StatusOK, `{"uid":`, &got)

	req, err := transport.NewJSONRequest(ctx, http.MethodPost, srv.URL, map[string]string{"a": "1"})
	require.NoError(t, err)

	resp, err := transport.New(s, transport.Options{}).Do(ctx, req, domain.SignRequest{Fields: fieldtoken.Parse("a")})
	require.NoError(t, err)
	assert.Empty(t, resp.Captured)
}
