package request_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
	"reqsign/internal/request"
)

func TestFileSource_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
method: POST
url: https://api.example.com/v1/payments
body:
  mimeType: application/json
  text: '{"amount":"100"}'
`), 0o600))

	snap, err := request.FileSource{}.Snapshot(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "POST", snap.Method)
	assert.Equal(t, "https://api.example.com/v1/payments", snap.URL)
	assert.Equal(t, domain.MimeJSON, snap.Body.MimeType)
	assert.Equal(t, `{"amount":"100"}`, snap.Body.Text)
}

func TestFileSource_JSONMultipart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "url": "https://h/upload",
  "body": {"mimeType": "multipart/form-data", "params": [{"name":"a","value":"1"},{"name":"a","value":"2"}]}
}`), 0o600))

	snap, err := request.FileSource{}.Snapshot(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, snap.Body.Params, 2)
	assert.Equal(t, domain.Param{Name: "a", Value: "2"}, snap.Body.Params[1])
}

func TestFileSource_Errors(t *testing.T) {
	_, err := request.FileSource{}.Snapshot(context.Background(), filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)

	_, err = request.ParseSnapshot([]byte("method: GET\n"), ".yaml")
	assert.Error(t, err)
}

func TestStaticAndMap(t *testing.T) {
	snap := domain.RequestSnapshot{URL: "https://h"}
	got, err := request.Static(snap).Snapshot(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	m := request.Map{"r1": snap}
	got, err = m.Snapshot(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	_, err = m.Snapshot(context.Background(), "r2")
	assert.Error(t, err)
}

func TestFromHTTP_JSONBodyRestored(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "https://api.example.com/v1/pay", strings.NewReader(`{"amount":"1"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	snap, err := request.FromHTTP(req)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1/pay", snap.URL)
	assert.Equal(t, `{"amount":"1"}`, snap.Body.Text)
	assert.Equal(t, "application/json; charset=utf-8", snap.Body.MimeType)

	rest, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"amount":"1"}`, string(rest))
	assert.EqualValues(t, len(rest), req.ContentLength)
}

func TestFromHTTP_Multipart(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("a", "1"))
	require.NoError(t, w.WriteField("b", "2"))
	require.NoError(t, w.WriteField("a", "3"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "https://h/form", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	snap, err := request.FromHTTP(req)
	require.NoError(t, err)
	assert.Equal(t, []domain.Param{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}, {Name: "a", Value: "3"}}, snap.Body.Params)
	assert.Empty(t, snap.Body.Text)
}

func multipartRequest(t *testing.T, name, value string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField(name, value))
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "https://h/form", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestFromHTTP_MultipartPartLimit(t *testing.T) {
	atLimit := strings.Repeat("x", request.DefaultMaxMemory)
	snap, err := request.FromHTTP(multipartRequest(t, "doc", atLimit))
	require.NoError(t, err)
	require.Len(t, snap.Body.Params, 1)
	assert.Len(t, snap.Body.Params[0].Value, request.DefaultMaxMemory)

	_, err = request.FromHTTP(multipartRequest(t, "doc", atLimit+"y"))
	assert.ErrorIs(t, err, rserrors.ErrMalformedBody)
}

func TestFromHTTP_MultipartWithoutBoundary(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "https://h/form", strings.NewReader("x"))
	req.Header.Set("Content-Type", "multipart/form-data")

	_, err := request.FromHTTP(req)
	assert.ErrorIs(t, err, rserrors.ErrMalformedBody)
}

func TestFromHTTP_NoBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://h/a/b", nil)
	snap, err := request.FromHTTP(req)
	require.NoError(t, err)
	assert.Equal(t, "GET", snap.Method)
	assert.Empty(t, snap.Body.Text)
}
