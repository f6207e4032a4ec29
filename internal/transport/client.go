package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/rs/zerolog"

	"reqsign/internal/domain"
	"reqsign/internal/errors"
	"reqsign/internal/request"
	"reqsign/internal/services/capture"
	"reqsign/internal/services/signing"
)

// Header defaults.
const (
	DefaultSignatureHeader   = "X-Signature"
	DefaultIdempotencyHeader = "Idempotency-Key"
)

// MaxResponseBytes bounds how much of a response body is read.
const MaxResponseBytes = 4 << 20

// Options configures a Client.
type Options struct {
	HTTP              *http.Client
	SignatureHeader   string
	IdempotencyHeader string
	Policy            signing.Policy
	// CaptureFields overrides capture.DefaultFields. Set DisableCapture to skip capture.
	CaptureFields  []string
	DisableCapture bool
}

// Client signs and sends requests.
type Client struct {
	http              *http.Client
	signer            *signing.Service
	capture           *capture.Service
	signatureHeader   string
	idempotencyHeader string
}

// Response is a completed exchange.
type Response struct {
	*http.Response
	// Body is the fully read response body; Response.Body is already closed.
	Body []byte
	// Signature is the base64 signature that was sent.
	Signature string
	// IdempotencyKey is the key that was signed, or zero.
	IdempotencyKey domain.IdempotencyKey
	// Captured lists store keys updated from the response.
	Captured []string
}

// New returns a Client signing with the key pair in s.
func New(s domain.Store, opts Options) *Client {
	c := &Client{
		http:              opts.HTTP,
		signer:            signing.New(s, opts.Policy),
		signatureHeader:   opts.SignatureHeader,
		idempotencyHeader: opts.IdempotencyHeader,
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	if c.signatureHeader == "" {
		c.signatureHeader = DefaultSignatureHeader
	}
	if c.idempotencyHeader == "" {
		c.idempotencyHeader = DefaultIdempotencyHeader
	}
	if !opts.DisableCapture {
		c.capture = capture.New(s, opts.CaptureFields...)
	}
	return c
}

// NewJSONRequest builds a request with a JSON-encoded body.
func NewJSONRequest(ctx context.Context, method, url string, in any) (*http.Request, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", domain.MimeJSON)
	return req, nil
}

// Do signs req according to sr and sends it.
func (c *Client) Do(ctx context.Context, req *http.Request, sr domain.SignRequest) (*Response, error) {
	log := zerolog.Ctx(ctx)

	snap, err := request.FromHTTP(req)
	if err != nil {
		return nil, err
	}
	res, err := c.signer.Sign(ctx, snap, sr)
	if err != nil {
		return nil, errors.Wrapf(err, "sign %s %s", req.Method, req.URL)
	}

	req = req.WithContext(ctx)
	req.Header.Set(c.signatureHeader, res.Signature.String())
	if sr.IncludeIdempotencyKey {
		req.Header.Set(c.idempotencyHeader, res.IdempotencyKey.String())
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", req.Method, req.URL)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, MaxResponseBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "read response of %s %s", req.Method, req.URL)
	}
	out := &Response{
		Response:       httpResp,
		Body:           body,
		Signature:      res.Signature.String(),
		IdempotencyKey: res.IdempotencyKey,
	}

	log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", httpResp.StatusCode).
		Msg("signed request sent")

	if httpResp.StatusCode/100 != 2 {
		return out, fmt.Errorf("%w: %s %s: %s", errors.ErrUnexpectedStatus, req.Method, req.URL, httpResp.Status)
	}

	if c.capture != nil && isJSON(httpResp.Header.Get("Content-Type")) {
		captured, err := c.capture.Capture(ctx, body)
		if err != nil {
			// The exchange itself succeeded; a bad body only costs the capture.
			log.Warn().Err(err).Msg("response capture failed")
		}
		out.Captured = captured
	}
	return out, nil
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == domain.MimeJSON
}
