package request

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"reqsign/internal/domain"
	"reqsign/internal/errors"
)

// DefaultMaxMemory bounds each multipart part. A larger part is rejected
// rather than truncated, since the signature must cover what is sent.
const DefaultMaxMemory = 8 << 20

// FromHTTP snapshots r. The body is read fully and restored so r can still be
// sent. Multipart bodies are flattened into Params in part order; file parts
// contribute their content.
func FromHTTP(r *http.Request) (domain.RequestSnapshot, error) {
	snap := domain.RequestSnapshot{
		Method: r.Method,
		URL:    r.URL.String(),
		Body:   domain.RequestBody{MimeType: r.Header.Get("Content-Type")},
	}
	if r.Body == nil || r.Body == http.NoBody {
		return snap, nil
	}

	data, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	if err != nil {
		return domain.RequestSnapshot{}, errors.Wrap(err, "read request body")
	}
	r.Body = io.NopCloser(bytes.NewReader(data))
	r.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	r.ContentLength = int64(len(data))

	mt, params, err := mime.ParseMediaType(snap.Body.MimeType)
	if err == nil && mt == domain.MimeMultipartForm {
		parts, err := readMultipart(data, params["boundary"])
		if err != nil {
			return domain.RequestSnapshot{}, err
		}
		snap.Body.Params = parts
		return snap, nil
	}
	snap.Body.Text = string(data)
	return snap, nil
}

func readMultipart(data []byte, boundary string) ([]domain.Param, error) {
	if boundary == "" {
		return nil, errors.Wrap(errors.ErrMalformedBody, "multipart body has no boundary")
	}
	mr := multipart.NewReader(bytes.NewReader(data), boundary)
	var out []domain.Param
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errors.Mark(err, errors.ErrMalformedBody)
		}
		v, err := io.ReadAll(io.LimitReader(p, DefaultMaxMemory+1))
		_ = p.Close()
		if err != nil {
			return nil, errors.Mark(err, errors.ErrMalformedBody)
		}
		if len(v) > DefaultMaxMemory {
			return nil, fmt.Errorf("%w: multipart part %q exceeds %d bytes",
				errors.ErrMalformedBody, p.FormName(), DefaultMaxMemory)
		}
		out = append(out, domain.Param{Name: p.FormName(), Value: string(v)})
	}
}
