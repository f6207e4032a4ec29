package canonical

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"strings"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
)

// BodyKind tags the variant held by a BodyFormat.
type BodyKind int

// Body variants.
const (
	BodyUnsupported BodyKind = iota
	BodyJSON
	BodyMultipartForm
)

func (k BodyKind) String() string {
	switch k {
	case BodyJSON:
		return "json"
	case BodyMultipartForm:
		return "multipart"
	default:
		return "unsupported"
	}
}

// BodyFormat is a request body parsed once into a name → value mapping.
type BodyFormat struct {
	Kind     BodyKind
	MimeType string
	fields   map[string]string
}

// ParseBody classifies body by mime type and flattens it.
//
// JSON bodies must hold an object; see Stringify for how member values become
// strings. Multipart params are flattened in order, so a later duplicate name
// replaces an earlier one. Other mime types yield a BodyUnsupported format
// whose lookups fail.
func ParseBody(body domain.RequestBody) (BodyFormat, error) {
	mt := mediaType(body.MimeType)
	switch mt {
	case domain.MimeJSON:
		fields, err := parseJSONObject([]byte(body.Text))
		if err != nil {
			return BodyFormat{}, err
		}
		return BodyFormat{Kind: BodyJSON, MimeType: mt, fields: fields}, nil
	case domain.MimeMultipartForm:
		fields := make(map[string]string, len(body.Params))
		for _, p := range body.Params {
			fields[p.Name] = p.Value
		}
		return BodyFormat{Kind: BodyMultipartForm, MimeType: mt, fields: fields}, nil
	default:
		return BodyFormat{Kind: BodyUnsupported, MimeType: body.MimeType}, nil
	}
}

// Lookup returns the body value for name.
func (b BodyFormat) Lookup(name string) (string, error) {
	if b.Kind == BodyUnsupported {
		return "", fmt.Errorf("%w: %q", rserrors.ErrUnsupportedBodyFormat, b.MimeType)
	}
	v, ok := b.fields[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", rserrors.ErrMissingField, name)
	}
	return v, nil
}

// Stringify renders one JSON value the way it is folded into a message:
// strings without quotes, numbers by their literal text, true/false/null as
// written, and arrays or objects as compact JSON.
func Stringify(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: empty value", rserrors.ErrMalformedBody)
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", rserrors.Mark(err, rserrors.ErrMalformedBody)
		}
		return s, nil
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return "", rserrors.Mark(err, rserrors.ErrMalformedBody)
		}
		return buf.String(), nil
	default:
		return string(raw), nil
	}
}

// parseJSONObject decodes a JSON object and stringifies its top-level members.
func parseJSONObject(text []byte) (map[string]string, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(text, &members); err != nil {
		return nil, rserrors.Mark(err, rserrors.ErrMalformedBody)
	}
	if members == nil {
		return nil, fmt.Errorf("%w: JSON body is not an object", rserrors.ErrMalformedBody)
	}
	out := make(map[string]string, len(members))
	for k, raw := range members {
		v, err := Stringify(raw)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// mediaType lowercases m and drops parameters such as charset.
func mediaType(m string) string {
	if mt, _, err := mime.ParseMediaType(m); err == nil {
		return mt
	}
	mt, _, _ := strings.Cut(m, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}
