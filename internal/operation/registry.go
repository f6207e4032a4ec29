package operation

import (
	"fmt"
	"sort"

	rserrors "reqsign/internal/errors"
)

// Args are the arguments an operation may take when built by name.
type Args struct {
	IncludeIdempotencyKey bool
	Fields                string
	Body                  []byte
}

// Info describes a registered operation.
type Info struct {
	Name        string
	DisplayName string
	Description string
	// Priority orders operations for display, highest first.
	Priority int
}

type entry struct {
	info Info
	new  func(Args) Operation
}

var registry = map[string]entry{ //nolint:gochecknoglobals // fixed table
	"genKeys": {
		info: Info{
			Name:        "genKeys",
			DisplayName: GenerateKeys{}.DisplayName(),
			Description: "Generates a signing key pair, storing the private key and returning the public key.",
			Priority:    3,
		},
		new: func(Args) Operation { return GenerateKeys{} },
	},
	"genIK": {
		info: Info{
			Name:        "genIK",
			DisplayName: GenerateIdempotencyKey{}.DisplayName(),
			Description: "Generates and stores a ten-digit idempotency key.",
			Priority:    2,
		},
		new: func(Args) Operation { return GenerateIdempotencyKey{} },
	},
	"sign": {
		info: Info{
			Name:        "sign",
			DisplayName: Sign{}.DisplayName(),
			Description: "Signs the request and returns the signature.",
			Priority:    1,
		},
		new: func(a Args) Operation {
			return Sign{IncludeIdempotencyKey: a.IncludeIdempotencyKey, Fields: a.Fields}
		},
	},
	"captureResponse": {
		info: Info{
			Name:        "captureResponse",
			DisplayName: CaptureResponseFields{}.DisplayName(),
			Description: "Stores learned fields from a JSON response.",
			Priority:    0,
		},
		new: func(a Args) Operation { return CaptureResponseFields{Body: a.Body} },
	},
}

// New builds the operation registered under name.
func New(name string, args Args) (Operation, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", rserrors.ErrUnknownOperation, name)
	}
	return e.new(args), nil
}

// Catalog lists registered operations by descending priority.
func Catalog() []Info {
	out := make([]Info, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Name < out[j].Name
	})
	return out
}
