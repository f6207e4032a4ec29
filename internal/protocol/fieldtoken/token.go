package fieldtoken

import (
	"fmt"
	"strconv"
	"strings"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
)

const (
	// Separator splits a field list into tokens.
	Separator = ","
	// SegmentPrefix marks a URL segment selector.
	SegmentPrefix = "$"
)

// Parse splits a comma-separated field list into tokens.
func Parse(fields string) []domain.FieldToken {
	if fields == "" {
		return nil
	}
	parts := strings.Split(fields, Separator)
	out := make([]domain.FieldToken, len(parts))
	for i, p := range parts {
		out[i] = domain.FieldToken(p)
	}
	return out
}

// Join renders tokens back into a field list.
func Join(tokens []domain.FieldToken) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = string(t)
	}
	return strings.Join(parts, Separator)
}

// IsSegment reports whether t uses the "$N" selector syntax.
func IsSegment(t domain.FieldToken) bool {
	return strings.HasPrefix(string(t), SegmentPrefix)
}

// SegmentIndex returns N for a "$N" token. Anything but one or more ASCII
// digits after the "$" fails with ErrIndexOutOfRange.
func SegmentIndex(t domain.FieldToken) (int, error) {
	raw, ok := strings.CutPrefix(string(t), SegmentPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a segment selector", rserrors.ErrIndexOutOfRange, t)
	}
	if raw == "" {
		return 0, fmt.Errorf("%w: %q has no index", rserrors.ErrIndexOutOfRange, t)
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a non-negative integer", rserrors.ErrIndexOutOfRange, t)
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", rserrors.ErrIndexOutOfRange, t, err)
	}
	return n, nil
}
