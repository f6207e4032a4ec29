package signing

import (
	"fmt"
	"strings"

	rserrors "reqsign/internal/errors"
)

// Policy selects where the idempotency key of a signature comes from.
type Policy string

// Idempotency policies.
const (
	PolicySession    Policy = "session"
	PolicyPerRequest Policy = "per-request"
)

// DefaultPolicy is used when none is configured.
const DefaultPolicy = PolicySession

// ParsePolicy parses a policy name. The empty string selects DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultPolicy, nil
	case PolicySession:
		return PolicySession, nil
	case PolicyPerRequest:
		return PolicyPerRequest, nil
	default:
		return "", fmt.Errorf("%w: unknown idempotency policy %q", rserrors.ErrConfigInvalidSigning, s)
	}
}
