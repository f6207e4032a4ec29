// Package logging builds the zerolog loggers used by reqsign and keeps key
// material out of everything they write.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

// sensitivePatterns match secrets that could leak into a log line through an
// error message or a careless field.
var sensitivePatterns = []*regexp.Regexp{ //nolint:gochecknoglobals // compiled once
	// privkey values in key=value or JSON form.
	regexp.MustCompile(`(?i)"?priv(ate)?_?key"?\s*[:=]\s*"?[0-9a-zA-Z+/=:]{16,}"?`),

	// Hex Ed25519 seeds and expanded private keys.
	regexp.MustCompile(`\b[0-9a-fA-F]{128}\b`),
	regexp.MustCompile(`\b[0-9a-fA-F]{64}\b`),

	// Sealed store envelopes.
	regexp.MustCompile(`sealed:[A-Za-z0-9+/=]+`),

	// Passphrases and generic secrets.
	regexp.MustCompile(`(?i)(passphrase|password|secret)\s*[:=]\s*["']?[^\s"']{4,}["']?`),

	// Bearer tokens.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._-]{20,}`),
}

// sensitiveFieldNames always have their values redacted. Matching is
// case-insensitive and by substring.
var sensitiveFieldNames = []string{ //nolint:gochecknoglobals // fixed list
	"privkey",
	"private_key",
	"privatekey",
	"private-key",
	"seed",
	"passphrase",
	"password",
	"secret",
	"authorization",
}

// SensitiveDataHook flags log events whose message looks like it carries a secret.
// zerolog hooks cannot rewrite a message; FilteringWriter does the actual redaction.
type SensitiveDataHook struct{}

// NewSensitiveDataHook returns a SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook { return &SensitiveDataHook{} }

// Run implements zerolog.Hook.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData reports whether s matches any sensitive pattern.
func ContainsSensitiveData(s string) bool {
	for _, p := range sensitivePatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every sensitive match in value with RedactedValue.
func FilterSensitiveValue(value string) string {
	for _, p := range sensitivePatterns {
		value = p.ReplaceAllString(value, RedactedValue)
	}
	return value
}

// IsSensitiveFieldName reports whether a field or store key name denotes a secret.
func IsSensitiveFieldName(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range sensitiveFieldNames {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// SafeValue returns RedactedValue for sensitive names, and value with
// sensitive patterns filtered otherwise.
//
//	log.Debug().Str("value", logging.SafeValue(key, v)).Msg("store set")
func SafeValue(name, value string) string {
	if IsSensitiveFieldName(name) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter redacts sensitive data from everything written through it.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter wraps w.
func NewFilteringWriter(w io.Writer) *FilteringWriter { return &FilteringWriter{w: w} }

// Write implements io.Writer. It reports len(p) on success so callers never
// see a short write caused by redaction.
func (fw *FilteringWriter) Write(p []byte) (int, error) {
	if _, err := fw.w.Write([]byte(FilterSensitiveValue(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}
