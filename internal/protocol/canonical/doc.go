// Package canonical reconstructs the canonical message a request signature is
// computed over.
//
// # Overview
//
// A message is the concatenation, with no separators, of:
//  1. the decimal idempotency key, when requested;
//  2. the resolved value of every field token, in the order the caller listed them.
//
// Both the order and the exact text of every value are part of the wire
// contract: a verifier must rebuild the same bytes to check a signature.
//
// # Resolution
//
// Resolver turns one token into a string. Sources are consulted in a fixed
// order that must not change:
//  1. "$N" tokens select the Nth segment of the full URL split on "/"
//     ("https://h/a" → "https:", "", "h", "a").
//  2. Names present in the store win over the body, so values learned from an
//     earlier response override same-named body fields.
//  3. Otherwise the name is looked up in the request body.
//
// The body is classified once per Resolver, on the first body lookup, into a
// BodyFormat: a JSON object, a multipart form, or unsupported. Requests whose
// tokens never reach the body are never parsed.
//
// # Errors
//
// ErrIndexOutOfRange, ErrUnsupportedBodyFormat, ErrMalformedBody,
// ErrMissingField and ErrMissingIdempotencyKey (package internal/errors)
// classify every failure. Build never returns a partial message.
package canonical
