// Package transport sends signed HTTP requests.
//
// Client.Do snapshots an outgoing *http.Request, signs it with the stored key,
// attaches the signature header (and the idempotency key header when one was
// signed), sends it, and feeds successful JSON responses to response capture
// so learned fields are available to the next signature.
//
// Non-2xx statuses are returned as errors wrapping ErrUnexpectedStatus with
// the HTTP method, full URL and status text; the Response is still returned.
package transport
