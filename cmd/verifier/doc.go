// Package main runs the signature verifier, a small HTTP service that checks
// Ed25519 signatures produced by reqsign. It holds no key material; callers
// send the public key with every request.
//
// HTTP API
//
//	POST /v1/verify {"message": "<b64>", "signature": "<b64>", "public_key": "<b64>"}
//	    Returns {"valid": true|false}. Missing fields, malformed base64 and bad
//	    key lengths are 400.
//
//	GET /healthz
//	    Liveness check.
//
//	GET /metrics
//	    Prometheus metrics.
//
// The listen address and timeouts come from the verifier section of the
// reqsign config file, REQSIGN_VERIFIER_* variables, or --listen.
package main
