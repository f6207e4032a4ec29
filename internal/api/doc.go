// Package api serves signature verification over HTTP with echo.
//
//	POST /v1/verify  {"message","signature","public_key"} (base64) → {"valid"}
//	GET  /healthz
//	GET  /metrics    Prometheus exposition
//
// Payload problems are answered with 400 and a JSON error body naming the
// offending field. A well-formed signature that does not verify is a 200
// with valid=false.
package api
