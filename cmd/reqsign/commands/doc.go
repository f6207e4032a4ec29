// Package commands defines the reqsign CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen         Generate the signing key pair and print the public key
//   - pubkey         Print the stored public key and its fingerprint
//   - ik new|show    Generate or print the idempotency key
//   - sign           Sign a request snapshot and print the signature
//   - verify         Check a signature over a message
//   - capture        Store learned fields from a JSON response
//   - send           Sign and send an HTTP request, capturing the response
//   - store get|set|rm  Inspect or edit stored values
//   - ops            List the available operations
//
// # Implementation
//
// The root command loads configuration, builds the logger and the dependency
// graph (store, services, runner) before any subcommand runs, so handlers
// share one store connection and one logger.
package commands
