// Package capture copies learned fields from JSON responses into the store so
// later signatures can include them.
package capture
