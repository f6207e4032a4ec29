// Package domain defines core data models and interfaces shared across reqsign.
// It contains plain types (request snapshots, keys, messages) and contracts
// (stores, request sources, services) only.
package domain
