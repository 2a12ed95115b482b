// Package kernel contains shared value objects used across the domain model:
// entity identifiers and the acting-partner context that scopes every
// registry and ledger operation.
package kernel
