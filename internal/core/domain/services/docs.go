// Package services provides domain services that orchestrate business
// operations across multiple aggregates in the freight system. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - ManifestDispatcher: the all-or-nothing dispatch cascade over a
//     manifest and its member waybills
//   - BoxVerifier: derivation of a manifest's expected box set and the
//     scan/shortage computation against its verification snapshot
//
// Domain services coordinate between aggregates, implementing business
// logic that spans multiple bounded contexts following Domain-Driven
// Design principles.
package services
