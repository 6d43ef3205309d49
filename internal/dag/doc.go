// Package dag provides a small directed acyclic graph keyed by string IDs.
//
// It is used to order record derivations: a derived record may itself be the
// base of another derivation, so derivations are applied in topological
// order, and a cycle between them is reported as an error.
package dag
