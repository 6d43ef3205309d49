// Package config defines the format-agnostic catalog model for the
// application, along with the Loader interface for reading catalogs from
// various sources.
//
// A catalog declares records (complete parameter sets with their schema) and
// derivations (a new record cloned from a base and overridden). The
// `config.Model` is the single source of truth for the `registry` package.
// Concrete implementations of the Loader, such as for HCL, are provided in
// separate packages.
package config
